package expr

import (
	"math"

	"github.com/bnema/pocketcalc/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders evaluation results for the display. It always uses the
// English locale.
type Formatter struct {
	MaxFractionDigits int
	Grouping          bool
}

func DefaultFormatter() Formatter {
	return Formatter{MaxFractionDigits: domain.DefaultMaxFractionDigits, Grouping: true}
}

func NewFormatter(settings domain.DisplaySettings) Formatter {
	return Formatter{MaxFractionDigits: settings.MaxFractionDigits, Grouping: settings.Grouping}
}

func (f Formatter) Format(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNonFinite
	}

	// values that round to zero would otherwise print as "-0"
	if math.Abs(v) < 0.5*math.Pow10(-f.MaxFractionDigits) {
		v = 0
	}

	opts := []number.Option{number.MaxFractionDigits(f.MaxFractionDigits)}
	if !f.Grouping {
		opts = append(opts, number.NoSeparator())
	}

	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, opts...)), nil
}
