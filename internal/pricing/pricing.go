package pricing

import (
	"math"
	"strconv"
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
)

// DefaultEURToXOF is the pegged CFA franc rate used when no rate is configured.
const DefaultEURToXOF = 655.957

// Converter converts reference-currency (EUR) amounts into CFA francs using a
// fixed rate. Built once at startup from configuration and passed by
// reference to everything that prices.
type Converter struct {
	rate float64
}

func NewConverter(eurToXOF float64) Converter {
	if eurToXOF <= 0 {
		eurToXOF = DefaultEURToXOF
	}
	return Converter{rate: eurToXOF}
}

func (c Converter) Rate() float64 {
	return c.rate
}

// ToXOF converts an EUR amount to whole CFA francs, rounded to the nearest
// unit for display.
func (c Converter) ToXOF(eur float64) int64 {
	return int64(math.Round(eur * c.rate))
}

// ToEUR is the inverse conversion, used only for sanity checks; display
// prices always originate in EUR.
func (c Converter) ToEUR(xof float64) float64 {
	return xof / c.rate
}

// Total computes (base price + sum of add-on prices) x travelers.
func Total(basePriceEUR float64, addOns []models.AddOn, travelers int) float64 {
	perPerson := basePriceEUR
	for _, a := range addOns {
		perPerson += a.PriceEUR
	}
	return perPerson * float64(travelers)
}

// FormatEUR renders an EUR amount the way the site displays it: "865€".
func FormatEUR(eur float64) string {
	return strconv.FormatFloat(eur, 'f', -1, 64) + "€"
}

// FormatXOF renders a whole-franc amount with fr-FR thousands grouping:
// "1 242 383 FCFA".
func FormatXOF(xof int64) string {
	return groupThousands(xof) + " FCFA"
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i:i+3]...)
	}
	return sign + string(out)
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateFR renders a date as the site does: "15 janvier 2025".
func FormatDateFR(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + frenchMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
