package dibs

import "fmt"

// The payment window speaks numeric ISO-4217 codes. This table covers the
// currencies DIBS supports.
var currencyNumbers = map[string]string{
	"DKK": "208",
	"EUR": "978",
	"USD": "840",
	"GBP": "826",
	"SEK": "752",
	"NOK": "578",
	"ISK": "352",
	"AUD": "036",
	"CAD": "124",
	"CHF": "756",
	"JPY": "392",
	"NZD": "554",
	"TRY": "949",
	"PLN": "985",
	"CZK": "203",
	"HUF": "348",
}

var currencyAlphas = func() map[string]string {
	m := make(map[string]string, len(currencyNumbers))
	for alpha, number := range currencyNumbers {
		m[number] = alpha
	}

	return m
}()

// CurrencyNumber converts an alpha currency code to its numeric form.
func CurrencyNumber(alpha string) (string, error) {
	number, ok := currencyNumbers[alpha]
	if !ok {
		return "", fmt.Errorf("dibs: unsupported currency %q", alpha)
	}

	return number, nil
}

// CurrencyAlpha converts a numeric currency code back to its alpha form.
func CurrencyAlpha(number string) (string, error) {
	alpha, ok := currencyAlphas[number]
	if !ok {
		return "", fmt.Errorf("dibs: unknown numeric currency %q", number)
	}

	return alpha, nil
}
