// Package format concentra a formatação de valores exibidos no dashboard:
// moeda, números com separador de milhar, percentuais e a paleta de cores dos gráficos.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"

	// maxPlainFractionDigits segue o padrão do Intl.NumberFormat para números simples
	maxPlainFractionDigits = 3
)

// currencySymbols vai sempre antes do valor; locales com símbolo sufixado não são suportados
var currencySymbols = map[string]string{
	"USD": "$",
	"BRL": "R$",
	"EUR": "€",
	"GBP": "£",
	"ARS": "$",
	"MXN": "$",
	"CLP": "$",
	"COP": "$",
}

// Formatter formata valores para um locale e uma moeda fixos
type Formatter struct {
	locale   language.Tag
	printer  *message.Printer
	currency currency.Unit
	symbol   string
}

// New cria um Formatter. Locale e código de moeda inválidos retornam erro.
func New(locale, currencyCode string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("format: locale inválido %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("format: moeda inválida %q: %w", currencyCode, err)
	}

	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}

	return &Formatter{
		locale:   tag,
		printer:  message.NewPrinter(tag),
		currency: unit,
		symbol:   symbol,
	}, nil
}

// Default retorna o Formatter en-US/USD
func Default() *Formatter {
	f, err := New(DefaultLocale, DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale retorna o locale configurado
func (f *Formatter) Locale() string {
	return f.locale.String()
}

// CurrencyCode retorna o código ISO da moeda configurada
func (f *Formatter) CurrencyCode() string {
	return f.currency.String()
}

// Currency formata v como moeda com zero casas decimais por padrão.
// Valores ausentes ou não numéricos viram o valor zero formatado.
func (f *Formatter) Currency(v any, fractionDigits ...int) string {
	digits := 0
	if len(fractionDigits) > 0 && fractionDigits[0] > 0 {
		digits = fractionDigits[0]
	}

	amount, ok := toFloat(v)
	if !ok {
		amount = 0
	}

	rounded := decimal.NewFromFloat(amount).Round(int32(digits))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	value, _ := rounded.Float64()
	body := f.printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))

	return sign + f.symbol + body
}

// Number formata v com separador de milhar do locale, sem casas decimais forçadas
func (f *Formatter) Number(v any) string {
	value, ok := toFloat(v)
	if !ok {
		value = 0
	}

	return f.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(maxPlainFractionDigits)))
}

// Percentage calcula round(100 × part / total); total zero resulta em 0
func Percentage(part, total float64) int {
	if total == 0 {
		return 0
	}

	return utils.RoundHalfUp(utils.Finite(100 * part / total))
}

func toFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case nil:
		return 0, false
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return 0, false
		}
		v = value
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
