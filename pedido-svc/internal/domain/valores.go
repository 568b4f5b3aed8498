package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	LayoutData = "2006-01-02"
	LayoutHora = "15:04"
)

// ToleranciaCentavo is the largest difference accepted between a client
// supplied total and the total derived from the lines.
var ToleranciaCentavo = decimal.New(1, -2)

// Column limits of NUMERIC(10,2) and NUMERIC(10,3).
var (
	MaxDinheiro   = decimal.RequireFromString("99999999.99")
	MaxQuantidade = decimal.RequireFromString("9999999.999")
)

// ValidarDinheiro rejects amounts that cannot be stored as given.
func ValidarDinheiro(d decimal.Decimal) error {
	switch {
	case d.IsNegative():
		return ErrValorNegativo
	case !d.Equal(d.Round(2)):
		return ErrPrecisaoValor
	case d.GreaterThan(MaxDinheiro):
		return ErrValorForaDoLimite
	}
	return nil
}

func ValidarQuantidade(d decimal.Decimal) error {
	switch {
	case !d.IsPositive():
		return ErrQuantidadeInvalida
	case !d.Equal(d.Round(3)):
		return ErrPrecisaoQuantidade
	case d.GreaterThan(MaxQuantidade):
		return ErrValorForaDoLimite
	}
	return nil
}

func Dinheiro(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func Quantidade(d decimal.Decimal) decimal.Decimal {
	return d.Round(3)
}

// TotalLinha is always computed from the rounded operands.
func TotalLinha(quantidade, valorUnitario decimal.Decimal) decimal.Decimal {
	return Dinheiro(Quantidade(quantidade).Mul(Dinheiro(valorUnitario)))
}

func Confere(informado, calculado decimal.Decimal) bool {
	return informado.Sub(calculado).Abs().LessThanOrEqual(ToleranciaCentavo)
}

func NormalizarData(s string) (string, error) {
	t, err := time.Parse(LayoutData, strings.TrimSpace(s))
	if err != nil {
		return "", ErrDataInvalida
	}
	return t.Format(LayoutData), nil
}

// NormalizarHora accepts HH:MM and HH:MM:SS and always returns HH:MM.
func NormalizarHora(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{LayoutHora, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(LayoutHora), nil
		}
	}
	return "", ErrHoraInvalida
}

// FormatarReais renders a value the way receipts show it, e.g. "R$ 1.234,50".
func FormatarReais(d decimal.Decimal) string {
	sinal := ""
	if d.IsNegative() {
		sinal = "-"
		d = d.Neg()
	}

	fixo := d.StringFixed(2)
	inteiro, centavos := fixo[:len(fixo)-3], fixo[len(fixo)-2:]

	var b strings.Builder
	for i, r := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sinal + "R$ " + b.String() + "," + centavos
}
