package cli

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errAmountNotANumber  = errors.New("amount must be a valid number")
	errAmountPrecision   = errors.New("amount must have at most two decimal places")
	errAmountNotPositive = errors.New("amount must be greater than zero")
)

// ParseAmount converts a decimal string like "123.45" into centavos,
// rejecting non-positive values and sub-centavo precision.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errAmountNotANumber
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, errAmountPrecision
	}
	value := cents.IntPart()
	if value <= 0 {
		return 0, errAmountNotPositive
	}
	return value, nil
}

// FormatAmount renders centavos as "R$ 123.45".
func FormatAmount(centavos int64) string {
	return "R$ " + decimal.NewFromInt(centavos).Shift(-2).StringFixed(2)
}

// ValidCPF reports whether the string is exactly 11 numeric digits. The
// core never sees a CPF that fails this check.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
