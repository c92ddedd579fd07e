// Package money реализует денежный тип в минимальных единицах (копейки/пайсы)
// и разбор сумм, приходящих из форм и JSON.
//
// Суммы хранятся как int64 без плавающей точки, поэтому сложение и вычитание
// при подсчёте баланса точны.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount возвращается, если строку нельзя разобрать как неотрицательную сумму.
var ErrInvalidAmount = errors.New("invalid amount")

// maxAmount ограничивает сумму, чтобы умножение на 100 не переполняло int64.
const maxAmount = 1_000_000_000_000

// Amount: сумма в минимальных единицах валюты (1.00 == 100).
type Amount int64

// Parse разбирает десятичную строку в Amount.
//
// Допускаются точка или запятая как разделитель, не более двух знаков после него.
// Отрицательные значения, пустая строка и мусор возвращают ErrInvalidAmount.
//
//	Parse("50")    -> 5000
//	Parse("50.5")  -> 5050
//	Parse("12,34") -> 1234
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") || (hasDot && fracPart == "") {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("%w: at most two decimal places", ErrInvalidAmount)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := parseDigits(intPart)
	if err != nil {
		return 0, err
	}
	if units > maxAmount {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	cents, err := parseDigits(fracPart)
	if err != nil {
		return 0, err
	}
	return Amount(units*100 + cents), nil
}

func parseDigits(s string) (int64, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FromUnits строит Amount из целого числа единиц валюты.
func FromUnits(units int64) Amount {
	return Amount(units * 100)
}

// String форматирует сумму с двумя знаками после точки.
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON кодирует сумму JSON-числом с двумя знаками после точки.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON принимает как число, так и строку. Отрицательные значения
// допустимы только здесь: баланс в событиях и ответах может уйти в минус.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	negative := strings.HasPrefix(s, "-")
	v, err := Parse(strings.TrimPrefix(s, "-"))
	if err != nil {
		return err
	}
	if negative {
		v = -v
	}
	*a = v
	return nil
}

// Sum складывает суммы.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, v := range amounts {
		total += v
	}
	return total
}
