package utils

import "github.com/shopspring/decimal"

// exactExponent is below the smallest binary exponent of a float64, so
// NewFromFloatWithExponent keeps every digit of the stored binary value.
const exactExponent = -1100

// RoundMoney rounds an amount to 2 decimal places from its exact binary value,
// with ties going to the even cent. 2.625 becomes 2.62 and 2.675, stored just
// below the tie, becomes 2.67.
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloatWithExponent(amount, exactExponent).RoundBank(2).InexactFloat64()
}
