package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide retorna 0 quando o divisor é zero
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// Percentage calcula part/total*100 arredondado, 0 quando total é zero
func Percentage(part, total float64) float64 {
	return RoundWithTwoDecimalPlace(SafeDivide(part, total) * 100)
}
