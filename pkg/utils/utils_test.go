package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "salarios", NormalizeText("  Salários "))
	assert.Equal(t, "agua e luz", NormalizeText("Água   e Luz"))
	assert.Equal(t, "cartao_credito", NormalizeText("Cartão-Crédito"))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.5678))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.NaN()))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.Inf(1)))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 25.0, Percentage(25, 100))
	assert.Equal(t, 0.0, Percentage(10, 0))
}

func TestParseFlexibleDate(t *testing.T) {
	d, err := ParseFlexibleDate("2024-03-10")
	assert.NoError(t, err)
	assert.Equal(t, 10, d.Day())

	d, err = ParseFlexibleDate("2024-03-10T15:04:05Z")
	assert.NoError(t, err)
	assert.Equal(t, 15, d.Hour())

	_, err = ParseFlexibleDate("10/03/2024")
	assert.Error(t, err)
}
