package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatMoney("R$", 0))
	assert.Equal(t, "R$ 1.234,56", FormatMoney("R$", 1234.56))
	assert.Equal(t, "R$ 999,99", FormatMoney("R$", 999.99))
	assert.Equal(t, "R$ 1.000,00", FormatMoney("R$", 1000))
	assert.Equal(t, "R$ 12.345.678,90", FormatMoney("R$", 12345678.9))
	assert.Equal(t, "-R$ 42,50", FormatMoney("R$", -42.5))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1.000", FormatCount(1000))
	assert.Equal(t, "98.666", FormatCount(98666))
	assert.Equal(t, "-1.234", FormatCount(-1234))
}
