package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0₫", FormatVND(0))
	assert.Equal(t, "500₫", FormatVND(500))
	assert.Equal(t, "55.000₫", FormatVND(55000))
	assert.Equal(t, "1.250.000₫", FormatVND(1250000))
	assert.Equal(t, "-55.000₫", FormatVND(-55000))
}
