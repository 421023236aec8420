package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatCurrency(1234.56))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$124,850.00", FormatCurrency(124850))
}

func TestFormatPricePerNight(t *testing.T) {
	assert.Equal(t, "$150/night", FormatPricePerNight(150))
	assert.Equal(t, "$1,250/night", FormatPricePerNight(1250))
	assert.Equal(t, "$0/night", FormatPricePerNight(0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024", FormatDate("2024-01-15"))
	assert.Equal(t, "Mar 1, 2022", FormatDate("2022-03-01T10:30:00Z"))
	// A bad value still renders rather than blanking the cell.
	assert.Equal(t, "soon", FormatDate("soon"))
}

func TestFormatShortTime(t *testing.T) {
	assert.Equal(t, "02:05 PM", FormatShortTime(time.Date(2024, 1, 15, 14, 5, 0, 0, time.UTC)))
	assert.Equal(t, "09:30 AM", FormatShortTime(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)))
}
