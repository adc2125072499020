package wwv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2100))
	assert.False(t, IsLeapYear(2023))
}

func Test_DayOfYear(t *testing.T) {
	assert.Equal(t, 1, DayOfYear(2024, 1, 1))
	assert.Equal(t, 167, DayOfYear(2024, 6, 15))
	assert.Equal(t, 60, DayOfYear(2024, 2, 29)) // leap year
	assert.Equal(t, 365, DayOfYear(2023, 12, 31))
	assert.Equal(t, 366, DayOfYear(2024, 12, 31))
}

func Test_DSTStartDOY_pre2007(t *testing.T) {
	assert.Equal(t, -1, DSTStartDOY(2006))
}

func Test_DSTStartDOY_knownYears(t *testing.T) {
	assert.Equal(t, 70, DSTStartDOY(2007))
	assert.Equal(t, 67, DSTStartDOY(2015))
	assert.Equal(t, 68, DSTStartDOY(2020))
	assert.Equal(t, 71, DSTStartDOY(2023))
	assert.Equal(t, 70, DSTStartDOY(2024))
	assert.Equal(t, 73, DSTStartDOY(2100))
}
