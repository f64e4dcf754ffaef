package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	period, err := ParsePeriod("02-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), period)
	assert.Equal(t, "02-2024", FormatPeriod(period))

	_, err = ParsePeriod("2024-02")
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(200.0/3))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.5, Round2(-1.499))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)

	number, err := GenerateInvoiceNumber()
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{8}$`, number)
}
