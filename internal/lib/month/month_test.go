package month_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tuistmessiah/active-sloth-api/internal/lib/month"
)

func TestStartOfDay(t *testing.T) {
	moment := time.Date(2024, 5, 17, 23, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), month.StartOfDay(moment))
}

func TestStartOfDay_ConvertsZone(t *testing.T) {
	// 01:30 в UTC+3 - это еще 22:30 предыдущего дня в UTC.
	zone := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2024, 5, 18, 1, 30, 0, 0, zone)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), month.StartOfDay(moment))
}

func TestIsFutureDay(t *testing.T) {
	now := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

	assert.False(t, month.IsFutureDay(time.Date(2024, 5, 17, 23, 59, 0, 0, time.UTC), now))
	assert.False(t, month.IsFutureDay(time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, month.IsFutureDay(time.Date(2024, 5, 18, 0, 0, 1, 0, time.UTC), now))
}

func TestParse(t *testing.T) {
	got, err := month.Parse("2024-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = month.Parse("2024-13")
	assert.Error(t, err)

	_, err = month.Parse("may 2024")
	assert.Error(t, err)
}

func TestStartAndEnd(t *testing.T) {
	moment := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), month.Start(moment))
	// Високосный февраль: последний день, а не последняя наносекунда.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), month.End(moment))

	december := time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), month.End(december))
}
