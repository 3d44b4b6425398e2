package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 14, 8, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("08:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("8:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:30").Validate())
	assert.NoError(t, TimeString("00:00").Validate())

	// Только каноническая форма с ведущим нулём: "8:30" сортируется
	// после "14:30" и ломает хронологический порядок сравнения строк
	assert.ErrorIs(t, TimeString("8:30").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("08:30:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("24:00").Validate(), ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:30").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("08:30"))
	assert.False(t, TimeString("08:30").IsBefore("08:30"))

	assert.True(t, TimeString("14:30").IsAfter("08:30"))
	assert.False(t, TimeString("08:30").IsAfter("08:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("08:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), ts)

	_, err = TimeString("bogus").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("08:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:30", v)

	_, err = TimeString("not-a-time").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:30"))
	assert.Equal(t, TimeString("08:30"), ts)

	// Колонка TIME приходит с секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:30:00")))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
