package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"dairy", "DAIRY", "Dairy", "  dAiRy "} {
		assert.Equalf(t, CategoryDairy, ParseCategory(in), "input %q", in)
	}
	assert.Equal(t, CategoryCondiment, ParseCategory("condiment"))
	assert.Equal(t, CategoryOther, ParseCategory("Unknownfood"))
	assert.Equal(t, CategoryOther, ParseCategory(""))
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryMeat.Valid())
	assert.False(t, Category("meat").Valid())
}

func TestDate_AddDaysAndDaysSince(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, 2, d.AddDays(2).DaysSince(d))
	assert.Equal(t, -2, d.DaysSince(d.AddDays(2)))

	ref := NewDate(2026, time.October, 19)
	assert.Equal(t, 136309, NewDate(2400, time.January, 1).DaysSince(ref))
	assert.Equal(t, -119360, NewDate(1700, time.January, 1).DaysSince(ref))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-04")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.May, 4), d)

	d, err = ParseDate("0001-01-02")
	require.NoError(t, err)
	assert.False(t, d.IsZero())

	_, err = ParseDate("0001-01-01")
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = ParseDate("2025-13-01")
	assert.Error(t, err)
}

func TestDateOf_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 2025-06-01 23:30 UTC is already June 2nd in UTC+9.
	ts := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC).In(loc)

	assert.Equal(t, "2025-06-02", DateOf(ts).String())
}

func TestDate_JSON(t *testing.T) {
	item := InventoryItem{ID: "a", Name: "Milk", ExpiryDate: NewDate(2025, time.May, 4)}
	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"expiry_date":"2025-05-04"`)

	var back InventoryItem
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, item.ExpiryDate, back.ExpiryDate)

	var empty struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":null}`), &empty))
	assert.True(t, empty.D.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"d":"04/05/2025"}`), &empty))
	assert.Error(t, json.Unmarshal([]byte(`{"d":20250504}`), &empty))
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"d":"0001-01-01"}`), &empty), ErrDateOutOfRange)
}
