package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Date
		expectErr bool
	}{
		{name: "plain date", input: "2024-01-31", expected: NewDate(2024, 1, 31)},
		{name: "surrounding whitespace", input: " 2024-01-31 ", expected: NewDate(2024, 1, 31)},
		{name: "utc timestamp", input: "2024-01-31T23:30:00Z", expected: NewDate(2024, 1, 31)},
		{name: "offset timestamp keeps its own date", input: "2024-02-01T00:30:00+02:00", expected: NewDate(2024, 2, 1)},
		{name: "garbage", input: "next tuesday", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDateOf_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	justBeforeMidnight := time.Date(2024, 3, 10, 23, 59, 59, 0, loc)
	justAfterMidnight := time.Date(2024, 3, 11, 0, 0, 1, 0, loc)

	assert.Equal(t, NewDate(2024, 3, 10), DateOf(justBeforeMidnight))
	assert.Equal(t, NewDate(2024, 3, 11), DateOf(justAfterMidnight))
	assert.True(t, DateOf(justBeforeMidnight).Before(DateOf(justAfterMidnight)))
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2023, 12, 31)
	b := NewDate(2024, 1, 1)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(NewDate(2023, 12, 31)))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(NewDate(2023, 12, 31)))
}

func TestDate_AddDaysAndNormalization(t *testing.T) {
	assert.Equal(t, NewDate(2024, 3, 1), NewDate(2024, 2, 29).AddDays(1))
	assert.Equal(t, NewDate(2024, 2, 1), NewDate(2024, 1, 32))
	assert.Equal(t, NewDate(2023, 12, 31), NewDate(2024, 1, 1).AddDays(-1))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Due *Date `json:"due"`
	}

	data, err := json.Marshal(payload{Due: datePtr(2024, 7, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-07-04"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-07-04"}`), &decoded))
	require.NotNil(t, decoded.Due)
	assert.Equal(t, NewDate(2024, 7, 4), *decoded.Due)

	var empty payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &empty))
	assert.Nil(t, empty.Due)
}
