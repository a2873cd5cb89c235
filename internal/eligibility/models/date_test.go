package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	t.Run("marshals as calendar date", func(t *testing.T) {
		out, err := json.Marshal(NewDate(1990, time.January, 1))
		require.NoError(t, err)
		assert.Equal(t, `"1990-01-01"`, string(out))
	})

	t.Run("unmarshals the wire form", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"1990-01-01"`), &d))
		assert.Equal(t, NewDate(1990, time.January, 1), d)
	})

	t.Run("null and empty clear the value", func(t *testing.T) {
		for _, raw := range []string{`null`, `""`} {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(raw), &d))
			assert.True(t, d.IsZero(), raw)
		}
	})

	t.Run("rejects non-date strings", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"01/01/1990"`), &d))
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())

	_, err = ParseDate("2026-13-40")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, NewDate(2026, time.March, 15), DateOf(ts))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1990-01-01", d.String())

	require.NoError(t, d.Scan([]byte("1991-02-03")))
	assert.Equal(t, "1991-02-03", d.String())

	assert.Error(t, d.Scan(42))
}
