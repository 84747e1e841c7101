package patch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testList = AllowList{
	"name":   {Kind: String, NonEmpty: true},
	"floor":  {Kind: Int},
	"staff":  {Kind: Int, Min: NonNegative()},
	"price":  {Kind: Float, Min: NonNegative()},
	"fibre":  {Kind: Bool},
	"day":    {Kind: Date},
	"remark": {Kind: String},
}

func TestApply_ConvertsAndFilters(t *testing.T) {
	cols, err := testList.Apply(map[string]interface{}{
		"name":      "Suite 1",
		"floor":     float64(-1),
		"staff":     "12",
		"price":     json.Number("9.5"),
		"fibre":     "on",
		"day":       "2024-02-29",
		"remark":    "",
		"client_id": 5,
	})
	require.NoError(t, err)
	assert.Len(t, cols, 7)
	assert.Equal(t, -1, cols["floor"])
	assert.Equal(t, 12, cols["staff"])
	assert.Equal(t, 9.5, cols["price"])
	assert.Equal(t, true, cols["fibre"])
	assert.NotContains(t, cols, "client_id")
}

func TestApply_Rejections(t *testing.T) {
	_, err := testList.Apply(map[string]interface{}{"client_id": 1, "timestamp": "x"})
	assert.ErrorIs(t, err, ErrNoFields)

	cases := map[string]interface{}{
		"name":  "  ",
		"floor": 1.5,
		"staff": -3,
		"price": "cheap",
		"fibre": "maybe",
		"day":   "29/02/2024",
	}
	for field, value := range cases {
		_, err := testList.Apply(map[string]interface{}{field: value})
		var ae *apperr.Error
		require.ErrorAs(t, err, &ae, field)
		assert.Equal(t, apperr.KindValidation, ae.Kind)
		assert.Equal(t, field, ae.Field)
	}

	_, err = testList.Apply(map[string]interface{}{"remark": nil})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestApply_IntegerOutOfRange(t *testing.T) {
	for _, raw := range []interface{}{1e30, -1e30, 1e19, float64(1 << 31), json.Number("9223372036854775808"), json.Number("3000000000"), "99999999999999999999", "-2147483649"} {
		for _, field := range []string{"floor", "staff"} {
			_, err := testList.Apply(map[string]interface{}{field: raw})
			var ae *apperr.Error
			require.ErrorAs(t, err, &ae, raw)
			assert.Equal(t, field, ae.Field)
			assert.Equal(t, `field "`+field+`" must be an integer`, ae.Message, raw)
		}
	}

	cols, err := testList.Apply(map[string]interface{}{"floor": float64(-2147483648), "staff": "2147483647"})
	require.NoError(t, err)
	assert.Equal(t, -2147483648, cols["floor"])
	assert.Equal(t, 2147483647, cols["staff"])
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", time.Time(d).Format("2006-01-02"))

	d, err = ParseDate("2024-05-10T23:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", time.Time(d).Format("2006-01-02"))

	_, err = ParseDate("May 10")
	assert.Error(t, err)
}

func TestToBool(t *testing.T) {
	for _, v := range []interface{}{true, "TRUE", "1", "yes", float64(1)} {
		b, err := ToBool(v)
		require.NoError(t, err)
		assert.True(t, b, v)
	}
	for _, v := range []interface{}{false, "false", "0", "", float64(0)} {
		b, err := ToBool(v)
		require.NoError(t, err)
		assert.False(t, b, v)
	}
}
