package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string    `json:"name"`
	Fibre FlexBool  `json:"fibre"`
	Floor FlexInt   `json:"floor"`
	Price FlexFloat `json:"price"`
}

func TestDecodeBody_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","fibre":true,"floor":"3","price":null}`))
	req.Header.Set("Content-Type", "application/json")

	var s sample
	require.NoError(t, DecodeBody(req, &s))
	assert.Equal(t, "x", s.Name)
	assert.True(t, s.Fibre.Value)
	assert.Equal(t, FlexInt{Value: 3, Set: true}, s.Floor)
	assert.False(t, s.Price.Set)
}

func TestDecodeBody_Form(t *testing.T) {
	form := url.Values{"name": {"x"}, "fibre": {"yes"}, "floor": {"2"}, "price": {"10.5"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var s sample
	require.NoError(t, DecodeBody(req, &s))
	assert.True(t, s.Fibre.Value)
	assert.Equal(t, 2, s.Floor.Value)
	assert.InDelta(t, 10.5, s.Price.Value, 0.0001)
}

func TestDecodeBody_Errors(t *testing.T) {
	for _, body := range []string{"", "  ", "null", "{}"} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var s sample
		assert.ErrorIs(t, DecodeBody(req, &s), apperr.ErrMissingPayload, body)
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	var s sample
	assert.ErrorIs(t, DecodeBody(req, &s), apperr.ErrValidation)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"floor":"two"}`))
	assert.ErrorIs(t, DecodeBody(req, &s), apperr.ErrValidation)
}

type embedded struct {
	sample
	NumberStaff FlexInt `json:"number_staff"`
}

func TestDecodeBody_TypedFieldNamed(t *testing.T) {
	cases := map[string]struct {
		body, field, msg string
	}{
		"int":      {`{"floor":"two"}`, "floor", `field "floor" must be an integer`},
		"float":    {`{"price":"x"}`, "price", `field "price" must be a number`},
		"bool":     {`{"fibre":"maybe"}`, "fibre", `field "fibre" must be a boolean`},
		"string":   {`{"name":5}`, "name", `field "name" must be a string`},
		"huge int": {`{"floor":1e30}`, "floor", `field "floor" must be an integer`},
		"promoted": {`{"name":"x","number_staff":"abc"}`, "number_staff", `field "number_staff" must be an integer`},
		"embedded": {`{"number_staff":1,"fibre":"maybe"}`, "fibre", `field "fibre" must be a boolean`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var e embedded
			var ae *apperr.Error
			require.ErrorAs(t, DecodeBody(req, &e), &ae)
			assert.Equal(t, apperr.KindValidation, ae.Kind)
			assert.Equal(t, tc.field, ae.Field)
			assert.Equal(t, tc.msg, ae.Message)
		})
	}
}

func TestWriteError_HidesStorageCause(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), apperr.Storage("db", errors.New("password=secret")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Unexpected database error", out["message"])
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "other"))

	tmp, err := GenerateTemporaryPassword()
	require.NoError(t, err)
	assert.NotEmpty(t, tmp)
}
