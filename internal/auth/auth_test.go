package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	raw, err := tokens.Generate(7, true)
	require.NoError(t, err)

	claims, err := tokens.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestTokens_RejectsWrongSecretAndExpired(t *testing.T) {
	raw, err := NewTokens("secret", time.Hour).Generate(1, false)
	require.NoError(t, err)

	_, err = NewTokens("other", time.Hour).Validate(raw)
	assert.Error(t, err)

	expired := NewTokens("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, err = expired.Generate(1, false)
	require.NoError(t, err)
	_, err = NewTokens("secret", time.Minute).Validate(raw)
	assert.Error(t, err)
}

func TestMiddleware_AdminGuard(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := UserID(r)
		assert.Equal(t, uint(3), id)
		w.WriteHeader(http.StatusNoContent)
	})
	h := tokens.Middleware(RequireAdmin(ok))

	do := func(header string) int {
		req := httptest.NewRequest(http.MethodDelete, "/clear-all-data", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, do(""))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer garbage"))

	user, _ := tokens.Generate(3, false)
	assert.Equal(t, http.StatusForbidden, do("Bearer "+user))

	admin, _ := tokens.Generate(3, true)
	assert.Equal(t, http.StatusNoContent, do("Bearer "+admin))
}
