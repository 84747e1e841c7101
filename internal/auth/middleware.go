package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/utils"
)

type ctxKey string

const (
	CtxUserID  ctxKey = "userID"
	CtxIsAdmin ctxKey = "isAdmin"
)

// Middleware exige um Bearer token válido e injeta user id / isAdmin no contexto.
func (t *Tokens) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.WriteError(w, r, apperr.Unauthorized("Missing token"))
			return
		}
		claims, err := t.Validate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			utils.WriteError(w, r, apperr.Unauthorized("Invalid token"))
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin deve vir depois de Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ok, _ := r.Context().Value(CtxIsAdmin).(bool); !ok {
			utils.WriteError(w, r, apperr.Forbidden("Forbidden (admin only)"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID devolve o id autenticado, se houver.
func UserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(CtxUserID).(uint)
	return id, ok
}
