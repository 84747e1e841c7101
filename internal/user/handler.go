package user

import (
	"net/http"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/auth"
	"github.com/salestrack/sales-api/internal/logging"
	"github.com/salestrack/sales-api/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB     *gorm.DB
	Store  *Store
	Tokens *auth.Tokens
}

func NewHandler(db *gorm.DB, tokens *auth.Tokens) *Handler {
	return &Handler{DB: db, Store: NewStore(), Tokens: tokens}
}

// POST / e POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}

	u, ok := h.Store.Authenticate(h.DB.WithContext(r.Context()), req.UserName, req.Password)
	if !ok {
		utils.WriteError(w, r, apperr.Unauthorized("Invalid username or password"))
		return
	}

	token, err := h.Tokens.Generate(u.ID, u.IsAdmin)
	if err != nil {
		utils.WriteError(w, r, apperr.Storage("could not issue token", err))
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Login successful", map[string]interface{}{"token": token})
}

// POST /users (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	u, err := h.Store.Register(h.DB.WithContext(r.Context()), req.UserName, req.UserEmail, req.Password, req.IsAdmin.Value)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	if by, ok := auth.UserID(r); ok {
		logging.FromRequest(r).Info().Uint("user_id", u.ID).Uint("created_by", by).Bool("is_admin", u.IsAdmin).Msg("usuário criado")
	}
	utils.WriteSuccess(w, http.StatusCreated, "Added a new user successfully", map[string]interface{}{"user": toDTO(*u)})
}

// GET /users (admin)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.Repository.ListAll(h.DB.WithContext(r.Context()))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	out := make([]UserDTO, 0, len(list))
	for _, u := range list {
		out = append(out, toDTO(u))
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"users": out})
}
