// Package user é o Credential Store: cadastro de usuários com hash bcrypt e
// verificação de senha no login.
package user

import (
	"strings"
	"sync"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/utils"
	"gorm.io/gorm"
)

// dummyHash é comparado quando o usuário não existe, para que nome
// inexistente e senha errada levem o mesmo tempo.
var (
	dummyOnce sync.Once
	dummyHash string
)

func compareDummy(secret string) {
	dummyOnce.Do(func() {
		dummyHash, _ = utils.HashPassword("not-a-real-password")
	})
	utils.CheckPassword(dummyHash, secret)
}

type Store struct {
	Repository Repository
}

func NewStore() *Store {
	return &Store{Repository: NewRepository()}
}

// Register cria o usuário. Nome (ou e-mail) repetido resulta em Conflict.
func (s *Store) Register(db *gorm.DB, name, email, secret string, isAdmin bool) (*models.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	switch {
	case name == "":
		return nil, apperr.Required("user_name")
	case email == "":
		return nil, apperr.Required("user_email")
	case secret == "":
		return nil, apperr.Required("password")
	}

	if _, err := s.Repository.FindByName(db, name); err == nil {
		return nil, apperr.Conflict("User already exists", nil)
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := utils.HashPassword(secret)
	if err != nil {
		return nil, apperr.Storage("could not hash password", err)
	}

	u := &models.User{UserName: name, UserEmail: email, UserPassword: hash, IsAdmin: isAdmin}
	if err := s.Repository.Create(db, u); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, apperr.Conflict("User already exists", err)
		}
		return nil, err
	}
	return u, nil
}

// Authenticate retorna o usuário e true somente se o nome existir e a senha
// conferir. Nome inexistente e senha errada são indistinguíveis para quem chama.
func (s *Store) Authenticate(db *gorm.DB, name, secret string) (*models.User, bool) {
	u, err := s.Repository.FindByName(db, strings.TrimSpace(name))
	if err != nil || u.UserPassword == "" {
		compareDummy(secret)
		return nil, false
	}
	if !utils.CheckPassword(u.UserPassword, secret) {
		return nil, false
	}
	return u, true
}
