// Package apperr define a taxonomia de erros compartilhada entre repositórios,
// coordenador de cascata e handlers HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

type Kind int

const (
	KindStorage Kind = iota
	KindMissingPayload
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindMissingPayload:
		return "MissingPayload"
	case KindValidation:
		return "ValidationError"
	case KindConflict:
		return "DuplicateKeyError"
	case KindNotFound:
		return "NotFound"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	default:
		return "StorageError"
	}
}

// HTTPStatus mapeia o tipo de erro para o status devolvido ao cliente.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMissingPayload, KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Field é preenchido nos erros de validação ligados a um campo do payload.
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara apenas o Kind, de modo que errors.Is(err, apperr.ErrNotFound) funcione
// para qualquer NotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Sentinelas para errors.Is.
var (
	ErrMissingPayload = &Error{Kind: KindMissingPayload}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrStorage        = &Error{Kind: KindStorage}
	ErrUnauthorized   = &Error{Kind: KindUnauthorized}
	ErrForbidden      = &Error{Kind: KindForbidden}
)

func MissingPayload() *Error {
	return &Error{Kind: KindMissingPayload, Message: "No data provided"}
}

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

func Required(field string) *Error {
	return Validation(field, fmt.Sprintf("field %q is required", field))
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func Conflict(msg string, err error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// FromDB classifica um erro vindo do gorm. O gorm deve estar com
// TranslateError habilitado para que violações de unicidade e FK cheguem como
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func FromDB(err error, what string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict(what+" already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: KindValidation, Message: what + " references a missing record", Err: err}
	case errors.Is(err, gorm.ErrCheckConstraintViolated), errors.Is(err, gorm.ErrInvalidData):
		return &Error{Kind: KindValidation, Message: "invalid " + what + " data", Err: err}
	default:
		return Storage("database error", err)
	}
}

// KindOf devolve o Kind de err; erros fora da taxonomia contam como Storage.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStorage
}

// PublicMessage é a mensagem segura para o cliente: erros de storage nunca
// expõem a causa.
func PublicMessage(err error) string {
	var ae *Error
	if !errors.As(err, &ae) {
		return "Unexpected database error"
	}
	if ae.Kind == KindStorage {
		return "Unexpected database error"
	}
	return ae.Message
}
