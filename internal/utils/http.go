package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/logging"
)

const maxBodyBytes = 1 << 20

// DecodeBody lê um corpo JSON ou application/x-www-form-urlencoded em dst.
// Formulários são convertidos para um objeto JSON de strings, por isso os
// tipos de entrada precisam aceitar números e booleanos em forma de string.
// Corpo ausente, "null" ou "{}" resulta em MissingPayload.
func DecodeBody(r *http.Request, dst interface{}) error {
	var raw []byte
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			return apperr.Validation("", "malformed form body")
		}
		if len(r.PostForm) == 0 {
			return apperr.MissingPayload()
		}
		flat := make(map[string]string, len(r.PostForm))
		for k := range r.PostForm {
			flat[k] = r.PostForm.Get(k)
		}
		raw, _ = json.Marshal(flat)
	} else {
		if r.Body == nil {
			return apperr.MissingPayload()
		}
		b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return apperr.Validation("", "could not read request body")
		}
		raw = bytes.TrimSpace(b)
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || isEmptyObject(raw) {
		return apperr.MissingPayload()
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			return apperr.Validation(ute.Field, fmt.Sprintf("field %q must be %s", ute.Field, typeWord(ute.Type)))
		}
		return apperr.Validation("", "invalid JSON payload: "+err.Error())
	}
	return nil
}

func typeWord(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	}
	return "of type " + t.String()
}

func isForm(r *http.Request) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return ct == "application/x-www-form-urlencoded"
}

func isEmptyObject(raw []byte) bool {
	if len(raw) == 0 || raw[0] != '{' {
		return false
	}
	var m map[string]json.RawMessage
	return json.Unmarshal(raw, &m) == nil && len(m) == 0
}

// PathID lê o {id} da rota como uint.
func PathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation(name, "invalid id")
	}
	return uint(id), nil
}

// WriteJSON escreve body com o status informado.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteSuccess escreve {"success": true, "message": msg, ...extra}.
func WriteSuccess(w http.ResponseWriter, status int, msg string, extra map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	for k, v := range extra {
		body[k] = v
	}
	WriteJSON(w, status, body)
}

// WriteError traduz err para {"success": false, "message": ...} com o status
// do seu Kind. Erros de storage são logados com a causa, mas a resposta leva
// apenas uma mensagem genérica.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindStorage {
		logging.FromRequest(r).Error().Err(err).Msg("storage error")
	}
	WriteJSON(w, kind.HTTPStatus(), map[string]interface{}{
		"success": false,
		"message": apperr.PublicMessage(err),
	})
}
