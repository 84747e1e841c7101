// Package patch implementa as allow-lists tipadas de atualização: cada entidade
// declara o conjunto fechado de colunas que um update pode alterar e o tipo de
// cada uma.
package patch

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/salestrack/sales-api/internal/apperr"
	"gorm.io/datatypes"
)

type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
	Date
)

// Field descreve uma coluna atualizável.
type Field struct {
	Kind     Kind
	NonEmpty bool
	Min      *float64
}

// AllowList mapeia a chave do payload (que também é o nome da coluna) para o Field.
type AllowList map[string]Field

// Columns são as colunas já validadas, prontas para o Updates do gorm.
type Columns map[string]interface{}

// ErrNoFields é devolvido quando o payload não traz nenhuma chave permitida.
var ErrNoFields = apperr.Validation("", "No valid fields provided for update")

// Apply filtra input pela allow-list e converte cada valor para o tipo
// declarado. Chaves desconhecidas são ignoradas; sem nenhuma chave permitida o
// input é rejeitado.
func (a AllowList) Apply(input map[string]interface{}) (Columns, error) {
	keys := make([]string, 0, len(input))
	for k := range input {
		if _, ok := a[k]; ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, ErrNoFields
	}
	sort.Strings(keys)

	out := make(Columns, len(keys))
	for _, k := range keys {
		v, err := a[k].convert(k, input[k])
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func (f Field) convert(name string, raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, apperr.Validation(name, fmt.Sprintf("field %q cannot be null", name))
	}
	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, typeErr(name, "a string")
		}
		if f.NonEmpty && strings.TrimSpace(s) == "" {
			return nil, apperr.Validation(name, fmt.Sprintf("field %q cannot be empty", name))
		}
		return s, nil
	case Int:
		n, err := ToInt(raw)
		if err != nil {
			return nil, typeErr(name, "an integer")
		}
		if f.Min != nil && float64(n) < *f.Min {
			return nil, minErr(name, *f.Min)
		}
		return n, nil
	case Float:
		n, err := ToFloat(raw)
		if err != nil {
			return nil, typeErr(name, "a number")
		}
		if f.Min != nil && n < *f.Min {
			return nil, minErr(name, *f.Min)
		}
		return n, nil
	case Bool:
		b, err := ToBool(raw)
		if err != nil {
			return nil, typeErr(name, "a boolean")
		}
		return b, nil
	case Date:
		s, ok := raw.(string)
		if !ok {
			return nil, typeErr(name, "a date (YYYY-MM-DD)")
		}
		d, err := ParseDate(s)
		if err != nil {
			return nil, typeErr(name, "a date (YYYY-MM-DD)")
		}
		return d, nil
	}
	return nil, fmt.Errorf("patch: unknown kind %d", f.Kind)
}

// NonNegative é o Min usado em contagens e preços.
func NonNegative() *float64 {
	z := 0.0
	return &z
}

func typeErr(name, want string) error {
	return apperr.Validation(name, fmt.Sprintf("field %q must be %s", name, want))
}

func minErr(name string, min float64) error {
	return apperr.Validation(name, fmt.Sprintf("field %q must be >= %v", name, min))
}

// ToInt aceita números JSON, json.Number e strings (formulários). As colunas
// são int4 no postgres, então valores fora de int32 são rejeitados.
func ToInt(raw interface{}) (int, error) {
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, err
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, err
		}
		n = i
	default:
		return 0, fmt.Errorf("not an integer: %T", raw)
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("integer out of range: %d", n)
	}
	return int(n), nil
}

func ToFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseFloat(s, 64)
	}
	return 0, fmt.Errorf("not a number: %T", raw)
}

func ToBool(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case json.Number:
		f, err := v.Float64()
		return f != 0, err
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on", "y":
			return true, nil
		case "false", "0", "no", "off", "n", "":
			return false, nil
		}
	}
	return false, fmt.Errorf("not a boolean: %v", raw)
}

// ParseDate aceita YYYY-MM-DD ou RFC 3339 (o front envia os dois).
func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return datatypes.Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
}
