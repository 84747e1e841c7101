// Package models reúne os modelos gorm compartilhados entre os pacotes de
// entidade, evitando ciclos de import.
package models

// All lista os modelos na ordem de migração (pais antes dos filhos).
func All() []interface{} {
	return []interface{}{
		&User{},
		&Client{},
		&Building{},
		&Office{},
		&Meeting{},
		&Internet{},
	}
}
