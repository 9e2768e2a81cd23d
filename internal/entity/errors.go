package entity

import "errors"

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrEmailAlreadyInUse = errors.New("já existe um cliente com este email")
)
