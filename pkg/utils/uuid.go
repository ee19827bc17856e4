package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera IDs curtos para registros do banco
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// NewRecordID gera o identificador de transações e investimentos gravados nas planilhas
func NewRecordID() string {
	return uuid.NewString()
}
