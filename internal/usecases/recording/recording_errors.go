package recording

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation é o erro base de toda falha de validação de entrada
var ErrValidation = errors.New("validation failed")

// FieldError descreve o problema encontrado em um campo da requisição
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrega os erros de campo de uma requisição
type ValidationError struct {
	Details []FieldError
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		messages = append(messages, fmt.Sprintf("%s: %s", d.Field, d.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(messages, "; "))
}

// Unwrap retorna o erro base
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) add(field, message string) {
	e.Details = append(e.Details, FieldError{Field: field, Message: message})
}

// errOrNil evita devolver um *ValidationError nil dentro de uma interface error
func (e *ValidationError) errOrNil() error {
	if len(e.Details) == 0 {
		return nil
	}
	return e
}
