package recording

import (
	"errors"
	"fmt"
)

// Erros dos cadastros
var (
	// Erros de validação
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownReference = errors.New("referenced record not found")

	// Erros de recurso
	ErrNotFound = errors.New("record not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating ID")
)

// RecordError é um erro com contexto adicional para um registro
type RecordError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	Resource string // Tipo do registro (client, project...)
	ID       string // ID do registro envolvido (quando aplicável)
	Details  any    // Detalhes adicionais
}

func (e *RecordError) Error() string {
	msg := e.Err.Error()
	if e.Resource != "" {
		msg = e.Resource + ": " + msg
	}
	if e.ID != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.ID)
	}
	if s, ok := e.Details.(string); ok && s != "" {
		msg = msg + ": " + s
	}
	return msg
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecordError(err error, code, resource string, details any) *RecordError {
	return &RecordError{
		Err:      err,
		Code:     code,
		Resource: resource,
		Details:  details,
	}
}

func NewRecordErrorWithID(err error, code, resource, id string, details any) *RecordError {
	return &RecordError{
		Err:      err,
		Code:     code,
		Resource: resource,
		ID:       id,
		Details:  details,
	}
}
