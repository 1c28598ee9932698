package errors

import (
	"errors"
	"fmt"
)

// Kind classifica um erro de domínio para que a camada HTTP
// escolha o status sem inspecionar a mensagem
type Kind int

const (
	KindStorage Kind = iota
	KindNotFound
	KindDuplicateName
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDuplicateName:
		return "duplicate_name"
	case KindValidation:
		return "validation"
	default:
		return "storage"
	}
}

// Sentinelas por tipo, usadas com errors.Is
var (
	ErrCharacterNotFound  = errors.New("error.character_not_found")
	ErrCharacterNameTaken = errors.New("error.character_name_taken")
	ErrValidation         = errors.New("error.validation")
	ErrStorage            = errors.New("error.storage")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Kind    Kind
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil && e.Kind == KindStorage {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrCharacterNotFound) e afins
func (e *DomainError) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindNotFound:
		return ErrCharacterNotFound
	case KindDuplicateName:
		return ErrCharacterNameTaken
	case KindValidation:
		return ErrValidation
	default:
		return ErrStorage
	}
}

// NotFound cria um erro de recurso inexistente
func NotFound(format string, args ...any) *DomainError {
	return &DomainError{
		Kind:    KindNotFound,
		Type:    ProblemTypeNotFound,
		Title:   "Not Found",
		Message: fmt.Sprintf(format, args...),
	}
}

// DuplicateName cria um erro de conflito de nome
func DuplicateName(name string) *DomainError {
	return &DomainError{
		Kind:    KindDuplicateName,
		Type:    ProblemTypeConflict,
		Title:   "Conflict",
		Message: fmt.Sprintf("A character with the name '%s' already exists", name),
	}
}

// Validation cria um erro de validação a partir de uma causa.
// A causa fica acessível via errors.Is; a mensagem é o texto dela.
func Validation(cause error) *DomainError {
	return &DomainError{
		Kind:    KindValidation,
		Type:    ProblemTypeValidation,
		Title:   "Bad Request",
		Message: cause.Error(),
		Err:     cause,
	}
}

// Storage embrulha uma falha do banco preservando a causa
func Storage(message string, cause error) *DomainError {
	return &DomainError{
		Kind:    KindStorage,
		Type:    ProblemTypeInternal,
		Title:   "Internal Server Error",
		Message: message,
		Err:     cause,
	}
}

// KindOf extrai o Kind de err; erros não classificados são KindStorage
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

// MessageOf retorna a mensagem legível de err sem a causa embrulhada
func MessageOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
