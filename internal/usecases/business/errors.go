// Package business define os erros compartilhados pelos casos de uso
package business

import (
	"errors"
	"fmt"

	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrInvalidInput      = errors.New("dados inválidos")
	ErrMissingData       = errors.New("dados obrigatórios ausentes")
	ErrRuleViolation     = errors.New("regra de negócio violada")
	ErrConflict          = errors.New("registro em estado incompatível")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrExternalService   = errors.New("erro em serviço externo")
)

// BusinessError carrega o código da API junto do erro base
type BusinessError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *BusinessError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func New(baseErr error, code string, details string) *BusinessError {
	return &BusinessError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NotFound(details string) *BusinessError {
	return New(ErrNotFound, apiErrors.ErrResourceNotFound, details)
}

func Invalid(details string) *BusinessError {
	return New(ErrInvalidInput, apiErrors.ErrInvalidFormat, details)
}

func Missing(details string) *BusinessError {
	return New(ErrMissingData, apiErrors.ErrMissingRequiredData, details)
}

func Rule(details string) *BusinessError {
	return New(ErrRuleViolation, apiErrors.ErrBusinessRule, details)
}

func Conflict(details string) *BusinessError {
	return New(ErrConflict, apiErrors.ErrResourceConflict, details)
}

// Database envolve um erro de repositório. ErrNotFound do repositório vira NotFound.
func Database(err error, details string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(details)
	}
	return &BusinessError{
		Err:     fmt.Errorf("%w: %v", ErrDatabaseOperation, err),
		Code:    apiErrors.ErrDatabaseOperation,
		Details: details,
	}
}

func External(err error, details string) error {
	return &BusinessError{
		Err:     fmt.Errorf("%w: %v", ErrExternalService, err),
		Code:    apiErrors.ErrExternalService,
		Details: details,
	}
}

// CodeOf retorna o código da API associado ao erro, ou erro interno
func CodeOf(err error) string {
	var businessErr *BusinessError
	if errors.As(err, &businessErr) {
		return businessErr.Code
	}
	return apiErrors.ErrInternalServer
}
