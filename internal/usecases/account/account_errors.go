package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de restaurantes e membros
var (
	// Erros de validação
	ErrRestaurantIDRequired = errors.New("restaurant ID is required")
	ErrRestaurantNotFound   = errors.New("restaurant not found")
	ErrInvalidSettings      = errors.New("invalid restaurant settings")
	ErrInvalidRole          = errors.New("invalid member role")
	ErrUserNotFound         = errors.New("user not found")
	ErrLastOwner            = errors.New("restaurant must keep at least one owner")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	ErrGenerateID = errors.New("error generating restaurant code")
)

// AccountError é um erro com contexto adicional para restaurantes
type AccountError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	RestaurantID string // Restaurante envolvido (quando aplicável)
	Details      string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAccountErrorWithID(err error, code string, restaurantID string, details string) *AccountError {
	return &AccountError{
		Err:          err,
		Code:         code,
		RestaurantID: restaurantID,
		Details:      details,
	}
}
