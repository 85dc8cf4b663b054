package advising

import (
	"errors"
	"fmt"
)

// Erros específicos para geração de recomendações
var (
	ErrMissingMonthlySales    = errors.New("monthly_sales is required")
	ErrMissingProductFeatures = errors.New("product_features must have at least one item")
)

// AdviceError é um erro com contexto sobre o endpoint e o campo da requisição que o gerou
type AdviceError struct {
	Err   error  // Erro base
	Route string // Endpoint que gerou o erro
	Field string // Campo da requisição com problema
}

// Error implementa a interface error
func (e *AdviceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Route, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *AdviceError) Unwrap() error {
	return e.Err
}

// NewAdviceError cria um novo AdviceError
func NewAdviceError(err error, route string, field string) *AdviceError {
	return &AdviceError{
		Err:   err,
		Route: route,
		Field: field,
	}
}
