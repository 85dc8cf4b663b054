// Package request decodifica e valida corpos JSON das requisições HTTP
package request

import (
	"bytes"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrPayloadTooLarge     = errors.New("corpo da requisição acima do limite")
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Usa o nome do campo JSON nas mensagens de validação
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError descreve a falha de validação de um campo
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError agrupa as falhas de validação de uma requisição
type ValidationError struct {
	Err    error
	Fields []FieldError
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return e.Err.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap retorna o erro base (ErrMissingRequiredData ou ErrInvalidRequest)
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Decode lê o corpo JSON em dst, aplica os valores padrão (tag default) e valida (tag validate).
// Corpo vazio ou campos obrigatórios ausentes resultam em ErrMissingRequiredData.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrMissingRequiredData
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errors.Wrapf(ErrPayloadTooLarge, "limite de %d bytes", maxBytesErr.Limit)
		}
		return errors.Wrap(err, "erro ao ler corpo da requisição")
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return ErrMissingRequiredData
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.Wrap(ErrInvalidFormat, err.Error())
	}

	if err := defaults.Set(dst); err != nil {
		return errors.Wrap(err, "erro ao aplicar valores padrão")
	}

	if err := validate.StructCtx(r.Context(), dst); err != nil {
		return validationError(err)
	}

	return nil
}

// Fields extrai os detalhes de campo de um erro retornado por Decode
func Fields(err error) []FieldError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}

func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(ErrInvalidRequest, err.Error())
	}

	base := ErrInvalidRequest
	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			base = ErrMissingRequiredData
		}
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: errorMessage(fe),
		})
	}

	return &ValidationError{Err: base, Fields: fields}
}

func errorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must have at least " + fe.Param() + " item(s)"
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	default:
		return field + " failed validation: " + fe.Tag()
	}
}
