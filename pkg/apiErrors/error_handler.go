package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadTooLarge     = "VAL_004" // Corpo da requisição acima do limite

	// Erros de roteamento
	ErrNotFound         = "RT_001" // Endpoint não encontrado
	ErrMethodNotAllowed = "RT_002" // Método não permitido

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado.
// O campo "error" mantém o formato {"error": "..."} esperado pelos clientes.
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"error"`             // Mensagem descritiva
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
