package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Autenticação
	ErrInvalidToken = "AUTH_006" // Token inválido

	// Validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidRange   = "VAL_002" // Período inválido
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Recursos
	ErrChartNotRendered = "NOT_001" // Gráfico ainda não renderizado
	ErrUnknownSlot      = "NOT_002" // Slot de gráfico inexistente
	ErrNotFound         = "NOT_003" // Rota inexistente
	ErrMethodNotAllowed = "NOT_004" // Método não permitido

	// Servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro no backend de vendas
	ErrTimeout         = "SRV_005" // Tempo de espera esgotado
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:     http.StatusUnauthorized,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrInvalidRange:     http.StatusBadRequest,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrChartNotRendered: http.StatusNotFound,
	ErrUnknownSlot:      http.StatusNotFound,
	ErrNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrExternalService:  http.StatusBadGateway,
	ErrTimeout:          http.StatusGatewayTimeout,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

// StatusFor devolve o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
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
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
