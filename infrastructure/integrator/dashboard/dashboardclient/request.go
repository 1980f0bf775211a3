package dashboardclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	dashboarddomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/domain"
)

// maxErrorBody limita a leitura do corpo de respostas de erro
const maxErrorBody = 64 << 10

// ResponseError representa uma resposta fora da faixa 2xx
type ResponseError struct {
	StatusCode int
	Status     string
	// Message é a mensagem enviada pelo backend, vazia quando não houver
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("requisição falhou com status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

func (c *DashboardClient) get(ctx context.Context, resource string, params QueryParams, out any) error {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	// Parâmetros vazios não são enviados.
	query := endpoint.Query()
	if params.From != "" {
		query.Set("from", params.From)
	}
	if params.To != "" {
		query.Set("to", params.To)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logrus.WithFields(logrus.Fields{
		"url": endpoint.String(),
	}).Debug("dashboardclient: executando requisição")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newResponseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

func newResponseError(resp *http.Response) *ResponseError {
	respErr := &ResponseError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		return respErr
	}

	var errBody dashboarddomain.ErrorBody
	if err := json.Unmarshal(body, &errBody); err != nil {
		return respErr
	}

	respErr.Message = errorMessage(errBody)
	return respErr
}

// errorMessage aceita {"message": "..."} e {"error": {"message": "..."}}
func errorMessage(body dashboarddomain.ErrorBody) string {
	if msg, ok := body.Message.(string); ok && strings.TrimSpace(msg) != "" {
		return msg
	}

	switch nested := body.Error.(type) {
	case map[string]any:
		if msg, ok := nested["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	case string:
		if strings.TrimSpace(nested) != "" {
			return nested
		}
	}

	return ""
}
