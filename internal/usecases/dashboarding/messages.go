package dashboarding

import (
	"errors"

	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/dashboardclient"
)

const (
	MsgKPIsFailed         = "Erro ao carregar KPIs"
	MsgTimeSeriesFailed   = "Erro ao carregar série temporal"
	MsgDistributionFailed = "Erro ao carregar métodos de pagamento"
)

// MessageFor devolve a mensagem enviada pelo backend ou, na falta dela, o fallback.
// Falha de rede, status não 2xx e payload malformado não são diferenciados.
func MessageFor(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var respErr *dashboardclient.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}

	return fallback
}
