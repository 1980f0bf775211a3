package ranging

import "errors"

var (
	// ErrUnknownQuickRange indica um atalho de período fora de 7d, 30d e month
	ErrUnknownQuickRange = errors.New("atalho de período desconhecido")
	// ErrInvalidDate indica uma data fora do formato YYYY-MM-DD
	ErrInvalidDate = errors.New("data inválida, use o formato YYYY-MM-DD")
	// ErrInvertedRange indica data inicial posterior à final
	ErrInvertedRange = errors.New("a data inicial não pode ser posterior à data final")
)
