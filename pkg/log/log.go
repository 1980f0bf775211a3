package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é a fachada de log usada pelos pacotes do dashboard
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey é a chave do ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// CorrelationIDHeader devolve o ID de correlação ao cliente
const CorrelationIDHeader = "X-Correlation-ID"

// devFields são os campos mantidos em desenvolvimento; o resto é descartado
var devFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"query":            true,
	"generation":       true,
	"slot":             true,
	"items":            true,
	"status":           true,
}

type logger struct {
	entry *logrus.Entry
}

// L é a instância global
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup configura o logrus global com o nível informado. Nível inválido cai
// para info e é devolvido como false.
func Setup(level string) bool {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
		PadLevelText:    true,
	})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	valid := err == nil
	if !valid {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	return valid
}

func keep(key string) bool {
	return !IsDevelopment() || devFields[key] || strings.HasPrefix(key, "chart_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if !keep(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	relevant := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keep(k) {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext anexa o ID de correlação do contexto, se houver
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}
	return l
}

func (l *logger) Debug(args ...interface{}) { l.entry.Debug(args...) }

func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *logger) Info(args ...interface{}) { l.entry.Info(args...) }

func (l *logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *logger) Warn(args ...interface{}) { l.entry.Warn(args...) }

func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *logger) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// WithCorrelationID reaproveita o ID recebido ou gera um novo
func WithCorrelationID(ctx context.Context, incoming ...string) (context.Context, string) {
	correlationID := ""
	if len(incoming) > 0 {
		correlationID = strings.TrimSpace(incoming[0])
	}
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
