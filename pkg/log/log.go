package log

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é uma interface que define os métodos de log
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
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type contextKey string

const (
	// CorrelationIDKey é a chave para armazenar o ID de correlação no contexto
	CorrelationIDKey contextKey = "correlation_id"
	// RequestIDKey é a chave para armazenar o ID curto da requisição no contexto
	RequestIDKey contextKey = "request_id"

	correlationIDField = "correlation_id"
	requestIDField     = "request_id"
)

// Campos mantidos em desenvolvimento; os demais são omitidos para logs mais limpos
var devFields = map[string]bool{
	correlationIDField: true,
	requestIDField:     true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"trend":            true,
	"momentum":         true,
}

// logger implementa a interface Logger e encapsula logrus
type logger struct {
	entry *logrus.Entry
}

// L é uma instância global de Logger para uso direto
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// SetOutput redireciona a saída do logger global
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

func keepField(key string) bool {
	return devFields[key] || strings.HasPrefix(key, "sales_")
}

// WithField adiciona um único campo ao Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !keepField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields adiciona múltiplos campos ao Logger
func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	relevant := make(logrus.Fields)
	for k, v := range fields {
		if keepField(k) {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

// WithError adiciona um erro ao Logger
func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extrai os IDs de correlação e de requisição do contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := Fields{}
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		fields[correlationIDField] = correlationID
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		fields[requestIDField] = requestID
	}
	if len(fields) == 0 {
		return l
	}

	return l.WithFields(fields)
}

func (l *logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *logger) Fatal(args ...interface{})                 { l.entry.Fatal(args...) }
func (l *logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithRequestID adiciona o ID curto da requisição ao contexto
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID obtém o ID curto da requisição do contexto
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// ForContext cria um logger com os IDs do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
