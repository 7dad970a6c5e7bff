package port

// Fields - структурированные поля записи лога.
type Fields map[string]interface{}

// LoggerPort - логгер, которым пользуются ядро и адаптеры портала.
// Реализации: stdout (slog/tint), Fluent Bit и их комбинация.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	WithFields(fields Fields) LoggerPort
}

// NopLogger ничего не пишет. Подставляется, когда в контексте нет логгера.
type NopLogger struct{}

func (NopLogger) Info(string, Fields)         {}
func (NopLogger) Warn(string, Fields)         {}
func (NopLogger) Error(string, error, Fields) {}
func (NopLogger) Debug(string, Fields)        {}

func (n NopLogger) WithFields(Fields) LoggerPort { return n }
