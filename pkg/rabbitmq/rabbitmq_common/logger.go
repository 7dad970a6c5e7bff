package rabbitmq_common

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger - единственная точка логирования пакета. kv - пары ключ/значение.
type Logger interface {
	Log(level Level, msg string, err error, kv ...interface{})
}

// LoggerFunc позволяет передать обычную функцию как Logger.
type LoggerFunc func(level Level, msg string, err error, kv ...interface{})

func (f LoggerFunc) Log(level Level, msg string, err error, kv ...interface{}) {
	f(level, msg, err, kv...)
}

// Discard используется, если логгер не передан.
var Discard Logger = LoggerFunc(func(Level, string, error, ...interface{}) {})
