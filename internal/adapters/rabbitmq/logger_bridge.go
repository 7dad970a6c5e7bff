package rabbitmq

import (
	"listing-portal/internal/core/port"
	"listing-portal/pkg/rabbitmq/rabbitmq_common"
)

// NewPkgLogger направляет логи пакета rabbitmq в LoggerPort портала.
func NewPkgLogger(logger port.LoggerPort) rabbitmq_common.Logger {
	return rabbitmq_common.LoggerFunc(func(level rabbitmq_common.Level, msg string, err error, kv ...interface{}) {
		fields := pairsToFields(kv)
		switch level {
		case rabbitmq_common.LevelError:
			logger.Error(msg, err, fields)
		case rabbitmq_common.LevelWarn:
			logger.Warn(msg, fields)
		case rabbitmq_common.LevelInfo:
			logger.Info(msg, fields)
		default:
			logger.Debug(msg, fields)
		}
	})
}

// pairsToFields: нечетный хвост и нестроковые ключи отбрасываются.
func pairsToFields(kv []interface{}) port.Fields {
	if len(kv) < 2 {
		return nil
	}
	fields := make(port.Fields, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			fields[key] = kv[i+1]
		}
	}
	return fields
}
