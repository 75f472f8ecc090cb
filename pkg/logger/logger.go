package logger

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const loggerKey ctxKey = "requestLogger"

var defaultLogger = zap.NewNop().Sugar()

// Run builds the root logger with the given level ("debug", "info",
// "warn", "error", "fatal") and makes it the process-wide fallback
// for Log calls with no request-scoped logger in the context.
func Run(level string) *zap.SugaredLogger {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.Set(level); err != nil {
			log.Printf("logger: unknown level %q, falling back to info", level)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalln("logger: can't build zap logger:", err)
	}

	defaultLogger = zapLogger.Sugar()
	return defaultLogger
}

// ToContext stores a request-scoped logger (usually enriched with a
// trace id) so handlers down the chain can pick it up with Log.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func Log(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok && l != nil {
		return l
	}
	return defaultLogger
}
