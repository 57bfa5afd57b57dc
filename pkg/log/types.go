package log

import "go.uber.org/zap"

// ZapConfig is the logger configuration consumed by Init.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or anything else for development
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type ctxKey string

const requestIDKey ctxKey = "request_id"
