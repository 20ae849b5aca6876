// Package zap adapts go.uber.org/zap to the internal/logger.Logger
// interface, the way KoordeDHT's cmd/node/main.go constructs one via
// zapfactory.New(cfg) and wraps it with NewZapAdapter before handing it
// to the rest of the program as a plain logger.Logger. The concrete
// adapter file was not present in the retrieval pack; this is
// reconstructed from that call-site usage.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oisee/bigradix/internal/logger"
)

// Config controls construction of the underlying zap.Logger. Loaded as
// part of the harness YAML config (internal/config).
type Config struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	OutputPath string `yaml:"output_path"`
}

// New builds a *zap.Logger from Config, defaulting to an info-level,
// console-encoded logger writing to stderr when fields are left zero.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	output := cfg.OutputPath
	if output == "" {
		output = "stderr"
	}
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

// Adapter wraps a *zap.Logger to satisfy logger.Logger.
type Adapter struct {
	z *zap.Logger
}

// NewZapAdapter wraps an already-constructed *zap.Logger.
func NewZapAdapter(z *zap.Logger) *Adapter {
	return &Adapter{z: z}
}

func toZapFields(fields []logger.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

func (a *Adapter) Debug(msg string, fields ...logger.Field) {
	a.z.Debug(msg, toZapFields(fields)...)
}

func (a *Adapter) Info(msg string, fields ...logger.Field) {
	a.z.Info(msg, toZapFields(fields)...)
}

func (a *Adapter) Warn(msg string, fields ...logger.Field) {
	a.z.Warn(msg, toZapFields(fields)...)
}

func (a *Adapter) Error(msg string, fields ...logger.Field) {
	a.z.Error(msg, toZapFields(fields)...)
}

func (a *Adapter) Named(name string) logger.Logger {
	return &Adapter{z: a.z.Named(name)}
}

// Sync flushes any buffered log entries, mirroring the
// `defer zapLog.Sync()` pattern at the KoordeDHT call site.
func (a *Adapter) Sync() error {
	return a.z.Sync()
}
