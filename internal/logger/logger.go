// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for structured logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/oknozor/conversion-api/internal/config"
)

// LoggerService owns the New Relic application instance. When no license key
// is configured the application stays nil and every integration point
// degrades to a no-op.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic application when a license key
// is configured. Without one it returns a service whose GetApplication
// returns nil, which the rest of the stack treats as "telemetry off".
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	nrCfg := cfg.Observability.NewRelic
	if nrCfg.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nrCfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(nrCfg.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(nrCfg.AppLogForwardingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"environment": cfg.Observability.Environment}
		},
	}
	if nrCfg.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic application: %w", err)
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when telemetry is
// disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.app
}

// Shutdown flushes buffered telemetry before exit. Safe to call when
// telemetry is disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if app := ls.GetApplication(); app != nil {
		app.Shutdown(timeout)
	}
}

// New builds the application's base logger from observability config.
//
// Format "console" writes human-friendly output to stderr; "json" writes one
// JSON object per line to stdout. Production forces json so log pipelines
// never receive console output. When New Relic log forwarding is active,
// stdout goes through the agent's zerolog writer so log lines are decorated
// with trace linking metadata.
func New(cfg *config.Config, loggerService *LoggerService) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	format := cfg.Observability.Logging.Format
	if cfg.Observability.IsProduction() {
		format = "json"
	}

	var log zerolog.Logger
	app := loggerService.GetApplication()
	switch {
	case format == "console":
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	case app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled:
		log = zerolog.New(zerologWriter.New(os.Stdout, app))
	default:
		log = zerolog.New(os.Stdout)
	}

	return log.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("environment", cfg.Observability.Environment).
		Logger()
}

// WithTraceContext returns a child logger carrying the transaction's trace
// and span ids so log lines can be correlated with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()
	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
