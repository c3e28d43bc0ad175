package logging

import (
	"log/slog"
	"os"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

// NewHandler returns a text handler for dev and a JSON handler for
// everything else, tagged with the service identity.
func NewHandler(level slog.Level, env Environment, info ServiceInfo) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == EnvDev {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	attrs := []slog.Attr{
		slog.String("service", info.Name),
	}
	if info.Version != "" {
		attrs = append(attrs, slog.String("version", info.Version))
	}
	if info.Revision != "" {
		attrs = append(attrs, slog.String("revision", info.Revision))
	}

	return handler.WithAttrs(attrs)
}
