package core_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"wanderdex/internal/config"
	"wanderdex/internal/infra"
	"wanderdex/pkg/middleware"
)

// Module provides configuration, the root logger and the metrics registry.
var Module = fx.Provide(
	config.Load,
	infra.NewLogger,
	provideRegistry,
	func(r *prometheus.Registry) prometheus.Registerer { return r },
	func(r *prometheus.Registry) prometheus.Gatherer { return r },
	middleware.NewHTTPMetrics,
)

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
