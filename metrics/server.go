package metrics

import (
	"context"
	"net"
	"net/http"

	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/sdk/metric"
)

var log = logging.Logger("meter/metrics")

// Server exposes the counters mirrored by Context as Prometheus metrics.
type Server struct {
	exporter   otelprom.Exporter
	httpserver http.Server
	listen     net.Listener
}

// NewServer instantiates a new server that upon start exposes the collected
// metrics as Prometheus metrics. It installs the global meter provider, so
// it must be created before any Context whose increments should be exported.
func NewServer(listenAddr string) (*Server, error) {
	listen, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}
	// Create Prometheus Exporter and register its Collector.
	exporter := otelprom.New()
	if err := prometheus.Register(exporter.Collector); err != nil {
		return nil, err
	}
	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	global.SetMeterProvider(provider)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	return &Server{
		exporter: exporter,
		httpserver: http.Server{
			Handler: mux,
		},
		listen: listen,
	}, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listen.Addr()
}

func (s *Server) Start() error {
	log.Infow("Starting metrics server", "listenAddr", s.listen.Addr())
	go func() {
		err := s.httpserver.Serve(s.listen)
		log.Infow("Stopped metrics server", "err", err)
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	var errs error
	if err := s.httpserver.Shutdown(ctx); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := s.exporter.Shutdown(ctx); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}
