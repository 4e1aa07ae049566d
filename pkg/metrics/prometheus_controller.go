package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/churnai/churnai/pkg/server"
)

const defaultPath = "/debug/prometheus"

// PrometheusController exposes the import pipeline's counters (the
// churn_import_* series) for scraping. Mounted only when
// PROMETHEUS_METRICS_ENABLED is set.
type PrometheusController struct {
	path string
}

func NewPrometheusController(path string) server.Controller {
	if path == "" {
		path = defaultPath
	}
	return &PrometheusController{path: path}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.Handler()).Methods(http.MethodGet)
}
