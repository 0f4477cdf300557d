package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mgvaldez/clinicajuridica-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Cases       *CaseHandler
	Authz       *AuthzHandler
	Maintenance *MaintenanceHandler
	Health      *HealthHandler
	Metrics     *middleware.HTTPMetrics
	Registry    *prometheus.Registry
	Middleware  []middleware.Middleware
}

// NewRouter builds the HTTP routing table. Every /api route is
// instrumented with the registered pattern as the metrics route label;
// probes and /metrics stay uninstrumented.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, deps.Metrics.Instrument(pattern, h))
	}

	handle("POST /api/v1/cases", deps.Cases.OpenCase)
	handle("GET /api/v1/cases/{number}", deps.Cases.GetCase)
	handle("POST /api/v1/cases/{number}/status", deps.Cases.ChangeStatus)
	handle("GET /api/v1/cases/{number}/status", deps.Cases.CurrentStatus)
	handle("GET /api/v1/cases/{number}/history", deps.Cases.StatusHistory)
	handle("POST /api/v1/cases/{number}/assignments", deps.Cases.AssignPerson)
	handle("GET /api/v1/cases/{number}/assignments", deps.Cases.ActiveAssignees)
	handle("POST /api/v1/cases/{number}/assignments/repair", deps.Cases.RepairAssignments)
	handle("DELETE /api/v1/assignments/{id}", deps.Cases.DeactivateAssignment)
	handle("GET /api/v1/statuses", deps.Cases.ListStatuses)

	handle("POST /api/v1/authz/evaluate", deps.Authz.Evaluate)

	handle("POST /api/v1/maintenance/stalled-scan", deps.Maintenance.StalledScan)
	handle("DELETE /api/v1/maintenance/stalled-flags/{number}/{status}", deps.Maintenance.AcknowledgeStalledFlag)
	handle("GET /api/v1/audit/{entity_type}/{entity_id}", deps.Maintenance.AuditTrail)

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /live", deps.Health.Live)

	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return middleware.Chain(deps.Middleware...)(mux)
}
