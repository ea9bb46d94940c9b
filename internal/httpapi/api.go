package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/rimrim990/delivery-service/internal/auth"
	"github.com/rimrim990/delivery-service/internal/delivery"
	"github.com/rimrim990/delivery-service/internal/obs"
)

// ReadyProbe answers readiness checks. A nil DB reports ready, which keeps
// in-memory deployments and tests simple.
type ReadyProbe struct {
	DB *sql.DB
}

func (p ReadyProbe) Check(ctx context.Context) error {
	if p.DB == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.DB.PingContext(ctx)
}

// API wires the HTTP surface: auth endpoints, shop and order endpoints, and
// the operational probes.
type API struct {
	mux      *http.ServeMux
	auth     *auth.Service
	delivery *delivery.Service
	ready    ReadyProbe
	version  string
}

func New(authSvc *auth.Service, deliverySvc *delivery.Service, ready ReadyProbe, version string) *API {
	a := &API{
		mux:      http.NewServeMux(),
		auth:     authSvc,
		delivery: deliverySvc,
		ready:    ready,
		version:  version,
	}
	a.mux.HandleFunc("/api/auth/login", a.handleLogin)
	a.mux.HandleFunc("/api/auth/reissue", a.handleReissue)
	a.mux.HandleFunc("/api/auth/register", a.handleRegister)
	a.mux.HandleFunc("/api/shops", a.handleShops)
	a.mux.HandleFunc("/api/shops/", a.handleShopSubtree)
	a.mux.HandleFunc("/api/orders", a.handleOrders)
	a.mux.HandleFunc("/api/orders/", a.handleOrderByID)
	a.mux.HandleFunc("/healthz", a.handleHealthz)
	a.mux.HandleFunc("/readyz", a.handleReadyz)
	a.mux.Handle("/metrics", obs.Handler())
	return a
}

// Handler returns the full middleware chain. The authentication pipeline
// runs before the role gate so the gate always sees the resolved principal.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.requireRole(h)
	h = a.withAuth(h)
	h = obs.Instrument(h)
	h = RateLimit(h, 50, 25)
	h = MaxBodyBytes(h, 1<<20)
	h = SecurityHeaders(h)
	h = LoggingJSON(h)
	h = RequestID(h)
	return h
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": a.version,
	})
}

func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if err := a.ready.Check(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
