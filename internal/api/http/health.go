package http

import (
	"context"
	"net/http"
	"time"
)

type HealthHandler struct {
	checks    map[string]Pinger
	startTime time.Time
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks, startTime: time.Now()}
}

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Checks    map[string]Check `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health is a liveness check; it never touches a dependency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks:    map[string]Check{"process": {Status: "UP"}},
	})
}

// Ready pings every dependency and answers 503 if any is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	httpStatus := http.StatusOK
	checks := make(map[string]Check, len(h.checks))

	for name, pinger := range h.checks {
		if pinger == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		err := pinger.Ping(ctx)
		cancel()
		if err != nil {
			checks[name] = Check{Status: "DOWN", Message: err.Error()}
			status = "DOWN"
			httpStatus = http.StatusServiceUnavailable
			continue
		}
		checks[name] = Check{Status: "UP"}
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks:    checks,
	})
}
