package http

import "net/http"

// HealthStatus is constructed fresh per request, never persisted.
type HealthStatus struct {
	OK bool `json:"ok"`
}

// HandleHealth reports process liveness. Intentionally shallow: it does not
// touch the store, so it answers even when the database is down.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthStatus{OK: true})
}
