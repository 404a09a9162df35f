package handlers

import "net/http"

// Health handles GET /health for load balancer probes.
func Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
