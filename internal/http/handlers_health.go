package httpx

import "net/http"

// healthHandler reports process liveness. Dependency health is left to the
// orchestrator's own probes.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
