package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

const (
	msgAPIRunning       = "Todo API is running!"
	msgMethodNotAllowed = "Method not allowed"
)

// IndexResponse is the body of GET /.
type IndexResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index handles GET / with a short service directory.
func Index(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, IndexResponse{
		Success: true,
		Message: msgAPIRunning,
		Endpoints: map[string]string{
			"health": "/health",
			"todos":  "/api/todos",
		},
	})
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteFailure(w, r, http.StatusNotFound, "Route "+r.URL.RequestURI()+" not found")
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteFailure(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
