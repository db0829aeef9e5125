package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// idParam returns the {id} path parameter. Identifier syntax is the store's
// concern: a malformed id is simply not found.
func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}
