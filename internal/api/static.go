package api

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexPage []byte

// index serves the embedded landing page.
func index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}
