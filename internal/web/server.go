package web

import (
	"fmt"
	"net/http"

	"github.com/tripscout/trip-scout/internal/store"
)

// Server serves the read-only recommendation API.
type Server struct {
	Store *store.Store
	Addr  string
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/recommendations", s.handleRecommendations)
	mux.HandleFunc("/api/continents", s.handleContinents)

	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, mux)
}
