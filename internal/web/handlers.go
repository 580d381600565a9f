package web

import (
	"encoding/json"
	"net/http"

	"github.com/tripscout/trip-scout/internal/geo"
	"github.com/tripscout/trip-scout/internal/model"
)

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var recs []model.Recommendation
	var err error

	if q := r.URL.Query().Get("continent"); q != "" {
		recs, err = s.Store.ByContinent(geo.ResolveContinent(q))
	} else {
		recs, err = s.Store.All()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if recs == nil {
		recs = []model.Recommendation{}
	}
	writeJSON(w, recs)
}

func (s *Server) handleContinents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Store.CountByContinent())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS — this is a local tool, not a public API.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
