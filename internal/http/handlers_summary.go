package http

import (
	"net/http"
	"time"
)

// handleSummary serves the per-owner dashboard rollup, cached for a few
// minutes and invalidated on every write.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)

	if summary, ok := s.summaryCache.Get(owner); ok {
		writeJSON(w, http.StatusOK, summary)
		return
	}

	summary, err := s.spending.Summary(r.Context(), owner, time.Now())
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.summaryCache.Set(owner, summary)
	writeJSON(w, http.StatusOK, summary)
}
