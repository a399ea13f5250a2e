package http

import (
	"net/http"

	"walletalert/internal/core"
)

type upsertUserRequest struct {
	Email string `json:"email"`
}

// handleUpsertUser creates the owner's user record on first call and
// refreshes the email on subsequent ones.
func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var req upsertUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	user, created, err := s.users.UpsertUser(r.Context(), ownerID(r), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetUser(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if user == nil {
		writeError(w, r, core.NewNotFoundError("user not found"))
		return
	}
	writeJSON(w, http.StatusOK, user)
}
