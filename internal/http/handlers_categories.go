package http

import (
	"encoding/json"
	"net/http"

	"walletalert/internal/core"
)

type createCategoryRequest struct {
	Name  string  `json:"name"`
	Emoji *string `json:"emoji"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.categories.ListCategories(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	cat, err := s.categories.CreateCategory(r.Context(), ownerID(r), req.Name, req.Emoji)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	writeJSON(w, http.StatusCreated, cat)
}

// handleUpdateCategory distinguishes an explicit null emoji (clears it) from
// a missing emoji key (rejected), so the body is decoded as raw keys first.
func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	var changes core.CategoryUpdate
	if rawEmoji, ok := raw["emoji"]; ok {
		changes.EmojiSet = true
		if err := json.Unmarshal(rawEmoji, &changes.Emoji); err != nil {
			writeValidationError(w, "Invalid emoji value")
			return
		}
	}

	cat, err := s.categories.UpdateCategory(r.Context(), ownerID(r), r.PathValue("id"), changes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := s.categories.DeleteCategory(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	writeJSON(w, http.StatusOK, cat)
}
