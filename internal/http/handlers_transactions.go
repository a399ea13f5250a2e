package http

import (
	"net/http"
	"strings"
	"time"

	"walletalert/internal/core"
)

type createTransactionRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type updateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.transactions.ListTransactions(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	if !validAmount(req.Amount) {
		writeValidationError(w, "Amount must be a positive number")
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		writeValidationError(w, "Category is required")
		return
	}

	// Existence check runs here at the boundary; the store below records
	// whatever category name it is handed.
	if ok, err := s.categoryExists(w, r, req.Category); err != nil || !ok {
		return
	}

	var date *time.Time
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			writeValidationError(w, "Date must be YYYY-MM-DD or RFC 3339")
			return
		}
		date = &parsed
	}

	tx, err := s.transactions.CreateTransaction(r.Context(), ownerID(r), req.Amount, req.Category, date, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	s.notifyOverspend(ownerID(r))
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	var changes core.TransactionUpdate
	if req.Amount != nil {
		if !validAmount(*req.Amount) {
			writeValidationError(w, "Amount must be a positive number")
			return
		}
		changes.Amount = req.Amount
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			writeValidationError(w, "Category is required")
			return
		}
		// Moving a transaction to another category re-runs the existence
		// check against the current collection.
		if ok, err := s.categoryExists(w, r, *req.Category); err != nil || !ok {
			return
		}
		changes.Category = req.Category
	}
	if req.Date != nil {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			writeValidationError(w, "Date must be YYYY-MM-DD or RFC 3339")
			return
		}
		changes.Date = &parsed
	}
	changes.Description = req.Description

	tx, err := s.transactions.UpdateTransaction(r.Context(), ownerID(r), r.PathValue("id"), changes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	s.notifyOverspend(ownerID(r))
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.transactions.DeleteTransaction(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	writeJSON(w, http.StatusOK, tx)
}

// categoryExists writes the response itself on failure so callers can just
// bail out.
func (s *Server) categoryExists(w http.ResponseWriter, r *http.Request, name string) (bool, error) {
	ok, err := s.categories.CategoryExists(r.Context(), ownerID(r), name)
	if err != nil {
		writeError(w, r, err)
		return false, err
	}
	if !ok {
		writeValidationError(w, "Category does not exist")
		return false, nil
	}
	return true, nil
}
