package http

import (
	"net/http"

	"walletalert/internal/core"
)

type createBudgetRequest struct {
	Period     string   `json:"period"`
	Amount     float64  `json:"amount"`
	Categories []string `json:"categories"`
}

type updateBudgetRequest struct {
	Period     *string   `json:"period"`
	Amount     *float64  `json:"amount"`
	Categories *[]string `json:"categories"`
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.ListBudgets(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	period, ok := core.ParsePeriod(req.Period)
	if !ok {
		writeValidationError(w, "Period must be weekly or monthly")
		return
	}
	if !validAmount(req.Amount) {
		writeValidationError(w, "Amount must be a positive number")
		return
	}

	budget, err := s.budgets.CreateBudget(r.Context(), ownerID(r), period, req.Amount, req.Categories)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	writeJSON(w, http.StatusCreated, budget)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	var changes core.BudgetUpdate
	if req.Period != nil {
		period, ok := core.ParsePeriod(*req.Period)
		if !ok {
			writeValidationError(w, "Period must be weekly or monthly")
			return
		}
		changes.Period = &period
	}
	if req.Amount != nil {
		if !validAmount(*req.Amount) {
			writeValidationError(w, "Amount must be a positive number")
			return
		}
		changes.Amount = req.Amount
	}
	changes.Categories = req.Categories

	budget, err := s.budgets.UpdateBudget(r.Context(), ownerID(r), r.PathValue("id"), changes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := s.budgets.DeleteBudget(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummary(ownerID(r))
	writeJSON(w, http.StatusOK, budget)
}
