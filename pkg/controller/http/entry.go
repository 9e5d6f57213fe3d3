package http

import (
	"net/http"

	"github.com/secmon-lab/curbside/pkg/domain/model"
)

type entryListResponse struct {
	Days []model.DaySummary `json:"days"`
}

type actionListResponse struct {
	Actions []model.ActionInfo `json:"actions"`
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	days, err := s.uc.Entry.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, entryListResponse{Days: days})
}

func (s *Server) logEntry(w http.ResponseWriter, r *http.Request) {
	day, action, err := decodeEntryRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if _, err := s.uc.Entry.Log(r.Context(), day, action); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, okResponse{OK: true})
}

func (s *Server) toggleEntry(w http.ResponseWriter, r *http.Request) {
	day, action, err := decodeEntryRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if _, err := s.uc.Entry.ToggleApproval(r.Context(), day, action); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, okResponse{OK: true})
}

func (s *Server) undoEntry(w http.ResponseWriter, r *http.Request) {
	day, action, err := decodeEntryRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if _, err := s.uc.Entry.Undo(r.Context(), day, action); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, okResponse{OK: true})
}

func (s *Server) entryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.Entry.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, actionListResponse{Actions: s.uc.Entry.Actions()})
}
