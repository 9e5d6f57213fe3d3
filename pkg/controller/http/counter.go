package http

import (
	"net/http"
)

func (s *Server) counterSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.uc.Counter.Summary(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, summary)
}

func (s *Server) addCounter(w http.ResponseWriter, r *http.Request) {
	day, count, err := decodeCounterRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	counter, err := s.uc.Counter.Add(r.Context(), day, count)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, counter)
}

func (s *Server) removeCounter(w http.ResponseWriter, r *http.Request) {
	day, _, err := decodeCounterRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	counter, err := s.uc.Counter.Remove(r.Context(), day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if counter == nil {
		writeJSON(w, r, http.StatusOK, okResponse{OK: true})
		return
	}

	writeJSON(w, r, http.StatusOK, counter)
}
