package http

import (
	"errors"
	"net/http"

	"github.com/secmon-lab/curbside/pkg/usecase"
	"github.com/secmon-lab/curbside/pkg/utils/errutil"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
	"github.com/secmon-lab/curbside/pkg/utils/safe"
)

type okResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	safe.WriteJSON(r.Context(), w, status, v)
}

// handleError answers validation failures with 400 and the reason, and
// everything else with 500.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		logging.From(r.Context()).Warn("invalid request",
			"method", r.Method,
			"path", r.URL.Path,
			"reason", ve.Reason,
		)
		errutil.WriteJSONError(w, ve.Reason, http.StatusBadRequest)
		return
	}

	errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
}
