package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/secmon-lab/curbside/pkg/domain/types"
	"github.com/secmon-lab/curbside/pkg/usecase"
)

const maxRequestBody = 1 << 20

type entryRequest struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

type counterRequest struct {
	Date  string `json:"date"`
	Count *int   `json:"count,omitempty"`
}

func badRequest(reason string) *usecase.ValidationError {
	return &usecase.ValidationError{Reason: reason}
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return badRequest("failed to read request body")
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return badRequest("invalid JSON body")
	}
	return nil
}

// decodeEntryRequest reads {date, type} into domain values
func decodeEntryRequest(r *http.Request) (types.Day, types.ActionType, error) {
	var req entryRequest
	if err := decodeBody(r, &req); err != nil {
		return "", "", err
	}

	if req.Date == "" || req.Type == "" {
		return "", "", badRequest(usecase.ReasonDateAndTypeRequired)
	}

	day, err := types.ParseDay(req.Date)
	if err != nil {
		return "", "", badRequest(usecase.ReasonInvalidDate)
	}

	action, err := types.ParseActionType(req.Type)
	if err != nil {
		return "", "", badRequest(usecase.ReasonInvalidType)
	}

	return day, action, nil
}

// decodeCounterRequest reads {date, count?}. A missing count stays nil.
func decodeCounterRequest(r *http.Request) (types.Day, *int, error) {
	var req counterRequest
	if err := decodeBody(r, &req); err != nil {
		return "", nil, err
	}

	if req.Date == "" {
		return "", nil, badRequest(usecase.ReasonDateRequired)
	}

	day, err := types.ParseDay(req.Date)
	if err != nil {
		return "", nil, badRequest(usecase.ReasonInvalidDate)
	}

	return day, req.Count, nil
}
