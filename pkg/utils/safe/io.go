package safe

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/utils/errutil"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
)

// Close closes c and logs a failure tagged with resource. A nil c is ignored.
func Close(ctx context.Context, resource string, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.From(ctx).Error("Failed to close",
			slog.String("resource", resource),
			slog.Any("error", err))
	}
}

// WriteJSON answers with v encoded as JSON. An unencodable v becomes a 500;
// a failed write is only logged since the status line is already sent.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Error("Failed to write response",
			slog.Int("status", status),
			slog.Any("error", err))
	}
}
