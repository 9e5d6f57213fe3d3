package export

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
	"github.com/secmon-lab/curbside/pkg/utils/safe"
)

const gcsScheme = "gs://"

// Stdout is the destination name that writes to the given stdout writer
const Stdout = "-"

// ParseGCSURL splits gs://bucket/object into its parts
func ParseGCSURL(dest string) (bucket, object string, err error) {
	if !strings.HasPrefix(dest, gcsScheme) {
		return "", "", goerr.New("not a gs:// URL", goerr.V("dest", dest))
	}

	bucket, object, found := strings.Cut(strings.TrimPrefix(dest, gcsScheme), "/")
	if !found || bucket == "" || object == "" {
		return "", "", goerr.New("gs:// URL must be gs://bucket/object", goerr.V("dest", dest))
	}

	return bucket, object, nil
}

// Write encodes snapshot as indented JSON to dest, which is a local path,
// "-" for stdout, or a gs://bucket/object URL. Nothing is left at dest when
// encoding fails.
func Write(ctx context.Context, dest string, stdout io.Writer, snapshot *model.Snapshot) error {
	w, err := open(ctx, dest, stdout)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		w.abort(ctx)
		return goerr.Wrap(err, "failed to encode snapshot", goerr.V("dest", dest))
	}

	// Close finalizes GCS uploads, so its error is the upload result
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finish export", goerr.V("dest", dest))
	}

	return nil
}

// destination is an export target that can be finished with Close or
// discarded with abort
type destination interface {
	io.WriteCloser
	abort(ctx context.Context)
}

type stdoutDestination struct {
	io.Writer
}

func (stdoutDestination) Close() error { return nil }
func (stdoutDestination) abort(ctx context.Context) {}

type fileDestination struct {
	*os.File
}

func (f fileDestination) abort(ctx context.Context) {
	safe.Close(ctx, f.Name(), f.File)
	if err := os.Remove(f.Name()); err != nil {
		logging.From(ctx).Warn("Failed to remove partial export", "path", f.Name(), "error", err)
	}
}

type gcsDestination struct {
	*storage.Writer
	client *storage.Client
	cancel context.CancelFunc
}

func (w *gcsDestination) Close() error {
	defer w.cancel()
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// abort cancels the upload context before closing so the object is never committed
func (w *gcsDestination) abort(ctx context.Context) {
	w.cancel()
	_ = w.Writer.Close()
	safe.Close(ctx, "storage client", w.client)
}

var newStorageClient = storage.NewClient

func open(ctx context.Context, dest string, stdout io.Writer) (destination, error) {
	switch {
	case dest == "" || dest == Stdout:
		return stdoutDestination{Writer: stdout}, nil

	case strings.HasPrefix(dest, gcsScheme):
		bucket, object, err := ParseGCSURL(dest)
		if err != nil {
			return nil, err
		}

		client, err := newStorageClient(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create storage client")
		}

		uploadCtx, cancel := context.WithCancel(ctx)
		w := client.Bucket(bucket).Object(object).NewWriter(uploadCtx)
		w.ContentType = "application/json"
		return &gcsDestination{Writer: w, client: client, cancel: cancel}, nil

	default:
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dest", dest))
		}
		f, err := os.Create(filepath.Clean(dest))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create output file", goerr.V("dest", dest))
		}
		return fileDestination{File: f}, nil
	}
}
