package sections

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/decode"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
)

const (
	statusCompleted = "completed"
	statusFailed    = "failed"
)

// operation is the stored outcome of a keyed workflow run.
type operation struct {
	Workflow    string         `json:"workflow"`
	Fingerprint string         `json:"fingerprint"`
	Status      string         `json:"status"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
	Journal     *Journal       `json:"journal"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func fingerprint(cmd any) string {
	b, _ := json.Marshal(cmd)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// idempotent runs fn once per (restaurant, key). A completed run with the same
// request returns the recorded result. A failed run is re-executed, which
// replays the workflow forward over its idempotent steps. An empty key
// disables recording.
func idempotent[T any](
	ctx context.Context,
	r *repo,
	restaurantID, key, workflow string,
	cmd any,
	fn func(*Journal) (T, error),
) (T, bool, error) {
	var zero T

	if key == "" {
		res, err := fn(newJournal(workflow, r.logger))
		return res, false, err
	}

	path := menu.OperationPath(restaurantID, key)
	fp := fingerprint(cmd)

	doc, err := r.store.Get(ctx, path)
	switch {
	case err == nil:
		prev, err := decode.FromMap[operation](doc.Data)
		if err != nil {
			return zero, false, menu.Wrap("decode operation", path, err)
		}
		if prev.Workflow != workflow || prev.Fingerprint != fp {
			return zero, false, ErrKeyReused
		}
		if prev.Status == statusCompleted {
			res, err := decode.FromMap[T](prev.Result)
			if err != nil {
				return zero, false, menu.Wrap("decode operation result", path, err)
			}
			r.logger.Info("returning recorded outcome", "workflow", workflow, "key", key)
			return res, true, nil
		}
		r.logger.Info("resuming failed operation", "workflow", workflow, "key", key)
	case errors.Is(err, docstore.ErrNotFound):
	default:
		return zero, false, menu.Wrap("read operation", path, err)
	}

	journal := newJournal(workflow, r.logger)
	res, runErr := fn(journal)

	op := operation{
		Workflow:    workflow,
		Fingerprint: fp,
		Journal:     journal,
		UpdatedAt:   time.Now().UTC(),
	}
	if runErr != nil {
		op.Status = statusFailed
		op.Error = runErr.Error()
	} else {
		op.Status = statusCompleted
		if op.Result, err = decode.ToMap(res); err != nil {
			r.logger.Warn("operation result not recorded", "key", key, "error", err)
			return res, false, runErr
		}
	}

	data, err := decode.ToMap(op)
	if err == nil {
		err = r.store.Set(ctx, path, data)
	}
	if err != nil {
		r.logger.Warn("operation not recorded", "key", key, "status", op.Status, "error", err)
	}

	return res, false, runErr
}
