package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taskflowhq/taskflow/internal/domain"
)

// CurrentVersion is the snapshot envelope version written by Save.
const CurrentVersion = 0

// The envelope matches the persisted layout: a single entry holding the
// seven collections under "state" plus an integer version. Date fields
// are ISO strings at rest; decoding through the typed state restores them
// to date values in one pass, so the original's redundant re-encode
// between load and store initialization is gone while the at-rest bytes
// stay the same.
type envelope struct {
	State   *domain.AppState `json:"state"`
	Version int              `json:"version"`
}

// LoadState reads and decodes the snapshot at key. It returns ErrNoState
// when nothing is persisted and ErrCorruptState when the stored value is
// not a valid envelope; callers fall back to the compiled-in initial
// state on either.
func LoadState(ctx context.Context, kv KV, key string) (domain.AppState, int, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return domain.AppState{}, 0, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.AppState{}, 0, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if env.State == nil {
		return domain.AppState{}, 0, fmt.Errorf("%w: missing state object", ErrCorruptState)
	}
	return *env.State, env.Version, nil
}

// SaveState encodes the snapshot envelope and writes it at key.
func SaveState(ctx context.Context, kv KV, key string, state domain.AppState, version int) error {
	raw, err := json.Marshal(envelope{State: &state, Version: version})
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}
