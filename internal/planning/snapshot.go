package planning

import (
	"context"
	"encoding/json"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/pkg/errors"
)

// SnapshotVersion is the current snapshot envelope version. Bump only on an
// incompatible change to the aggregate's wire shape; readers discard any
// snapshot carrying a different version.
const SnapshotVersion = 1

// SnapshotStore persists the whole aggregate as one opaque snapshot. The
// planning store writes through on every successful mutation and loads once
// at startup; implementations live under internal/storage.
//
// Load returns ErrSnapshotNotFound when no snapshot has been written yet.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// ErrSnapshotNotFound is the sentinel returned by SnapshotStore.Load when no
// snapshot exists. The planning store treats it as a fresh start, not a
// failure.
var ErrSnapshotNotFound = errors.New(errors.ErrCodeNotFound, "snapshot not found")

// snapshotEnvelope wraps the aggregate with a version marker so a reader can
// reject snapshots written by an incompatible build.
type snapshotEnvelope struct {
	Version int                          `json:"version"`
	Data    *negotiation.NegotiationData `json:"data"`
}

// EncodeSnapshot serialises the aggregate into a versioned JSON envelope.
func EncodeSnapshot(d *negotiation.NegotiationData) ([]byte, error) {
	payload, err := json.Marshal(snapshotEnvelope{Version: SnapshotVersion, Data: d})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode snapshot")
	}
	return payload, nil
}

// DecodeSnapshot parses a versioned envelope back into the aggregate.
// A payload that is not valid JSON, carries the wrong version, or holds no
// data yields a typed error; callers decide whether to fall back to defaults.
func DecodeSnapshot(payload []byte) (*negotiation.NegotiationData, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageCorrupt, "snapshot payload is not valid JSON")
	}
	if env.Version != SnapshotVersion {
		return nil, errors.Newf(errors.ErrCodeStorageVersion, "snapshot version %d is not supported", env.Version)
	}
	if env.Data == nil {
		return nil, errors.New(errors.ErrCodeStorageCorrupt, "snapshot envelope has no data")
	}
	return env.Data, nil
}
