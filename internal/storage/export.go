// Package storage provides the run store for GravSweep.
package storage

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/pkg/crypto/sealbox"
)

// ArchiveVersion tags the export format. It doubles as the AEAD
// additional data, so a box sealed by a different format version fails
// to open instead of decoding garbage.
const ArchiveVersion = "gravsweep-export-v1"

// Archive is the export payload.
type Archive struct {
	Version   string      `json:"version"`
	CreatedAt time.Time   `json:"created_at"`
	Runs      []*eval.Run `json:"runs"`
}

// Export writes up to limit runs (newest first, 0 = all) as a sealed
// archive. Returns the number of exported runs.
func (s *Store) Export(ctx context.Context, w io.Writer, passphrase []byte, limit int) (int, error) {
	runs, err := s.List(ctx, limit)
	if err != nil {
		return 0, err
	}

	archive := Archive{
		Version:   ArchiveVersion,
		CreatedAt: time.Now().UTC(),
		Runs:      runs,
	}
	plaintext, err := json.Marshal(archive)
	if err != nil {
		return 0, metric.ErrStorage.WithDetails("encode archive").WithCause(err)
	}

	sealed, err := sealbox.Seal(passphrase, plaintext, []byte(ArchiveVersion))
	if err != nil {
		return 0, metric.ErrStorage.WithDetails("seal archive").WithCause(err)
	}

	if _, err := w.Write(sealed); err != nil {
		return 0, metric.ErrStorage.WithDetails("write archive").WithCause(err)
	}

	s.log.Info("runs exported", "count", len(runs))
	return len(runs), nil
}

// Import reads a sealed archive and stores its runs. Existing runs with
// the same ID are overwritten. Returns the number of imported runs.
func (s *Store) Import(ctx context.Context, r io.Reader, passphrase []byte) (int, error) {
	sealed, err := io.ReadAll(r)
	if err != nil {
		return 0, metric.ErrStorage.WithDetails("read archive").WithCause(err)
	}

	plaintext, err := sealbox.Open(passphrase, sealed, []byte(ArchiveVersion))
	if err != nil {
		return 0, metric.ErrStorage.WithDetails("open archive").WithCause(err)
	}

	var archive Archive
	if err := json.Unmarshal(plaintext, &archive); err != nil {
		return 0, metric.ErrStorage.WithDetails("decode archive").WithCause(err)
	}
	if archive.Version != ArchiveVersion {
		return 0, metric.ErrInvalidArgument.WithDetails("unsupported archive version: " + archive.Version)
	}

	for _, run := range archive.Runs {
		if err := s.Put(ctx, run); err != nil {
			return 0, err
		}
	}

	s.log.Info("runs imported", "count", len(archive.Runs))
	return len(archive.Runs), nil
}
