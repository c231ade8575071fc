package report

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/vlaran/pangaea/internal/xlog"
)

var log = xlog.Named("report")

// Bundle is a self-contained JSON result set: the output of one
// `pangaea report` run, consumed later by `pangaea render` to produce
// HTML without rerunning any analysis (spec.md §6 CLI surface,
// "render (combine JSON result bundles)").
type Bundle struct {
	RunID     string    `json:"run_id"`
	Graph     string    `json:"graph"`
	CreatedAt time.Time `json:"created_at"`
	Charts    []Chart   `json:"charts"`
}

// NewBundle stamps a fresh run ID for graph. createdAt is passed in
// rather than taken from time.Now so that callers (and their tests)
// control the recorded timestamp.
func NewBundle(graph string, createdAt time.Time) *Bundle {
	return &Bundle{RunID: uuid.NewString(), Graph: graph, CreatedAt: createdAt}
}

// Add appends a chart to the bundle.
func (b *Bundle) Add(c Chart) { b.Charts = append(b.Charts, c) }

// WriteBundle serializes b as JSON to path.
func WriteBundle(path string, b *Bundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBundle, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	log.Debug().Str("path", path).Str("run_id", b.RunID).Int("charts", len(b.Charts)).Msg("wrote report bundle")

	return nil
}

// LoadBundle deserializes a JSON result bundle previously written by
// WriteBundle.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBundle, err)
	}

	return &b, nil
}

// Merge combines multiple bundles' charts under a single fresh run ID,
// for `render` invocations that take several `report` outputs at once.
func Merge(createdAt time.Time, bundles ...*Bundle) *Bundle {
	merged := &Bundle{RunID: uuid.NewString(), CreatedAt: createdAt}
	for i, b := range bundles {
		if i == 0 {
			merged.Graph = b.Graph
		}
		merged.Charts = append(merged.Charts, b.Charts...)
	}

	return merged
}
