package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/axees/scout/core"
	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// ImportCreators loads raw creators from a JSON file and stores them in the
// catalog. Derived summary columns (followers, engagement, tier, cost) are
// computed at import time so exports and status queries never need to decode
// payloads.
func ImportCreators(ctx context.Context, store contract.CatalogStore, filePath string) (int, error) {
	if store == nil {
		return 0, errors.New("catalog storage is not configured")
	}

	raws, err := NewFileSource(filePath).Load(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for i, raw := range raws {
		if raw.ID == "" {
			return i, fmt.Errorf("creator at index %d has no id", i)
		}

		payload, err := json.Marshal(raw)
		if err != nil {
			return i, fmt.Errorf("failed to encode creator %q: %w", raw.ID, err)
		}

		nc := core.Normalize(raw)
		rec := schema.CreatorRecord{
			ID:            raw.ID,
			Payload:       payload,
			ImportedAt:    now,
			Followers:     int32(nc.TotalFollowers),
			Engagement:    nc.AvgEngagement,
			Tier:          string(nc.Tier),
			EstimatedCost: int32(nc.EstimatedCost),
		}
		if err := store.Put(rec); err != nil {
			return i, fmt.Errorf("failed to store creator %q: %w", raw.ID, err)
		}
	}
	return len(raws), nil
}
