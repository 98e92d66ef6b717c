package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// FileSource loads raw creator records from a JSON file on disk. The file
// holds either a bare array of creators or an object with a "creators" key,
// matching the two export shapes produced upstream.
type FileSource struct {
	Path string
}

var _ contract.CreatorSource = &FileSource{} // Compile-time check

// NewFileSource returns a source reading the given JSON file.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and decodes the JSON file.
func (s *FileSource) Load(_ context.Context) ([]schema.RawCreator, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read creators file %q: %w", s.Path, err)
	}
	return decodeCreators(data)
}

// StoreSource adapts a CatalogStore into a CreatorSource by decoding the
// stored payloads.
type StoreSource struct {
	Store contract.CatalogStore
}

var _ contract.CreatorSource = &StoreSource{} // Compile-time check

// NewStoreSource returns a source reading from the catalog store.
func NewStoreSource(store contract.CatalogStore) *StoreSource {
	return &StoreSource{Store: store}
}

// Load fetches all records and decodes their payloads in import order.
func (s *StoreSource) Load(_ context.Context) ([]schema.RawCreator, error) {
	records, err := s.Store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	raws := make([]schema.RawCreator, 0, len(records))
	for _, rec := range records {
		var raw schema.RawCreator
		if err := json.Unmarshal(rec.Payload, &raw); err != nil {
			return nil, fmt.Errorf("corrupt payload for creator %q: %w", rec.ID, err)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// decodeCreators accepts both upstream JSON shapes.
func decodeCreators(data []byte) ([]schema.RawCreator, error) {
	var bare []schema.RawCreator
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Creators []schema.RawCreator `json:"creators"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse creators JSON: %w", err)
	}
	return wrapped.Creators, nil
}
