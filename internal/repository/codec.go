package repository

import (
	"encoding/json"
	"fmt"
)

// EncodeCollection serializes a collection snapshot to its persisted JSON array
// form. Dates round-trip as RFC 3339 strings. A nil slice encodes as [].
func EncodeCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return blob, nil
}

// DecodeCollection restores a collection from its persisted blob. Records that
// fail to decode individually (typically an unparsable date) are dropped rather
// than aborting the whole restore. A blob that is not a JSON array is an error;
// the caller falls back to its seed.
func DecodeCollection[T any](blob []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("persisted blob is not a JSON array: %w", err)
	}
	// A JSON null unmarshals into a nil slice without error; it is still not
	// an array and must trigger the caller's seed fallback.
	if raw == nil {
		return nil, fmt.Errorf("persisted blob is not a JSON array: null")
	}

	items := make([]T, 0, len(raw))
	for _, record := range raw {
		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
