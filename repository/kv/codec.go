package kv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// SchemaVersion is written into every saved collection.
const SchemaVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported schema version")

type envelope struct {
	Version int               `json:"version"`
	Items   []json.RawMessage `json:"items"`
}

func encodeCollection[T any](items []T) (string, error) {
	raw := make([]json.RawMessage, 0, len(items))
	for i := range items {
		b, err := json.Marshal(items[i])
		if err != nil {
			return "", err
		}
		raw = append(raw, b)
	}

	b, err := json.Marshal(envelope{Version: SchemaVersion, Items: raw})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeCollection reads either a versioned envelope or the bare JSON array
// written before versioning. Items that fail to decode or that keep returns
// false for are dropped and logged; the rest of the collection survives.
func decodeCollection[T any](key, data string, keep func(T) bool) ([]T, error) {
	trimmed := bytes.TrimSpace([]byte(data))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	var raw []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		if env.Version > SchemaVersion {
			return nil, fmt.Errorf("decode %s: %w: %d", key, ErrUnsupportedVersion, env.Version)
		}
		raw = env.Items
	default:
		return nil, fmt.Errorf("decode %s: unexpected document shape", key)
	}

	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			log.Printf("Dropping unreadable %s item %d: %v", key, i, err)
			continue
		}
		if keep != nil && !keep(item) {
			log.Printf("Dropping incomplete %s item %d", key, i)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
