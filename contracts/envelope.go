package contracts

import (
	"bytes"
	"encoding/json"
)

// ResourceTypes is the closed set of resource identifiers that may appear
// in an export artifact. Anything else fails bundle validation.
var ResourceTypes = []string{"guilds", "teams", "toons", "raids", "scenarios"}

func KnownResourceType(id string) bool {
	for _, candidate := range ResourceTypes {
		if candidate == id {
			return true
		}
	}
	return false
}

// ResourceEnvelope wraps one resource type's records for transport.
// Data is kept raw so that imported records round-trip byte-for-byte.
type ResourceEnvelope struct {
	ID         string          `json:"id"`
	ExportedAt string          `json:"exported_at"`
	Data       json.RawMessage `json:"data"`
}

func (this ResourceEnvelope) DataIsArray() bool {
	trimmed := bytes.TrimLeft(this.Data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

func (this ResourceEnvelope) Records() (records []json.RawMessage, err error) {
	err = json.Unmarshal(this.Data, &records)
	return records, err
}

// ExportBundle is one export/import unit of work: resource identifier -> envelope.
type ExportBundle map[string]ResourceEnvelope
