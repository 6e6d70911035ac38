package core

import (
	"encoding/json"
	"sort"

	"github.com/guildroster/porter/contracts"
)

// Uploaded JSON is decoded as one of two explicit shapes: a single envelope
// (id and data at the top level) or a map of resource identifier to
// envelope. Anything else yields the no-valid-data error.

const noValidDataErr = "no valid data found"

func parseJSONDocument(raw []byte) contracts.ParseResult {
	if envelope, ok := decodeSingleEnvelope(raw); ok {
		return contracts.ParseResult{
			Bundle: contracts.ExportBundle{envelope.ID: envelope},
		}
	}

	bundle, warnings, ok := decodeResourceMap(raw)
	if !ok {
		return contracts.ParseResult{
			Warnings: warnings,
			Errors:   []string{noValidDataErr},
		}
	}
	return contracts.ParseResult{Bundle: bundle, Warnings: warnings}
}

// decodeSingleEnvelope accepts any JSON object carrying both an "id" string
// and a "data" field; other fields are optional.
func decodeSingleEnvelope(raw []byte) (envelope contracts.ResourceEnvelope, ok bool) {
	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) != nil {
		return envelope, false
	}
	idRaw, hasID := fields["id"]
	dataRaw, hasData := fields["data"]
	if !hasID || !hasData {
		return envelope, false
	}
	if json.Unmarshal(idRaw, &envelope.ID) != nil {
		return envelope, false
	}
	if exportedRaw, found := fields["exported_at"]; found {
		_ = json.Unmarshal(exportedRaw, &envelope.ExportedAt)
	}
	envelope.Data = dataRaw
	return envelope, true
}

func decodeResourceMap(raw []byte) (bundle contracts.ExportBundle, warnings []string, ok bool) {
	var entries map[string]json.RawMessage
	if json.Unmarshal(raw, &entries) != nil {
		return nil, nil, false
	}

	bundle = make(contracts.ExportBundle)
	for _, key := range sortedEntryKeys(entries) {
		envelope, valid := decodeSingleEnvelope(entries[key])
		if !valid {
			warnings = append(warnings, "invalid data structure for "+key)
			continue
		}
		bundle[key] = envelope
	}
	if len(bundle) == 0 {
		return nil, warnings, false
	}
	return bundle, warnings, true
}

func sortedEntryKeys(entries map[string]json.RawMessage) (keys []string) {
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
