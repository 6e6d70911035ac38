package core

import (
	"strings"

	"github.com/guildroster/porter/contracts"
)

const noValidDataFilesErr = "no valid data files found"

// ArchiveParser reads every .json member of an uploaded archive as a single
// envelope. Members that fail to decode become warnings and parsing
// continues; only zero surviving entries is an error.
type ArchiveParser struct {
	walker contracts.ArchiveWalker
}

func NewArchiveParser(walker contracts.ArchiveWalker) *ArchiveParser {
	return &ArchiveParser{walker: walker}
}

func (this *ArchiveParser) Parse(path string) contracts.ParseResult {
	bundle := make(contracts.ExportBundle)
	var warnings []string

	err := this.walker.Walk(path, func(entry contracts.ArchiveEntry) error {
		if entry.Directory {
			return nil
		}
		if !strings.HasSuffix(entry.Name, ".json") {
			return nil
		}
		envelope, ok := decodeSingleEnvelope(entry.Contents)
		if !ok {
			warnings = append(warnings, "could not parse "+entry.Name)
			return nil
		}
		bundle[envelope.ID] = envelope
		return nil
	})
	if err != nil {
		return contracts.ParseResult{Errors: []string{"could not read archive: " + err.Error()}}
	}
	if len(bundle) == 0 {
		return contracts.ParseResult{Warnings: warnings, Errors: []string{noValidDataFilesErr}}
	}
	return contracts.ParseResult{Bundle: bundle, Warnings: warnings}
}
