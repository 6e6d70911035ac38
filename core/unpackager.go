package core

import (
	"path/filepath"
	"strings"

	"github.com/guildroster/porter/contracts"
)

const unsupportedFormatErr = "Unsupported file format. Please use .zip or .json files."

// Unpackager turns an uploaded file back into a bundle. The file extension
// alone selects the parse strategy; unsupported extensions fail before any
// content is read.
type Unpackager struct {
	files   contracts.FileReader
	archive *ArchiveParser
}

func NewUnpackager(files contracts.FileReader, walker contracts.ArchiveWalker) *Unpackager {
	return &Unpackager{files: files, archive: NewArchiveParser(walker)}
}

func (this *Unpackager) ParseUpload(path string) contracts.ParseResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return this.archive.Parse(path)
	case ".json":
		return this.parseJSONFile(path)
	default:
		return contracts.ParseResult{Errors: []string{unsupportedFormatErr}}
	}
}

func (this *Unpackager) parseJSONFile(path string) contracts.ParseResult {
	raw, err := this.files.ReadFile(path)
	if err != nil {
		return contracts.ParseResult{Errors: []string{"could not read file: " + err.Error()}}
	}
	return parseJSONDocument(raw)
}
