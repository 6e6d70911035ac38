package core

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/guildroster/porter/contracts"
)

// Packager serializes a bundle into one of three artifacts: a single JSON
// file, a zip archive with one member per envelope, or clipboard text.
// All output is two-space indented so exported artifacts stay diffable.
type Packager struct {
	files       contracts.FileWriter
	clipboard   contracts.ClipboardWriter
	openArchive func(io.Writer) contracts.ArchiveWriter
}

func NewPackager(files contracts.FileWriter, clipboard contracts.ClipboardWriter, openArchive func(io.Writer) contracts.ArchiveWriter) *Packager {
	return &Packager{
		files:       files,
		clipboard:   clipboard,
		openArchive: openArchive,
	}
}

// PackageJSON writes the whole bundle to a single named file and returns
// the serialized text.
func (this *Packager) PackageJSON(bundle contracts.ExportBundle, filename string) (string, error) {
	text, err := marshalIndented(bundle)
	if err != nil {
		return "", err
	}
	return text, this.files.WriteFile(filename, []byte(text))
}

// PackageArchive writes one <id>.json member per envelope, in sorted key
// order so identical bundles produce identical archives.
func (this *Packager) PackageArchive(bundle contracts.ExportBundle, filename string) error {
	buffer := new(bytes.Buffer)
	archive := this.openArchive(buffer)
	for _, key := range sortedKeys(bundle) {
		text, err := marshalIndented(bundle[key])
		if err != nil {
			return err
		}
		content := []byte(text)
		archive.WriteHeader(contracts.ArchiveHeader{
			Name:    key + ".json",
			Size:    int64(len(content)),
			ModTime: time.Now(),
		})
		_, err = archive.Write(content)
		if err != nil {
			return err
		}
	}
	err := archive.Close()
	if err != nil {
		return err
	}
	return this.files.WriteFile(filename, buffer.Bytes())
}

// PackageClipboard writes the single-JSON text to the clipboard. The text
// is returned even when the clipboard write fails so the caller can offer
// a manual fallback.
func (this *Packager) PackageClipboard(bundle contracts.ExportBundle) (string, error) {
	text, err := marshalIndented(bundle)
	if err != nil {
		return "", err
	}
	return text, this.clipboard.WriteClipboard(text)
}

func marshalIndented(value interface{}) (string, error) {
	raw, err := json.MarshalIndent(value, "", "  ")
	return string(raw), err
}

func sortedKeys(bundle contracts.ExportBundle) (keys []string) {
	for key := range bundle {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
