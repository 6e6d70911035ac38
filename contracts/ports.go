package contracts

import (
	"encoding/json"
	"io"
	"time"
)

// ResourceFetcher lists every record of one resource type. Records are
// opaque to the pipeline beyond being JSON objects.
type ResourceFetcher interface {
	FetchAll() ([]json.RawMessage, error)
}

// ImportSubmitter hands a validated bundle to the backend import endpoint.
type ImportSubmitter interface {
	SubmitImport(bundle ExportBundle) (ImportReport, error)
}

type ClipboardWriter interface {
	WriteClipboard(text string) error
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FileWriter interface {
	WriteFile(path string, content []byte) error
}

type ArchiveWriter interface {
	io.WriteCloser
	WriteHeader(header ArchiveHeader)
}

type ArchiveHeader struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// ArchiveWalker visits every entry of an archive on disk in iteration
// order. Returning an error from visit aborts the walk.
type ArchiveWalker interface {
	Walk(path string, visit func(entry ArchiveEntry) error) error
}

type ArchiveEntry struct {
	Name      string
	Directory bool
	Contents  []byte
}

type Environment interface {
	LookupEnv(key string) (value string, set bool)
}
