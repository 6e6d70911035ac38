package shell

import (
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v3"

	"github.com/guildroster/porter/contracts"
)

// DiskArchiveWalker iterates an uploaded archive on disk entry-by-entry.
type DiskArchiveWalker struct{}

func NewDiskArchiveWalker() *DiskArchiveWalker {
	return &DiskArchiveWalker{}
}

func (this *DiskArchiveWalker) Walk(path string, visit func(entry contracts.ArchiveEntry) error) error {
	return archiver.Walk(path, func(file archiver.File) error {
		entry := contracts.ArchiveEntry{
			Name:      entryName(file),
			Directory: file.IsDir(),
		}
		if !file.IsDir() {
			contents, err := io.ReadAll(file)
			if err != nil {
				return err
			}
			entry.Contents = contents
		}
		return visit(entry)
	})
}

// entryName prefers the full path recorded in the zip header; file.Name()
// only carries the base name.
func entryName(file archiver.File) string {
	if header, ok := file.Header.(zip.FileHeader); ok {
		return header.Name
	}
	if header, ok := file.Header.(*zip.FileHeader); ok {
		return header.Name
	}
	return file.Name()
}
