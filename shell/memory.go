package shell

import (
	"fmt"
	"os"
)

// InMemoryFileSystem backs the FileReader/FileWriter ports in tests.
type InMemoryFileSystem struct {
	fileSystem   map[string][]byte
	ErrReadFile  map[string]error
	ErrWriteFile map[string]error
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{
		fileSystem:   make(map[string][]byte),
		ErrReadFile:  make(map[string]error),
		ErrWriteFile: make(map[string]error),
	}
}

func (this *InMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	if err, found := this.ErrReadFile[path]; found {
		return nil, err
	}
	contents, found := this.fileSystem[path]
	if !found {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return contents, nil
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) error {
	if err, found := this.ErrWriteFile[path]; found {
		return err
	}
	this.fileSystem[path] = content
	return nil
}

func (this *InMemoryFileSystem) Delete(path string) {
	delete(this.fileSystem, path)
}
