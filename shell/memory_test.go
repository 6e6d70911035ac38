package shell

import (
	"errors"
	"os"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestInMemoryFileSystemFixture(t *testing.T) {
	gunit.Run(new(InMemoryFileSystemFixture), t)
}

type InMemoryFileSystemFixture struct {
	*gunit.Fixture
	fileSystem *InMemoryFileSystem
}

func (this *InMemoryFileSystemFixture) Setup() {
	this.fileSystem = NewInMemoryFileSystem()
}

func (this *InMemoryFileSystemFixture) TestWriteThenRead() {
	err := this.fileSystem.WriteFile("export.json", []byte("contents"))
	this.So(err, should.BeNil)

	contents, err := this.fileSystem.ReadFile("export.json")

	this.So(err, should.BeNil)
	this.So(contents, should.Resemble, []byte("contents"))
}

func (this *InMemoryFileSystemFixture) TestReadMissingFile() {
	_, err := this.fileSystem.ReadFile("absent.json")

	this.So(errors.Is(err, os.ErrNotExist), should.BeTrue)
}

func (this *InMemoryFileSystemFixture) TestDelete() {
	_ = this.fileSystem.WriteFile("export.json", []byte("contents"))

	this.fileSystem.Delete("export.json")

	_, err := this.fileSystem.ReadFile("export.json")
	this.So(err, should.NotBeNil)
}

func (this *InMemoryFileSystemFixture) TestInjectedErrors() {
	readErr := errors.New("read failure")
	writeErr := errors.New("write failure")
	this.fileSystem.ErrReadFile["export.json"] = readErr
	this.fileSystem.ErrWriteFile["export.json"] = writeErr

	_, err := this.fileSystem.ReadFile("export.json")
	this.So(err, should.Equal, readErr)

	err = this.fileSystem.WriteFile("export.json", nil)
	this.So(err, should.Equal, writeErr)
}
