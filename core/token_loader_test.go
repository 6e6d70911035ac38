package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestTokenLoaderFixture(t *testing.T) {
	gunit.Run(new(TokenLoaderFixture), t)
}

type TokenLoaderFixture struct {
	*gunit.Fixture
	loader      TokenLoader
	files       *FakeFileReader
	environment *FakeEnvironment
}

func (this *TokenLoaderFixture) Setup() {
	this.files = &FakeFileReader{files: make(map[string][]byte)}
	this.environment = &FakeEnvironment{values: make(map[string]string)}
	this.loader = NewTokenLoader(this.files, this.environment)
}

func (this *TokenLoaderFixture) TestTokenFromEnvironment() {
	this.environment.values["GUILDROSTER_API_TOKEN"] = " secret-token \n"

	token, err := this.loader.Load()

	this.So(err, should.BeNil)
	this.So(token, should.Equal, "secret-token")
}

func (this *TokenLoaderFixture) TestTokenFromFileWhenEnvironmentIsBlank() {
	this.environment.values["GUILDROSTER_TOKEN_FILE"] = "/etc/guildroster/token"
	this.files.files["/etc/guildroster/token"] = []byte("file-token\n")

	token, err := this.loader.Load()

	this.So(err, should.BeNil)
	this.So(token, should.Equal, "file-token")
}

func (this *TokenLoaderFixture) TestNeitherSourceConfigured() {
	token, err := this.loader.Load()

	this.So(err, should.NotBeNil)
	this.So(token, should.BeBlank)
}

func (this *TokenLoaderFixture) TestUnreadableTokenFile() {
	this.environment.values["GUILDROSTER_TOKEN_FILE"] = "/etc/guildroster/token"
	this.files.err = errors.New("permission denied")

	token, err := this.loader.Load()

	this.So(err, should.NotBeNil)
	this.So(token, should.BeBlank)
}

/////////////////////////////////////////////////////////////////////////////

type FakeEnvironment struct {
	values map[string]string
}

func (this *FakeEnvironment) LookupEnv(key string) (value string, set bool) {
	value, set = this.values[key]
	return value, set
}
