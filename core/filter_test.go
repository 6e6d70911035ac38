package core

import (
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestFilterFixture(t *testing.T) {
	gunit.Run(new(FilterFixture), t)
}

type FilterFixture struct {
	*gunit.Fixture
}

func (this *FilterFixture) TestEmptyFilterKeepsEverything() {
	keys := []string{"guilds", "teams", "toons"}

	this.So(FilterKeys(keys, nil), should.Resemble, keys)
}

func (this *FilterFixture) TestFilterNarrowsAndPreservesOriginalOrder() {
	keys := []string{"guilds", "teams", "toons", "raids"}

	filtered := FilterKeys(keys, []string{"raids", "teams"})

	this.So(filtered, should.Resemble, []string{"teams", "raids"})
}

func (this *FilterFixture) TestFilterEntriesOutsideTheOriginalAreIgnored() {
	filtered := FilterKeys([]string{"guilds"}, []string{"widgets"})

	this.So(filtered, should.BeNil)
}
