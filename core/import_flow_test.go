package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/guildroster/porter/contracts"
)

func TestImportFlowFixture(t *testing.T) {
	gunit.Run(new(ImportFlowFixture), t)
}

type ImportFlowFixture struct {
	*gunit.Fixture
	flow      *ImportFlow
	files     *FakeFileReader
	submitter *FakeSubmitter
}

func (this *ImportFlowFixture) Setup() {
	this.files = &FakeFileReader{files: make(map[string][]byte)}
	this.submitter = &FakeSubmitter{}
	this.flow = NewImportFlow(NewUnpackager(this.files, &FakeArchiveWalker{}), this.submitter)
	this.files.files["export.json"] = []byte(`{"id": "guilds", "exported_at": "2024-01-01T00:00:00Z", "data": [{"id": 1}]}`)
}

func (this *ImportFlowFixture) TestHappyPathReachesSubmitSucceeded() {
	this.So(this.flow.State(), should.Equal, StateIdle)

	this.So(this.flow.SelectFile("export.json"), should.BeNil)
	this.So(this.flow.State(), should.Equal, StateFileSelected)

	this.So(this.flow.Validate(), should.BeNil)
	this.So(this.flow.State(), should.Equal, StateValidatedPendingSubmit)
	this.So(this.flow.Bundle(), should.HaveLength, 1)

	this.So(this.flow.Submit(), should.BeNil)
	this.So(this.flow.State(), should.Equal, StateSubmitSucceeded)
	this.So(this.submitter.submitted, should.Resemble, this.flow.Bundle())
}

func (this *ImportFlowFixture) TestValidateRequiresASelectedFile() {
	err := this.flow.Validate()

	this.So(err, should.NotBeNil)
	this.So(this.flow.State(), should.Equal, StateIdle)
}

func (this *ImportFlowFixture) TestSelectingASecondFileIsRejected() {
	this.So(this.flow.SelectFile("export.json"), should.BeNil)

	err := this.flow.SelectFile("another.json")

	this.So(err, should.NotBeNil)
	this.So(this.flow.State(), should.Equal, StateFileSelected)
}

func (this *ImportFlowFixture) TestParseFailureLandsInValidationFailed() {
	this.files.files["export.csv"] = []byte("a,b,c")
	_ = this.flow.SelectFile("export.csv")

	this.So(this.flow.Validate(), should.BeNil)

	this.So(this.flow.State(), should.Equal, StateValidationFailed)
	this.So(this.flow.Problems(), should.Resemble, []string{"Unsupported file format. Please use .zip or .json files."})
}

func (this *ImportFlowFixture) TestStructuralFailureLandsInValidationFailed() {
	this.files.files["export.json"] = []byte(`{"id": "widgets", "data": {}}`)
	_ = this.flow.SelectFile("export.json")

	this.So(this.flow.Validate(), should.BeNil)

	this.So(this.flow.State(), should.Equal, StateValidationFailed)
	this.So(this.flow.Problems(), should.Contain, "Unknown data type: widgets")
	this.So(this.flow.Problems(), should.Contain, "Data for widgets is not an array")
}

func (this *ImportFlowFixture) TestSubmitRequiresAValidatedBundle() {
	err := this.flow.Submit()

	this.So(err, should.NotBeNil)
	this.So(this.submitter.calls, should.Equal, 0)
}

func (this *ImportFlowFixture) TestSubmitCannotFollowValidationFailure() {
	this.files.files["export.json"] = []byte(`not json`)
	_ = this.flow.SelectFile("export.json")
	_ = this.flow.Validate()
	this.So(this.flow.State(), should.Equal, StateValidationFailed)

	err := this.flow.Submit()

	this.So(err, should.NotBeNil)
	this.So(this.submitter.calls, should.Equal, 0)
}

func (this *ImportFlowFixture) TestTransportFailureLandsInSubmitFailed() {
	this.submitter.err = errors.New("connection refused")
	this.advanceToPendingSubmit()

	this.So(this.flow.Submit(), should.BeNil)

	this.So(this.flow.State(), should.Equal, StateSubmitFailed)
	this.So(this.flow.Problems(), should.Resemble, []string{"connection refused"})
}

func (this *ImportFlowFixture) TestBackendRecordErrorsLandInSubmitFailed() {
	this.submitter.report = contracts.ImportReport{Errors: map[string][]string{
		"guilds": {"row 1: name already taken"},
	}}
	this.advanceToPendingSubmit()

	this.So(this.flow.Submit(), should.BeNil)

	this.So(this.flow.State(), should.Equal, StateSubmitFailed)
	this.So(this.flow.Report(), should.Resemble, this.submitter.report)
}

func (this *ImportFlowFixture) TestParserWarningsAreRetainedForDisplay() {
	this.files.files["export.json"] = []byte(`{
		"guilds": {"id": "guilds", "data": []},
		"widgets": {"name": "not an envelope"}
	}`)
	_ = this.flow.SelectFile("export.json")

	this.So(this.flow.Validate(), should.BeNil)

	this.So(this.flow.State(), should.Equal, StateValidatedPendingSubmit)
	this.So(this.flow.Warnings(), should.Resemble, []string{"invalid data structure for widgets"})
}

func (this *ImportFlowFixture) advanceToPendingSubmit() {
	_ = this.flow.SelectFile("export.json")
	_ = this.flow.Validate()
	this.So(this.flow.State(), should.Equal, StateValidatedPendingSubmit)
}

/////////////////////////////////////////////////////////////////////////////

type FakeSubmitter struct {
	submitted contracts.ExportBundle
	report    contracts.ImportReport
	err       error
	calls     int
}

func (this *FakeSubmitter) SubmitImport(bundle contracts.ExportBundle) (contracts.ImportReport, error) {
	this.calls++
	this.submitted = bundle
	if this.err != nil {
		return contracts.ImportReport{}, this.err
	}
	return this.report, nil
}
