package core

import (
	"fmt"

	"github.com/guildroster/porter/contracts"
)

type ImportState int

const (
	StateIdle ImportState = iota
	StateFileSelected
	StateValidating
	StateValidationFailed
	StateValidatedPendingSubmit
	StateSubmitting
	StateSubmitSucceeded
	StateSubmitFailed
)

func (this ImportState) String() string {
	switch this {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file-selected"
	case StateValidating:
		return "validating"
	case StateValidationFailed:
		return "validation-failed"
	case StateValidatedPendingSubmit:
		return "validated-pending-submit"
	case StateSubmitting:
		return "submitting"
	case StateSubmitSucceeded:
		return "submit-succeeded"
	case StateSubmitFailed:
		return "submit-failed"
	default:
		return "unknown"
	}
}

// ImportFlow drives the end-to-end import: select a file, parse and
// validate it, then hand the bundle to the backend. A failed submission is
// terminal; there is no automatic retry.
type ImportFlow struct {
	unpackager *Unpackager
	submitter  contracts.ImportSubmitter

	state    ImportState
	path     string
	bundle   contracts.ExportBundle
	warnings []string
	problems []string
	report   contracts.ImportReport
}

func NewImportFlow(unpackager *Unpackager, submitter contracts.ImportSubmitter) *ImportFlow {
	return &ImportFlow{unpackager: unpackager, submitter: submitter, state: StateIdle}
}

func (this *ImportFlow) State() ImportState             { return this.state }
func (this *ImportFlow) Bundle() contracts.ExportBundle { return this.bundle }
func (this *ImportFlow) Warnings() []string             { return this.warnings }
func (this *ImportFlow) Problems() []string             { return this.problems }
func (this *ImportFlow) Report() contracts.ImportReport { return this.report }

func (this *ImportFlow) SelectFile(path string) error {
	if this.state != StateIdle {
		return this.transitionError("select a file")
	}
	this.path = path
	this.state = StateFileSelected
	return nil
}

// Validate covers both parsing and structural validation. The outcome is
// reflected in the resulting state, not the returned error, which only
// reports illegal transitions.
func (this *ImportFlow) Validate() error {
	if this.state != StateFileSelected {
		return this.transitionError("validate")
	}
	this.state = StateValidating

	parsed := this.unpackager.ParseUpload(this.path)
	this.warnings = parsed.Warnings
	if !parsed.OK() {
		this.problems = parsed.Errors
		this.state = StateValidationFailed
		return nil
	}

	validation := ValidateBundle(parsed.Bundle)
	if !validation.Valid {
		this.problems = validation.Errors
		this.state = StateValidationFailed
		return nil
	}

	this.bundle = parsed.Bundle
	this.state = StateValidatedPendingSubmit
	return nil
}

func (this *ImportFlow) Submit() error {
	if this.state != StateValidatedPendingSubmit {
		return this.transitionError("submit")
	}
	this.state = StateSubmitting

	report, err := this.submitter.SubmitImport(this.bundle)
	this.report = report
	if err != nil {
		this.problems = []string{err.Error()}
		this.state = StateSubmitFailed
		return nil
	}
	if report.ErrorCount() > 0 {
		this.state = StateSubmitFailed
		return nil
	}
	this.state = StateSubmitSucceeded
	return nil
}

func (this *ImportFlow) transitionError(action string) error {
	return fmt.Errorf("cannot %s while %s", action, this.state)
}
