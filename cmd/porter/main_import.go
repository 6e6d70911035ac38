package main

import (
	"log"

	"github.com/guildroster/porter/contracts"
	"github.com/guildroster/porter/core"
	"github.com/guildroster/porter/shell"
)

type ImportApp struct {
	config ImportConfig
	flow   *core.ImportFlow
}

func NewImportApp(config ImportConfig) *ImportApp {
	disk := shell.NewDiskFileSystem()
	unpackager := core.NewUnpackager(disk, shell.NewDiskArchiveWalker())

	var submitter contracts.ImportSubmitter
	if config.Submit {
		token, err := core.NewTokenLoader(disk, shell.NewEnvironment()).Load()
		if err != nil {
			log.Fatal(err)
		}
		submitter = shell.NewAPIClient(shell.NewHTTPClient(), config.BaseURL, token)
	}

	return &ImportApp{config: config, flow: core.NewImportFlow(unpackager, submitter)}
}

func (this *ImportApp) Run() int {
	this.fatalOn(this.flow.SelectFile(this.config.Path))
	this.fatalOn(this.flow.Validate())

	for _, warning := range this.flow.Warnings() {
		log.Println("[WARN]", warning)
	}
	if this.flow.State() == core.StateValidationFailed {
		for _, problem := range this.flow.Problems() {
			log.Println("[WARN]", problem)
		}
		log.Println("Validation failed.")
		return 2
	}

	log.Printf("Validated %d resource types.", len(this.flow.Bundle()))
	if !this.config.Submit {
		log.Println("Re-run with -submit to push the bundle to the backend.")
		return 0
	}

	this.fatalOn(this.flow.Submit())
	if this.flow.State() == core.StateSubmitFailed {
		this.reportFailures()
		return 1
	}
	log.Println("Import submitted successfully.")
	return 0
}

func (this *ImportApp) reportFailures() {
	for _, problem := range this.flow.Problems() {
		log.Println("[WARN]", problem)
	}
	report := this.flow.Report()
	for resource, errors := range report.Errors {
		for _, message := range errors {
			log.Printf("[WARN] %s: %s", resource, message)
		}
	}
	log.Println("Import submission failed.")
}

func (this *ImportApp) fatalOn(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
