package main

import (
	"fmt"
	"log"

	"github.com/guildroster/porter/contracts"
	"github.com/guildroster/porter/core"
	"github.com/guildroster/porter/shell"
)

type ExportApp struct {
	config    contracts.ExportConfig
	collector *core.Collector
	packager  *core.Packager
	fetchers  map[string]contracts.ResourceFetcher
}

func NewExportApp(config contracts.ExportConfig) *ExportApp {
	disk := shell.NewDiskFileSystem()
	token, err := core.NewTokenLoader(disk, shell.NewEnvironment()).Load()
	if err != nil {
		log.Fatal(err)
	}
	client := shell.NewAPIClient(shell.NewHTTPClient(), *config.Plan.APIAddress.Value(), token)

	fetchers := make(map[string]contracts.ResourceFetcher)
	for key, fetcher := range client.Fetchers() {
		fetchers[key] = core.NewRetryFetcher(fetcher, config.MaxRetry)
	}

	return &ExportApp{
		config:    config,
		collector: core.NewCollector(),
		packager:  core.NewPackager(disk, shell.NewSystemClipboard(), shell.NewZipArchiveWriter),
		fetchers:  fetchers,
	}
}

func (this *ExportApp) Run() int {
	selected := core.FilterKeys(contracts.ResourceTypes, this.config.Plan.Only)

	log.Println("Collecting resources...")
	bundle, err := this.collector.Collect(this.fetchers, selected)
	if err != nil {
		log.Println("[WARN] export failed:", err)
		return 1
	}

	err = this.deliver(bundle)
	if err != nil {
		log.Println("[WARN] export failed:", err)
		return 1
	}
	log.Printf("Exported %d resource types.", len(bundle))
	return 0
}

func (this *ExportApp) deliver(bundle contracts.ExportBundle) error {
	switch this.config.Plan.Format {
	case "zip":
		return this.packager.PackageArchive(bundle, this.config.Plan.OutputFilename)
	case "clipboard":
		text, err := this.packager.PackageClipboard(bundle)
		if err != nil {
			log.Println("[WARN] clipboard write failed, printing to stdout instead:", err)
			fmt.Println(text)
		}
		return nil
	default:
		_, err := this.packager.PackageJSON(bundle, this.config.Plan.OutputFilename)
		return err
	}
}
