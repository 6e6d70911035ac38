package core

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/guildroster/porter/contracts"
)

type ExportConfigLoader struct {
	storage contracts.FileReader
	stdin   io.Reader
	stderr  io.Writer
}

func NewExportConfigLoader(storage contracts.FileReader, stdin io.Reader, stderr io.Writer) *ExportConfigLoader {
	return &ExportConfigLoader{
		storage: storage,
		stdin:   stdin,
		stderr:  stderr,
	}
}

func (this *ExportConfigLoader) LoadConfig(args []string) (config contracts.ExportConfig, err error) {
	config, err = this.parseCLI(args)
	if err != nil {
		return contracts.ExportConfig{}, err
	}

	config.Plan, err = this.parseConfigFile(config.JSONPath)
	if err != nil {
		return contracts.ExportConfig{}, err
	}

	this.applyDefaults(&config.Plan)

	err = this.validateConfigValues(config)
	if err != nil {
		return contracts.ExportConfig{}, err
	}

	return config, nil
}

func (this *ExportConfigLoader) parseCLI(args []string) (config contracts.ExportConfig, err error) {
	flags := flag.NewFlagSet("porter export", flag.ContinueOnError)
	flags.SetOutput(this.stderr)
	flags.StringVar(&config.JSONPath,
		"json",
		"_STDIN_",
		"Path to file with the export plan or, if equal to _STDIN_, read from stdin.",
	)
	flags.IntVar(&config.MaxRetry,
		"max-retry",
		5,
		"How many times to retry failed resource fetches.",
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(this.stderr, "Usage of porter export:")
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(this.stderr, `
exit code 0: success
exit code 1: general failure (see stderr for details)`)
	}
	err = flags.Parse(args)

	return config, err
}

func (this *ExportConfigLoader) parseConfigFile(path string) (plan contracts.ExportPlan, err error) {
	data, err := this.readRawJSON(path)
	if err != nil {
		return contracts.ExportPlan{}, err
	}
	return plan, json.Unmarshal(data, &plan)
}

func (this *ExportConfigLoader) readRawJSON(path string) (data []byte, err error) {
	if path == "" {
		return nil, blankJSONPathErr
	}
	if path == "_STDIN_" {
		return io.ReadAll(this.stdin)
	} else {
		return this.storage.ReadFile(path)
	}
}

func (this *ExportConfigLoader) applyDefaults(plan *contracts.ExportPlan) {
	if plan.Format == "" {
		plan.Format = "json"
	}
	if plan.OutputFilename == "" && plan.Format != "clipboard" {
		plan.OutputFilename = fmt.Sprintf(
			"guildroster_export_%s.%s", time.Now().Format("20060102_150405"), plan.Format)
	}
}

func (this *ExportConfigLoader) validateConfigValues(config contracts.ExportConfig) error {
	if config.MaxRetry < 0 {
		return maxRetryErr
	}
	if config.Plan.APIAddress == nil {
		return nilAPIAddressErr
	}
	switch config.Plan.Format {
	case "json", "zip", "clipboard":
	default:
		return unrecognizedFormatErr
	}
	return nil
}

var (
	maxRetryErr           = errors.New("max-retry must not be negative")
	blankJSONPathErr      = errors.New("json flag must be populated")
	nilAPIAddressErr      = errors.New("api address should not be nil")
	unrecognizedFormatErr = errors.New("format must be one of json, zip, or clipboard")
)
