package main

import (
	"errors"
	"flag"
	"net/url"
)

const defaultAPIAddress = "http://localhost:8000/api"

type ImportConfig struct {
	BaseURL url.URL
	Path    string
	Submit  bool
}

func parseImportConfig(name string, args []string) (config ImportConfig, err error) {
	var address string
	flags := flag.NewFlagSet("porter "+name, flag.ContinueOnError)
	flags.StringVar(&address,
		"api",
		defaultAPIAddress,
		"Base address of the GuildRoster REST API.",
	)
	flags.BoolVar(&config.Submit,
		"submit",
		false,
		"When set, push the validated bundle to the backend import endpoint.",
	)
	err = flags.Parse(args)
	if err != nil {
		return ImportConfig{}, err
	}

	config.Path = flags.Arg(0)
	if config.Path == "" {
		return ImportConfig{}, errors.New("a file to " + name + " is required")
	}
	config.BaseURL, err = parseAddress(address)
	if err != nil {
		return ImportConfig{}, err
	}
	return config, nil
}

func parseAddress(address string) (url.URL, error) {
	parsed, err := url.Parse(address)
	if err != nil {
		return url.URL{}, err
	}
	return *parsed, nil
}
