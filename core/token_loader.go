package core

import (
	"errors"
	"strings"

	"github.com/guildroster/porter/contracts"
)

// TokenLoader resolves the API token for the GuildRoster backend, either
// directly from the environment or from a token file.
type TokenLoader struct {
	storage     contracts.FileReader
	environment contracts.Environment
}

func NewTokenLoader(storage contracts.FileReader, environment contracts.Environment) TokenLoader {
	return TokenLoader{storage: storage, environment: environment}
}

func (this TokenLoader) Load() (string, error) {
	token, found := this.environment.LookupEnv("GUILDROSTER_API_TOKEN")
	token = strings.TrimSpace(token)
	if found && token != "" {
		return token, nil
	}

	path, found := this.environment.LookupEnv("GUILDROSTER_TOKEN_FILE")
	path = strings.TrimSpace(path)
	if !found || path == "" {
		return "", errors.New("either GUILDROSTER_API_TOKEN or GUILDROSTER_TOKEN_FILE is required")
	}
	data, err := this.storage.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
