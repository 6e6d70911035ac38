package core

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/smartystreets/clock"

	"github.com/guildroster/porter/contracts"
)

// Collector gathers every selected resource concurrently and wraps each in
// an envelope stamped at the completion of its own fetch. A single failing
// fetcher fails the whole collection; no partial bundle is returned.
type Collector struct {
	clock *clock.Clock
}

func NewCollector() *Collector {
	return &Collector{}
}

func (this *Collector) Collect(fetchers map[string]contracts.ResourceFetcher, selected []string) (contracts.ExportBundle, error) {
	keys := availableKeys(fetchers, selected)
	waiter := new(sync.WaitGroup)
	waiter.Add(len(keys))
	results := make(chan fetchResult)

	for _, key := range keys {
		go this.fetch(key, fetchers[key], results, waiter)
	}
	go awaitCompletion(waiter, results)

	bundle := make(contracts.ExportBundle)
	var failure error
	for result := range results {
		if result.err != nil {
			if failure == nil {
				failure = fmt.Errorf("fetch of %s failed: %w", result.key, result.err)
			}
			continue
		}
		bundle[result.key] = result.envelope
	}
	if failure != nil {
		return nil, failure
	}
	return bundle, nil
}

func (this *Collector) fetch(key string, fetcher contracts.ResourceFetcher, results chan fetchResult, waiter *sync.WaitGroup) {
	defer waiter.Done()
	records, err := fetcher.FetchAll()
	if err != nil {
		results <- fetchResult{key: key, err: err}
		return
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		results <- fetchResult{key: key, err: err}
		return
	}
	results <- fetchResult{key: key, envelope: contracts.ResourceEnvelope{
		ID:         key,
		ExportedAt: this.clock.UTCNow().Format(time.RFC3339),
		Data:       data,
	}}
}

func awaitCompletion(waiter *sync.WaitGroup, results chan fetchResult) {
	waiter.Wait()
	close(results)
}

// availableKeys drops selected keys that have no registered fetcher.
func availableKeys(fetchers map[string]contracts.ResourceFetcher, selected []string) (keys []string) {
	for _, key := range selected {
		if _, found := fetchers[key]; found {
			keys = append(keys, key)
		}
	}
	return keys
}

type fetchResult struct {
	key      string
	envelope contracts.ResourceEnvelope
	err      error
}
