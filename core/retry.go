package core

import (
	"encoding/json"
	"time"

	"github.com/smartystreets/clock"
	"github.com/smartystreets/logging"

	"github.com/guildroster/porter/contracts"
)

const retryNap = time.Second * 3

// RetryFetcher decorates a ResourceFetcher with fixed-interval retries.
type RetryFetcher struct {
	sleeper  *clock.Sleeper
	logger   *logging.Logger
	inner    contracts.ResourceFetcher
	maxRetry int
}

func NewRetryFetcher(inner contracts.ResourceFetcher, maxRetry int) *RetryFetcher {
	return &RetryFetcher{inner: inner, maxRetry: maxRetry}
}

func (this *RetryFetcher) FetchAll() (records []json.RawMessage, err error) {
	for x := 0; x <= this.maxRetry; x++ {
		records, err = this.inner.FetchAll()
		if err == nil {
			return records, nil
		}
		if x < this.maxRetry {
			this.logger.Println("[WARN] fetch failed, retry imminent.")
			this.sleeper.Sleep(retryNap)
		}
	}
	return nil, err
}

// Import submission is deliberately not retried: the endpoint is not
// idempotent and a failed submission is a terminal state for the flow.
