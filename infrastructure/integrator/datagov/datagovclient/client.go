package datagovclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

const maxAttempts = 3

// retryDelays is the fixed backoff schedule, indexed by attempt.
var retryDelays = []time.Duration{60 * time.Second, 120 * time.Second, 300 * time.Second}

// FetchError marks a feed fetch that failed permanently after retries.
type FetchError struct {
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return errors.Wrapf(e.Err, "API request failed after %d attempts", e.Attempts).Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client interface {
	FetchRecords(ctx context.Context) ([]domain.RawRecord, error)
}

// feedResponse is the datastore envelope; everything beyond the records
// array is ignored.
type feedResponse struct {
	Records []domain.RawRecord `json:"records"`
}

type DataGovClient struct {
	httpClient *http.Client
	cfg        *config.Config

	// sleep is swapped out in tests so backoff does not actually wait.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewClient(cfg *config.Config) *DataGovClient {
	timeout := time.Duration(cfg.DataGov.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &DataGovClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg:   cfg,
		sleep: sleepContext,
	}
}

// FetchRecords downloads the feed, retrying up to three times on the fixed
// backoff schedule. A response without a records array yields an empty
// slice, not an error. No state is retained across attempts.
func (c *DataGovClient) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		logrus.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"max":     maxAttempts,
			"source":  c.cfg.DataGov.Source,
		}).Info("datagov: fetching records")

		records, err := c.fetchOnce(ctx)
		if err == nil {
			logrus.WithField("records", len(records)).Info("datagov: feed fetched")
			return records, nil
		}

		lastErr = err
		logrus.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"error":   err.Error(),
		}).Warn("datagov: feed request failed")

		if attempt < maxAttempts-1 {
			delay := retryDelays[attempt]
			logrus.WithField("delay", delay.String()).Info("datagov: retrying after backoff")
			if err := c.sleep(ctx, delay); err != nil {
				return nil, &FetchError{Attempts: attempt + 1, Err: err}
			}
		}
	}

	return nil, &FetchError{Attempts: maxAttempts, Err: lastErr}
}

func (c *DataGovClient) fetchOnce(ctx context.Context) ([]domain.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.FeedURL(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building feed request")
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.DataGov.APIKey != "" {
		req.Header.Set("api-key", c.cfg.DataGov.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "executing feed request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, errors.Errorf("feed request failed with status: %s", resp.Status)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decoding feed response")
	}

	if payload.Records == nil {
		return []domain.RawRecord{}, nil
	}

	return payload.Records, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
