//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/file"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/memory"
)

func postQuote(client *http.Client, baseURL, text, author string) (dto.QuoteResponse, int, error) {
	body, err := json.Marshal(map[string]string{"quote": text, "author": author})
	if err != nil {
		return dto.QuoteResponse{}, 0, err
	}

	resp, err := client.Post(baseURL+"/quotes", "application/json", bytes.NewReader(body))
	if err != nil {
		return dto.QuoteResponse{}, 0, err
	}
	defer resp.Body.Close()

	var q dto.QuoteResponse
	if resp.StatusCode == http.StatusCreated {
		if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
			return dto.QuoteResponse{}, resp.StatusCode, err
		}
	}

	return q, resp.StatusCode, nil
}

func listQuotes(t *testing.T, client *http.Client, baseURL string) []dto.QuoteResponse {
	t.Helper()

	resp, err := client.Get(baseURL + "/quotes")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var quotes []dto.QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quotes))

	return quotes
}

// TestConcurrent_CreateAssignsUniqueIDs posts from many goroutines at once
// and checks every created quote got its own id.
func TestConcurrent_CreateAssignsUniqueIDs(t *testing.T) {
	store, err := memory.New(memory.SeedQuotes()...)
	require.NoError(t, err)

	ts := newQuotesServer(t, store)
	client := ts.Client()

	const numGoroutines = 50

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]int, numGoroutines)
	)

	errs := make(chan error, numGoroutines)

	for i := range numGoroutines {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			q, status, err := postQuote(client, ts.URL, fmt.Sprintf("quote %d", n), "concurrent")
			if err != nil {
				errs <- err
				return
			}

			if status != http.StatusCreated {
				errs <- fmt.Errorf("post %d: unexpected status %d", n, status)
				return
			}

			mu.Lock()
			ids[q.ID]++
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}

	assert.Len(t, ids, numGoroutines, "every create should get a distinct id")

	for id, n := range ids {
		assert.Equal(t, 1, n, "id %d issued more than once", id)
		assert.Greater(t, id, int64(8721), "ids continue after the largest seed id")
	}

	assert.Len(t, listQuotes(t, client, ts.URL), 3+numGoroutines)
}

// TestConcurrent_MixedReadsAndWrites runs readers against writers that
// create and delete quotes. Readers must only ever see 200 or 404.
func TestConcurrent_MixedReadsAndWrites(t *testing.T) {
	store, err := memory.New(memory.SeedQuotes()...)
	require.NoError(t, err)

	ts := newQuotesServer(t, store)
	client := ts.Client()

	const (
		writers = 10
		readers = 20
		rounds  = 10
	)

	var (
		wg         sync.WaitGroup
		unexpected atomic.Int32
	)

	for w := range writers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			for r := range rounds {
				q, status, err := postQuote(client, ts.URL, fmt.Sprintf("w%d-r%d", w, r), "writer")
				if err != nil || status != http.StatusCreated {
					unexpected.Add(1)
					continue
				}

				req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/quotes/%d", ts.URL, q.ID), nil)
				resp, err := client.Do(req)
				if err != nil {
					unexpected.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				if resp.StatusCode != http.StatusNoContent {
					unexpected.Add(1)
				}
			}
		}(w)
	}

	paths := []string{"/quotes", "/quotes/8721", "/quotes/quote/random", "/quotes/8730"}

	for r := range readers {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()

			for i := range rounds {
				resp, err := client.Get(ts.URL + paths[(r+i)%len(paths)])
				if err != nil {
					unexpected.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
					unexpected.Add(1)
				}
			}
		}(r)
	}

	wg.Wait()

	assert.Zero(t, unexpected.Load())
	assert.Len(t, listQuotes(t, client, ts.URL), 3, "every created quote was deleted again")
}

// TestConcurrent_FileStoreSurvivesRestart writes through one server, opens
// the same data file in a fresh store and checks nothing was lost.
func TestConcurrent_FileStoreSurvivesRestart(t *testing.T) {
	for _, name := range []string{"quotes.json", "quotes.yaml"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			first, err := file.Open(file.Config{Path: path, Seed: memory.SeedQuotes(), Logger: logger})
			require.NoError(t, err)

			ts := newQuotesServer(t, first)

			const numGoroutines = 20

			var wg sync.WaitGroup
			for i := range numGoroutines {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()

					_, status, err := postQuote(ts.Client(), ts.URL, fmt.Sprintf("persisted %d", n), "file")
					assert.NoError(t, err)
					assert.Equal(t, http.StatusCreated, status)
				}(i)
			}
			wg.Wait()

			before := listQuotes(t, ts.Client(), ts.URL)
			require.Len(t, before, 3+numGoroutines)
			ts.Close()

			second, err := file.Open(file.Config{Path: path, Logger: logger})
			require.NoError(t, err)

			restarted := newQuotesServer(t, second)
			after := listQuotes(t, restarted.Client(), restarted.URL)

			assert.ElementsMatch(t, before, after)

			// The id sequence resumes past everything already stored.
			q, status, err := postQuote(restarted.Client(), restarted.URL, "after restart", "file")
			require.NoError(t, err)
			require.Equal(t, http.StatusCreated, status)

			for _, existing := range after {
				assert.NotEqual(t, existing.ID, q.ID)
			}
		})
	}
}
