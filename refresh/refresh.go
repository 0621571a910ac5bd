// Package refresh re-fetches saved pages and updates their stored content.
// It coordinates fetching, content cleaning, and conversion, skipping pages
// whose content has not changed since the last fetch.
package refresh

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagelens"
	"golang.org/x/sync/errgroup"
)

// Refresher re-fetches all saved pages concurrently.
type Refresher struct {
	Fetcher     pagelens.Fetcher
	Cleaner     pagelens.Cleaner
	Converter   pagelens.Converter
	Metadata    pagelens.MetadataExtractor
	Pages       pagelens.PageService
	RateLimiter pagelens.RateLimiter
	Concurrency int
}

// Result holds the outcome of a refresh operation.
type Result struct {
	Updated   int
	Unchanged int
	Failed    int
	Bytes     int
}

// ProgressEvent reports progress during a refresh operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressUpdated
	ProgressUnchanged
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting refresh progress.
type ProgressFunc func(event ProgressEvent)

// refreshResult holds the outcome of processing a single page.
type refreshResult struct {
	page      *pagelens.Page
	unchanged bool
	bytes     int
	err       error
}

// RefreshAll re-fetches every saved page and updates those whose content
// changed. The progress callback, if provided, receives events as pages
// complete.
func (r *Refresher) RefreshAll(ctx context.Context, progress ProgressFunc) (*Result, error) {
	pages, err := r.Pages.FindPages(ctx, pagelens.PageFilter{})
	if err != nil {
		return nil, fmt.Errorf("find pages: %w", err)
	}

	if len(pages) == 0 {
		return &Result{}, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(pages)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan refreshResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, page := range pages {
			page := page
			g.Go(func() error {
				resultCh <- r.refreshPage(gctx, page)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	for res := range resultCh {
		completed.Add(1)

		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       res.page.URL,
		}
		switch {
		case res.err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = res.err
		case res.unchanged:
			result.Unchanged++
			event.Type = ProgressUnchanged
		default:
			result.Updated++
			result.Bytes += res.bytes
			event.Type = ProgressUpdated
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// refreshPage fetches one page and updates it if its content changed.
func (r *Refresher) refreshPage(ctx context.Context, page *pagelens.Page) refreshResult {
	result := refreshResult{page: page}

	if r.RateLimiter != nil {
		pageURL, err := url.Parse(page.URL)
		if err != nil {
			result.err = fmt.Errorf("invalid page URL: %w", err)
			return result
		}
		if err := r.RateLimiter.Wait(ctx, pageURL.Host); err != nil {
			result.err = err
			return result
		}
	}

	html, err := r.Fetcher.Fetch(ctx, page.URL)
	if err != nil {
		result.err = err
		return result
	}

	cleaned, err := r.Cleaner.Clean(html)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := r.Converter.Convert(cleaned.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	if computeHash(markdown) == page.ContentHash {
		result.unchanged = true
		return result
	}

	upd := pagelens.PageUpdate{Content: &markdown}
	if r.Metadata != nil {
		if meta, err := r.Metadata.ExtractMetadata(html); err == nil {
			if meta.Title != "" {
				upd.Title = &meta.Title
			}
			if meta.Description != "" {
				upd.Description = &meta.Description
			}
		}
	}

	if _, err := r.Pages.UpdatePage(ctx, page.ID, upd); err != nil {
		result.err = err
		return result
	}

	result.bytes = len(markdown)
	return result
}

// computeHash computes a hash of the content using xxhash.
// It must match the hashing used by the page store.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h)
	return hex.EncodeToString(b[:])
}
