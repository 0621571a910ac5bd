package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pagelens"
	main "github.com/fwojciec/pagelens/cmd/pagelens"
	"github.com/fwojciec/pagelens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageHTML = `<html><head><title>Retry Guide</title></head>
<body><main><h1>Retries</h1><p>Use exponential backoff when a request fails and try again later.</p></main></body></html>`

func askDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return testPageHTML, nil
			},
		},
		Cleaner: &mock.Cleaner{
			CleanFn: func(_ string) (*pagelens.CleanResult, error) {
				return &pagelens.CleanResult{Title: "Retry Guide", ContentHTML: "<p>Use exponential backoff.</p>"}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "Use exponential backoff.", nil
			},
		},
		Metadata: &mock.MetadataExtractor{
			ExtractMetadataFn: func(_ string) (*pagelens.PageMetadata, error) {
				return &pagelens.PageMetadata{Title: "Retry Guide"}, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string) (*pagelens.PageStructure, error) {
				return &pagelens.PageStructure{Blocks: []pagelens.Block{
					{ID: "b0", Kind: pagelens.KindHeading, Level: 1, Text: "Retries", HeadingPath: []string{"Retries"}, Region: pagelens.RegionMain},
				}}, nil
			},
		},
	}, stdout, stderr
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("asks question about unsaved URL and prints answer", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := askDeps(t)
		deps.Pages = &mock.PageService{
			FindPagesFn: func(_ context.Context, _ pagelens.PageFilter) ([]*pagelens.Page, error) {
				return []*pagelens.Page{}, nil
			},
		}

		var gotReq pagelens.AskRequest
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, req pagelens.AskRequest) (*pagelens.Completion, error) {
				gotReq = req
				return &pagelens.Completion{
					Text:         "Backoff doubles the delay between retries.",
					Model:        "gpt-5-mini",
					InputTokens:  100,
					OutputTokens: 20,
				}, nil
			},
		}

		cmd := &main.AskCmd{Target: "https://example.com/retries", Question: "What is backoff?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Backoff doubles the delay between retries.")
		assert.Contains(t, stderr.String(), "gpt-5-mini")

		// The request carries the structure overview and the question last
		assert.Contains(t, gotReq.Input, "=== PAGE STRUCTURE OVERVIEW ===")
		assert.Contains(t, gotReq.Input, "What is backoff?")
		assert.True(t, strings.Contains(gotReq.Instructions, "#scroll:"), "instructions should explain scroll links")
	})

	t.Run("records answer for saved page", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := askDeps(t)
		deps.Pages = &mock.PageService{
			FindPagesFn: func(_ context.Context, filter pagelens.PageFilter) ([]*pagelens.Page, error) {
				if filter.URL != nil && *filter.URL == "https://example.com/retries" {
					return []*pagelens.Page{{ID: "page-1", URL: "https://example.com/retries"}}, nil
				}
				return []*pagelens.Page{}, nil
			},
		}
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, _ pagelens.AskRequest) (*pagelens.Completion, error) {
				return &pagelens.Completion{Text: "Yes.", Model: "gpt-5-mini", InputTokens: 50, OutputTokens: 5}, nil
			},
		}

		var recorded *pagelens.Answer
		deps.Answers = &mock.AnswerService{
			CreateAnswerFn: func(_ context.Context, answer *pagelens.Answer) error {
				answer.ID = "ans-1"
				recorded = answer
				return nil
			},
		}

		cmd := &main.AskCmd{Target: "https://example.com/retries", Question: "Should I retry?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, recorded)
		assert.Equal(t, "page-1", recorded.PageID)
		assert.Equal(t, "Should I retry?", recorded.Question)
		assert.Equal(t, "gpt-5-mini", recorded.Model)
		assert.Contains(t, stderr.String(), "Recorded answer ans-1")
	})

	t.Run("resolves saved page by ID", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := askDeps(t)
		var fetchedURL string
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetchedURL = url
				return testPageHTML, nil
			},
		}
		deps.Pages = &mock.PageService{
			FindPageByIDFn: func(_ context.Context, id string) (*pagelens.Page, error) {
				if id == "page-1" {
					return &pagelens.Page{ID: "page-1", URL: "https://example.com/retries"}, nil
				}
				return nil, pagelens.Errorf(pagelens.ENOTFOUND, "page not found")
			},
		}
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, _ pagelens.AskRequest) (*pagelens.Completion, error) {
				return &pagelens.Completion{Text: "Answer.", Model: "gpt-5-mini"}, nil
			},
		}
		deps.Answers = &mock.AnswerService{
			CreateAnswerFn: func(_ context.Context, _ *pagelens.Answer) error { return nil },
		}

		cmd := &main.AskCmd{Target: "page-1", Question: "What is this?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/retries", fetchedURL)
		assert.Contains(t, stdout.String(), "Answer.")
	})

	t.Run("applies inline voice command", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := askDeps(t)
		deps.Pages = &mock.PageService{
			FindPagesFn: func(_ context.Context, _ pagelens.PageFilter) ([]*pagelens.Page, error) {
				return []*pagelens.Page{}, nil
			},
		}

		var gotReq pagelens.AskRequest
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, req pagelens.AskRequest) (*pagelens.Completion, error) {
				gotReq = req
				return &pagelens.Completion{Text: "Short.", Model: "gpt-5-mini"}, nil
			},
		}

		cmd := &main.AskCmd{Target: "https://example.com/retries", Question: "/voice concise what is backoff?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, gotReq.Instructions, "as few words as possible")
		assert.Contains(t, gotReq.Input, "what is backoff?")
		assert.NotContains(t, gotReq.Input, "/voice")
	})

	t.Run("rejects unknown voice flag", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := askDeps(t)

		cmd := &main.AskCmd{Target: "https://example.com/retries", Question: "hi?", Voice: "nope"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagelens.ENOTFOUND, pagelens.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns error when page ID not found", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := askDeps(t)
		deps.Pages = &mock.PageService{
			FindPageByIDFn: func(_ context.Context, _ string) (*pagelens.Page, error) {
				return nil, pagelens.Errorf(pagelens.ENOTFOUND, "page not found")
			},
		}

		cmd := &main.AskCmd{Target: "missing-id", Question: "hi?"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagelens.ENOTFOUND, pagelens.ErrorCode(err))
	})
}
