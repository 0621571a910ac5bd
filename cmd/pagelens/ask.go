package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagelens"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	styleCmd, err := pagelens.ParseStyleCommand(c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	voice := styleCmd.Voice
	if voice == nil && c.Voice != "" {
		v, err := pagelens.LookupVoice(c.Voice)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
			return err
		}
		voice = &v
	}

	page, pageURL, err := resolvePage(deps, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, pageURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	structure, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	// Metadata and content are best-effort; the structure overview alone
	// is enough to answer most questions.
	var meta *pagelens.PageMetadata
	if m, err := deps.Metadata.ExtractMetadata(html); err == nil {
		meta = m
	}

	var content string
	if cleaned, err := deps.Cleaner.Clean(html); err == nil {
		if md, err := deps.Converter.Convert(cleaned.ContentHTML); err == nil {
			content = md
		}
	}
	if content == "" && page != nil {
		content = page.Content
	}

	req := pagelens.AskRequest{
		Model:        c.Model,
		Instructions: pagelens.BuildInstructions(voice, styleCmd.Style),
		Input: pagelens.BuildInput(pagelens.PromptContext{
			Metadata:  meta,
			Structure: structure,
			Content:   content,
		}, styleCmd.Question),
		MaxOutputTokens: c.MaxTokens,
		ReasoningEffort: c.Effort,
	}

	completion, err := deps.Asker.Ask(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, completion.Text)

	cost := pagelens.EstimateCost(completion.Model, completion.InputTokens, completion.OutputTokens)
	fmt.Fprintf(deps.Stderr, "%s  %d in / %d out  $%.4f\n",
		completion.Model, completion.InputTokens, completion.OutputTokens, cost)

	// Record the exchange when the page is bookmarked
	if page != nil {
		var voiceName string
		if voice != nil {
			voiceName = voice.Name
		}
		answer := &pagelens.Answer{
			PageID:       page.ID,
			Question:     styleCmd.Question,
			Text:         completion.Text,
			Model:        completion.Model,
			Voice:        voiceName,
			InputTokens:  completion.InputTokens,
			OutputTokens: completion.OutputTokens,
			CostUSD:      cost,
		}
		if err := deps.Answers.CreateAnswer(deps.Ctx, answer); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not record answer: %s\n", pagelens.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "Recorded answer %s\n", answer.ID)
		}
	}

	return nil
}

// resolvePage resolves a target argument to a saved page and a fetchable
// URL. A URL target may or may not be bookmarked; an ID target must be.
func resolvePage(deps *Dependencies, target string) (*pagelens.Page, string, error) {
	if strings.Contains(target, "://") {
		pages, err := deps.Pages.FindPages(deps.Ctx, pagelens.PageFilter{URL: &target})
		if err != nil {
			return nil, "", err
		}
		if len(pages) > 0 {
			return pages[0], target, nil
		}
		return nil, target, nil
	}

	page, err := deps.Pages.FindPageByID(deps.Ctx, target)
	if err != nil {
		return nil, "", err
	}
	return page, page.URL, nil
}
