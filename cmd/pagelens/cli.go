package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goldmark"
	"github.com/fwojciec/pagelens/refresh"
	"github.com/fwojciec/pagelens/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Pages     pagelens.PageService
	Answers   pagelens.AnswerService
	Fetcher   pagelens.Fetcher
	Cleaner   pagelens.Cleaner
	Converter pagelens.Converter
	Metadata  pagelens.MetadataExtractor
	Extractor pagelens.Extractor
	Asker     pagelens.Asker
	Exporter  *goldmark.Exporter
	Refresher *refresh.Refresher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ask     AskCmd     `cmd:"" help:"Ask a question about a web page"`
	Outline OutlineCmd `cmd:"" help:"Print the structure overview of a page"`
	Save    SaveCmd    `cmd:"" help:"Save a page as a bookmark"`
	List    ListCmd    `cmd:"" help:"List saved pages"`
	Show    ShowCmd    `cmd:"" help:"Show a saved page"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved page and its answers"`
	Refresh RefreshCmd `cmd:"" help:"Re-fetch all saved pages"`
	Answers AnswersCmd `cmd:"" help:"List recorded answers for a page"`
	Export  ExportCmd  `cmd:"" help:"Export a recorded answer as standalone HTML"`
	Voices  VoicesCmd  `cmd:"" help:"List available voice presets"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Target    string `arg:"" help:"Page URL or saved page ID"`
	Question  string `arg:"" help:"Question to ask about the page"`
	Voice     string `short:"v" help:"Voice preset (see 'pagelens voices')"`
	Model     string `short:"m" help:"Model name (provider default when empty)"`
	Provider  string `default:"openai" enum:"openai,gemini" help:"LLM provider"`
	Effort    string `help:"Reasoning effort (minimal, low, medium, high)"`
	MaxTokens int    `name:"max-tokens" help:"Maximum output tokens"`
	Browser   bool   `short:"b" help:"Fetch with a headless browser"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	Target  string `arg:"" help:"Page URL or saved page ID"`
	Browser bool   `short:"b" help:"Fetch with a headless browser"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL     string `arg:"" help:"Page URL to save"`
	Browser bool   `short:"b" help:"Fetch with a headless browser"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Saved page ID"`
	Full bool   `help:"Show full page content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Saved page ID"`
	Force bool   `help:"Confirm deletion"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64 `default:"1.0" help:"Requests per second per domain"`
	Browser     bool    `short:"b" help:"Fetch with a headless browser"`
}

// AnswersCmd is the "answers" subcommand.
type AnswersCmd struct {
	Target string `arg:"" help:"Page URL or saved page ID"`
	Full   bool   `help:"Show full answer text"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	AnswerID string `arg:"" help:"Recorded answer ID"`
	Output   string `short:"o" help:"Output file (stdout when empty)"`
	Browser  bool   `short:"b" help:"Fetch with a headless browser"`
}

// VoicesCmd is the "voices" subcommand.
type VoicesCmd struct{}
