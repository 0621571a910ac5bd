package pagelens

import (
	"fmt"
	"strings"
)

// baseInstructions are sent with every request, ahead of any voice preset.
const baseInstructions = "You are answering questions about a single web page. " +
	"Answer based only on the page content provided. If the answer is not on the page, say so. " +
	"When referring to a specific part of the page, link to it as [label](#scroll:phrase) " +
	"where phrase is a short literal quote from that part of the page."

// PromptContext carries everything the prompt builder needs about a page.
type PromptContext struct {
	Metadata  *PageMetadata
	Structure *PageStructure
	Content   string // Markdown, optional
}

// BuildInstructions composes the system-level instructions from the base
// rules, an optional voice preset, and optional free-form style text.
func BuildInstructions(voice *Voice, style string) string {
	parts := []string{baseInstructions}
	if voice != nil && voice.Instructions != "" {
		parts = append(parts, voice.Instructions)
	}
	if style != "" {
		parts = append(parts, "Style: "+style)
	}
	return strings.Join(parts, "\n\n")
}

// BuildInput composes the request input: page metadata, the serialized
// structure overview (embedded verbatim), the page content when available,
// and the question last.
func BuildInput(pctx PromptContext, question string) string {
	var sb strings.Builder

	if pctx.Metadata != nil {
		if pctx.Metadata.Title != "" {
			fmt.Fprintf(&sb, "Page title: %s\n", pctx.Metadata.Title)
		}
		if pctx.Metadata.Canonical != "" {
			fmt.Fprintf(&sb, "URL: %s\n", pctx.Metadata.Canonical)
		}
		if pctx.Metadata.Description != "" {
			fmt.Fprintf(&sb, "Description: %s\n", pctx.Metadata.Description)
		}
		sb.WriteString("\n")
	}

	if overview := SerializeStructure(pctx.Structure); overview != "" {
		sb.WriteString(overview)
		sb.WriteString("\n")
	}

	if pctx.Content != "" {
		sb.WriteString("=== PAGE CONTENT ===\n")
		sb.WriteString(pctx.Content)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
