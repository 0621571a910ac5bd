// Package pagelens provides a local, CLI-based "chat with a web page" tool.
// It fetches a page, extracts its visible structure into typed blocks,
// serializes that structure into a compact outline for an LLM prompt, and
// answers natural language questions about the page. Pages can be saved as
// bookmarks and answers exported as HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, openai/, html/).
package pagelens
