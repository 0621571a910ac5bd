package pagelens

import (
	"sort"
	"strings"
)

// Voice is a named prompt preset that shapes how answers are written.
type Voice struct {
	Name         string
	Instructions string
}

// voices holds the built-in voice presets.
var voices = map[string]Voice{
	"default": {
		Name:         "default",
		Instructions: "Answer clearly and directly, using Markdown formatting.",
	},
	"concise": {
		Name:         "concise",
		Instructions: "Answer in as few words as possible. Prefer bullet points over prose. Never restate the question.",
	},
	"detailed": {
		Name:         "detailed",
		Instructions: "Answer thoroughly. Cover edge cases and nuances the page mentions, with section headings for longer answers.",
	},
	"teacher": {
		Name:         "teacher",
		Instructions: "Explain as if teaching someone new to the topic. Define terms on first use and build up from simple ideas.",
	},
	"skeptic": {
		Name:         "skeptic",
		Instructions: "Point out claims on the page that lack evidence or sources, and distinguish what the page asserts from what it demonstrates.",
	},
}

// LookupVoice returns the named voice preset.
// Returns ENOTFOUND if no preset with that name exists.
func LookupVoice(name string) (Voice, error) {
	v, ok := voices[name]
	if !ok {
		return Voice{}, Errorf(ENOTFOUND, "unknown voice %q (available: %s)", name, strings.Join(VoiceNames(), ", "))
	}
	return v, nil
}

// VoiceNames returns the names of all built-in voices, sorted.
func VoiceNames() []string {
	names := make([]string, 0, len(voices))
	for name := range voices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleCommand is a parsed inline style directive from a question.
type StyleCommand struct {
	// Voice is the preset named by a /voice command, if any.
	Voice *Voice

	// Style is free-form style text from a /style command, if any.
	Style string

	// Question is the remainder of the input with commands stripped.
	Question string
}

// ParseStyleCommand parses leading /voice and /style directives from a
// question. The upstream chat UI accepted these inline, so the CLI does too:
//
//	/voice concise what does the retry loop do?
//	/style like a pirate what is this page about?
//
// A /style command consumes words up to the first question mark-free
// separator "--" or, absent one, the first two words. Input without a
// leading slash passes through unchanged.
func ParseStyleCommand(input string) (*StyleCommand, error) {
	trimmed := strings.TrimSpace(input)

	if !strings.HasPrefix(trimmed, "/") {
		return &StyleCommand{Question: trimmed}, nil
	}

	fields := strings.Fields(trimmed)
	switch fields[0] {
	case "/voice":
		if len(fields) < 3 {
			return nil, Errorf(EINVALID, "usage: /voice <name> <question>")
		}
		v, err := LookupVoice(fields[1])
		if err != nil {
			return nil, err
		}
		return &StyleCommand{
			Voice:    &v,
			Question: strings.Join(fields[2:], " "),
		}, nil

	case "/style":
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "/style"))
		if rest == "" {
			return nil, Errorf(EINVALID, "usage: /style <description> -- <question>")
		}
		// Explicit separator wins; otherwise the first two words are
		// the style description.
		if before, after, ok := strings.Cut(rest, "--"); ok {
			style := strings.TrimSpace(before)
			question := strings.TrimSpace(after)
			if style == "" || question == "" {
				return nil, Errorf(EINVALID, "usage: /style <description> -- <question>")
			}
			return &StyleCommand{Style: style, Question: question}, nil
		}
		restFields := strings.Fields(rest)
		if len(restFields) < 3 {
			return nil, Errorf(EINVALID, "usage: /style <description> -- <question>")
		}
		return &StyleCommand{
			Style:    strings.Join(restFields[:2], " "),
			Question: strings.Join(restFields[2:], " "),
		}, nil

	default:
		return nil, Errorf(EINVALID, "unknown command %q (available: /voice, /style)", fields[0])
	}
}
