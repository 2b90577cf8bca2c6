package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/palabras"
	"github.com/fwojciec/palabras/lookup"
)

// SectionService returns the language section of a page as Markdown.
type SectionService interface {
	LookupSection(ctx context.Context, word string, opts palabras.LookupOptions) (string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Words    palabras.WordService
	Sections SectionService
}

// LookupCmd looks up one or more words and prints them.
type LookupCmd struct {
	Words       []string
	Revision    int
	Full        bool
	JSON        bool
	Raw         bool
	Concurrency int
}

// Run executes the lookup. Returns ErrLookupFailed if any word failed.
func (c *LookupCmd) Run(deps *Dependencies) error {
	opts := palabras.LookupOptions{Revision: c.Revision}

	if c.Raw {
		return c.runRaw(deps, opts)
	}

	results := lookup.LookupAll(deps.Ctx, deps.Words, c.Words, opts, c.Concurrency)

	if c.JSON {
		return c.writeJSON(deps, results)
	}

	failed := false
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if r.Err != nil {
			failed = true
			reportError(deps, r.Err)
			continue
		}
		if c.Full {
			fmt.Fprintln(deps.Stdout, palabras.FormatFull(r.Result))
		} else {
			fmt.Fprintln(deps.Stdout, palabras.FormatCompact(r.Result))
		}
	}

	if failed {
		return ErrLookupFailed
	}
	return nil
}

func (c *LookupCmd) runRaw(deps *Dependencies, opts palabras.LookupOptions) error {
	failed := false
	for i, word := range c.Words {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		md, err := deps.Sections.LookupSection(deps.Ctx, word, opts)
		if err != nil {
			failed = true
			reportError(deps, err)
			continue
		}
		fmt.Fprintln(deps.Stdout, md)
	}
	if failed {
		return ErrLookupFailed
	}
	return nil
}

// jsonResult is one word of the --json output.
type jsonResult struct {
	Word   string               `json:"word"`
	Result *palabras.WordResult `json:"result,omitempty"`
	Code   string               `json:"code,omitempty"`
	Error  string               `json:"error,omitempty"`
}

func (c *LookupCmd) writeJSON(deps *Dependencies, results []lookup.Result) error {
	out := make([]jsonResult, 0, len(results))
	failed := false
	for _, r := range results {
		jr := jsonResult{Word: r.Word, Result: r.Result}
		if r.Err != nil {
			failed = true
			jr.Code = palabras.ErrorCode(r.Err)
			jr.Error = palabras.ErrorMessage(r.Err)
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if failed {
		return ErrLookupFailed
	}
	return nil
}

// reportError prints not-found messages to stdout, like a normal answer,
// and every other failure to stderr.
func reportError(deps *Dependencies, err error) {
	switch palabras.ErrorCode(err) {
	case palabras.ENOTFOUND:
		fmt.Fprintln(deps.Stdout, palabras.ErrorMessage(err))
	case palabras.EINTERNAL:
		fmt.Fprintln(deps.Stderr, "error:", strings.TrimSpace(err.Error()))
	default:
		fmt.Fprintln(deps.Stderr, "error:", palabras.ErrorMessage(err))
	}
}
