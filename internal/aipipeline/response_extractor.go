package aipipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is a decoded JSON object taken from model output.
type Document = map[string]any

const detailPrefixLimit = 200

// Extractor pulls the JSON object out of free-form model text.
type Extractor interface {
	Extract(raw string) (Document, error)
}

const (
	ExtractorFirstLast = "first_last"
	ExtractorBalanced  = "balanced"
)

// NewExtractor returns the extractor registered under name, defaulting to the
// first/last brace heuristic.
func NewExtractor(name string) Extractor {
	switch name {
	case ExtractorBalanced:
		return BalancedExtractor{}
	default:
		return FirstLastExtractor{}
	}
}

// FirstLastExtractor decodes the span from the first '{' to the last '}'.
//
// Prose containing a stray brace, or a reply holding two JSON objects, is
// mis-extracted: the span then covers both and fails to decode. That outcome
// is accepted and surfaces as a parse_error.
//
// When no '}' follows the first '{' (truncated output, or every '}' sits
// before it) the tail from '{' is decoded as is, which also yields a
// parse_error. no_braces_found is reserved for text without any '{'.
type FirstLastExtractor struct{}

func (FirstLastExtractor) Extract(raw string) (Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &Error{Kind: KindExtractionFailure, Reason: ReasonEmptyResponse}
	}

	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return nil, &Error{Kind: KindExtractionFailure, Reason: ReasonNoBracesFound, Detail: prefix(raw)}
	}

	candidate := raw[start:]
	if end := strings.LastIndexByte(raw, '}'); end > start {
		candidate = raw[start : end+1]
	}
	return decodeObject(candidate)
}

// BalancedExtractor decodes the first object whose braces balance, ignoring
// braces inside string literals. Trailing prose and later objects are ignored.
type BalancedExtractor struct{}

func (BalancedExtractor) Extract(raw string) (Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &Error{Kind: KindExtractionFailure, Reason: ReasonEmptyResponse}
	}

	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return nil, &Error{Kind: KindExtractionFailure, Reason: ReasonNoBracesFound, Detail: prefix(raw)}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return decodeObject(raw[start : i+1])
			}
		}
	}
	// Unbalanced: let the decoder report where the object breaks off.
	return decodeObject(raw[start:])
}

func decodeObject(text string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &Error{
			Kind:   KindExtractionFailure,
			Reason: ReasonParseError,
			Detail: prefix(text),
			Err:    fmt.Errorf("decode model json: %w", err),
		}
	}
	if doc == nil {
		return nil, &Error{Kind: KindExtractionFailure, Reason: ReasonParseError, Detail: prefix(text)}
	}
	return doc, nil
}

func prefix(s string) string {
	if len(s) <= detailPrefixLimit {
		return s
	}
	return s[:detailPrefixLimit]
}
