// Package jsonutil recovers structured objects from free-form model text.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractionError reports that no parseable JSON object was found.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string { return "json extraction failed: " + e.Reason }

var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \t]*\r?\n?(.*?)```")

// Extract recovers a JSON object from model output. It tries, in order:
// the first fenced code block, then the substring from the first '{' to
// the last '}'. The brace scan is not bracket-depth aware; prose that
// contains stray braces outside the intended JSON can mis-extract.
func Extract(text string) (map[string]any, error) {
	var out map[string]any
	if err := ExtractInto(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractInto is Extract decoding into a caller-supplied value.
func ExtractInto(text string, v any) error {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Unmarshal([]byte(candidate), v) == nil {
			return nil
		}
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		candidate := text[start : end+1]
		if err := json.Unmarshal([]byte(candidate), v); err == nil {
			return nil
		}
		return &ExtractionError{Reason: "brace-bounded substring is not valid JSON"}
	}
	return &ExtractionError{Reason: "no JSON object found in text"}
}

// MarshalNoEscape encodes v into JSON without escaping <, >, & into
// < and friends. Stream payloads carry HTML content, which must
// survive the wire untouched.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
