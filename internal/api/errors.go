// Package api provides the HTTP bindings for the trade-journal backend.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode"
)

// Kind classifies a normalized API failure.
type Kind string

const (
	KindTimeout    Kind = "timeout"
	KindNetwork    Kind = "network"
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindServer     Kind = "server"
)

// Error is the single error shape every failed request is normalized
// into before it reaches calling code. Fields is only populated for
// validation failures and maps dotted field paths to their messages.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api error [%s] status %d: %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api error [%s]: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the error is a field-level validation
// failure.
func (e *Error) IsValidation() bool {
	return e.Kind == KindValidation
}

// FieldSummary flattens the field errors into one human-readable line,
// with field paths prettified into labels.
func (e *Error) FieldSummary() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", FieldLabel(p), strings.Join(e.Fields[p], ", ")))
	}
	return strings.Join(parts, ", ")
}

// validationDetail is one entry of the backend's 422 response body.
// loc[0] is a fixed prefix ("body"); the remaining segments form the
// dotted field path.
type validationDetail struct {
	Type  string          `json:"type"`
	Loc   []locSegment    `json:"loc"`
	Msg   string          `json:"msg"`
	Input json.RawMessage `json:"input,omitempty"`
}

// locSegment is one loc entry; the backend mixes strings and integer
// indexes in the same array.
type locSegment string

func (s *locSegment) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = locSegment(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = locSegment(n.String())
	return nil
}

// parseValidationBody parses a 422 body into a field->messages mapping.
// Returns false when the body does not match the expected detail array,
// in which case the caller degrades the error to the server kind.
func parseValidationBody(body []byte) (map[string][]string, bool) {
	var details []validationDetail
	if err := json.Unmarshal(body, &details); err != nil || len(details) == 0 {
		// Some backends wrap the array in a detail envelope.
		var wrapped struct {
			Detail []validationDetail `json:"detail"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil || len(wrapped.Detail) == 0 {
			return nil, false
		}
		details = wrapped.Detail
	}

	fields := make(map[string][]string, len(details))
	for _, d := range details {
		path := fieldPath(d.Loc)
		fields[path] = append(fields[path], d.Msg)
	}
	return fields, true
}

// fieldPath joins loc segments past the fixed prefix into a dotted
// path, rendering numeric segments as indexes: body.scalePlans.2.qty
// becomes scalePlans[2].qty.
func fieldPath(loc []locSegment) string {
	if len(loc) <= 1 {
		return ""
	}

	var b strings.Builder
	for _, seg := range loc[1:] {
		s := string(seg)
		if isIndex(s) {
			b.WriteString("[" + s + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(s)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// FieldLabel converts a camelCase field path segment into a
// user-facing label: "limitPrice" becomes "Limit Price".
func FieldLabel(path string) string {
	// Label the final segment only; the path itself stays technical.
	if i := strings.LastIndexAny(path, ".]"); i >= 0 && i < len(path)-1 {
		path = path[i+1:]
	}

	var b strings.Builder
	for i, r := range path {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// statusMessage provides a flat fallback message per status code.
func statusMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return "not authorized"
	case status >= 500:
		return "server error"
	default:
		return http.StatusText(status)
	}
}
