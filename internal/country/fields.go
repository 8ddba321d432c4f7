package country

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The loose* types decode a single raw field and never fail: anything of the
// wrong shape collapses to the field's zero value.

type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		*s = ""
		return nil
	}
	*s = looseString(strings.TrimSpace(v))
	return nil
}

type looseNumber float64

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	*n = 0

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = looseNumber(nonNegative(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = looseNumber(parseNumber(s))
	}
	return nil
}

// parseNumber accepts thousands separators ("1,234") and surrounding
// whitespace. Blank or unparsable text is 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return nonNegative(f)
}

func nonNegative(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

type looseStrings []string

func (l *looseStrings) UnmarshalJSON(b []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		*l = nil
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s looseString
		_ = s.UnmarshalJSON(item)
		if s != "" {
			out = append(out, string(s))
		}
	}
	*l = unique(out)
	return nil
}

// languageInput is the ingestion-side union for a languages entry: either a
// bare string or an object carrying a name.
type languageInput struct {
	name string
}

func (li *languageInput) UnmarshalJSON(b []byte) error {
	li.name = ""

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		li.name = strings.TrimSpace(s)
		return nil
	}

	var obj struct {
		Name looseString `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		li.name = string(obj.Name)
	}
	return nil
}

type looseLanguages []Language

func (l *looseLanguages) UnmarshalJSON(b []byte) error {
	var items []languageInput
	if err := json.Unmarshal(b, &items); err != nil {
		*l = nil
		return nil
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.name != "" {
			names = append(names, item.name)
		}
	}
	names = unique(names)
	out := make([]Language, len(names))
	for i, name := range names {
		out[i] = Language{Name: name}
	}
	*l = out
	return nil
}

// unique removes duplicates, keeping the first occurrence of each value.
func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
