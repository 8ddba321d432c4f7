package country

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotAnObject is returned for array elements that are not JSON objects.
	ErrNotAnObject = errors.New("not an object")
	// ErrMissingName is returned when the trimmed name is empty or not a string.
	ErrMissingName = errors.New(`missing "name"`)
	// ErrRootNotArray is reported when the dataset root is not a JSON array.
	ErrRootNotArray = errors.New("Root JSON is not an array")
)

// ValidationError describes why the element at Index was skipped.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrNotAnObject) {
		return fmt.Sprintf("Item #%d is not an object", e.Index)
	}
	return fmt.Sprintf("Item #%d %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// rawRecord is the tolerant decoding target for one dataset element.
type rawRecord struct {
	Name       looseString    `json:"name"`
	Capital    looseString    `json:"capital"`
	Region     looseString    `json:"region"`
	Population looseNumber    `json:"population"`
	Area       looseNumber    `json:"area"`
	Borders    looseStrings   `json:"borders"`
	Timezones  looseStrings   `json:"timezones"`
	Languages  looseLanguages `json:"languages"`
}

// Normalize validates a single raw element and coerces it into a Record.
// Only a non-object element or an empty name fails; every other field falls
// back to its default.
func Normalize(raw json.RawMessage, index int) (Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Record{}, &ValidationError{Index: index, Err: ErrNotAnObject}
	}

	var rr rawRecord
	if err := json.Unmarshal(trimmed, &rr); err != nil {
		return Record{}, &ValidationError{Index: index, Err: ErrNotAnObject}
	}
	if rr.Name == "" {
		return Record{}, &ValidationError{Index: index, Err: ErrMissingName}
	}

	return Record{
		Name:       string(rr.Name),
		Capital:    string(rr.Capital),
		Region:     string(rr.Region),
		Population: float64(rr.Population),
		Area:       float64(rr.Area),
		Borders:    orEmpty(rr.Borders),
		Timezones:  orEmpty(rr.Timezones),
		Languages:  orEmptyLanguages(rr.Languages),
	}, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyLanguages(l []Language) []Language {
	if l == nil {
		return []Language{}
	}
	return l
}

// Result is the outcome of validating a whole dataset.
type Result struct {
	Data    []Record `json:"data"`
	Errors  []string `json:"errors"`
	Skipped int      `json:"skipped"`

	// badRoot is set when the root was not a JSON array.
	badRoot bool
}

// ValidateAll normalises every element of a JSON array independently. A
// failing element is recorded in Errors and skipped; it never aborts the
// batch. A root that is not an array yields no data and a single error.
func ValidateAll(raw json.RawMessage) Result {
	var elements []json.RawMessage
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' || json.Unmarshal(trimmed, &elements) != nil {
		return Result{
			Data:   []Record{},
			Errors:  []string{ErrRootNotArray.Error()},
			badRoot: true,
		}
	}

	res := Result{
		Data:   make([]Record, 0, len(elements)),
		Errors: []string{},
	}
	for i, el := range elements {
		rec, err := Normalize(el, i)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Data = append(res.Data, rec)
	}
	res.Skipped = len(res.Errors)
	return res
}
