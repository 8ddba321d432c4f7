package country

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// DefaultSource is the dataset location used when none is configured.
const DefaultSource = "data/countries.json"

// LoadError is a fatal failure to fetch or parse the dataset.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader fetches the raw dataset once and validates it. Sources starting
// with http:// or https:// are fetched over HTTP; anything else is a file
// path. There is no retry: a failure is terminal.
type Loader struct {
	Client      *http.Client
	Logger      *zap.Logger
	MaxReported int
}

// NewLoader creates a loader reporting at most maxReported validation
// messages in its log output.
func NewLoader(logger *zap.Logger, maxReported int) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		Client:      http.DefaultClient,
		Logger:      logger,
		MaxReported: maxReported,
	}
}

// Load reads and validates the dataset at source. A root that is not a JSON
// array is a LoadError wrapping ErrRootNotArray.
func (l *Loader) Load(ctx context.Context, source string) (Result, error) {
	if source == "" {
		source = DefaultSource
	}

	body, err := l.read(ctx, source)
	if err != nil {
		return Result{}, &LoadError{Source: source, Err: err}
	}
	if !json.Valid(body) {
		return Result{}, &LoadError{Source: source, Err: fmt.Errorf("invalid JSON")}
	}

	res := ValidateAll(body)
	if res.badRoot {
		return Result{}, &LoadError{Source: source, Err: ErrRootNotArray}
	}
	l.report(source, res)
	return res, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !isRemote(source) {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (l *Loader) report(source string, res Result) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("loaded dataset",
		zap.String("source", source),
		zap.Int("valid", len(res.Data)),
		zap.Int("skipped", res.Skipped))

	if len(res.Errors) == 0 {
		return
	}
	shown, more := Truncate(res.Errors, l.MaxReported)
	log.Warn("validation issues", zap.Strings("errors", shown), zap.Int("more", more))
}

// Truncate returns the first max messages and how many were left out.
// A non-positive max keeps everything.
func Truncate(messages []string, max int) ([]string, int) {
	if max <= 0 || len(messages) <= max {
		return messages, 0
	}
	return messages[:max], len(messages) - max
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
