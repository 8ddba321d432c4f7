package country

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"A"},{"nope":1},{"name":"B"}]`), 0644))

	core, logs := observer.New(zap.InfoLevel)
	loader := NewLoader(zap.New(core), 20)

	res, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, 1, res.Skipped)

	assert.Equal(t, 1, logs.FilterMessage("loaded dataset").Len())
	assert.Equal(t, 1, logs.FilterMessage("validation issues").Len())
}

func TestLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/countries.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[{"name":"Remote","population":"12,000"}]`))
	}))
	defer srv.Close()

	loader := NewLoader(nil, 20)
	res, err := loader.Load(context.Background(), srv.URL+"/data/countries.json")
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, float64(12000), res.Data[0].Population)

	_, err = loader.Load(context.Background(), srv.URL+"/missing.json")
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	assert.Contains(t, err.Error(), "HTTP error! status: 404")
}

func TestLoader_Failures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name":`), 0644))

	loader := NewLoader(zap.NewNop(), 20)

	_, err := loader.Load(context.Background(), filepath.Join(dir, "missing.json"))
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = loader.Load(context.Background(), bad)
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, bad, lerr.Source)
}

func TestLoader_RootNotArrayIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obj.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"A"}`), 0644))

	res, err := NewLoader(nil, 20).Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotArray))
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, path, lerr.Source)
	assert.Empty(t, res.Data)
}

func TestTruncate(t *testing.T) {
	msgs := []string{"a", "b", "c", "d"}

	shown, more := Truncate(msgs, 2)
	assert.Equal(t, []string{"a", "b"}, shown)
	assert.Equal(t, 2, more)

	shown, more = Truncate(msgs, 10)
	assert.Equal(t, msgs, shown)
	assert.Zero(t, more)

	shown, more = Truncate(msgs, 0)
	assert.Equal(t, msgs, shown)
	assert.Zero(t, more)
}
