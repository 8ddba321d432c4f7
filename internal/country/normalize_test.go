package country

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Defaults(t *testing.T) {
	rec, err := Normalize(json.RawMessage(`{"name":"  Aland  "}`), 0)
	require.NoError(t, err)

	want := Record{
		Name:      "Aland",
		Borders:   []string{},
		Timezones: []string{},
		Languages: []Language{},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestNormalize_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
		msg  string
	}{
		{"null", `null`, ErrNotAnObject, "Item #3 is not an object"},
		{"string", `"France"`, ErrNotAnObject, "Item #3 is not an object"},
		{"number", `42`, ErrNotAnObject, "Item #3 is not an object"},
		{"array", `[{"name":"X"}]`, ErrNotAnObject, "Item #3 is not an object"},
		{"no name", `{"capital":"Paris"}`, ErrMissingName, `Item #3 missing "name"`},
		{"blank name", `{"name":"   "}`, ErrMissingName, `Item #3 missing "name"`},
		{"numeric name", `{"name":12}`, ErrMissingName, `Item #3 missing "name"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(json.RawMessage(tt.raw), 3)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, tt.msg, err.Error())

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, 3, verr.Index)
		})
	}
}

func TestNormalize_Numbers(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`1000`, 1000},
		{`"1,000,000"`, 1000000},
		{`" 2,500.5 "`, 2500.5},
		{`-5`, 0},
		{`"-5"`, 0},
		{`"abc"`, 0},
		{`""`, 0},
		{`null`, 0},
		{`true`, 0},
		{`[1]`, 0},
		{`"Infinity"`, 0},
		{`1e400`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rec, err := Normalize(json.RawMessage(`{"name":"A","population":`+tt.raw+`,"area":`+tt.raw+`}`), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Population)
			assert.Equal(t, tt.want, rec.Area)
		})
	}
}

func TestNormalize_Lists(t *testing.T) {
	raw := `{
		"name": "A",
		"capital": 7,
		"region": " Europe ",
		"borders": ["FRA", " fra ", "", "FRA", 3, null, "DEU"],
		"timezones": "UTC+01:00",
		"languages": ["English", {"name": " French "}, {"name": ""}, {"code": "de"}, 5, "English", {"name":"French"}]
	}`
	rec, err := Normalize(json.RawMessage(raw), 0)
	require.NoError(t, err)

	assert.Equal(t, "", rec.Capital)
	assert.Equal(t, "Europe", rec.Region)
	assert.Equal(t, []string{"FRA", "fra", "DEU"}, rec.Borders)
	assert.Equal(t, []string{}, rec.Timezones)
	assert.Equal(t, []Language{{Name: "English"}, {Name: "French"}}, rec.Languages)
	assert.Equal(t, []string{"English", "French"}, rec.LanguageNames())
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`{"name":"A","population":"1,234","borders":["B","B"," C "],"languages":["x",{"name":"y"}]}`,
		`{"name":"Z","area":12.5,"timezones":["UTC","UTC"],"capital":" Cap "}`,
		`{"name":"Q","population":-1,"languages":null}`,
	}
	for _, in := range inputs {
		first, err := Normalize(json.RawMessage(in), 0)
		require.NoError(t, err)

		encoded, err := json.Marshal(first)
		require.NoError(t, err)

		second, err := Normalize(encoded, 0)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("normalising twice changed the record (-first +second):\n%s", diff)
		}
	}
}

func TestValidateAll_RootNotArray(t *testing.T) {
	for _, raw := range []string{`{"name":"A"}`, `"x"`, `null`, `12`} {
		res := ValidateAll(json.RawMessage(raw))
		assert.Empty(t, res.Data)
		assert.Equal(t, []string{"Root JSON is not an array"}, res.Errors)
		assert.Zero(t, res.Skipped)
	}
}

func TestValidateAll_Scenario(t *testing.T) {
	res := ValidateAll(json.RawMessage(`[{"name":"Aland"},{"name":"X","population":"1,000,000"},{}]`))

	require.Len(t, res.Data, 2)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, float64(1000000), res.Data[1].Population)
	assert.Equal(t, []string{`Item #2 missing "name"`}, res.Errors)
}

func TestValidateAll_CountsAddUp(t *testing.T) {
	inputs := []string{
		`[]`,
		`[1, 2, 3]`,
		`[{"name":"A"}, null, {"name":""}, {"name":"B"}, "C", []]`,
		`[{"name":"A"},{"name":"A"}]`,
	}
	for _, in := range inputs {
		var elements []json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(in), &elements))

		res := ValidateAll(json.RawMessage(in))
		assert.Equal(t, len(elements), len(res.Data)+res.Skipped, in)
		assert.Len(t, res.Errors, res.Skipped, in)
	}
}
