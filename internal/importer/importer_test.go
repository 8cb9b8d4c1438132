package importer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pbaille/portfolio/internal/domain"
	"github.com/pbaille/portfolio/internal/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"http://example.com", true},
		{"www.example.com", true},
		{"  https://example.com  ", true},
		{"portfolio.json", false},
		{"/tmp/portfolio.html", false},
		{"ftp://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURL(tt.input))
		})
	}
}

func TestParseJSON(t *testing.T) {
	want := domain.Default()
	data, err := portfolio.Encode(want)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, body := range []string{"", "null", "[1,2]", "not json"} {
		_, err := Parse([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}

func TestParseHTMLWithoutScript(t *testing.T) {
	_, err := Parse([]byte(`<html><body><script id="other" type="application/json">{}</script></body></html>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ScriptID)
}

func TestExportRoundTrip(t *testing.T) {
	want := domain.Default()
	// a closing tag inside a string must not end the script element
	want.PersonalInfo.Summary = "Builds things </script><b>fast</b>"

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, want))
	assert.Contains(t, buf.String(), `id="portfolio-data"`)
	assert.Contains(t, buf.String(), "<title>Alex Rivera</title>")

	got, err := Parse(buf.Bytes())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchFile(t *testing.T) {
	want := domain.Default()
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, want))

	path := filepath.Join(t.TempDir(), "portfolio.html")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))

	got, err := Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, want.PersonalInfo, got.PersonalInfo)
	assert.Len(t, got.Projects, len(want.Projects))
}

func TestFetchMissingFile(t *testing.T) {
	_, err := Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFetchURL(t *testing.T) {
	want := domain.Default()
	data, err := portfolio.Encode(want)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "portfolio/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	got, err := Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchURLStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
