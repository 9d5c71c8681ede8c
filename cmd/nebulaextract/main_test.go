package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/nebulaextract/internal/config"
	"github.com/sant0-9/nebulaextract/internal/llm"
	"github.com/sant0-9/nebulaextract/internal/pipeline"
	"github.com/sant0-9/nebulaextract/internal/tui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func setupConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if body == "" {
		return
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nebulaextract"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nebulaextract", "config.yaml"), []byte(body), 0600))
}

func countingServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func TestRunMissingCredentialMakesNoCall(t *testing.T) {
	ts, calls := countingServer(t, http.StatusOK, `{}`)
	setupConfig(t, "base_url: "+ts.URL+"\n")
	t.Setenv(config.DefaultAPIKeyEnv, "")

	var out bytes.Buffer
	err := run(context.Background(), "hello", os.Stdin, &out)
	require.Error(t, err)

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), config.DefaultAPIKeyEnv)
	assert.Equal(t, 0, *calls)
	assert.Empty(t, out.String())
}

func TestRunWithTextFlag(t *testing.T) {
	reply := `{"candidates":[{"content":{"parts":[{"text":"` + "```json\\n{\\\"intent\\\":\\\"refund\\\"}\\n```" + `"}]}}]}`
	ts, calls := countingServer(t, http.StatusOK, reply)
	setupConfig(t, "base_url: "+ts.URL+"\nauth: header\n")
	t.Setenv(config.DefaultAPIKeyEnv, "k")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), "refund please", os.Stdin, &out))
	assert.Equal(t, 1, *calls)
	assert.Contains(t, out.String(), "=== Model Response ===\n{\"intent\":\"refund\"}\n")
	assert.Contains(t, out.String(), "=== Validating JSON ===\n{\n  \"intent\": \"refund\"\n}\n")
}

func TestRunRateLimited(t *testing.T) {
	ts, _ := countingServer(t, http.StatusTooManyRequests, `{"error":{"code":429}}`)
	setupConfig(t, "base_url: "+ts.URL+"\n")
	t.Setenv(config.DefaultAPIKeyEnv, "k")

	var out bytes.Buffer
	err := run(context.Background(), "hello", os.Stdin, &out)

	var rerr *llm.RemoteCallError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 429, rerr.StatusCode)
	assert.Contains(t, err.Error(), `{"error":{"code":429}}`)
	assert.NotContains(t, out.String(), "Validating JSON")
}

func TestRunEmptyPipedInput(t *testing.T) {
	ts, calls := countingServer(t, http.StatusOK, `{}`)
	setupConfig(t, "base_url: "+ts.URL+"\n")
	t.Setenv(config.DefaultAPIKeyEnv, "k")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), "", r, &out))
	assert.Equal(t, tui.Banner()+"\n"+pipeline.EmptyInputMessage+"\n", out.String())
	assert.Equal(t, 0, *calls)
}

func TestRunPipedInputPrintsBanner(t *testing.T) {
	ts, calls := countingServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`)
	setupConfig(t, "base_url: "+ts.URL+"\n")
	t.Setenv(config.DefaultAPIKeyEnv, "k")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("call me at 555-0100\n\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), "", r, &out))
	assert.True(t, strings.HasPrefix(out.String(), tui.Banner()+"\n"))
	assert.Contains(t, out.String(), "=== Model Response ===")
	assert.Equal(t, 1, *calls)
}

func TestRunTextFlagSkipsBanner(t *testing.T) {
	ts, _ := countingServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`)
	setupConfig(t, "base_url: "+ts.URL+"\n")
	t.Setenv(config.DefaultAPIKeyEnv, "k")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), "hello", os.Stdin, &out))
	assert.NotContains(t, out.String(), tui.Banner())
}

func TestRunMissingCustomCredentialNamesVar(t *testing.T) {
	ts, calls := countingServer(t, http.StatusOK, `{}`)
	setupConfig(t, "base_url: "+ts.URL+"\napi_key_env: WORK_GEMINI_KEY\n")
	t.Setenv("WORK_GEMINI_KEY", "")

	err := run(context.Background(), "hello", os.Stdin, io.Discard)
	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "WORK_GEMINI_KEY", cfgErr.Var)
	assert.Equal(t, 0, *calls)
}

func TestRunBadConfig(t *testing.T) {
	setupConfig(t, "auth: bearer\n")
	t.Setenv(config.DefaultAPIKeyEnv, "k")

	err := run(context.Background(), "hello", os.Stdin, io.Discard)
	assert.ErrorContains(t, err, "unknown auth mode")
}
