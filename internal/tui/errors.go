package tui

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sant0-9/nebulaextract/internal/config"
	"github.com/sant0-9/nebulaextract/internal/llm"
	"github.com/sant0-9/nebulaextract/internal/tui/styles"
)

// RenderError formats a fatal error for stderr. The error text is printed as
// is; suggestions go in a box below it.
func RenderError(err error) string {
	var b strings.Builder

	b.WriteString(styles.ErrorTitle.Render("Something went wrong"))
	b.WriteString("\n")
	b.WriteString(err.Error())
	b.WriteString("\n")

	if s := suggestions(err); len(s) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Box.Render("Suggestions:\n" + strings.Join(s, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

func suggestions(err error) []string {
	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		return []string{
			"Create an API key at https://aistudio.google.com/app/apikey",
			"Then export " + cfgErr.Var + " or put it in a .env file",
		}
	}

	var remote *llm.RemoteCallError
	if errors.As(err, &remote) {
		switch {
		case remote.StatusCode == http.StatusTooManyRequests:
			return []string{"You've hit the API rate limit", "Wait a moment and try again"}
		case remote.StatusCode == http.StatusUnauthorized || remote.StatusCode == http.StatusForbidden:
			return []string{"Check your API key"}
		case remote.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(remote.Body), "api key"):
			return []string{"Check your API key"}
		case remote.StatusCode == http.StatusNotFound:
			return []string{"Check the model id and base_url in your config file"}
		case remote.StatusCode >= 500:
			return []string{"The API is having trouble, try again later"}
		}
		return nil
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") ||
		strings.Contains(errLower, "timeout") || strings.Contains(errLower, "no such host") {
		return []string{"Check your internet connection"}
	}

	return nil
}
