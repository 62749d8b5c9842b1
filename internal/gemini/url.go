package gemini

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// buildGenerateURL constructs the generateContent URL for a model, with the
// API key injected as a query parameter. The model is escaped so a malformed
// identifier cannot alter the path.
func buildGenerateURL(base, model, apiKey string) string {
	base = strings.TrimSuffix(base, "/")
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		base, url.PathEscape(model), url.QueryEscape(apiKey))
}
