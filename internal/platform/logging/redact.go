package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// credentialURLPattern matches URLs carrying user:password, such as an
	// OTLP collector endpoint with basic auth embedded.
	credentialURLPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://[^/\s:@]+:[^/\s@]+@`)

	// authHeaderPattern matches Authorization header values.
	authHeaderPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+`)
)

// sensitiveFields are attribute keys whose values never reach a log sink.
// The service has no credentials of its own; these cover headers and
// settings that pass through it.
var sensitiveFields = []string{
	"authorization",
	"cookie",
	"set_cookie",
	"password",
	"token",
	"api_key",
	"otlp_headers",
}

// redactOptions builds the masq options for the built-in sensitive fields
// plus any extra field names from configuration.
func redactOptions(extra ...string) []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFields)+len(extra)+3)

	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	for _, name := range extra {
		if name != "" {
			opts = append(opts, masq.WithFieldName(name))
		}
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(credentialURLPattern),
		masq.WithRegex(authHeaderPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr hook that redacts sensitive
// attributes. Extra names are redacted in addition to the built-in list.
func NewReplaceAttr(extra ...string) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(redactOptions(extra...)...)
}
