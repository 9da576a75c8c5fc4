package engine

import (
	"fmt"
	"strings"
)

// Callback actions understood by the engine
const (
	ActionSelectLanguage = "SELECT_LANG"
	ActionVoice          = "VOICE"
)

// Callback payloads have the form ACTION/FIELD[,FIELD...]. The action
// is split off at the first slash and the data part is split on
// commas. Field values are percent-escaped so they may legitimately
// contain the delimiter characters.
var (
	fieldEscaper   = strings.NewReplacer("%", "%25", "/", "%2F", ",", "%2C")
	fieldUnescaper = strings.NewReplacer("%2F", "/", "%2C", ",", "%25", "%")
)

// FormatPayload builds a callback payload from an action and its data fields
func FormatPayload(action string, fields ...string) string {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		escaped[i] = fieldEscaper.Replace(field)
	}
	return action + "/" + strings.Join(escaped, ",")
}

// ParsePayload splits a callback payload into its action and data fields
func ParsePayload(payload string) (string, []string, error) {
	action, data, found := strings.Cut(payload, "/")
	if !found || action == "" {
		return "", nil, fmt.Errorf("malformed callback payload %q", payload)
	}

	parts := strings.Split(data, ",")
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = fieldUnescaper.Replace(part)
	}
	return action, fields, nil
}
