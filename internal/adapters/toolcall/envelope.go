package toolcall

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Envelope is the inbound request wrapper sent by the voice platform.
type Envelope struct {
	Message *Message `json:"message" validate:"required"`
}

// Message carries the ordered tool calls of one request.
type Message struct {
	ToolCalls []ToolCall `json:"toolCalls" validate:"required,min=1,dive"`
}

// ToolCall is a single named function invocation. ID is the opaque
// correlation identifier pairing the call with its result.
type ToolCall struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function names the operation and carries its arguments payload.
type Function struct {
	Name      string    `json:"name" validate:"required"`
	Arguments Arguments `json:"arguments"`
}

// ResultEnvelope is the outbound wrapper, one result per inbound call in
// the same order.
type ResultEnvelope struct {
	Results []Result `json:"results"`
}

// Result pairs a correlation identifier with a success payload or an
// error indicator.
type Result struct {
	ToolCallID string      `json:"toolCallId"`
	Result     interface{} `json:"result,omitempty"`
	Error      Code        `json:"error,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

// Arguments is the raw arguments payload of a tool call: either a JSON
// object or a JSON string that itself encodes an object. It is kept opaque
// until Map normalizes it, so the ambiguity never leaks past this package.
type Arguments struct {
	raw json.RawMessage
}

// UnmarshalJSON captures the payload verbatim.
func (a *Arguments) UnmarshalJSON(data []byte) error {
	a.raw = append(a.raw[:0], data...)
	return nil
}

// MarshalJSON emits the payload verbatim.
func (a Arguments) MarshalJSON() ([]byte, error) {
	if len(a.raw) == 0 {
		return []byte("null"), nil
	}
	return a.raw, nil
}

var jsonNull = []byte("null")

// Map normalizes the payload to a single mapping type. Absent or null
// arguments normalize to an empty map; anything else that does not resolve
// to an object fails with MalformedArguments.
func (a Arguments) Map() (Args, error) {
	if len(a.raw) == 0 || bytes.Equal(a.raw, jsonNull) {
		return Args{}, nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(a.raw, &m); err == nil {
		return Args(m), nil
	}

	var s string
	if err := json.Unmarshal(a.raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &m); err != nil || m == nil {
			return nil, Errorf(CodeMalformedArguments, "arguments string does not encode a JSON object")
		}
		return Args(m), nil
	}

	return nil, Errorf(CodeMalformedArguments, "arguments must be a JSON object or a JSON-encoded string")
}

// Args is the normalized arguments mapping of one tool call.
type Args map[string]interface{}

// String returns the named argument as a non-empty string, failing with
// MissingField when the key is absent or blank.
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", MissingField(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", Errorf(CodeMalformedArguments, "field %q must be a string", key)
	}
	if s == "" {
		return "", MissingField(key)
	}
	return s, nil
}

// OptionalString returns the named argument when present and non-empty.
func (a Args) OptionalString(key string) *string {
	if s, ok := a[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

// ID returns the named argument as an integer identifier. Voice platforms
// send identifiers both as numbers and as digit strings.
func (a Args) ID(key string) (int64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, MissingField(key)
	}

	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, Errorf(CodeMalformedArguments, "field %q is not a valid identifier", key)
		}
		return id, nil
	case json.Number:
		id, err := n.Int64()
		if err != nil {
			return 0, Errorf(CodeMalformedArguments, "field %q is not a valid identifier", key)
		}
		return id, nil
	default:
		return 0, Errorf(CodeMalformedArguments, "field %q is not a valid identifier", key)
	}
}

// Timestamp parses the named argument as an ISO-8601 datetime.
func (a Args) Timestamp(key string) (time.Time, error) {
	s, err := a.String(key)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTimestamp(s)
}

// timestampLayouts covers RFC 3339 plus the timezone-less forms voice
// platforms commonly emit.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 datetime, failing with
// InvalidDateFormat when no accepted layout matches.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, Errorf(CodeInvalidDateFormat, "value %q is not an ISO-8601 datetime", value)
}
