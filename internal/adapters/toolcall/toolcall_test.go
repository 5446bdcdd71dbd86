package toolcall

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/voicedesk/core/internal/domain/entities"
)

func decodeEnvelope(t *testing.T, body string) *Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return &env
}

func TestArgumentsMapObject(t *testing.T) {
	env := decodeEnvelope(t, `{"message":{"toolCalls":[{"id":"c1","function":{"name":"create_todo","arguments":{"title":"Buy milk"}}}]}}`)

	args, err := env.Message.ToolCalls[0].Function.Arguments.Map()
	if err != nil {
		t.Fatalf("Map() returned error: %v", err)
	}
	if got := args["title"]; got != "Buy milk" {
		t.Errorf("title = %v, want Buy milk", got)
	}
}

func TestArgumentsMapStringEncoded(t *testing.T) {
	env := decodeEnvelope(t, `{"message":{"toolCalls":[{"id":"c1","function":{"name":"create_todo","arguments":"{\"title\":\"Buy milk\"}"}}]}}`)

	args, err := env.Message.ToolCalls[0].Function.Arguments.Map()
	if err != nil {
		t.Fatalf("Map() returned error: %v", err)
	}
	if got := args["title"]; got != "Buy milk" {
		t.Errorf("title = %v, want Buy milk", got)
	}
}

func TestArgumentsMapAbsent(t *testing.T) {
	env := decodeEnvelope(t, `{"message":{"toolCalls":[{"id":"c1","function":{"name":"get_todos"}}]}}`)

	args, err := env.Message.ToolCalls[0].Function.Arguments.Map()
	if err != nil {
		t.Fatalf("Map() returned error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("expected empty args, got %v", args)
	}
}

func TestArgumentsMapMalformed(t *testing.T) {
	cases := map[string]string{
		"string not encoding an object": `"not json at all"`,
		"array payload":                 `[1,2,3]`,
		"number payload":                `42`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var a Arguments
			if err := a.UnmarshalJSON([]byte(raw)); err != nil {
				t.Fatalf("UnmarshalJSON: %v", err)
			}

			_, err := a.Map()
			te, ok := AsError(err)
			if !ok {
				t.Fatalf("expected tool-call error, got %v", err)
			}
			if te.Code != CodeMalformedArguments {
				t.Errorf("code = %s, want %s", te.Code, CodeMalformedArguments)
			}
		})
	}
}

func TestArgsStringMissing(t *testing.T) {
	args := Args{"other": "x", "blank": ""}

	for _, key := range []string{"title", "blank"} {
		_, err := args.String(key)
		te, ok := AsError(err)
		if !ok {
			t.Fatalf("expected tool-call error for %q, got %v", key, err)
		}
		if te.Code != CodeMissingField {
			t.Errorf("code for %q = %s, want %s", key, te.Code, CodeMissingField)
		}
	}
}

func TestArgsID(t *testing.T) {
	args := Args{"num": float64(7), "str": "12", "bad": "abc"}

	if id, err := args.ID("num"); err != nil || id != 7 {
		t.Errorf("ID(num) = %d, %v; want 7, nil", id, err)
	}
	if id, err := args.ID("str"); err != nil || id != 12 {
		t.Errorf("ID(str) = %d, %v; want 12, nil", id, err)
	}

	_, err := args.ID("bad")
	if te, ok := AsError(err); !ok || te.Code != CodeMalformedArguments {
		t.Errorf("ID(bad) error = %v, want %s", err, CodeMalformedArguments)
	}

	_, err = args.ID("absent")
	if te, ok := AsError(err); !ok || te.Code != CodeMissingField {
		t.Errorf("ID(absent) error = %v, want %s", err, CodeMissingField)
	}
}

func TestParseTimestamp(t *testing.T) {
	valid := []string{
		"2026-03-01T10:00:00Z",
		"2026-03-01T10:00:00+02:00",
		"2026-03-01T10:00:00",
		"2026-03-01 10:00:00",
		"2026-03-01",
	}
	for _, v := range valid {
		if _, err := ParseTimestamp(v); err != nil {
			t.Errorf("ParseTimestamp(%q) returned error: %v", v, err)
		}
	}

	got, err := ParseTimestamp("2026-03-01T10:00:00+02:00")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	want := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("ParseTimestamp normalized to %v, want %v UTC", got, want)
	}

	for _, v := range []string{"tomorrow", "01/03/2026", ""} {
		_, err := ParseTimestamp(v)
		te, ok := AsError(err)
		if !ok {
			t.Fatalf("ParseTimestamp(%q) expected tool-call error, got %v", v, err)
		}
		if te.Code != CodeInvalidDateFormat {
			t.Errorf("ParseTimestamp(%q) code = %s, want %s", v, te.Code, CodeInvalidDateFormat)
		}
	}
}

func TestErrorHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidRequest, http.StatusBadRequest},
		{CodeMalformedArguments, http.StatusBadRequest},
		{CodeMissingField, http.StatusBadRequest},
		{CodeInvalidDateFormat, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, c := range cases {
		e := Errorf(c.code, "x")
		if got := e.HTTPStatus(); got != c.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestDispatchEmptyMessage(t *testing.T) {
	d := NewDispatcher()

	for _, msg := range []*Message{nil, {}} {
		_, err := d.Dispatch(context.Background(), msg)
		te, ok := AsError(err)
		if !ok {
			t.Fatalf("expected tool-call error, got %v", err)
		}
		if te.Code != CodeInvalidRequest {
			t.Errorf("code = %s, want %s", te.Code, CodeInvalidRequest)
		}
	}
}

func TestDispatchUnknownFunction(t *testing.T) {
	d := NewDispatcher()

	out, err := d.Dispatch(context.Background(), &Message{ToolCalls: []ToolCall{
		{ID: "c1", Function: Function{Name: "no_such_function"}},
	}})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if out.Status() != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", out.Status())
	}
	if out.Results[0].Error != CodeInvalidRequest {
		t.Errorf("error = %s, want %s", out.Results[0].Error, CodeInvalidRequest)
	}
}

func TestDispatchCorrelationAndOrder(t *testing.T) {
	d := NewDispatcher()
	d.Register("echo_title", func(ctx context.Context, args Args) (interface{}, error) {
		return args.String("title")
	})

	env := decodeEnvelope(t, `{"message":{"toolCalls":[
		{"id":"first","function":{"name":"echo_title","arguments":{"title":"a"}}},
		{"id":"second","function":{"name":"echo_title","arguments":{"title":"b"}}}
	]}}`)

	out, err := d.Dispatch(context.Background(), env.Message)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if len(out.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(out.Results))
	}
	if out.Results[0].ToolCallID != "first" || out.Results[1].ToolCallID != "second" {
		t.Errorf("results out of order: %v", out.Results)
	}
	if out.Results[0].Result != "a" || out.Results[1].Result != "b" {
		t.Errorf("payloads out of order: %v", out.Results)
	}
}

func TestDispatchGeneratesMissingID(t *testing.T) {
	d := NewDispatcher()
	d.Register("noop", func(ctx context.Context, args Args) (interface{}, error) {
		return "ok", nil
	})

	out, err := d.Dispatch(context.Background(), &Message{ToolCalls: []ToolCall{
		{Function: Function{Name: "noop"}},
	}})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if out.Results[0].ToolCallID == "" {
		t.Error("expected a generated tool call id")
	}
}

func TestDispatchCallsAreIndependent(t *testing.T) {
	d := NewDispatcher()
	d.Register("fail", func(ctx context.Context, args Args) (interface{}, error) {
		return nil, entities.ErrTodoNotFound
	})
	d.Register("succeed", func(ctx context.Context, args Args) (interface{}, error) {
		return "done", nil
	})

	out, err := d.Dispatch(context.Background(), &Message{ToolCalls: []ToolCall{
		{ID: "c1", Function: Function{Name: "fail"}},
		{ID: "c2", Function: Function{Name: "succeed"}},
	}})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if out.Results[0].Error != CodeNotFound {
		t.Errorf("first call error = %s, want %s", out.Results[0].Error, CodeNotFound)
	}
	if out.Results[1].Result != "done" {
		t.Errorf("second call result = %v, want done", out.Results[1].Result)
	}
	if out.Status() != http.StatusOK {
		t.Errorf("status = %d, want 200 when at least one call succeeds", out.Status())
	}
}

func TestDispatchAllFailedUsesFirstErrorStatus(t *testing.T) {
	d := NewDispatcher()
	d.Register("missing", func(ctx context.Context, args Args) (interface{}, error) {
		return nil, entities.ErrReminderNotFound
	})
	d.Register("bad", func(ctx context.Context, args Args) (interface{}, error) {
		return nil, MissingField("title")
	})

	out, err := d.Dispatch(context.Background(), &Message{ToolCalls: []ToolCall{
		{ID: "c1", Function: Function{Name: "missing"}},
		{ID: "c2", Function: Function{Name: "bad"}},
	}})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if out.Status() != http.StatusNotFound {
		t.Errorf("status = %d, want 404 from the first failure", out.Status())
	}
}

func TestResultEnvelopeShape(t *testing.T) {
	env := ResultEnvelope{Results: []Result{
		{ToolCallID: "c1", Result: map[string]string{"status": "deleted"}},
		{ToolCallID: "c2", Error: CodeNotFound, Detail: "todo not found"},
	}}

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string][]map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	results := decoded["results"]
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if _, present := results[0]["error"]; present {
		t.Error("success result must omit the error field")
	}
	if _, present := results[1]["result"]; present {
		t.Error("failed result must omit the result field")
	}
	if results[1]["toolCallId"] != "c2" {
		t.Errorf("toolCallId = %v, want c2", results[1]["toolCallId"])
	}
}
