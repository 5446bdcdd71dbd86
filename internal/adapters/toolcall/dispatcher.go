package toolcall

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/voicedesk/core/internal/domain/entities"
)

// HandlerFunc executes one tool call's normalized arguments against an
// entity operation and returns the success payload.
type HandlerFunc func(ctx context.Context, args Args) (interface{}, error)

// Dispatcher routes tool calls to registered entity operations by function
// name and wraps each outcome into a correlated result.
type Dispatcher struct {
	handlers map[string]HandlerFunc
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]HandlerFunc)}
}

// Register binds a function name to its operation. Registering twice for
// the same name replaces the previous handler.
func (d *Dispatcher) Register(name string, fn HandlerFunc) {
	d.handlers[name] = fn
}

// Outcome is the aggregate of dispatching one envelope.
type Outcome struct {
	Results  []Result
	anyOK    bool
	firstErr *Error
}

// Status returns the HTTP status for the whole envelope: 200 when at least
// one call succeeded, otherwise the first error's status. Single-call
// envelopes therefore surface their error status directly.
func (o *Outcome) Status() int {
	if o.anyOK || o.firstErr == nil {
		return http.StatusOK
	}
	return o.firstErr.HTTPStatus()
}

// Envelope wraps the results for the response body.
func (o *Outcome) Envelope() ResultEnvelope {
	return ResultEnvelope{Results: o.Results}
}

// Dispatch runs every tool call of the message in order. Calls are
// processed independently: a failure in one never blocks the rest, and the
// results keep the input order. A nil or empty message is InvalidRequest.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message) (*Outcome, error) {
	if msg == nil || len(msg.ToolCalls) == 0 {
		return nil, Errorf(CodeInvalidRequest, "request contains no tool calls")
	}

	out := &Outcome{Results: make([]Result, 0, len(msg.ToolCalls))}
	for _, call := range msg.ToolCalls {
		id := call.ID
		if id == "" {
			id = uuid.NewString()
		}

		payload, err := d.dispatchOne(ctx, call)
		if err != nil {
			te := classify(err)
			if out.firstErr == nil {
				out.firstErr = te
			}
			out.Results = append(out.Results, Result{
				ToolCallID: id,
				Error:      te.Code,
				Detail:     te.Detail,
			})
			continue
		}

		out.anyOK = true
		out.Results = append(out.Results, Result{ToolCallID: id, Result: payload})
	}

	return out, nil
}

func (d *Dispatcher) dispatchOne(ctx context.Context, call ToolCall) (interface{}, error) {
	fn, ok := d.handlers[call.Function.Name]
	if !ok {
		return nil, Errorf(CodeInvalidRequest, "unknown function %q", call.Function.Name)
	}

	args, err := call.Function.Arguments.Map()
	if err != nil {
		return nil, err
	}

	return fn(ctx, args)
}

// classify folds service and repository errors into the tool-call taxonomy.
func classify(err error) *Error {
	if te, ok := AsError(err); ok {
		return te
	}
	if entities.IsNotFound(err) {
		return Errorf(CodeNotFound, "%s", err.Error())
	}
	return Errorf(CodeInternal, "%s", err.Error())
}
