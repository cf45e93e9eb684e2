package forms

import (
	"context"
	"log/slog"

	"vietkichban/internal/api"
	"vietkichban/internal/model"
)

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateFailed
)

type State int

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

type Caller interface {
	Call(ctx context.Context, path string, payload any) (*model.GenerationResult, error)
}

// Messages supplies the localized strings written into the output area.
type Messages interface {
	Processing() string
	RenderError(message string) string
}

type HandlerOptions struct {
	Action   model.Action
	Client   Caller
	Fields   Fields
	Output   Output
	Messages Messages
}

// Handler runs one content action: it reads its fields, calls the API and
// renders the result or the error into its output area.
type Handler struct {
	action   model.Action
	client   Caller
	fields   Fields
	output   Output
	messages Messages
}

func NewHandler(opts HandlerOptions) *Handler {
	return &Handler{
		action:   opts.Action,
		client:   opts.Client,
		fields:   opts.Fields,
		output:   opts.Output,
		messages: opts.Messages,
	}
}

func (h *Handler) Action() model.Action {
	return h.action
}

// Trigger runs one invocation to completion and reports how it ended. Errors
// are rendered into the output area and never returned.
func (h *Handler) Trigger(ctx context.Context) State {
	req, ok := h.begin()
	if !ok {
		return StateFailed
	}
	return h.finish(ctx, req)
}

// Go snapshots the fields and renders the placeholder immediately, then waits
// for the API on its own goroutine. Invocations are independent: a later one
// never cancels an earlier one, and whichever finishes last owns the output.
func (h *Handler) Go(ctx context.Context) <-chan State {
	done := make(chan State, 1)

	req, ok := h.begin()
	if !ok {
		done <- StateFailed
		return done
	}

	go func() {
		done <- h.finish(ctx, req)
	}()
	return done
}

func (h *Handler) begin() (model.GenerationRequest, bool) {
	h.output.SetText(h.messages.Processing())

	req, err := Build(h.action, h.fields)
	if err != nil {
		h.output.SetText(h.messages.RenderError(err.Error()))
		return req, false
	}
	return req, true
}

func (h *Handler) finish(ctx context.Context, req model.GenerationRequest) State {
	slog.Debug("Sending generation request", "action", h.action, "provider", req.Provider, "model", req.Model)

	result, err := h.client.Call(ctx, h.action.Route(), req)
	if err != nil {
		attrs := []any{"action", h.action, "error", err}
		if code, ok := api.StatusCode(err); ok {
			attrs = append(attrs, "status", code)
		}
		slog.Debug("Generation failed", attrs...)

		h.output.SetText(h.messages.RenderError(err.Error()))
		return StateFailed
	}

	h.output.SetText(result.Text)
	return StateSuccess
}
