package logging

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/masq"
)

// RedactOptions returns the masq options that hide contact details.
func RedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("phone"),
		masq.WithFieldName("email"),
		masq.WithFieldName("address"),
		masq.WithFieldName("Phone"),
		masq.WithFieldName("Email"),
		masq.WithFieldName("Address"),
	}
}

// RedactHandler applies a masq ReplaceAttr func to every attribute before
// passing records on. It exists because charmbracelet/log has no
// ReplaceAttr hook of its own.
type RedactHandler struct {
	next    slog.Handler
	replace func(groups []string, a slog.Attr) slog.Attr
	groups  []string
}

// NewRedactHandler wraps next. Extra options extend RedactOptions.
func NewRedactHandler(next slog.Handler, opts ...masq.Option) *RedactHandler {
	return &RedactHandler{
		next:    next,
		replace: masq.New(append(RedactOptions(), opts...)...),
	}
}

func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.redact(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redact(a)
	}
	return &RedactHandler{next: h.next.WithAttrs(redacted), replace: h.replace, groups: h.groups}
}

func (h *RedactHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &RedactHandler{
		next:    h.next.WithGroup(name),
		replace: h.replace,
		groups:  append(slices.Clip(h.groups), name),
	}
}

// redact resolves a and walks into groups so nested keys are checked too.
func (h *RedactHandler) redact(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() != slog.KindGroup {
		return h.replace(h.groups, a)
	}
	group := a.Value.Group()
	attrs := make([]slog.Attr, len(group))
	inner := &RedactHandler{replace: h.replace, groups: append(slices.Clip(h.groups), a.Key)}
	for i, ga := range group {
		attrs[i] = inner.redact(ga)
	}
	return slog.Attr{Key: a.Key, Value: slog.GroupValue(attrs...)}
}
