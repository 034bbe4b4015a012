package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/pkgmod/internal/ui/output"
	"go.trai.ch/pkgmod/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one coloured line per record:
// a level icon, the message, then key=value attributes in a muted colour.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	msg := r.Message
	if icon != "" {
		msg = icon + " " + msg
	}
	line := h.out.String(msg).Foreground(h.out.Color(color)).String()

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		attrs = appendAttr(attrs, h.prefix, attr)
		return true
	})
	if len(attrs) > 0 {
		line += " " + h.out.String(strings.Join(attrs, " ")).Foreground(h.out.Color(string(style.Slate))).String()
	}

	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a handler that prints attrs on every record.
// They are formatted once, under the groups open at this point.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	formatted := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(formatted, h.attrs)
	for _, attr := range attrs {
		formatted = appendAttr(formatted, h.prefix, attr)
	}

	clone := *h
	clone.attrs = formatted
	return &clone
}

// WithGroup returns a handler that qualifies later attribute keys with name.
// Groups nest: WithGroup("a").WithGroup("b") yields keys "a.b.key".
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func levelStyle(level slog.Level) (icon, color string) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, string(style.Red)
	case level >= slog.LevelWarn:
		return style.Warning, string(style.Yellow)
	case level < slog.LevelInfo:
		return style.Tilde, string(style.Iris)
	default:
		return "", string(style.Slate)
	}
}

// appendAttr formats attr as key=value and appends it to dst.
// Empty attributes are dropped and group values are flattened into dotted keys.
func appendAttr(dst []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}

	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		if len(group) == 0 {
			return dst
		}
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range group {
			dst = appendAttr(dst, prefix, member)
		}
		return dst
	}

	return append(dst, prefix+attr.Key+"="+attr.Value.String())
}
