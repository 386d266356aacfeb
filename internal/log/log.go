// Package log configures the slog logger used by the ranges packages.
//
// Library code only logs at Debug level, tagged with a "section" attribute
// ("ranges.simplify", ...). Records below Warn are dropped unless their
// section is listed in the RANGES_LOG environment variable (comma separated
// prefixes, e.g. RANGES_LOG=ranges.simplify or RANGES_LOG=ranges).
package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
)

func enabledSections() []string {
	env := os.Getenv("RANGES_LOG")
	if env == "" {
		return nil
	}
	return strings.Split(env, ",")
}

var LoggerOpts = &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

var DefaultLogger = slog.New(&filteringHandler{
	underlying: slog.NewTextHandler(os.Stderr, LoggerOpts),
	sections:   enabledSections(),
})

var _ slog.Handler = &filteringHandler{}

// filteringHandler drops sub-Warn records that do not belong to an enabled
// section, whether the section arrives as a record attribute or through
// Logger.With.
type filteringHandler struct {
	underlying slog.Handler
	sections   []string
	// inSection is set when a Logger.With attribute already selected an
	// enabled section for every record of this handler.
	inSection bool
}

func (f filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f filteringHandler) matches(section string) bool {
	return slices.ContainsFunc(f.sections, func(enabled string) bool {
		return strings.HasPrefix(section, enabled)
	})
}

func (f filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn || f.inSection {
		return f.underlying.Handle(ctx, record)
	}
	wantSection := false
	record.Attrs(func(attr slog.Attr) bool {
		wantSection = wantSection || attr.Key == "section" && f.matches(attr.Value.String())
		// iterate as long as we have not found our section
		return !wantSection
	})
	if !wantSection {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	inSection := f.inSection
	for _, attr := range attrs {
		if attr.Key == "section" && f.matches(attr.Value.String()) {
			inSection = true
		}
	}
	return &filteringHandler{
		underlying: f.underlying.WithAttrs(attrs),
		sections:   f.sections,
		inSection:  inSection,
	}
}

func (f filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{
		underlying: f.underlying.WithGroup(name),
		sections:   f.sections,
		inSection:  f.inSection,
	}
}
