package wee

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

// logBind records which arguments a call resolved. Values are not logged.
func (a *Adapter) logBind(args Args) {
	if a.logger == nil || !a.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	omitted := make([]string, 0, len(a.bindings))
	for name := range a.bindings {
		if _, ok := args[name]; !ok {
			omitted = append(omitted, name)
		}
	}
	slices.Sort(omitted)

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "bind",
		slog.Any("bound", slices.Sorted(maps.Keys(args))),
		slog.Any("omitted", omitted),
	)
}
