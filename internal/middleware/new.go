package middleware

import (
	pkgLog "swim-schedule-manager/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
