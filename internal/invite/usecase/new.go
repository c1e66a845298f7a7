package usecase

import (
	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/pkg/datemath"
	pkgLog "swim-schedule-manager/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	provider invite.Provider
	dateMath *datemath.Parser
	timezone string
}

// New creates a new invite UseCase instance.
func New(l pkgLog.Logger, provider invite.Provider, dateMath *datemath.Parser, timezone string) *implUseCase {
	return &implUseCase{
		l:        l,
		provider: provider,
		dateMath: dateMath,
		timezone: timezone,
	}
}
