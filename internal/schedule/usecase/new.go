package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"swim-schedule-manager/internal/schedule"
	"swim-schedule-manager/pkg/deepseek"
	"swim-schedule-manager/pkg/gemini"
	pkgLog "swim-schedule-manager/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *gemini.Client
	verifier deepseek.IDeepSeek
	cache    *lru.Cache[string, schedule.ParseOutput]
}

// New creates a new schedule UseCase instance. The verifier may be nil, in
// which case the secondary cross-check pass is skipped. Parsed results are
// cached by PDF content hash so re-uploading the same file skips the model
// round trips.
func New(
	l pkgLog.Logger,
	llm *gemini.Client,
	verifier deepseek.IDeepSeek,
	cacheSize int,
) (*implUseCase, error) {
	if cacheSize <= 0 {
		cacheSize = 16
	}
	cache, err := lru.New[string, schedule.ParseOutput](cacheSize)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		l:        l,
		llm:      llm,
		verifier: verifier,
		cache:    cache,
	}, nil
}
