package usecase

import (
	"taskwarrior-mcp/config"
	"taskwarrior-mcp/internal/task/repository"
	pkgLog "taskwarrior-mcp/pkg/log"
	"taskwarrior-mcp/pkg/taskdate"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Taskwarrior
	classifier *taskdate.Classifier
	weights    config.SuggestConfig
	staleDays  int
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Taskwarrior,
	classifier *taskdate.Classifier,
	weights config.SuggestConfig,
	staleDays int,
) *implUseCase {
	if staleDays <= 0 {
		staleDays = 14
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		classifier: classifier,
		weights:    weights,
		staleDays:  staleDays,
	}
}
