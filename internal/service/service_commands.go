package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/runner"
	"github.com/MKhiriev/personal-server/models"
)

type commandsService struct {
	runner runner.Runner
	cfg    config.Runner

	logger *logger.Logger
}

// NewCommandsService constructs the default [CommandsService].
func NewCommandsService(run runner.Runner, cfg config.Runner, logger *logger.Logger) CommandsService {
	return &commandsService{
		runner: run,
		cfg:    cfg,
		logger: logger,
	}
}

func (c *commandsService) Run(ctx context.Context, req models.RunRequest) (*models.RunResult, *models.RunSequenceResult, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	timeout := c.cfg.DefaultTimeout
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout * float64(time.Second))
	}

	if cmds := req.Sequence(); cmds != nil {
		c.logger.Info().Int("commands", len(cmds)).Bool("stop_on_error", req.StopOnError).Msg("running command sequence")
		aggregate := c.runner.RunSequence(ctx, cmds, timeout, req.Cwd, req.StopOnError)
		return nil, &aggregate, nil
	}

	cmd := req.Single()
	c.logger.Info().Str("cmd", cmd).Msg("running command")
	result := c.runner.Run(ctx, cmd, timeout, req.Cwd)

	return &result, nil, nil
}
