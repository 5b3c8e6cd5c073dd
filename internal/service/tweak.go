package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tweakd/tweakd/internal/domain/tweak"
	apperrors "github.com/tweakd/tweakd/internal/errors"
	"github.com/tweakd/tweakd/internal/observability/statsd"
	"github.com/tweakd/tweakd/internal/ports"
)

// TweakServiceOptions groups dependencies for TweakService.
type TweakServiceOptions struct {
	Runner  ports.CommandRunner // Required: executes tweak command lines
	Logger  *slog.Logger        // Optional: structured logger
	Metrics statsd.Sink         // Optional: metrics sink
}

// TweakService applies catalog tweaks by running their command lines.
type TweakService struct {
	runner  ports.CommandRunner
	logger  *slog.Logger
	metrics statsd.Sink
}

// NewTweakService constructs a new TweakService.
func NewTweakService(opts TweakServiceOptions) (*TweakService, error) {
	if opts.Runner == nil {
		return nil, errors.New("CommandRunner is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TweakService{
		runner:  opts.Runner,
		logger:  logger.With("component", "tweak_service"),
		metrics: opts.Metrics,
	}, nil
}

// MustNewTweakService constructs a new TweakService and panics on error.
// Use this when you want fail-fast behavior during application startup.
func MustNewTweakService(opts TweakServiceOptions) *TweakService {
	service, err := NewTweakService(opts)
	if err != nil {
		panic(err) //nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
	}
	return service
}

// ApplyRequest names a tweak and the desired on/off state.
type ApplyRequest struct {
	Name   string
	Active bool
}

// Apply resolves the named tweak and runs its command lines for the
// desired state, in catalog order. The first command failure aborts the
// rest and is returned as-is; commands already run are not rolled back.
// An unknown name fails before anything executes.
//
// The returned output is the non-empty command outputs joined by
// newlines, or the entry's note when the tweak runs no commands.
func (s *TweakService) Apply(ctx context.Context, req ApplyRequest) (string, error) {
	def, ok := tweak.Lookup(req.Name)
	if !ok {
		s.observeApply("unknown")
		return "", apperrors.NotFound("Tweak not implemented")
	}

	commands := def.Commands(req.Active)
	outputs := make([]string, 0, len(commands))
	for _, cmd := range commands {
		out, err := s.runner.Run(ctx, cmd.Line)
		if err != nil {
			s.logger.WarnContext(ctx, "tweak command failed",
				"tweak", def.ID,
				"active", req.Active,
				"error", err)
			s.observeApply("error")
			return "", err
		}
		if out != "" {
			outputs = append(outputs, out)
		}
	}

	s.logger.InfoContext(ctx, "tweak applied",
		"tweak", def.ID,
		"active", req.Active,
		"commands", len(commands))
	s.observeApply("success")

	if len(outputs) == 0 {
		return def.Note, nil
	}
	return strings.Join(outputs, "\n"), nil
}

// Catalog returns every known tweak definition in presentation order.
func (s *TweakService) Catalog() []tweak.Definition {
	return tweak.All()
}

func (s *TweakService) observeApply(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Count("tweaks.applied", 1, map[string]string{"outcome": outcome})
}
