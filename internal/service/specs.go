package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tweakd/tweakd/internal/ports"
)

// Placeholder values the read degrades to so the surface always has
// something to show.
const (
	specUnavailable = "Unable to detect"
	unknownCPU      = "Unknown CPU"
	unknownGPU      = "Unknown GPU"
)

// SpecsServiceOptions groups dependencies for SpecsService.
type SpecsServiceOptions struct {
	Source ports.SpecSource // Required: hardware inventory source
	Logger *slog.Logger     // Optional: structured logger
}

// SpecsService reads the machine's hardware summary. Each field degrades
// independently; the read as a whole never fails.
type SpecsService struct {
	source ports.SpecSource
	logger *slog.Logger
}

// NewSpecsService constructs a new SpecsService.
func NewSpecsService(opts SpecsServiceOptions) (*SpecsService, error) {
	if opts.Source == nil {
		return nil, errors.New("SpecSource is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SpecsService{
		source: opts.Source,
		logger: logger.With("component", "specs_service"),
	}, nil
}

// MustNewSpecsService constructs a new SpecsService and panics on error.
func MustNewSpecsService(opts SpecsServiceOptions) *SpecsService {
	service, err := NewSpecsService(opts)
	if err != nil {
		panic(err) //nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
	}
	return service
}

// PCSpecs is the hardware summary in the shape the surface consumes.
type PCSpecs struct {
	CPU string `json:"cpu"`
	GPU string `json:"gpu"`
	RAM string `json:"ram"`
}

// Read queries each hardware field. A failed or empty probe yields the
// field's placeholder instead of an error.
func (s *SpecsService) Read(ctx context.Context) PCSpecs {
	specs := PCSpecs{
		CPU: s.readField(ctx, "cpu", s.source.CPU, unknownCPU),
		GPU: s.readField(ctx, "gpu", s.source.GPU, unknownGPU),
		RAM: s.readField(ctx, "ram", s.source.RAM, specUnavailable),
	}
	return specs
}

func (s *SpecsService) readField(
	ctx context.Context,
	name string,
	probe func(context.Context) (string, error),
	emptyFallback string,
) string {
	value, err := probe(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "hardware probe failed", "field", name, "error", err)
		return specUnavailable
	}
	if value == "" {
		return emptyFallback
	}
	return value
}
