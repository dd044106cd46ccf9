package application

import (
	"github.com/consultready/consultready/internal/domain"
	"github.com/rs/zerolog"
)

// EvaluateService runs the readiness pipeline for a named pathway.
type EvaluateService struct {
	catalog *Catalog
	logger  zerolog.Logger
}

func NewEvaluateService(catalog *Catalog, logger zerolog.Logger) *EvaluateService {
	return &EvaluateService{catalog: catalog, logger: logger}
}

// Evaluate resolves the pathway and runs the engine. Only outcome fields are
// logged; details and inputs may carry patient information.
func (s *EvaluateService) Evaluate(name string, inputs domain.Inputs, details *domain.Details) (domain.Result, error) {
	cfg, err := s.catalog.Get(name)
	if err != nil {
		return domain.Result{}, err
	}

	res := domain.Evaluate(inputs, details, cfg)

	s.logger.Debug().
		Str("domain", res.Domain).
		Str("scope", string(res.Scope)).
		Str("tier", string(res.Tier)).
		Float64("readiness", res.Percentage).
		Int("missing_count", len(res.Missing)).
		Msg("evaluated")

	return res, nil
}

// Checklist lists the required items for the intake, including conditional
// items its discriminators switch on.
func (s *EvaluateService) Checklist(name string, inputs domain.Inputs) (domain.Checklist, error) {
	cfg, err := s.catalog.Get(name)
	if err != nil {
		return domain.Checklist{}, err
	}

	return domain.BuildChecklist(inputs, cfg), nil
}
