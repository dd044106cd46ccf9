package application

import (
	"github.com/consultready/consultready/internal/domain"
)

// FileReport is the lint outcome of one domain-config file.
type FileReport struct {
	Path   string `json:"path"`
	Domain string `json:"domain,omitempty"`
	Fields int    `json:"fields,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OK reports whether the file loaded and validated.
func (r FileReport) OK() bool { return r.Error == "" }

// ValidateService lints domain-config files without adding them to a catalogue.
type ValidateService struct {
	loader domain.DomainLoader
}

func NewValidateService(loader domain.DomainLoader) *ValidateService {
	return &ValidateService{loader: loader}
}

// Validate checks each path and reports every file, failed or not.
func (s *ValidateService) Validate(paths []string) []FileReport {
	reports := make([]FileReport, 0, len(paths))
	for _, p := range paths {
		cfg, err := s.loader.LoadFile(p)
		if err != nil {
			reports = append(reports, FileReport{Path: p, Error: err.Error()})
			continue
		}
		reports = append(reports, FileReport{Path: p, Domain: cfg.Name, Fields: len(cfg.Fields)})
	}
	return reports
}
