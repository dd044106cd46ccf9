package application

import (
	"fmt"
	"sort"
	"strings"

	"github.com/consultready/consultready/internal/domain"
	"github.com/rs/zerolog"
)

// BuiltinRevision marks configs compiled into the binary.
const BuiltinRevision = "builtin"

// Catalog is the read-only set of pathways available to evaluations.
// It is built once at startup and safe for concurrent reads.
type Catalog struct {
	configs []domain.DomainConfig
	index   map[string]int
}

// NewCatalog starts from builtins and overlays loaded configs. A loaded
// config whose name matches a built-in replaces it in place; new names are
// appended in load order.
func NewCatalog(builtins []domain.DomainConfig, loaded []domain.DomainConfig) *Catalog {
	c := &Catalog{index: make(map[string]int, len(builtins)+len(loaded))}
	for _, cfg := range builtins {
		if cfg.Revision == "" {
			cfg.Revision = BuiltinRevision
		}
		c.put(cfg)
	}
	for _, cfg := range loaded {
		c.put(cfg)
	}
	return c
}

func (c *Catalog) put(cfg domain.DomainConfig) {
	key := normalize(cfg.Name)
	if i, ok := c.index[key]; ok {
		c.configs[i] = cfg
		return
	}
	c.index[key] = len(c.configs)
	c.configs = append(c.configs, cfg)
}

// LoadCatalog reads dir through loader and stamps each loaded config with
// the revision of the enclosing repository when one exists.
func LoadCatalog(
	builtins []domain.DomainConfig,
	loader domain.DomainLoader,
	revisions domain.RevisionReader,
	dir string,
	logger zerolog.Logger,
) (*Catalog, error) {
	loaded, err := loader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading domains: %w", err)
	}

	if len(loaded) > 0 && revisions != nil && revisions.IsGitRepo(dir) {
		rev, err := revisions.ShortHash(dir)
		if err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("reading domains revision")
			rev = ""
		}
		for i := range loaded {
			loaded[i].Revision = rev
		}
	}

	for _, cfg := range loaded {
		logger.Debug().Str("domain", cfg.Name).Str("source", cfg.Source).Msg("loaded domain config")
	}
	return NewCatalog(builtins, loaded), nil
}

// Get returns the named pathway. Names match case-insensitively.
func (c *Catalog) Get(name string) (domain.DomainConfig, error) {
	if i, ok := c.index[normalize(name)]; ok {
		return c.configs[i], nil
	}
	return domain.DomainConfig{}, fmt.Errorf("%w %q (available: %s)", domain.ErrUnknownDomain, name, strings.Join(c.Names(), ", "))
}

// List returns every pathway in catalogue order.
func (c *Catalog) List() []domain.DomainConfig {
	out := make([]domain.DomainConfig, len(c.configs))
	copy(out, c.configs)
	return out
}

// DomainSummary is the catalogue entry shown to listing surfaces.
type DomainSummary struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Specialty string   `json:"specialty"`
	Revision  string   `json:"revision,omitempty"`
	Required  []string `json:"required"`
}

// Summaries returns one entry per pathway in catalogue order, with required
// keys rendered as labels.
func (c *Catalog) Summaries() []DomainSummary {
	out := make([]DomainSummary, 0, len(c.configs))
	for _, cfg := range c.configs {
		labels := make([]string, 0, len(cfg.Required))
		for _, k := range cfg.Required {
			labels = append(labels, cfg.Label(k))
		}
		out = append(out, DomainSummary{
			Name:      cfg.Name,
			Title:     cfg.Title,
			Specialty: cfg.Specialty,
			Revision:  cfg.Revision,
			Required:  labels,
		})
	}
	return out
}

// Names returns the sorted pathway names.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.configs))
	for _, cfg := range c.configs {
		names = append(names, cfg.Name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
