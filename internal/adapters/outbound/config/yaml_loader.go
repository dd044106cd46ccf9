package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/consultready/consultready/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.DomainLoader by reading one pathway per
// *.yaml or *.yml file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads every pathway file in dir in file-name order.
// A missing directory yields no configs and no error.
func (l *YAMLLoader) Load(dir string) ([]domain.DomainConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading domains dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	configs := make([]domain.DomainConfig, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		cfg, err := l.LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[cfg.Name]; dup {
			return nil, fmt.Errorf("%s: domain %q already defined in %s", name, cfg.Name, prev)
		}
		seen[cfg.Name] = name
		configs = append(configs, cfg)
	}
	return configs, nil
}

// LoadFile parses and validates a single pathway file. Unknown keys are
// rejected so typos surface instead of silently disabling a rule.
func (l *YAMLLoader) LoadFile(path string) (domain.DomainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.DomainConfig{}, err
	}
	base := filepath.Base(path)

	var cfg domain.DomainConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return domain.DomainConfig{}, fmt.Errorf("parsing %s: %w", base, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.DomainConfig{}, fmt.Errorf("invalid %s: %w", base, err)
	}

	cfg.Source = path
	return cfg, nil
}

// Encode renders cfg as a pathway file that LoadFile accepts.
func Encode(cfg domain.DomainConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", cfg.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
