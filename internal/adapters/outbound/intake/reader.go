// Package intake reads intake documents and converts their loosely typed
// values into engine Inputs and Details.
package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/tbsa"
	"gopkg.in/yaml.v3"
)

// TBSAField is the number field filled from tbsa_regions when a document
// leaves it unset.
const TBSAField = "tbsa_pct"

// Document is the on-disk and over-the-wire intake shape.
type Document struct {
	Domain      string         `yaml:"domain,omitempty"       json:"domain,omitempty"`
	Inputs      map[string]any `yaml:"inputs"                 json:"inputs"`
	Details     []DetailEntry  `yaml:"details,omitempty"      json:"details,omitempty"`
	TBSARegions []string       `yaml:"tbsa_regions,omitempty" json:"tbsa_regions,omitempty"`
}

// DetailEntry carries either a single value or a list of values.
type DetailEntry struct {
	Label  string   `yaml:"label"            json:"label"`
	Value  any      `yaml:"value,omitempty"  json:"value,omitempty"`
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// Intake is a document converted for one domain.
type Intake struct {
	Domain  string
	Inputs  domain.Inputs
	Details *domain.Details
	TBSA    *tbsa.Estimate
}

// Reader parses YAML or JSON intake files, chosen by extension.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

// Parse decodes a document without converting it.
func (r *Reader) Parse(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return Document{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Read parses path and converts it against cfg.
func (r *Reader) Read(path string, cfg domain.DomainConfig) (Intake, error) {
	doc, err := r.Parse(path)
	if err != nil {
		return Intake{}, err
	}
	in, err := Convert(doc, cfg)
	if err != nil {
		return Intake{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return in, nil
}

// estimatedTBSALabel is the detail line carrying the region estimate. A
// clinician-entered line under the same label is kept as written.
const estimatedTBSALabel = "Estimated TBSA"

// Convert coerces doc against cfg, estimating TBSA from regions when the
// number field is declared but unset.
func Convert(doc Document, cfg domain.DomainConfig) (Intake, error) {
	inputs, err := Coerce(cfg, doc.Inputs)
	if err != nil {
		return Intake{}, err
	}

	details := &domain.Details{}
	for _, d := range doc.Details {
		if len(d.Values) > 0 {
			details.AddList(d.Label, d.Values)
			continue
		}
		details.Add(d.Label, scalarText(d.Value))
	}

	out := Intake{Domain: cfg.Name, Inputs: inputs, Details: details}
	if len(doc.TBSARegions) == 0 {
		return out, nil
	}

	est, err := tbsa.Compute(doc.TBSARegions)
	if err != nil {
		return Intake{}, err
	}
	out.TBSA = &est
	if _, declared := cfg.Field(TBSAField); declared {
		if _, set := inputs[TBSAField]; !set {
			inputs[TBSAField] = domain.Number(est.Percent)
		}
	}
	if _, documented := details.Get(estimatedTBSALabel); !documented {
		details.Add(estimatedTBSALabel, strconv.FormatFloat(est.Percent, 'f', 1, 64)+"%")
	}
	return out, nil
}

func scalarText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

// ParseDocument decodes an in-memory document. YAML is a superset of JSON,
// so both are accepted.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
