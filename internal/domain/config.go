package domain

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownDomain is returned when a pathway name has no configuration.
var ErrUnknownDomain = errors.New("unknown domain")

// FieldKind is the declared type of an intake field.
type FieldKind string

const (
	FieldBool   FieldKind = "bool"
	FieldEnum   FieldKind = "enum"
	FieldNumber FieldKind = "number"
)

// ValidFieldKinds enumerates all recognized field kinds.
var ValidFieldKinds = []FieldKind{FieldBool, FieldEnum, FieldNumber}

// Field declares one intake field: its label for missing-item reporting and
// the shape the collection boundary must enforce.
type Field struct {
	Key     string    `yaml:"key"               json:"key"`
	Label   string    `yaml:"label,omitempty"   json:"label,omitempty"`
	Kind    FieldKind `yaml:"kind"              json:"kind"`
	Options []string  `yaml:"options,omitempty" json:"options,omitempty"`
	Min     *float64  `yaml:"min,omitempty"     json:"min,omitempty"`
	Max     *float64  `yaml:"max,omitempty"     json:"max,omitempty"`
}

// ConditionalRequirement adds Keys to the required set when the enum at
// Discriminator equals Equals.
type ConditionalRequirement struct {
	Discriminator string   `yaml:"discriminator" json:"discriminator"`
	Equals        string   `yaml:"equals"        json:"equals"`
	Keys          []string `yaml:"keys"          json:"keys"`
}

// EnumDerivation computes flag Key from the enum at Source. Tokens in
// TrueWhen give True, tokens in FalseWhen give False, anything else
// (including unset or unrecognized tokens) gives NotApplicable.
type EnumDerivation struct {
	Key       string   `yaml:"key"                  json:"key"`
	Source    string   `yaml:"source"               json:"source"`
	TrueWhen  []string `yaml:"true_when"            json:"true_when"`
	FalseWhen []string `yaml:"false_when,omitempty" json:"false_when,omitempty"`
}

// NumberDerivation sets flag Key to True when the number at Source is at
// least AtLeast, False when below, and leaves it unset when Source is absent.
type NumberDerivation struct {
	Key     string  `yaml:"key"      json:"key"`
	Source  string  `yaml:"source"   json:"source"`
	AtLeast float64 `yaml:"at_least" json:"at_least"`
}

// Derivations groups the flags computed before any rule runs.
type Derivations struct {
	Enums   []EnumDerivation   `yaml:"enums,omitempty"   json:"enums,omitempty"`
	Numbers []NumberDerivation `yaml:"numbers,omitempty" json:"numbers,omitempty"`
}

// ScopeText is the display label and canonical rationale for one scope branch.
type ScopeText struct {
	Label     string `yaml:"label"     json:"label"`
	Rationale string `yaml:"rationale" json:"rationale"`
}

// ScopeTexts holds one ScopeText per classifier branch.
type ScopeTexts struct {
	HighRisk     ScopeText `yaml:"high_risk"    json:"high_risk"`
	Consistent   ScopeText `yaml:"consistent"   json:"consistent"`
	Inconsistent ScopeText `yaml:"inconsistent" json:"inconsistent"`
	Insufficient ScopeText `yaml:"insufficient" json:"insufficient"`
}

// TierLabels holds the display label for each tier.
type TierLabels struct {
	ConsiderAlternate string `yaml:"consider_alternate" json:"consider_alternate"`
	Low               string `yaml:"low"                json:"low"`
	Strongly          string `yaml:"strongly"           json:"strongly"`
	ConsultNow        string `yaml:"consult_now"        json:"consult_now"`
}

// MessageTemplates holds the fixed sentences and headings of the consult message.
type MessageTemplates struct {
	Redirect        string `yaml:"redirect"         json:"redirect"`
	SevereAlternate string `yaml:"severe_alternate" json:"severe_alternate"`
	// DetailsHeading and MissingLead are used for OUTSIDE_SCOPE messages.
	DetailsHeading string `yaml:"details_heading" json:"details_heading"`
	MissingLead    string `yaml:"missing_lead"    json:"missing_lead"`
	// The Parallel variants are used for every other scope.
	ParallelDetailsHeading string `yaml:"parallel_details_heading" json:"parallel_details_heading"`
	ParallelMissingLead    string `yaml:"parallel_missing_lead"    json:"parallel_missing_lead"`
}

// DomainConfig is the static rule table for one specialty pathway. Nothing
// in the engine is specific to a pathway; everything varies through here.
type DomainConfig struct {
	Name      string `yaml:"name"      json:"name"`
	Title     string `yaml:"title"     json:"title"`
	Specialty string `yaml:"specialty" json:"specialty"`

	Fields      []Field                  `yaml:"fields"                json:"fields"`
	Required    []string                 `yaml:"required"              json:"required"`
	Conditional []ConditionalRequirement `yaml:"conditional,omitempty" json:"conditional,omitempty"`
	Derived     Derivations              `yaml:"derived,omitempty"     json:"derived,omitempty"`

	HighRiskFlags         []string `yaml:"high_risk_flags"                    json:"high_risk_flags"`
	ConsistencyFlags      []string `yaml:"consistency_flags"                  json:"consistency_flags"`
	HighRiskLocationFlags []string `yaml:"high_risk_location_flags,omitempty" json:"high_risk_location_flags,omitempty"`
	SevereAlternateFlag   string   `yaml:"severe_alternate_flag,omitempty"    json:"severe_alternate_flag,omitempty"`

	ReadinessThreshold float64 `yaml:"readiness_threshold" json:"readiness_threshold"`
	MissingCap         int     `yaml:"missing_cap"         json:"missing_cap"`

	ScopeText  ScopeTexts       `yaml:"scope_text"  json:"scope_text"`
	TierLabels TierLabels       `yaml:"tier_labels" json:"tier_labels"`
	Message    MessageTemplates `yaml:"message"     json:"message"`

	// Source and Revision describe where a loaded config came from.
	Source   string `yaml:"-" json:"source,omitempty"`
	Revision string `yaml:"-" json:"revision,omitempty"`
}

// DefaultMissingCap applies when a config leaves MissingCap at zero.
const DefaultMissingCap = 5

// EffectiveMissingCap returns MissingCap, falling back to DefaultMissingCap.
func (c DomainConfig) EffectiveMissingCap() int {
	if c.MissingCap > 0 {
		return c.MissingCap
	}
	return DefaultMissingCap
}

// Field returns the declared field for key.
func (c DomainConfig) Field(key string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Label returns the human-readable label for key, humanizing the key when
// the config does not declare one.
func (c DomainConfig) Label(key string) string {
	if f, ok := c.Field(key); ok && f.Label != "" {
		return f.Label
	}
	return HumanizeKey(key)
}

// Validate checks the config for dangling references and out-of-range
// values and returns a descriptive error.
func (c DomainConfig) Validate() error {
	// 1. name is required
	if c.Name == "" {
		return fmt.Errorf("name must not be empty")
	}

	// 2. fields are unique, typed, and shaped for their kind
	declared := make(map[string]Field, len(c.Fields))
	for i, f := range c.Fields {
		if f.Key == "" {
			return fmt.Errorf("fields[%d].key must not be empty", i)
		}
		if _, dup := declared[f.Key]; dup {
			return fmt.Errorf("field %q declared twice", f.Key)
		}
		if !slices.Contains(ValidFieldKinds, f.Kind) {
			return fmt.Errorf("field %q has unknown kind %q (valid: bool, enum, number)", f.Key, f.Kind)
		}
		if f.Kind == FieldEnum && len(f.Options) == 0 {
			return fmt.Errorf("enum field %q must list its options", f.Key)
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return fmt.Errorf("field %q has min %.2f above max %.2f", f.Key, *f.Min, *f.Max)
		}
		declared[f.Key] = f
	}

	// 3. derived flags count as declared boolean fields for the checks below
	flags := make(map[string]bool)
	for k, f := range declared {
		if f.Kind == FieldBool {
			flags[k] = true
		}
	}
	for _, d := range c.Derived.Enums {
		if f, ok := declared[d.Source]; !ok || f.Kind != FieldEnum {
			return fmt.Errorf("derived flag %q: source %q is not a declared enum field", d.Key, d.Source)
		}
		if d.Key == "" {
			return fmt.Errorf("derived flag from %q has an empty key", d.Source)
		}
		flags[d.Key] = true
	}
	for _, d := range c.Derived.Numbers {
		if f, ok := declared[d.Source]; !ok || f.Kind != FieldNumber {
			return fmt.Errorf("derived flag %q: source %q is not a declared number field", d.Key, d.Source)
		}
		if d.Key == "" {
			return fmt.Errorf("derived flag from %q has an empty key", d.Source)
		}
		flags[d.Key] = true
	}

	// 4. every referenced key is a known flag
	check := func(section string, keys []string) error {
		for _, k := range keys {
			if !flags[k] {
				return fmt.Errorf("%s references %q, which is not a declared boolean or derived flag", section, k)
			}
		}
		return nil
	}
	if err := check("required", c.Required); err != nil {
		return err
	}
	for i, cond := range c.Conditional {
		if f, ok := declared[cond.Discriminator]; !ok || f.Kind != FieldEnum {
			return fmt.Errorf("conditional[%d]: discriminator %q is not a declared enum field", i, cond.Discriminator)
		}
		if err := check(fmt.Sprintf("conditional[%d]", i), cond.Keys); err != nil {
			return err
		}
	}
	if err := check("high_risk_flags", c.HighRiskFlags); err != nil {
		return err
	}
	if err := check("consistency_flags", c.ConsistencyFlags); err != nil {
		return err
	}
	if err := check("high_risk_location_flags", c.HighRiskLocationFlags); err != nil {
		return err
	}
	if c.SevereAlternateFlag != "" {
		if err := check("severe_alternate_flag", []string{c.SevereAlternateFlag}); err != nil {
			return err
		}
	}

	// 5. numeric parameters
	if c.ReadinessThreshold < 0 || c.ReadinessThreshold > 100 {
		return fmt.Errorf("readiness_threshold = %.1f (must be between 0 and 100)", c.ReadinessThreshold)
	}
	if c.MissingCap < 0 {
		return fmt.Errorf("missing_cap must be >= 0 (got %d)", c.MissingCap)
	}

	return nil
}
