package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/consultready/consultready/internal/domain"
)

var (
	// ErrOutOfRange is returned for a number outside its field's [Min, Max].
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidValue is returned when a value cannot take its field's kind.
	ErrInvalidValue = errors.New("invalid value")
)

var notApplicableTokens = map[string]bool{
	"n/a":            true,
	"na":             true,
	"not applicable": true,
}

// Coerce converts raw scalar values into typed Inputs using the field
// catalogue of cfg. Keys are processed in sorted order so the first error
// reported is stable.
func Coerce(cfg domain.DomainConfig, raw map[string]any) (domain.Inputs, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	in := make(domain.Inputs, len(raw))
	for _, key := range keys {
		v, ok, err := coerceOne(cfg, key, raw[key])
		if err != nil {
			return nil, err
		}
		if ok {
			in[key] = v
		}
	}
	return in, nil
}

func coerceOne(cfg domain.DomainConfig, key string, raw any) (domain.Value, bool, error) {
	f, declared := cfg.Field(key)
	if !declared {
		return coerceUndeclared(key, raw)
	}

	switch f.Kind {
	case domain.FieldBool:
		switch v := raw.(type) {
		case nil:
			return domain.NotApplicableValue(), true, nil
		case bool:
			return domain.Bool(v), true, nil
		case string:
			if notApplicableTokens[strings.ToLower(strings.TrimSpace(v))] {
				return domain.NotApplicableValue(), true, nil
			}
		}
		return domain.Value{}, false, fmt.Errorf("%w: %s must be true, false or n/a (got %v)", ErrInvalidValue, key, raw)

	case domain.FieldEnum:
		switch v := raw.(type) {
		case nil:
			return domain.Value{}, false, nil
		case string:
			if strings.TrimSpace(v) == "" {
				return domain.Value{}, false, nil
			}
			return domain.Enum(v), true, nil
		}
		if n, ok := toFloat(raw); ok {
			return domain.Enum(strconv.FormatFloat(n, 'f', -1, 64)), true, nil
		}
		return domain.Value{}, false, fmt.Errorf("%w: %s must be one of %s (got %v)", ErrInvalidValue, key, strings.Join(f.Options, ", "), raw)

	case domain.FieldNumber:
		if raw == nil {
			return domain.Value{}, false, nil
		}
		n, ok := toFloat(raw)
		if !ok {
			return domain.Value{}, false, fmt.Errorf("%w: %s must be a finite number (got %v)", ErrInvalidValue, key, raw)
		}
		if (f.Min != nil && n < *f.Min) || (f.Max != nil && n > *f.Max) {
			return domain.Value{}, false, fmt.Errorf("%w: %s = %v (allowed %s)", ErrOutOfRange, key, n, rangeText(f))
		}
		return domain.Number(n), true, nil
	}

	return domain.Value{}, false, fmt.Errorf("%w: field %s has kind %q", ErrInvalidValue, key, f.Kind)
}

// coerceUndeclared keeps keys the catalogue does not know so that loaded
// configs can reference them without a schema change.
func coerceUndeclared(key string, raw any) (domain.Value, bool, error) {
	switch v := raw.(type) {
	case nil:
		return domain.NotApplicableValue(), true, nil
	case bool:
		return domain.Bool(v), true, nil
	case string:
		if notApplicableTokens[strings.ToLower(strings.TrimSpace(v))] {
			return domain.NotApplicableValue(), true, nil
		}
		return domain.Enum(v), true, nil
	}
	if n, ok := toFloat(raw); ok {
		return domain.Number(n), true, nil
	}
	return domain.Value{}, false, fmt.Errorf("%w: %s must be a scalar (got %T)", ErrInvalidValue, key, raw)
}

// toFloat reports false for NaN and infinities, which no range check can
// bound.
func toFloat(raw any) (float64, bool) {
	n, ok := rawFloat(raw)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func rawFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	}
	return 0, false
}

func rangeText(f domain.Field) string {
	lo, hi := "-inf", "+inf"
	if f.Min != nil {
		lo = strconv.FormatFloat(*f.Min, 'f', -1, 64)
	}
	if f.Max != nil {
		hi = strconv.FormatFloat(*f.Max, 'f', -1, 64)
	}
	return "[" + lo + ", " + hi + "]"
}
