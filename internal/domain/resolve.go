package domain

import "slices"

// Resolve returns a copy of inputs with every derived flag computed. The
// caller's record is never modified.
func (c DomainConfig) Resolve(inputs Inputs) Inputs {
	out := inputs.Clone()

	for _, d := range c.Derived.Enums {
		token, isEnum := inputs[d.Source].Token()
		switch {
		case isEnum && slices.Contains(d.TrueWhen, token):
			out[d.Key] = Bool(true)
		case isEnum && slices.Contains(d.FalseWhen, token):
			out[d.Key] = Bool(false)
		default:
			out[d.Key] = NotApplicableValue()
		}
	}

	for _, d := range c.Derived.Numbers {
		n, isNum := inputs[d.Source].Float()
		if !isNum {
			continue
		}
		out[d.Key] = Bool(n >= d.AtLeast)
	}

	return out
}
