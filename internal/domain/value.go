package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Flag is the tri-state of a documentation checkbox. A field that is absent
// from Inputs is "unset", which is a separate condition from NotApplicable.
type Flag uint8

const (
	NotApplicable Flag = iota
	False
	True
)

func (f Flag) String() string {
	switch f {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "n/a"
	}
}

// ValueKind identifies which member of Value is populated.
type ValueKind uint8

const (
	KindBool ValueKind = iota + 1
	KindEnum
	KindNumber
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindNumber:
		return "number"
	default:
		return "invalid"
	}
}

// Value is a single observation: a flag, an enum token or a number.
type Value struct {
	kind ValueKind
	flag Flag
	text string
	num  float64
}

func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, flag: True}
	}
	return Value{kind: KindBool, flag: False}
}

// NotApplicableValue marks a conditionally-applicable checkbox as not in play.
func NotApplicableValue() Value { return Value{kind: KindBool, flag: NotApplicable} }

func Enum(token string) Value { return Value{kind: KindEnum, text: token} }

func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

func (v Value) Kind() ValueKind { return v.kind }

// Flag returns the tri-state and whether v is a boolean at all.
func (v Value) Flag() (Flag, bool) {
	return v.flag, v.kind == KindBool
}

func (v Value) Token() (string, bool) {
	return v.text, v.kind == KindEnum
}

func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return v.flag.String()
	case KindEnum:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON renders flags as true/false/null, enums as strings and numbers as numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		switch v.flag {
		case True:
			return []byte("true"), nil
		case False:
			return []byte("false"), nil
		default:
			return []byte("null"), nil
		}
	case KindEnum:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.num)
	default:
		return nil, fmt.Errorf("marshaling value: invalid kind %d", v.kind)
	}
}

// Inputs is the flat record of field key to observation for one evaluation.
type Inputs map[string]Value

// IsTrue reports whether key holds a boolean True. Enum or number values
// never satisfy it, whatever their content.
func (in Inputs) IsTrue(key string) bool {
	v, ok := in[key]
	if !ok {
		return false
	}
	f, isBool := v.Flag()
	return isBool && f == True
}

// IsFalseOrUnset reports whether key is absent or holds a boolean False.
func (in Inputs) IsFalseOrUnset(key string) bool {
	v, ok := in[key]
	if !ok {
		return true
	}
	f, isBool := v.Flag()
	return isBool && f == False
}

// Token returns the enum token at key, or "" when absent or not an enum.
func (in Inputs) Token(key string) string {
	t, _ := in[key].Token()
	return t
}

func (in Inputs) AnyTrue(keys []string) bool {
	for _, k := range keys {
		if in.IsTrue(k) {
			return true
		}
	}
	return false
}

func (in Inputs) Clone() Inputs {
	out := make(Inputs, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
