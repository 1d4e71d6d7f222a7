package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type paramKind int

const (
	kindString paramKind = iota
	kindInt
	kindScalar // string or integer, compared by its text form
)

// Param declares one legal query parameter. Build with StringParam, IntParam, EnumParam, FlagParam, RangeParam or DateParam.
type Param struct {
	key        string
	kind       paramKind
	tag        string
	required   bool
	def        any
	hasDefault bool
}

// StringParam declares a parameter holding a string
func StringParam(key string) Param { return Param{key: key, kind: kindString} }

// IntParam declares a parameter holding a Go integer
func IntParam(key string) Param { return Param{key: key, kind: kindInt} }

// EnumParam declares a parameter restricted to values. Integers are matched by their decimal form.
func EnumParam(key string, values ...string) Param {
	return Param{key: key, kind: kindScalar, tag: "oneof=" + strings.Join(values, " ")}
}

// FlagParam declares a boolean-like parameter accepting 0/1 as string or integer
func FlagParam(key string) Param { return EnumParam(key, "0", "1") }

// RangeParam declares an integer parameter within [min, max]
func RangeParam(key string, min, max int) Param {
	return Param{key: key, kind: kindInt, tag: fmt.Sprintf("gte=%d,lte=%d", min, max)}
}

// DateParam declares a string parameter that must parse with the given time layout
func DateParam(key, layout string) Param {
	return Param{key: key, kind: kindString, tag: "datetime=" + layout}
}

// Require marks the parameter as required
func (p Param) Require() Param {
	p.required = true
	return p
}

// Default sets the value injected when the parameter is missing
func (p Param) Default(v any) Param {
	p.def = v
	p.hasDefault = true
	return p
}

// Key returns the parameter name
func (p Param) Key() string { return p.key }

// IsRequired reports whether the parameter must be present after defaults are applied
func (p Param) IsRequired() bool { return p.required }

// DefaultValue returns the default and whether one is declared
func (p Param) DefaultValue() (any, bool) { return p.def, p.hasDefault }

func (p Param) check(c *checker, v any) {
	switch p.kind {
	case kindString:
		s, ok := v.(string)
		if !ok {
			c.add(p.key, "expected string, got %s", typeName(v))
			return
		}
		c.tag(p.key, s, p.tag)
	case kindInt:
		if !isGoInt(v) {
			c.add(p.key, "expected int, got %s", typeName(v))
			return
		}
		n, _ := toInt64(v)
		c.tag(p.key, n, p.tag)
	case kindScalar:
		var s string
		switch x := v.(type) {
		case string:
			s = x
		default:
			if !isGoInt(v) {
				c.add(p.key, "expected string or int, got %s", typeName(v))
				return
			}
			n, _ := toInt64(v)
			s = strconv.FormatInt(n, 10)
		}
		c.tag(p.key, s, p.tag)
	}
}

// ParamSchema is the set of parameters a request may carry, in declaration order
type ParamSchema struct {
	params []Param
	index  map[string]int
}

// NewParamSchema builds a schema. A later Param with the same key replaces the earlier one.
func NewParamSchema(params ...Param) *ParamSchema {
	s := &ParamSchema{index: map[string]int{}}
	for _, p := range params {
		s.put(p)
	}
	return s
}

func (s *ParamSchema) put(p Param) {
	if i, ok := s.index[p.key]; ok {
		s.params[i] = p
		return
	}
	s.index[p.key] = len(s.params)
	s.params = append(s.params, p)
}

// Extend returns a new schema with params added or replaced
func (s *ParamSchema) Extend(params ...Param) *ParamSchema {
	out := NewParamSchema(s.params...)
	for _, p := range params {
		out.put(p)
	}
	return out
}

// Has reports whether key is declared
func (s *ParamSchema) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Param returns the declaration for key
func (s *ParamSchema) Param(key string) (Param, bool) {
	i, ok := s.index[key]
	if !ok {
		return Param{}, false
	}
	return s.params[i], true
}

// Keys returns the declared keys in declaration order
func (s *ParamSchema) Keys() []string {
	out := make([]string, 0, len(s.params))
	for _, p := range s.params {
		out = append(out, p.key)
	}
	return out
}

// Validate checks params against the schema and returns a copy with defaults
// appended for every missing parameter that declares one. Unknown keys, type,
// enumeration, range and format violations and missing required keys are
// reported together as Issues; params itself is never modified.
func (s *ParamSchema) Validate(params *Params) (*Params, error) {
	c := &checker{}
	out := params.Clone()

	unknown := []string{}
	for _, k := range params.Keys() {
		p, ok := s.Param(k)
		if !ok {
			unknown = append(unknown, k)
			continue
		}
		v, _ := params.Get(k)
		p.check(c, v)
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		c.add(k, "extra keys not allowed")
	}

	for _, p := range s.params {
		if _, ok := params.Get(p.key); ok {
			continue
		}
		if p.hasDefault {
			out.Set(p.key, p.def)
			continue
		}
		if p.required {
			c.add(p.key, "required key not provided")
		}
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return out, nil
}
