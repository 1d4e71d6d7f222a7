package schema

import (
	"fmt"
	"net/url"
	"strings"
)

// Params is an insertion-ordered set of query parameters.
// Setting an existing key replaces its value in place.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates an empty parameter set
func NewParams() *Params {
	return &Params{values: map[string]any{}}
}

// Set adds or replaces a parameter
func (p *Params) Set(key string, value any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key
func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Delete removes key if present
func (p *Params) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of parameters
func (p *Params) Len() int { return len(p.keys) }

// Keys returns the keys in insertion order
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Clone returns an independent copy
func (p *Params) Clone() *Params {
	c := &Params{keys: p.Keys(), values: make(map[string]any, len(p.values))}
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}

// Map returns the parameters as a plain map
func (p *Params) Map() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Encode renders "&k=v" for every parameter in insertion order, values query-escaped.
// An empty set renders as "".
func (p *Params) Encode() string {
	var b strings.Builder
	for _, k := range p.keys {
		b.WriteByte('&')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(p.values[k])))
	}
	return b.String()
}
