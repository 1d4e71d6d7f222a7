package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/reoring/goskema"
)

// Shape is the response shape of one request kind, built with the goskema dsl
type Shape = goskema.Schema[map[string]any]

// ValidateResponse parses data against shape. Violations are returned as Issues
// with JSON pointer paths; unknown members are left to the shape's unknown policy.
func ValidateResponse(ctx context.Context, shape Shape, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if _, err := goskema.ParseFrom(ctx, shape, goskema.JSONBytes(b)); err != nil {
		return fromGoskema(err)
	}
	return nil
}

func fromGoskema(err error) error {
	var gi goskema.Issues
	if !errors.As(err, &gi) || len(gi) == 0 {
		return err
	}
	out := make(Issues, 0, len(gi))
	for _, it := range gi {
		out = append(out, Issue{Path: it.Path, Message: it.Message})
	}
	return out
}

type leafKind int

const (
	leafString leafKind = iota
	leafInt
	leafNotNull
)

// Leaf is a validator tag applied to one member of a parsed object
type Leaf struct {
	field string
	kind  leafKind
	tag   string
	each  bool
}

// StringLeaf checks a string member against tag, e.g. "oneof=stop poi" or "datetime=2006-01-02"
func StringLeaf(field, tag string) Leaf { return Leaf{field: field, kind: leafString, tag: tag} }

// IntLeaf checks that a numeric member is integral and satisfies tag, e.g. "gte=0,lte=10"
func IntLeaf(field, tag string) Leaf { return Leaf{field: field, kind: leafInt, tag: tag} }

// NotNull rejects an explicit null for field
func NotNull(field string) Leaf { return Leaf{field: field, kind: leafNotNull} }

// Each applies the leaf to every item of a list member
func (l Leaf) Each() Leaf {
	l.each = true
	return l
}

// Leaves returns a goskema refinement checking every present leaf.
// Issues are reported together, relative to the refined object.
func Leaves(leaves ...Leaf) func(context.Context, map[string]any) error {
	return func(_ context.Context, m map[string]any) error {
		c := &checker{}
		for _, l := range leaves {
			v, present := m[l.field]
			if !present {
				continue
			}
			if l.kind == leafNotNull {
				if v == nil {
					c.add(l.field, "expected value, got null")
				}
				continue
			}
			if v == nil {
				continue
			}
			if !l.each {
				l.check(c, l.field, v)
				continue
			}
			rv := reflect.ValueOf(v)
			if rv.Kind() != reflect.Slice {
				c.add(l.field, "expected list, got %s", typeName(v))
				continue
			}
			for i := 0; i < rv.Len(); i++ {
				l.check(c, fmt.Sprintf("%s[%d]", l.field, i), rv.Index(i).Interface())
			}
		}
		return c.err()
	}
}

func (l Leaf) check(c *checker, path string, v any) {
	switch l.kind {
	case leafInt:
		n, ok := toInt64(v)
		if !ok {
			c.add(path, "expected int, got %s", typeName(v))
			return
		}
		c.tag(path, n, l.tag)
	default:
		s, ok := v.(string)
		if !ok {
			c.add(path, "expected string, got %s", typeName(v))
			return
		}
		c.tag(path, s, l.tag)
	}
}
