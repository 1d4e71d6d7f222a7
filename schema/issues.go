package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue is a single schema violation
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return fmt.Sprintf("%s @ %s", i.Message, i.Path)
}

// Issues collects every violation found by one validation pass
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, "; ")
}

// Paths returns the path of every issue in report order
func (is Issues) Paths() []string {
	out := make([]string, 0, len(is))
	for _, i := range is {
		out = append(out, i.Path)
	}
	return out
}

var validate = validator.New()

// checker accumulates issues while walking a value
type checker struct {
	issues Issues
}

func (c *checker) add(path, format string, args ...any) {
	c.issues = append(c.issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// tag runs a validator tag against an already type-checked value
func (c *checker) tag(path string, v any, tag string) {
	if tag == "" {
		return
	}
	err := validate.Var(v, tag)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		c.add(path, "value %v does not satisfy %s", fe.Value(), rule)
		return
	}
	c.add(path, "%v", err)
}

func (c *checker) err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return c.issues
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	}
	if _, ok := toInt64(v); ok {
		return "int"
	}
	if _, ok := v.(float64); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
