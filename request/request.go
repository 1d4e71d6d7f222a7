package request

import (
	"context"
	"fmt"

	"github.com/theoremus-urban-solutions/efa-client/internal"
	"github.com/theoremus-urban-solutions/efa-client/schema"
	"github.com/theoremus-urban-solutions/efa-client/utils"
)

// OutputFormat is the response format requested from the server
const OutputFormat = "rapidJSON"

// Request is implemented by every request kind. T is the record type Parse produces.
type Request[T any] interface {
	QueryString() (string, error)
	Parse(data any) (T, error)
}

// baseParams is the parameter schema shared by every request kind
var baseParams = schema.NewParamSchema(
	schema.EnumParam("outputFormat", OutputFormat).Require().Default(OutputFormat),
)

// Base holds the state shared by all request kinds
type Base struct {
	name           string
	macro          string
	params         *schema.Params
	paramSchema    *schema.ParamSchema
	responseSchema schema.Shape
}

// NewBase creates a request with outputFormat already set
func NewBase(name, macro string, params *schema.ParamSchema, response schema.Shape) *Base {
	b := &Base{
		name:           name,
		macro:          macro,
		params:         schema.NewParams(),
		paramSchema:    params,
		responseSchema: response,
	}
	b.params.Set("outputFormat", OutputFormat)
	return b
}

// Name returns the endpoint name
func (b *Base) Name() string { return b.name }

// Macro returns the commonMacro value
func (b *Base) Macro() string { return b.macro }

// Params returns a copy of the current parameters
func (b *Base) Params() *schema.Params { return b.params.Clone() }

// ParamSchema returns the parameters this request accepts
func (b *Base) ParamSchema() *schema.ParamSchema { return b.paramSchema }

// ResponseSchema returns the expected response shape
func (b *Base) ResponseSchema() schema.Shape { return b.responseSchema }

// AddParam sets a parameter, replacing any previous value. An empty key or a
// nil/empty-string value is ignored. Keys outside the schema fail with *ParameterError.
func (b *Base) AddParam(key string, value any) error {
	if key == "" || value == nil {
		return nil
	}
	if s, ok := value.(string); ok && s == "" {
		return nil
	}
	if !b.paramSchema.Has(key) {
		return &ParameterError{Key: key, Msg: "parameter is not allowed for this request"}
	}

	internal.Logger.Printf("add parameter %q with value %q", key, fmt.Sprint(value))
	b.params.Set(key, value)
	return nil
}

// AddParamDateTime sets itdDate and/or itdTime from "YYYYMMDD HH:MM", "YYYYMMDD" or "HH:MM".
// Empty input is ignored; anything else fails with *ValueError.
func (b *Base) AddParamDateTime(text string) error {
	if text == "" {
		return nil
	}

	switch {
	case utils.IsDateTime(text):
		date, tm, _ := utils.SplitDateTime(text)
		if err := b.AddParam("itdDate", date); err != nil {
			return err
		}
		return b.AddParam("itdTime", tm)
	case utils.IsDate(text):
		return b.AddParam("itdDate", text)
	case utils.IsTime(text):
		return b.AddParam("itdTime", utils.StripColon(text))
	}
	return &ValueError{Msg: fmt.Sprintf("date(time) %q provided in invalid format", text)}
}

// QueryString validates the parameters, fills in defaults and renders
// "<name>?commonMacro=<macro>&k=v..." in parameter insertion order
func (b *Base) QueryString() (string, error) {
	validated, err := b.paramSchema.Validate(b.params)
	if err != nil {
		internal.Logger.Printf("parameters validation failed: %v", err)
		return "", &ParameterError{Msg: "parameters validation failed", Err: err}
	}
	b.params = validated

	return fmt.Sprintf("%s?commonMacro=%s", b.name, b.macro) + b.params.Encode(), nil
}

// ValidateResponse checks data against the response shape
func (b *Base) ValidateResponse(data any) error {
	if b.responseSchema == nil {
		return nil
	}
	if err := schema.ValidateResponse(context.Background(), b.responseSchema, data); err != nil {
		return newResponseInvalid(err)
	}
	return nil
}
