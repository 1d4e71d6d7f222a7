package request

import (
	g "github.com/reoring/goskema/dsl"

	"github.com/theoremus-urban-solutions/efa-client/schema"
	"github.com/theoremus-urban-solutions/efa-client/utils"
)

var tripParams = baseParams.Extend(
	schema.EnumParam("type_origin", "any", "coord").Require().Default("any"),
	schema.StringParam("name_origin").Require(),
	schema.EnumParam("type_destination", "any", "coord").Require().Default("any"),
	schema.StringParam("name_destination").Require(),
	schema.EnumParam("type_via", "any", "coord").Default("any"),
	schema.StringParam("name_via"),
	schema.DateParam("itdTime", utils.ParamTimeLayout),
	schema.DateParam("itdDate", utils.ParamDateLayout),
	schema.FlagParam("useUT"),
	schema.FlagParam("useRealtime"),
)

// tripResponseShape accepts any object until trip parsing is implemented
var tripResponseShape schema.Shape = g.Object().UnknownStrip().MustBuild()

// TripRequest declares the trip planning parameters. Parsing trips is not implemented.
type TripRequest struct {
	*Base
}

// NewTripRequest creates a trip request between origin and destination
func NewTripRequest(origin, destination string) *TripRequest {
	r := &TripRequest{
		Base: NewBase("XML_TRIP_REQUEST2", "trip", tripParams, tripResponseShape),
	}
	_ = r.AddParam("name_origin", origin)
	_ = r.AddParam("name_destination", destination)
	return r
}

// Parse always fails with ErrNotImplemented
func (r *TripRequest) Parse(data any) (any, error) {
	return nil, ErrNotImplemented
}
