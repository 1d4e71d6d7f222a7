package request

import (
	"sort"

	g "github.com/reoring/goskema/dsl"

	"github.com/theoremus-urban-solutions/efa-client/internal"
	"github.com/theoremus-urban-solutions/efa-client/model"
	"github.com/theoremus-urban-solutions/efa-client/schema"
)

// Stop finder search types
const (
	StopFinderAny   = "any"
	StopFinderCoord = "coord"
)

var stopFinderParams = baseParams.Extend(
	schema.EnumParam("type_sf", StopFinderAny, StopFinderCoord).Require().Default(StopFinderAny),
	schema.StringParam("name_sf").Require(),
	schema.IntParam("anyMaxSizeHitList").Default(30),
	schema.FlagParam("anySigWhenPerfectNoOtherMatches"),
	schema.StringParam("anyResSort_sf"),
	schema.IntParam("anyObjFilter_sf"),
	schema.FlagParam("doNotSearchForStops_sf"),
	schema.RangeParam("anyObjFilter_origin", 0, int(model.StopFilterAll)),
)

var stopFinderResponseShape schema.Shape = g.Object().
	Field("version", g.StringOf[string]()).
	Field("systemMessages", systemMessagesField).
	Field("locations", locationsField).
	Require("version", "locations").
	Refine("required members", schema.Leaves(schema.NotNull("locations"))).
	UnknownStrip().
	MustBuild()

// StopFinderRequest searches stops by name or coordinate
type StopFinderRequest struct {
	*Base
}

// NewStopFinderRequest creates a stop finder request for name. searchType is
// StopFinderAny or StopFinderCoord and is checked when the query is rendered.
func NewStopFinderRequest(searchType, name string) *StopFinderRequest {
	r := &StopFinderRequest{
		Base: NewBase("XML_STOPFINDER_REQUEST", "stopfinder", stopFinderParams, stopFinderResponseShape),
	}
	// both keys are declared, so these cannot fail
	_ = r.AddParam("type_sf", searchType)
	_ = r.AddParam("name_sf", name)
	return r
}

// SetFilter restricts the searched object classes of the origin
func (r *StopFinderRequest) SetFilter(f model.StopFilter) error {
	return r.AddParam("anyObjFilter_origin", int(f))
}

// Parse validates the response and returns the found stops, best match first
func (r *StopFinderRequest) Parse(data any) ([]model.Stop, error) {
	if err := r.ValidateResponse(data); err != nil {
		return nil, err
	}

	var resp stopFinderResponse
	if err := decodeWire(data, &resp); err != nil {
		return nil, err
	}

	internal.Logger.Printf("%d stop(s) found", len(resp.Locations))

	type ranked struct {
		stop    model.Stop
		quality int
	}
	found := make([]ranked, 0, len(resp.Locations))
	for _, loc := range resp.Locations {
		stop, err := loc.toStop()
		if err != nil {
			return nil, err
		}
		found = append(found, ranked{stop: stop, quality: loc.MatchQuality})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].quality > found[j].quality
	})

	stops := make([]model.Stop, 0, len(found))
	for _, f := range found {
		stops = append(stops, f.stop)
	}
	return stops, nil
}
