package request

import (
	"time"

	g "github.com/reoring/goskema/dsl"

	"github.com/theoremus-urban-solutions/efa-client/internal"
	"github.com/theoremus-urban-solutions/efa-client/model"
	"github.com/theoremus-urban-solutions/efa-client/schema"
	"github.com/theoremus-urban-solutions/efa-client/utils"
)

var departuresParams = baseParams.Extend(
	schema.StringParam("name_dm").Require(),
	schema.EnumParam("type_dm", "any", "stop").Require().Default("stop"),
	schema.EnumParam("mode", "any", "direct").Require().Default("direct"),
	schema.DateParam("itdTime", utils.ParamTimeLayout),
	schema.DateParam("itdDate", utils.ParamDateLayout),
	schema.FlagParam("useAllStops"),
	schema.FlagParam("useRealtime").Default(1),
	schema.FlagParam("lsShowTrainsExplicit"),
	schema.FlagParam("useProxFootSearch"),
	schema.FlagParam("deleteAssigendStops_dm"),
	schema.FlagParam("doNotSearchForStops_dm"),
	schema.IntParam("limit"),
)

var departuresResponseShape schema.Shape = g.Object().
	Field("version", g.StringOf[string]()).
	Field("systemMessages", systemMessagesField).
	Field("locations", locationsField).
	Field("stopEvents", stopEventsField).
	Require("version", "locations", "stopEvents").
	Refine("required members", schema.Leaves(schema.NotNull("locations"), schema.NotNull("stopEvents"))).
	UnknownStrip().
	MustBuild()

// DeparturesRequest queries the departure monitor of one stop
type DeparturesRequest struct {
	*Base
	loc *time.Location
}

// NewDeparturesRequest creates a departure monitor request for stopID.
// Timestamps are converted to the utils.DefaultTimezone unless SetLocation is called.
func NewDeparturesRequest(stopID string) *DeparturesRequest {
	r := &DeparturesRequest{
		Base: NewBase("XML_DM_REQUEST", "dm", departuresParams, departuresResponseShape),
		loc:  utils.DefaultLocation(),
	}
	_ = r.AddParam("name_dm", stopID)
	return r
}

// SetLocation sets the timezone departure times are converted to
func (r *DeparturesRequest) SetLocation(loc *time.Location) {
	if loc != nil {
		r.loc = loc
	}
}

// Parse validates the response and returns one departure per stop event that
// carries a transportation block; events without one, or with a null one, are skipped
func (r *DeparturesRequest) Parse(data any) ([]model.Departure, error) {
	data = dropNullTransportation(data)
	if err := r.ValidateResponse(data); err != nil {
		return nil, err
	}

	var resp departuresResponse
	if err := decodeWire(data, &resp); err != nil {
		return nil, err
	}

	internal.Logger.Printf("%d departure(s) found", len(resp.StopEvents))

	departures := make([]model.Departure, 0, len(resp.StopEvents))
	for _, ev := range resp.StopEvents {
		if ev.Transportation == nil {
			continue
		}
		dep, err := r.departure(ev)
		if err != nil {
			return nil, err
		}
		departures = append(departures, dep)
	}
	return departures, nil
}

func (r *DeparturesRequest) departure(ev wireStopEvent) (model.Departure, error) {
	tr := ev.Transportation

	planned, err := utils.ParseDateTime(ev.DepartureTimePlanned, r.loc)
	if err != nil {
		return model.Departure{}, newResponseInvalid(err)
	}

	var estimated *time.Time
	if ev.DepartureTimeEstimated != "" {
		t, err := utils.ParseDateTime(ev.DepartureTimeEstimated, r.loc)
		if err != nil {
			return model.Departure{}, newResponseInvalid(err)
		}
		estimated = &t
	}

	origin, err := tr.Origin.toStop()
	if err != nil {
		return model.Departure{}, err
	}
	destination, err := tr.Destination.toStop()
	if err != nil {
		return model.Departure{}, err
	}

	transport, err := model.ParseTransportType(tr.Product.Class)
	if err != nil {
		return model.Departure{}, newResponseInvalid(err)
	}

	return model.Departure{
		LineName:      tr.Number,
		Route:         tr.Description,
		Origin:        origin,
		Destination:   destination,
		Transport:     transport,
		PlannedTime:   planned,
		EstimatedTime: estimated,
		Infos:         ev.Infos,
	}, nil
}

// dropNullTransportation returns data with "transportation": null removed from
// every stop event. The input document is not modified.
func dropNullTransportation(data any) any {
	doc, ok := data.(map[string]any)
	if !ok {
		return data
	}
	events, ok := doc["stopEvents"].([]any)
	if !ok {
		return data
	}

	var cleaned []any
	for i, ev := range events {
		m, ok := ev.(map[string]any)
		if !ok {
			continue
		}
		if tr, present := m["transportation"]; !present || tr != nil {
			continue
		}
		if cleaned == nil {
			cleaned = append([]any{}, events...)
		}
		copied := make(map[string]any, len(m))
		for k, v := range m {
			if k != "transportation" {
				copied[k] = v
			}
		}
		cleaned[i] = copied
	}
	if cleaned == nil {
		return data
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	out["stopEvents"] = cleaned
	return out
}
