package request

import (
	"encoding/json"
	"strings"

	g "github.com/reoring/goskema/dsl"

	"github.com/theoremus-urban-solutions/efa-client/model"
	"github.com/theoremus-urban-solutions/efa-client/schema"
	"github.com/theoremus-urban-solutions/efa-client/utils"
)

// Response shapes strip unknown members: the server adds fields between
// releases and the client only reads the declared ones.

func stopTypeValues() []string {
	out := []string{}
	for _, t := range model.StopTypes() {
		out = append(out, string(t))
	}
	return out
}

var (
	stopTypeTag  = "oneof=" + strings.Join(stopTypeValues(), " ")
	timestampTag = "datetime=" + utils.TimestampLayout
)

var propertiesShape schema.Shape = g.Object().
	Field("stopId", g.StringOf[string]()).
	Field("downloads", g.SchemaOf[[]map[string]any](g.Array[map[string]any](g.MapAny()))).
	Field("area", g.StringOf[string]()).
	Field("platform", g.StringOf[string]()).
	Field("platformName", g.StringOf[string]()).
	Require("stopId").
	UnknownStrip().
	MustBuild()

var grandparentShape schema.Shape = g.Object().
	Field("name", g.StringOf[string]()).
	Field("type", g.StringOf[string]()).
	Require("name", "type").
	Refine("stop type", schema.Leaves(schema.StringLeaf("type", stopTypeTag))).
	UnknownStrip().
	MustBuild()

var parentShape schema.Shape = g.Object().
	Field("id", g.StringOf[string]()).
	Field("name", g.StringOf[string]()).
	Field("type", g.StringOf[string]()).
	Field("isGlobalId", g.BoolOf[bool]()).
	Field("disassembledName", g.StringOf[string]()).
	Field("parent", g.SchemaOf[map[string]any](grandparentShape)).
	Field("properties", g.SchemaOf[map[string]any](propertiesShape)).
	Require("id", "name", "type").
	UnknownStrip().
	MustBuild()

var productShape schema.Shape = g.Object().
	Field("id", g.SchemaOf[json.Number](g.NumberJSON())).
	Field("class", g.SchemaOf[json.Number](g.NumberJSON())).
	Field("name", g.StringOf[string]()).
	Field("iconId", g.SchemaOf[json.Number](g.NumberJSON())).
	Require("id", "class", "name").
	Refine("product codes", schema.Leaves(
		schema.IntLeaf("id", ""),
		schema.IntLeaf("class", ""),
		schema.IntLeaf("iconId", ""),
	)).
	UnknownStrip().
	MustBuild()

var endpointShape schema.Shape = g.Object().
	Field("id", g.StringOf[string]()).
	Field("name", g.StringOf[string]()).
	Field("type", g.StringOf[string]()).
	Require("id", "name", "type").
	Refine("stop type", schema.Leaves(schema.StringLeaf("type", stopTypeTag))).
	UnknownStrip().
	MustBuild()

// LocationShape is the shape of a location in stop finder and departure monitor responses
var LocationShape schema.Shape = g.Object().
	Field("id", g.StringOf[string]()).
	Field("isGlobalId", g.BoolOf[bool]()).
	Field("name", g.StringOf[string]()).
	Field("disassembledName", g.StringOf[string]()).
	Field("coord", g.SchemaOf[[]json.Number](g.Array[json.Number](g.NumberJSON()))).
	Field("type", g.StringOf[string]()).
	Field("isBest", g.BoolOf[bool]()).
	Field("productClasses", g.SchemaOf[[]json.Number](g.Array[json.Number](g.NumberJSON()))).
	Field("parent", g.SchemaOf[map[string]any](parentShape)).
	Field("assignedStops", g.SchemaOf[[]map[string]any](g.Array[map[string]any](g.MapAny()))).
	Field("properties", g.SchemaOf[map[string]any](propertiesShape)).
	Field("matchQuality", g.SchemaOf[json.Number](g.NumberJSON())).
	Require("id", "name", "type").
	Refine("location leaves", schema.Leaves(
		schema.StringLeaf("type", stopTypeTag),
		schema.IntLeaf("productClasses", "gte=0,lte=10").Each(),
		schema.IntLeaf("matchQuality", ""),
	)).
	UnknownStrip().
	MustBuild()

// TransportationShape is the shape of the line serving a stop event
var TransportationShape schema.Shape = g.Object().
	Field("id", g.StringOf[string]()).
	Field("name", g.StringOf[string]()).
	Field("disassembledName", g.StringOf[string]()).
	Field("number", g.StringOf[string]()).
	Field("description", g.StringOf[string]()).
	Field("product", g.SchemaOf[map[string]any](productShape)).
	Field("operator", g.SchemaOf[map[string]any](g.MapAny())).
	Field("destination", g.SchemaOf[map[string]any](endpointShape)).
	Field("origin", g.SchemaOf[map[string]any](endpointShape)).
	Field("properties", g.SchemaOf[map[string]any](g.MapAny())).
	Require("id", "name", "disassembledName", "number", "description", "product").
	Refine("required members", schema.Leaves(schema.NotNull("product"))).
	UnknownStrip().
	MustBuild()

var stopEventShape schema.Shape = g.Object().
	Field("location", g.SchemaOf[map[string]any](LocationShape)).
	Field("departureTimePlanned", g.StringOf[string]()).
	Field("departureTimeEstimated", g.StringOf[string]()).
	Field("transportation", g.SchemaOf[map[string]any](TransportationShape)).
	Field("infos", g.SchemaOf[[]map[string]any](g.Array[map[string]any](g.MapAny()))).
	Require("location", "departureTimePlanned").
	Refine("timestamps", schema.Leaves(
		schema.NotNull("location"),
		schema.StringLeaf("departureTimePlanned", timestampTag),
		schema.StringLeaf("departureTimeEstimated", timestampTag),
	)).
	UnknownStrip().
	MustBuild()

// locationsField and friends are shared by the stop finder and departure monitor shapes
var (
	locationsField      = g.SchemaOf[[]map[string]any](g.Array[map[string]any](LocationShape))
	stopEventsField     = g.SchemaOf[[]map[string]any](g.Array[map[string]any](stopEventShape))
	systemMessagesField = g.SchemaOf[[]map[string]any](g.Array[map[string]any](g.MapAny()))
)
