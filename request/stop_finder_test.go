package request

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/efa-client/model"
)

func TestStopFinder_Init(t *testing.T) {
	req := NewStopFinderRequest("my_type", "my_name")

	assert.Equal(t, "XML_STOPFINDER_REQUEST", req.Name())
	assert.Equal(t, "stopfinder", req.Macro())

	typ, _ := req.Params().Get("type_sf")
	name, _ := req.Params().Get("name_sf")
	assert.Equal(t, "my_type", typ)
	assert.Equal(t, "my_name", name)
}

func TestStopFinder_QueryString(t *testing.T) {
	q, err := NewStopFinderRequest(StopFinderAny, "Plärrer").QueryString()
	require.NoError(t, err)
	assert.Equal(t,
		"XML_STOPFINDER_REQUEST?commonMacro=stopfinder&outputFormat=rapidJSON&type_sf=any&name_sf=Pl%C3%A4rrer&anyMaxSizeHitList=30",
		q)
}

func TestStopFinder_QueryStringRejectsInvalidType(t *testing.T) {
	_, err := NewStopFinderRequest("my_type", "my_name").QueryString()
	var perr *ParameterError
	assert.True(t, errors.As(err, &perr))
}

func TestStopFinder_QueryStringWithoutName(t *testing.T) {
	_, err := NewStopFinderRequest(StopFinderAny, "").QueryString()
	var perr *ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "name_sf")
}

func TestStopFinder_Filter(t *testing.T) {
	req := NewStopFinderRequest(StopFinderAny, "Plärrer")
	require.NoError(t, req.SetFilter(model.StopFilterStop|model.StopFilterPOI))
	_, err := req.QueryString()
	require.NoError(t, err)

	require.NoError(t, req.SetFilter(model.StopFilterAll))
	_, err = req.QueryString()
	require.NoError(t, err)

	require.NoError(t, req.SetFilter(model.StopFilterAll+1))
	_, err = req.QueryString()
	var perr *ParameterError
	assert.True(t, errors.As(err, &perr))
}

func TestStopFinder_ParseFixture(t *testing.T) {
	req := NewStopFinderRequest(StopFinderAny, "Plärrer")
	stops, err := req.Parse(loadFixture(t, "stop_finder.json"))
	require.NoError(t, err)
	require.Len(t, stops, 3)

	// sorted by match quality, ties keep server order
	assert.Equal(t, "street_1", stops[0].ID)
	assert.Equal(t, model.StopTypeStreet, stops[0].Type)
	assert.Equal(t, "de:09564:704", stops[1].ID)
	assert.Equal(t, "poi-1", stops[2].ID)

	plaerrer := stops[1]
	assert.Equal(t, "Nürnberg, Plärrer", plaerrer.Name)
	assert.Equal(t, "Plärrer", plaerrer.DisassembledName)
	assert.Equal(t, []float64{5648720.0, 1231690.0}, plaerrer.Coord)
	assert.Equal(t, []model.TransportType{model.TransportSubway, model.TransportTram, model.TransportBus}, plaerrer.Transports)
}

func TestStopFinder_ParseOrdersByMatchQuality(t *testing.T) {
	data := decodeJSON(t, `{
		"version": "version",
		"locations": [
			{"id": "low", "isGlobalId": true, "name": "a", "type": "stop", "matchQuality": 5},
			{"id": "high", "isGlobalId": true, "name": "b", "type": "stop", "matchQuality": 9}
		]
	}`)

	stops, err := NewStopFinderRequest(StopFinderAny, "x").Parse(data)
	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, "high", stops[0].ID)
	assert.Equal(t, "low", stops[1].ID)
}

func TestStopFinder_ParseResolvesID(t *testing.T) {
	tests := []struct {
		name       string
		isGlobalID string
		wantID     string
	}{
		{name: "global id", isGlobalID: "true", wantID: "global_id"},
		{name: "local stop id", isGlobalID: "false", wantID: "stop_id_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := decodeJSON(t, `{
				"version": "version",
				"locations": [{
					"id": "global_id",
					"isGlobalId": `+tt.isGlobalID+`,
					"name": "my location name",
					"properties": {"stopId": "stop_id_1"},
					"disassembledName": "disassembled name",
					"coord": [],
					"type": "stop",
					"productClasses": [2, 4],
					"matchQuality": 0
				}]
			}`)

			stops, err := NewStopFinderRequest("my_type", "my_name").Parse(data)
			require.NoError(t, err)
			require.Len(t, stops, 1)
			assert.Equal(t, tt.wantID, stops[0].ID)
		})
	}
}

func TestStopFinder_ParseFailed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "locations null", json: `{"version": "v", "locations": null}`},
		{name: "locations string", json: `{"version": "v", "locations": "value"}`},
		{name: "locations int", json: `{"version": "v", "locations": 123}`},
		{name: "missing version", json: `{"locations": []}`},
		{name: "bad stop type", json: `{"version": "v", "locations": [{"id": "1", "name": "n", "type": "platform"}]}`},
		{name: "product class out of range", json: `{"version": "v", "locations": [{"id": "1", "name": "n", "type": "stop", "productClasses": [12]}]}`},
		{name: "global id flag as string", json: `{"version": "v", "locations": [{"id": "1", "isGlobalId": "true", "name": "n", "type": "stop"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStopFinderRequest("my_type", "my_name").Parse(decodeJSON(t, tt.json))
			var rerr *ResponseInvalidError
			assert.True(t, errors.As(err, &rerr), "got %v", err)
		})
	}
}

func TestStopFinder_ParseUnknownTransport(t *testing.T) {
	data := decodeJSON(t, `{"version": "v", "locations": [
		{"id": "1", "isGlobalId": true, "name": "n", "type": "stop", "productClasses": [2, 3]}
	]}`)

	_, err := NewStopFinderRequest(StopFinderAny, "n").Parse(data)
	var rerr *ResponseInvalidError
	require.True(t, errors.As(err, &rerr))
	assert.ErrorIs(t, err, model.ErrUnknownCode)
}

func TestStopFinder_AddParam(t *testing.T) {
	for _, value := range []string{StopFinderAny, StopFinderCoord} {
		req := NewStopFinderRequest("my_type", "my_name")
		require.NoError(t, req.AddParam("type_sf", value))
	}

	for _, key := range []string{"dummy", "STOP", "name_dm"} {
		req := NewStopFinderRequest("my_type", "my_name")
		var perr *ParameterError
		assert.True(t, errors.As(req.AddParam(key, "valid_value"), &perr), "key %s", key)
	}
}
