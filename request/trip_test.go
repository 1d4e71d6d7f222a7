package request

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrip_QueryString(t *testing.T) {
	req := NewTripRequest("de:09564:704", "de:09564:510")
	require.NoError(t, req.AddParam("useRealtime", 1))

	q, err := req.QueryString()
	require.NoError(t, err)
	assert.Equal(t,
		"XML_TRIP_REQUEST2?commonMacro=trip&outputFormat=rapidJSON&name_origin=de%3A09564%3A704&name_destination=de%3A09564%3A510&useRealtime=1&type_origin=any&type_destination=any&type_via=any",
		q)
}

func TestTrip_MissingDestination(t *testing.T) {
	_, err := NewTripRequest("de:09564:704", "").QueryString()
	var perr *ParameterError
	assert.True(t, errors.As(err, &perr))
}

func TestTrip_ParseNotImplemented(t *testing.T) {
	_, err := NewTripRequest("a", "b").Parse(map[string]any{})
	assert.ErrorIs(t, err, ErrNotImplemented)
}
