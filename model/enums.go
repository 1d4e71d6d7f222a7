package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownCode is returned when a raw API code has no matching enumeration value
var ErrUnknownCode = errors.New("unknown code")

// StopType is the kind of a location
type StopType string

const (
	StopTypeStop     StopType = "stop"
	StopTypePOI      StopType = "poi"
	StopTypeAddress  StopType = "address"
	StopTypeStreet   StopType = "street"
	StopTypeLocality StopType = "locality"
)

// StopTypes returns every known stop type in declaration order
func StopTypes() []StopType {
	return []StopType{StopTypeStop, StopTypePOI, StopTypeAddress, StopTypeStreet, StopTypeLocality}
}

// ParseStopType maps a raw location type to a StopType
func ParseStopType(s string) (StopType, error) {
	for _, t := range StopTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: stop type %q", ErrUnknownCode, s)
}

// TransportType is the product class of a line. Values are the EFA product class codes.
type TransportType int

const (
	TransportSubway          TransportType = 2
	TransportTram            TransportType = 4
	TransportBus             TransportType = 5
	TransportRegionalExpress TransportType = 6
)

var transportNames = map[TransportType]string{
	TransportSubway:          "subway",
	TransportTram:            "tram",
	TransportBus:             "bus",
	TransportRegionalExpress: "regional_express",
}

// TransportTypes returns every known transport type ordered by product class
func TransportTypes() []TransportType {
	return []TransportType{TransportSubway, TransportTram, TransportBus, TransportRegionalExpress}
}

// ParseTransportType maps a product class code to a TransportType
func ParseTransportType(code int) (TransportType, error) {
	t := TransportType(code)
	if _, ok := transportNames[t]; !ok {
		return 0, fmt.Errorf("%w: transport type %d", ErrUnknownCode, code)
	}
	return t, nil
}

func (t TransportType) String() string {
	if name, ok := transportNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TransportType(%d)", int(t))
}

// Title returns a display name such as "Regional Express"
func (t TransportType) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(t.String(), "_", " "))
}

// MarshalText encodes the transport type by name
func (t TransportType) MarshalText() ([]byte, error) {
	if _, ok := transportNames[t]; !ok {
		return nil, fmt.Errorf("%w: transport type %d", ErrUnknownCode, int(t))
	}
	return []byte(t.String()), nil
}

// StopFilter restricts the object classes searched by the stop finder.
// Filters are bit flags and may be combined with |.
type StopFilter int

const (
	StopFilterLocality StopFilter = 1 << iota
	StopFilterStop
	StopFilterStreet
	StopFilterAddress
	StopFilterCrossing
	StopFilterPOI
	StopFilterPostcode
)

// StopFilterAll combines every filter
const StopFilterAll = StopFilterLocality | StopFilterStop | StopFilterStreet | StopFilterAddress |
	StopFilterCrossing | StopFilterPOI | StopFilterPostcode

// StopFilters returns every single-bit filter
func StopFilters() []StopFilter {
	return []StopFilter{
		StopFilterLocality, StopFilterStop, StopFilterStreet, StopFilterAddress,
		StopFilterCrossing, StopFilterPOI, StopFilterPostcode,
	}
}

// Has reports whether every bit of other is set in f
func (f StopFilter) Has(other StopFilter) bool {
	return f&other == other
}
