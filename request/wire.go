package request

import (
	"encoding/json"
	"strconv"

	"github.com/theoremus-urban-solutions/efa-client/model"
)

// Wire types mirror the validated rapidJSON payload. They are filled by
// re-decoding the generic document once the response shape has been checked.

type systemInfoResponse struct {
	Version  string `json:"version"`
	PtKernel struct {
		AppVersion string `json:"appVersion"`
		DataFormat string `json:"dataFormat"`
		DataBuild  string `json:"dataBuild"`
	} `json:"ptKernel"`
	Validity struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"validity"`
}

type stopFinderResponse struct {
	Version   string         `json:"version"`
	Locations []wireLocation `json:"locations"`
}

type departuresResponse struct {
	Version    string          `json:"version"`
	Locations  []wireLocation  `json:"locations"`
	StopEvents []wireStopEvent `json:"stopEvents"`
}

type wireLocation struct {
	ID               string          `json:"id"`
	IsGlobalID       flexBool        `json:"isGlobalId"`
	Name             string          `json:"name"`
	DisassembledName string          `json:"disassembledName"`
	Coord            []float64       `json:"coord"`
	Type             string          `json:"type"`
	ProductClasses   []int           `json:"productClasses"`
	Properties       *wireProperties `json:"properties"`
	MatchQuality     int             `json:"matchQuality"`
}

type wireProperties struct {
	StopID       string `json:"stopId"`
	Area         string `json:"area"`
	Platform     string `json:"platform"`
	PlatformName string `json:"platformName"`
}

type wireStopEvent struct {
	Location               wireLocation        `json:"location"`
	DepartureTimePlanned   string              `json:"departureTimePlanned"`
	DepartureTimeEstimated string              `json:"departureTimeEstimated"`
	Transportation         *wireTransportation `json:"transportation"`
	Infos                  []map[string]any    `json:"infos"`
}

type wireTransportation struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	DisassembledName string        `json:"disassembledName"`
	Number           string        `json:"number"`
	Description      string        `json:"description"`
	Product          wireProduct   `json:"product"`
	Origin           *wireEndpoint `json:"origin"`
	Destination      *wireEndpoint `json:"destination"`
}

type wireProduct struct {
	ID     int    `json:"id"`
	Class  int    `json:"class"`
	Name   string `json:"name"`
	IconID int    `json:"iconId"`
}

type wireEndpoint struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// flexBool accepts JSON booleans and the string forms strconv.ParseBool understands
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b = flexBool(v)
	return nil
}

// decodeWire re-decodes a validated generic document into a wire type
func decodeWire(data any, out any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return newResponseInvalid(err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return newResponseInvalid(err)
	}
	return nil
}

// stopID prefers the global id; otherwise properties.stopId is used when present
func (l wireLocation) stopID() string {
	if !bool(l.IsGlobalID) && l.Properties != nil {
		return l.Properties.StopID
	}
	return l.ID
}

func (l wireLocation) toStop() (model.Stop, error) {
	st, err := model.ParseStopType(l.Type)
	if err != nil {
		return model.Stop{}, newResponseInvalid(err)
	}
	transports := make([]model.TransportType, 0, len(l.ProductClasses))
	for _, pc := range l.ProductClasses {
		tt, err := model.ParseTransportType(pc)
		if err != nil {
			return model.Stop{}, newResponseInvalid(err)
		}
		transports = append(transports, tt)
	}
	return model.Stop{
		ID:               l.stopID(),
		Name:             l.Name,
		DisassembledName: l.DisassembledName,
		Type:             st,
		Coord:            l.Coord,
		Transports:       transports,
	}, nil
}

// toStop builds the reduced stop record used for departure origins and destinations.
// A missing endpoint yields the zero Stop.
func (e *wireEndpoint) toStop() (model.Stop, error) {
	if e == nil {
		return model.Stop{}, nil
	}
	st, err := model.ParseStopType(e.Type)
	if err != nil {
		return model.Stop{}, newResponseInvalid(err)
	}
	return model.Stop{ID: e.ID, Name: e.Name, Type: st}, nil
}
