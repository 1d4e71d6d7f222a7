package model

import "time"

// SystemInfo describes the EFA server and the validity of its timetable data
type SystemInfo struct {
	Version    string    `json:"version"`
	DataFormat string    `json:"data_format"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidTo    time.Time `json:"valid_to"`
}

// Stop is a location known to the EFA server
type Stop struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	DisassembledName string          `json:"disassembled_name,omitempty"`
	Type             StopType        `json:"type"`
	Coord            []float64       `json:"coord,omitempty"`
	Transports       []TransportType `json:"transports,omitempty"`
}

// Departure is a single planned departure, optionally with a realtime estimate.
// EstimatedTime is nil when the server has no realtime data for the stop event.
type Departure struct {
	LineName      string           `json:"line_name"`
	Route         string           `json:"route"`
	Origin        Stop             `json:"origin"`
	Destination   Stop             `json:"destination"`
	Transport     TransportType    `json:"transport"`
	PlannedTime   time.Time        `json:"planned_time"`
	EstimatedTime *time.Time       `json:"estimated_time,omitempty"`
	Infos         []map[string]any `json:"infos,omitempty"`
}

// Time returns the best known departure time: the estimate if present, the planned time otherwise
func (d Departure) Time() time.Time {
	if d.EstimatedTime != nil {
		return *d.EstimatedTime
	}
	return d.PlannedTime
}

// Delay returns how late the departure is estimated to leave. Zero without realtime data.
func (d Departure) Delay() time.Duration {
	if d.EstimatedTime == nil {
		return 0
	}
	return d.EstimatedTime.Sub(d.PlannedTime)
}
