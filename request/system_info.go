package request

import (
	g "github.com/reoring/goskema/dsl"

	"github.com/theoremus-urban-solutions/efa-client/internal"
	"github.com/theoremus-urban-solutions/efa-client/model"
	"github.com/theoremus-urban-solutions/efa-client/schema"
	"github.com/theoremus-urban-solutions/efa-client/utils"
)

var ptKernelShape schema.Shape = g.Object().
	Field("appVersion", g.StringOf[string]()).
	Field("dataFormat", g.StringOf[string]()).
	Field("dataBuild", g.StringOf[string]()).
	Require("appVersion", "dataFormat", "dataBuild").
	UnknownStrip().
	MustBuild()

var validityShape schema.Shape = g.Object().
	Field("from", g.StringOf[string]()).
	Field("to", g.StringOf[string]()).
	Require("from", "to").
	Refine("validity dates", schema.Leaves(
		schema.StringLeaf("from", "datetime="+utils.DateLayout),
		schema.StringLeaf("to", "datetime="+utils.DateLayout),
	)).
	UnknownStrip().
	MustBuild()

var systemInfoResponseShape schema.Shape = g.Object().
	Field("version", g.StringOf[string]()).
	Field("ptKernel", g.SchemaOf[map[string]any](ptKernelShape)).
	Field("validity", g.SchemaOf[map[string]any](validityShape)).
	Require("version", "ptKernel", "validity").
	Refine("required members", schema.Leaves(schema.NotNull("ptKernel"), schema.NotNull("validity"))).
	UnknownStrip().
	MustBuild()

// SystemInfoRequest queries server version and timetable validity. It takes no parameters.
type SystemInfoRequest struct {
	*Base
}

// NewSystemInfoRequest creates a system info request
func NewSystemInfoRequest() *SystemInfoRequest {
	return &SystemInfoRequest{
		Base: NewBase("XML_SYSTEMINFO_REQUEST", "system", baseParams, systemInfoResponseShape),
	}
}

// Parse validates the response and returns the system info record
func (r *SystemInfoRequest) Parse(data any) (model.SystemInfo, error) {
	internal.Logger.Printf("parsing system info response")

	if err := r.ValidateResponse(data); err != nil {
		return model.SystemInfo{}, err
	}

	var resp systemInfoResponse
	if err := decodeWire(data, &resp); err != nil {
		return model.SystemInfo{}, err
	}

	validFrom, err := utils.ParseDate(resp.Validity.From)
	if err != nil {
		return model.SystemInfo{}, newResponseInvalid(err)
	}
	validTo, err := utils.ParseDate(resp.Validity.To)
	if err != nil {
		return model.SystemInfo{}, newResponseInvalid(err)
	}

	return model.SystemInfo{
		Version:    resp.Version,
		DataFormat: resp.PtKernel.DataFormat,
		ValidFrom:  validFrom,
		ValidTo:    validTo,
	}, nil
}
