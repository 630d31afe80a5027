package com

import (
	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

var hardwareNames = struct {
	deviceNumber   bo4e.Name
	description    bo4e.Name
	deviceCategory bo4e.Name
	deviceType     bo4e.Name
}{
	deviceNumber:   bo4e.Name{German: "geraetenummer", English: "deviceNumber"},
	description:    bo4e.Name{German: "bezeichnung", English: "description"},
	deviceCategory: bo4e.Name{German: "geraeteklasse", English: "deviceCategory"},
	deviceType:     bo4e.Name{German: "geraetetyp", English: "deviceType"},
}

// Hardware is a piece of additional equipment installed at a metering
// location, e.g. a smart meter gateway or a transformer. The type name
// is "Hardware" under both conventions.
type Hardware struct {
	bo4e.Meta

	DeviceNumber   *string
	Description    *string
	DeviceCategory *enums.DeviceCategory
	DeviceType     *enums.DeviceType
}

func (h *Hardware) TypeName() bo4e.Name {
	return bo4e.Name{German: "Hardware", English: "Hardware"}
}

func (h *Hardware) EncodeFields(e *bo4e.Encoder) {
	e.Str(hardwareNames.deviceNumber, h.DeviceNumber)
	e.Str(hardwareNames.description, h.Description)
	bo4e.EncodeEnum(e, hardwareNames.deviceCategory, h.DeviceCategory)
	bo4e.EncodeEnum(e, hardwareNames.deviceType, h.DeviceType)
}

func (h *Hardware) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case hardwareNames.deviceNumber.German, hardwareNames.deviceNumber.English:
		return d.Str(&h.DeviceNumber)
	case hardwareNames.description.German, hardwareNames.description.English:
		return d.Str(&h.Description)
	case hardwareNames.deviceCategory.German, hardwareNames.deviceCategory.English:
		return bo4e.ReadEnum(d, enums.ParseDeviceCategory, &h.DeviceCategory)
	case hardwareNames.deviceType.German, hardwareNames.deviceType.English:
		return bo4e.ReadEnum(d, enums.ParseDeviceType, &h.DeviceType)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(Hardware) })
}
