package com

import bo4e "github.com/voltmesh/bo4e-go"

var geoCoordinatesNames = struct {
	latitude  bo4e.Name
	longitude bo4e.Name
}{
	latitude:  bo4e.Name{German: "breitengrad", English: "latitude"},
	longitude: bo4e.Name{German: "laengengrad", English: "longitude"},
}

// GeoCoordinates (Geokoordinaten) is a WGS84 position.
type GeoCoordinates struct {
	bo4e.Meta

	Latitude  *float64
	Longitude *float64
}

func (g *GeoCoordinates) TypeName() bo4e.Name {
	return bo4e.Name{German: "Geokoordinaten", English: "GeoCoordinates"}
}

func (g *GeoCoordinates) EncodeFields(e *bo4e.Encoder) {
	e.F64(geoCoordinatesNames.latitude, g.Latitude)
	e.F64(geoCoordinatesNames.longitude, g.Longitude)
}

func (g *GeoCoordinates) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case geoCoordinatesNames.latitude.German, geoCoordinatesNames.latitude.English:
		return d.F64(&g.Latitude)
	case geoCoordinatesNames.longitude.German, geoCoordinatesNames.longitude.English:
		return d.F64(&g.Longitude)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(GeoCoordinates) })
}
