package com

import (
	"time"

	bo4e "github.com/voltmesh/bo4e-go"
)

var timePeriodNames = struct {
	start bo4e.Name
	end   bo4e.Name
}{
	start: bo4e.Name{German: "startdatum", English: "start"},
	end:   bo4e.Name{German: "enddatum", English: "end"},
}

// TimePeriod (Zeitraum) is a half-open time span. The end instant is
// exclusive; an open-ended span leaves End absent.
type TimePeriod struct {
	bo4e.Meta

	Start *time.Time
	End   *time.Time
}

func (t *TimePeriod) TypeName() bo4e.Name {
	return bo4e.Name{German: "Zeitraum", English: "TimePeriod"}
}

func (t *TimePeriod) EncodeFields(e *bo4e.Encoder) {
	e.Time(timePeriodNames.start, t.Start)
	e.Time(timePeriodNames.end, t.End)
}

func (t *TimePeriod) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case timePeriodNames.start.German, timePeriodNames.start.English:
		return d.Time(&t.Start)
	case timePeriodNames.end.German, timePeriodNames.end.English:
		return d.Time(&t.End)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(TimePeriod) })
}
