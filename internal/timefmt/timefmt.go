// Package timefmt renders review timestamps in the display time zone.
// The zone is an explicit fixed offset handed to the Formatter; nothing
// here touches time.Local or the TZ database.
package timefmt

import (
	"strconv"
	"time"
)

// Bogota is the default display zone: UTC-5 year-round, no DST.
var Bogota = time.FixedZone("America/Bogota", -5*60*60)

// months is 1-indexed by month number; index 0 is unused.
var months = [13]string{
	"",
	"Enero", "Febrero", "Marzo", "Abril",
	"Mayo", "Junio", "Julio", "Agosto",
	"Septiembre", "Octubre", "Noviembre", "Diciembre",
}

type Formatter struct {
	loc *time.Location
}

// New returns a Formatter bound to loc. A nil loc falls back to Bogota.
func New(loc *time.Location) Formatter {
	if loc == nil {
		loc = Bogota
	}
	return Formatter{loc: loc}
}

// FixedOffset builds a fixed-offset location from whole hours, e.g. -5.
func FixedOffset(hours int) *time.Location {
	return time.FixedZone("UTC"+offsetLabel(hours), hours*60*60)
}

func offsetLabel(hours int) string {
	if hours >= 0 {
		return "+" + strconv.Itoa(hours)
	}
	return strconv.Itoa(hours)
}

// Now returns the current instant expressed in the display zone.
func (f Formatter) Now() time.Time {
	return time.Now().In(f.loc)
}

// Numeric renders DD/MM/YYYY HH:MM:SS. Zero instant renders as "".
func (f Formatter) Numeric(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format("02/01/2006 15:04:05")
}

// ISO renders ISO-8601 with a numeric offset.
func (f Formatter) ISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format("2006-01-02T15:04:05-07:00")
}

// Friendly renders "DD de MonthName de YYYY, HH:MM" with Spanish month names.
func (f Formatter) Friendly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	lt := t.In(f.loc)
	return lt.Format("02") + " de " + months[int(lt.Month())] +
		" de " + lt.Format("2006") + ", " + lt.Format("15:04")
}

// DateOnly renders DD/MM/YYYY.
func (f Formatter) DateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format("02/01/2006")
}

// TimeOnly renders HH:MM:SS.
func (f Formatter) TimeOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format("15:04:05")
}
