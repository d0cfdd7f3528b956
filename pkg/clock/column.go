package clock

import "time"

// DatetimeLayout is the UTC instant written to the time element, with
// millisecond precision.
const DatetimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Datetime formats t for the time element's datetime attribute.
func Datetime(t time.Time) string {
	return t.UTC().Format(DatetimeLayout)
}

// Column is the display record for one zone at one instant.
type Column struct {
	Timezone     string
	City         string
	Time         Result
	Abbreviation Result
	Instant      time.Time
}

// TimeText is the text shown in the time element.
func (c Column) TimeText() string { return c.Time.TimeText() }

// AbbreviationText is the text shown in the abbreviation label.
func (c Column) AbbreviationText() string { return c.Abbreviation.AbbreviationText() }

// Datetime is the machine readable instant for the time element.
func (c Column) Datetime() string {
	return Datetime(c.Instant)
}

// BuildColumn formats a single zone at now.
func BuildColumn(now time.Time, zone string, f *Formatter) Column {
	if f == nil {
		f = NewFormatter()
	}
	return Column{
		Timezone:     zone,
		City:         CityName(zone),
		Time:         f.Time(now, zone),
		Abbreviation: f.Abbreviation(now, zone),
		Instant:      now,
	}
}

// BuildColumns formats every zone at the same instant, preserving order and
// duplicates.
func BuildColumns(now time.Time, zones []string, f *Formatter) []Column {
	if f == nil {
		f = NewFormatter()
	}
	columns := make([]Column, 0, len(zones))
	for _, zone := range zones {
		columns = append(columns, BuildColumn(now, zone, f))
	}
	return columns
}
