package board

// Markup contract shared with embedding stylesheets.
const (
	ContainerID       = "clock-row"
	ColumnClass       = "clock-column"
	TimeClass         = "clock-time"
	CityClass         = "clock-city"
	TimezoneClass     = "clock-timezone"
	TimezoneAttr      = "data-timezone"
	DatetimeAttr      = "datetime"
	columnClassList   = ColumnClass + " block gap-s"
	timeClassList     = TimeClass + " font-3xl"
	cityClassList     = CityClass + " font-m"
	timezoneClassList = TimezoneClass + " font-xs"
)
