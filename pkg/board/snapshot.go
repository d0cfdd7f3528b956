package board

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-worldclock/pkg/dom"
)

// Mounted is a column as currently displayed.
type Mounted struct {
	Timezone     string `json:"timezone"`
	City         string `json:"city"`
	Time         string `json:"time"`
	Abbreviation string `json:"abbreviation"`
	Datetime     string `json:"datetime"`
}

// ReadColumns extracts the mounted columns under container.
func ReadColumns(container *html.Node) []Mounted {
	return readColumns(container)
}

func readColumns(container *html.Node) []Mounted {
	if container == nil {
		return nil
	}
	nodes := dom.QueryClass(container, ColumnClass)
	out := make([]Mounted, 0, len(nodes))
	for _, n := range nodes {
		zone, _ := dom.Attr(n, TimezoneAttr)
		m := Mounted{Timezone: zone}
		if el := dom.FirstClass(n, TimeClass); el != nil {
			m.Time = dom.Text(el)
			m.Datetime, _ = dom.Attr(el, DatetimeAttr)
		}
		if el := dom.FirstClass(n, CityClass); el != nil {
			m.City = dom.Text(el)
		}
		if el := dom.FirstClass(n, TimezoneClass); el != nil {
			m.Abbreviation = dom.Text(el)
		}
		out = append(out, m)
	}
	return out
}
