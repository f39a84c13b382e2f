package reporting

import (
	"slices"
	"strings"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

// UnspecifiedCategory labels records whose category field is blank.
const UnspecifiedCategory = "Unspecified"

// Point one bar or slice of a chart.
type Point struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Chart data handed to the charting layer. Empty asks for a "no data" placeholder.
type Chart struct {
	Points []Point `json:"points"`
	Empty  bool    `json:"empty"`
}

func newChart(points []Point) Chart {
	if points == nil {
		points = []Point{}
	}
	empty := true
	for _, p := range points {
		if p.Count > 0 {
			empty = false
			break
		}
	}
	return Chart{Points: points, Empty: empty}
}

// CapacityCard seat usage of one system.
type CapacityCard struct {
	System    models.System `json:"system"`
	Total     int           `json:"total"`
	Occupied  int           `json:"occupied"`
	Available int           `json:"available"`
	Color     string        `json:"color"`
}

// CapacityOverview all capacity cards; Empty when no seat is occupied.
type CapacityOverview struct {
	Cards []CapacityCard `json:"cards"`
	Empty bool           `json:"empty"`
}

// Capacity counts Active records per system against caps, in the fixed
// system order. Occupied plus Available always equals Total.
func Capacity(records []models.License, caps models.CapacityTable) CapacityOverview {
	occupied := make(map[models.System]int, len(models.Systems))
	for _, r := range records {
		if r.IsActive() {
			occupied[normalizeSystem(r.System)]++
		}
	}

	overview := CapacityOverview{Cards: make([]CapacityCard, 0, len(models.Systems)), Empty: true}
	for _, s := range models.Systems {
		c := caps[s]
		card := CapacityCard{
			System:    s,
			Total:     c.Total,
			Occupied:  occupied[s],
			Available: c.Total - occupied[s],
			Color:     c.Color,
		}
		if card.Occupied > 0 {
			overview.Empty = false
		}
		overview.Cards = append(overview.Cards, card)
	}
	return overview
}

// Distribution groups the Active records of system by its category field.
// Blank categories count as UnspecifiedCategory. Order of first appearance.
func Distribution(records []models.License, system models.System) Chart {
	var points []Point
	index := map[string]int{}
	for _, r := range records {
		if !r.IsActive() || normalizeSystem(r.System) != system {
			continue
		}
		category := strings.TrimSpace(r.Details.Category(system))
		if category == "" {
			category = UnspecifiedCategory
		}
		if i, ok := index[category]; ok {
			points[i].Count++
			continue
		}
		index[category] = len(points)
		points = append(points, Point{Label: category, Count: 1})
	}
	return newChart(points)
}

// Trend buckets the Active records of system by assignment month (YYYY-MM),
// ascending. Months without assignments are absent and unreadable dates are skipped.
func Trend(records []models.License, system models.System, loc *time.Location) Chart {
	counts := map[string]int{}
	for _, r := range records {
		if !r.IsActive() || normalizeSystem(r.System) != system {
			continue
		}
		month, ok := utils.MonthKey(r.AssignmentDate, loc)
		if !ok {
			continue
		}
		counts[month]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	slices.Sort(months)

	points := make([]Point, 0, len(months))
	for _, m := range months {
		points = append(points, Point{Label: m, Count: counts[m]})
	}
	return newChart(points)
}

// ChartFromAnalytics adapts upstream analytics to chart data.
func ChartFromAnalytics(a models.SystemAnalytics) (Chart, Chart) {
	dist := make([]Point, 0, len(a.Distribution))
	for _, c := range a.Distribution {
		label := c.Category
		if strings.TrimSpace(label) == "" {
			label = UnspecifiedCategory
		}
		dist = append(dist, Point{Label: label, Count: c.Count})
	}
	trend := make([]Point, 0, len(a.Trend))
	for _, m := range a.Trend {
		trend = append(trend, Point{Label: m.Month, Count: m.Count})
	}
	return newChart(dist), newChart(trend)
}

func normalizeSystem(s models.System) models.System {
	parsed, err := models.ParseSystem(string(s))
	if err != nil {
		return s
	}
	return parsed
}
