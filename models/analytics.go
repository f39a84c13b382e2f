package models

// CategoryCount one slice of the distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthCount one point of the assignment trend.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// SystemAnalytics upstream per-system analytics payload.
type SystemAnalytics struct {
	Success      bool            `json:"success"`
	Distribution []CategoryCount `json:"distribution"`
	Trend        []MonthCount    `json:"assignment_trends"`
}
