package models

// DashboardStats holds the summary cards of the dashboard
type DashboardStats struct {
	BestScore     int    `json:"bestScore"`
	AverageScore  int    `json:"averageScore"`
	TotalAttempts int    `json:"totalAttempts"`
	RecentDate    string `json:"recentDate"`
	DaysAgo       int    `json:"daysAgo"`
}

// AttemptPoint is one point of the attempts line chart
type AttemptPoint struct {
	Name         string `json:"name"`
	Score        int    `json:"score"`
	Date         string `json:"date"`
	TooltipTitle string `json:"tooltipTitle"`
}

// SkillAverage is the average score of one skill
type SkillAverage struct {
	SkillTitle string `json:"skillTitle"`
	Average    int    `json:"average"`
	Attempts   int    `json:"attempts"`
}

// Dashboard is the read-side aggregation over the history
type Dashboard struct {
	Empty    bool           `json:"empty"`
	Stats    DashboardStats `json:"stats"`
	Attempts []AttemptPoint `json:"attempts"`
	Skills   []SkillAverage `json:"skills"`
}

// ExportFormat is a tabular export file format
type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatCSV  ExportFormat = "csv"
)

// ExportFile is a rendered export ready to be downloaded
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
