package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// otherSkillTitle groups records without a skill title
const otherSkillTitle = "기타"

// chartDateLayout is the date layout of attempt points
const chartDateLayout = "2006. 1. 2."

type dashboardService struct {
	history  HistoryRepository
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service.
// Dates are rendered in location; nil means UTC.
func NewDashboardService(history HistoryRepository, location *time.Location, logger *zap.Logger) *dashboardService {
	if location == nil {
		location = time.UTC
	}
	return &dashboardService{
		history:  history,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Get aggregates the whole history.
//
// A history that cannot be read is logged and shown as empty.
func (s *dashboardService) Get(ctx context.Context) (*models.Dashboard, error) {
	records, err := s.history.ReadAll(ctx)
	if err != nil {
		s.logger.Error("failed to read history for dashboard", zap.Error(err))
		records = nil
	}
	return Aggregate(records, s.now(), s.location), nil
}

// History returns the raw history in insertion order.
//
// A history that cannot be read is logged and returned as empty.
func (s *dashboardService) History(ctx context.Context) ([]models.AssessmentRecord, error) {
	records, err := s.history.ReadAll(ctx)
	if err != nil {
		s.logger.Error("failed to read history", zap.Error(err))
		return []models.AssessmentRecord{}, nil
	}
	return records, nil
}

// Aggregate computes the dashboard of records at time now
func Aggregate(records []models.AssessmentRecord, now time.Time, location *time.Location) *models.Dashboard {
	dashboard := &models.Dashboard{
		Empty:    len(records) == 0,
		Stats:    models.DashboardStats{RecentDate: "-"},
		Attempts: []models.AttemptPoint{},
		Skills:   []models.SkillAverage{},
	}
	if len(records) == 0 {
		return dashboard
	}

	best, total := 0, 0
	for i, record := range records {
		best = max(best, record.Score)
		total += record.Score

		dashboard.Attempts = append(dashboard.Attempts, models.AttemptPoint{
			Name:         fmt.Sprintf("%d회", i+1),
			Score:        record.Score,
			Date:         record.Date.In(location).Format(chartDateLayout),
			TooltipTitle: fmt.Sprintf("%s (%s)", record.SkillTitle, shortTypeLabel(record.Type)),
		})
	}

	days := DaysAgo(now, records[len(records)-1].Date)
	dashboard.Stats = models.DashboardStats{
		BestScore:     best,
		AverageScore:  roundedMean(total, len(records)),
		TotalAttempts: len(records),
		RecentDate:    RecencyLabel(days),
		DaysAgo:       days,
	}
	dashboard.Skills = SkillAverages(records)

	return dashboard
}

// SkillAverages groups records by skill title in order of first appearance
func SkillAverages(records []models.AssessmentRecord) []models.SkillAverage {
	type group struct {
		total, count int
	}

	order := []string{}
	groups := make(map[string]*group)
	for _, record := range records {
		title := record.SkillTitle
		if title == "" {
			title = otherSkillTitle
		}
		g, ok := groups[title]
		if !ok {
			g = &group{}
			groups[title] = g
			order = append(order, title)
		}
		g.total += record.Score
		g.count++
	}

	averages := make([]models.SkillAverage, 0, len(order))
	for _, title := range order {
		g := groups[title]
		averages = append(averages, models.SkillAverage{
			SkillTitle: title,
			Average:    roundedMean(g.total, g.count),
			Attempts:   g.count,
		})
	}
	return averages
}

// DaysAgo returns the number of days between now and t.
//
// Differences under 24 hours count as 0. Longer differences are rounded up to
// whole days, so exactly 24 hours is 1 and 24 hours and a minute is 2.
func DaysAgo(now, t time.Time) int {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	day := 24 * time.Hour
	if diff < day {
		return 0
	}
	return int((diff + day - 1) / day)
}

// RecencyLabel returns the display text of a number of days
func RecencyLabel(days int) string {
	switch days {
	case 0:
		return "오늘"
	case 1:
		return "어제"
	default:
		return fmt.Sprintf("%d일 전", days)
	}
}

func shortTypeLabel(t models.AssessmentType) string {
	if t == models.AssessmentTypeSelfCheck {
		return models.AssessmentTypeSelfCheck.Label()
	}
	return "게임"
}

func roundedMean(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
