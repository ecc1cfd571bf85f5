package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/nursingskill/backend/internal/models"
)

// newRecord creates an assessment record with a time-ordered ID
func newRecord(now time.Time, score int, passed bool, assessmentType models.AssessmentType, skillTitle string) models.AssessmentRecord {
	return models.AssessmentRecord{
		ID:         newID(),
		Date:       now.UTC(),
		Score:      score,
		Passed:     passed,
		Type:       assessmentType,
		SkillTitle: skillTitle,
	}
}

// newID returns a UUIDv7 string, or a random UUID if the clock source fails
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
