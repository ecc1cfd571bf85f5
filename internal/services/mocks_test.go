package services

import (
	"context"
	"sync"

	"github.com/nursingskill/backend/internal/models"
)

// mockCatalog is a mock implementation of SkillLister
type mockCatalog struct {
	skills []models.NursingSkill
	items  []models.GameItem
}

func (m *mockCatalog) Skill(id string) (*models.NursingSkill, error) {
	for i := range m.skills {
		if m.skills[i].ID == id {
			return &m.skills[i], nil
		}
	}
	return nil, models.ErrSkillNotFound
}

func (m *mockCatalog) Items() []models.GameItem {
	return m.items
}

func (m *mockCatalog) Skills() []models.NursingSkill {
	return m.skills
}

// mockHistoryRepository is a mock implementation of HistoryRepository
type mockHistoryRepository struct {
	mu        sync.Mutex
	records   []models.AssessmentRecord
	appendErr error
	readErr   error
}

func (m *mockHistoryRepository) Append(ctx context.Context, record models.AssessmentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockHistoryRepository) ReadAll(ctx context.Context) ([]models.AssessmentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	return append([]models.AssessmentRecord{}, m.records...), nil
}

func (m *mockHistoryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// mockProfileRepository is a mock implementation of ProfileRepository
type mockProfileRepository struct {
	profile *models.UserProfile
	err     error
}

func (m *mockProfileRepository) Get(ctx context.Context) (*models.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profile == nil {
		return nil, models.ErrProfileNotFound
	}
	return m.profile, nil
}

func (m *mockProfileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	if m.err != nil {
		return m.err
	}
	m.profile = profile
	return nil
}

func (m *mockProfileRepository) Delete(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.profile = nil
	return nil
}

func newTestCatalog() *mockCatalog {
	return &mockCatalog{
		skills: []models.NursingSkill{
			{
				ID:    "vital-signs",
				Title: "활력징후 측정",
				Steps: []models.SkillStep{
					{ID: 1, Instruction: "손 위생", Explanation: "감염 예방", ImageURL: "/img/1.png"},
					{ID: 2, Instruction: "대상자 확인", Explanation: "두 가지 이상 확인", IsCritical: true},
					{ID: 3, Instruction: "체온 측정"},
					{ID: 4, Instruction: "기록"},
				},
				RequiredItems: []string{"체온계", "혈압계", "없는 물품"},
			},
			{
				ID:    "suction",
				Title: "기관 흡인",
				Steps: []models.SkillStep{
					{ID: 1, Instruction: "손 위생"},
					{ID: 2, Instruction: "흡인"},
				},
				RequiredItems: []string{"흡인 카테터"},
			},
		},
		items: []models.GameItem{
			{ID: "1", Name: "체온계"},
			{ID: "2", Name: "혈압계"},
			{ID: "3", Name: "흡인 카테터"},
			{ID: "4", Name: "가위"},
			{ID: "5", Name: "붕대"},
		},
	}
}
