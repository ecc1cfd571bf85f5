package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nursingskill/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	skills := c.Skills()
	require.Len(t, skills, 4)
	assert.Equal(t, "vital-signs", skills[0].ID)
	assert.Len(t, c.Items(), 23)

	for _, skill := range skills {
		assert.Len(t, skill.Steps, 10, skill.ID)
		for _, name := range skill.RequiredItems {
			found := false
			for _, item := range c.Items() {
				if item.Name == name {
					found = true
					break
				}
			}
			assert.True(t, found, "required item %q of %s is missing from the pool", name, skill.ID)
		}
	}
}

func TestCatalog_Skill(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	skill, err := c.Skill("suction")
	require.NoError(t, err)
	assert.Equal(t, "기관내 흡인", skill.Title)

	step, ok := skill.StepByID(2)
	assert.True(t, ok)
	assert.True(t, step.IsCritical)

	_, err = c.Skill("unknown")
	assert.True(t, errors.Is(err, models.ErrSkillNotFound))
}

func TestCatalog_Item(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	item, ok := c.Item("1")
	assert.True(t, ok)
	assert.Equal(t, "청진기", item.Name)

	_, ok = c.Item("999")
	assert.False(t, ok)
}

func TestCatalog_SkillList(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	list := c.SkillList()
	require.Len(t, list, 4)
	assert.Equal(t, 10, list[1].StepsCount)
	assert.Equal(t, "tube-feeding", list[1].ID)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		skills []models.NursingSkill
		items  []models.GameItem
	}{
		{
			name:   "empty skill id",
			skills: []models.NursingSkill{{Steps: []models.SkillStep{{ID: 1}}}},
		},
		{
			name: "duplicate skill id",
			skills: []models.NursingSkill{
				{ID: "a", Steps: []models.SkillStep{{ID: 1}}},
				{ID: "a", Steps: []models.SkillStep{{ID: 1}}},
			},
		},
		{
			name:   "no steps",
			skills: []models.NursingSkill{{ID: "a"}},
		},
		{
			name:   "steps out of order",
			skills: []models.NursingSkill{{ID: "a", Steps: []models.SkillStep{{ID: 2}, {ID: 1}}}},
		},
		{
			name:   "duplicate step id",
			skills: []models.NursingSkill{{ID: "a", Steps: []models.SkillStep{{ID: 1}, {ID: 1}}}},
		},
		{
			name:  "duplicate item id",
			items: []models.GameItem{{ID: "1", Name: "a"}, {ID: "1", Name: "b"}},
		},
		{
			name:  "duplicate item name",
			items: []models.GameItem{{ID: "1", Name: "a"}, {ID: "2", Name: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.skills, tt.items)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
skills:
  - id: hand-hygiene
    title: 손위생
    requiredItems: [손소독제]
    steps:
      - {id: 1, instruction: 손을 적신다., isCritical: true}
      - {id: 2, instruction: 비누를 묻힌다., isCritical: false}
items:
  - {id: "5", name: 손소독제, isCorrect: true, icon: "🧴"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)

	skill, err := c.Skill("hand-hygiene")
	require.NoError(t, err)
	assert.Len(t, skill.Steps, 2)
	assert.Equal(t, []string{"손소독제"}, skill.RequiredItems)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("skills: [unclosed"))
	assert.Error(t, err)
}
