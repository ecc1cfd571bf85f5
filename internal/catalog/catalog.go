// Package catalog provides the static skill catalog and the game item pool
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/nursingskill/backend/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var defaultCatalog []byte

// file is the YAML layout of a catalog file
type file struct {
	Skills []models.NursingSkill `yaml:"skills"`
	Items  []models.GameItem     `yaml:"items"`
}

// Catalog holds immutable skills and the item pool.
// It is safe for concurrent use because nothing mutates it after loading.
type Catalog struct {
	skills    []models.NursingSkill
	skillByID map[string]int
	items     []models.GameItem
	itemByID  map[string]int
}

// Default parses the catalog embedded into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFromFile reads and parses a catalog YAML file
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Skills, f.Items)
}

// New builds a catalog from already decoded data.
//
// Step IDs of every skill must be unique and strictly ascending, because the
// ordering game uses ascending step IDs as the correct procedure order.
func New(skills []models.NursingSkill, items []models.GameItem) (*Catalog, error) {
	c := &Catalog{
		skills:    skills,
		skillByID: make(map[string]int, len(skills)),
		items:     items,
		itemByID:  make(map[string]int, len(items)),
	}

	for i, skill := range skills {
		if skill.ID == "" {
			return nil, fmt.Errorf("skill #%d has empty id", i+1)
		}
		if _, ok := c.skillByID[skill.ID]; ok {
			return nil, fmt.Errorf("duplicate skill id: %s", skill.ID)
		}
		if len(skill.Steps) == 0 {
			return nil, fmt.Errorf("skill %s has no steps", skill.ID)
		}
		for j := 1; j < len(skill.Steps); j++ {
			if skill.Steps[j].ID <= skill.Steps[j-1].ID {
				return nil, fmt.Errorf("skill %s: step ids must be strictly ascending, got %d after %d",
					skill.ID, skill.Steps[j].ID, skill.Steps[j-1].ID)
			}
		}
		c.skillByID[skill.ID] = i
	}

	names := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("item #%d has empty id", i+1)
		}
		if _, ok := c.itemByID[item.ID]; ok {
			return nil, fmt.Errorf("duplicate item id: %s", item.ID)
		}
		if _, ok := names[item.Name]; ok {
			return nil, fmt.Errorf("duplicate item name: %s", item.Name)
		}
		names[item.Name] = struct{}{}
		c.itemByID[item.ID] = i
	}

	return c, nil
}

// Skills returns all skills in catalog order
func (c *Catalog) Skills() []models.NursingSkill {
	return c.skills
}

// SkillList returns short representations of all skills
func (c *Catalog) SkillList() []models.SkillListItem {
	list := make([]models.SkillListItem, len(c.skills))
	for i, skill := range c.skills {
		list[i] = models.SkillListItem{
			ID:          skill.ID,
			Title:       skill.Title,
			Description: skill.Description,
			StepsCount:  len(skill.Steps),
		}
	}
	return list
}

// Skill returns a skill by its ID
func (c *Catalog) Skill(id string) (*models.NursingSkill, error) {
	i, ok := c.skillByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrSkillNotFound, id)
	}
	return &c.skills[i], nil
}

// Items returns the game item pool
func (c *Catalog) Items() []models.GameItem {
	return c.items
}

// Item returns an item of the pool by its ID
func (c *Catalog) Item(id string) (models.GameItem, bool) {
	i, ok := c.itemByID[id]
	if !ok {
		return models.GameItem{}, false
	}
	return c.items[i], true
}
