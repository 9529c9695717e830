// Package catalog holds the static level/task catalog served by the game API.
// The catalog is built once at startup and never mutated afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultTaskIcon is used for tasks that do not declare their own icon.
const DefaultTaskIcon = "🍽️"

//go:embed levels.yaml
var defaultLevels []byte

type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xpReward"`
	Completed   bool   `json:"completed"`
}

type Level struct {
	ID            int    `json:"levelId"`
	Title         string `json:"title"`
	Icon          string `json:"icon"`
	Unlocked      bool   `json:"unlocked"`
	RequiredLevel int    `json:"requiredLevel"`
	Tasks         []Task `json:"tasks"`
}

// Catalog is a read-only, id-ordered set of levels.
type Catalog struct {
	levels []Level
}

type yamlDoc struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	ID    int        `yaml:"id"`
	Title string     `yaml:"title"`
	Icon  string     `yaml:"icon"`
	Tasks []yamlTask `yaml:"tasks"`
}

type yamlTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon,omitempty"`
	XP          int    `yaml:"xp"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultLevels)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded levels.yaml: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns the default catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(doc.Levels) == 0 {
		return nil, errors.New("no levels defined")
	}

	seen := make(map[int]bool, len(doc.Levels))
	levels := make([]Level, 0, len(doc.Levels))
	for _, yl := range doc.Levels {
		if yl.ID <= 0 {
			return nil, fmt.Errorf("level %q: id must be positive, got %d", yl.Title, yl.ID)
		}
		if seen[yl.ID] {
			return nil, fmt.Errorf("duplicate level id %d", yl.ID)
		}
		seen[yl.ID] = true

		lv := Level{
			ID:    yl.ID,
			Title: yl.Title,
			Icon:  yl.Icon,
			// Only the first level starts unlocked; no rule unlocks the others yet.
			Unlocked:      yl.ID == 1,
			RequiredLevel: yl.ID,
			Tasks:         make([]Task, 0, len(yl.Tasks)),
		}
		for _, yt := range yl.Tasks {
			icon := yt.Icon
			if icon == "" {
				icon = DefaultTaskIcon
			}
			lv.Tasks = append(lv.Tasks, Task{
				Title:       yt.Title,
				Description: yt.Description,
				Icon:        icon,
				XPReward:    yt.XP,
			})
		}
		levels = append(levels, lv)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].ID < levels[j].ID })
	return &Catalog{levels: levels}, nil
}

// List returns every level ordered by id. The result is a copy.
func (c *Catalog) List() []Level {
	out := make([]Level, len(c.levels))
	for i, lv := range c.levels {
		lv.Tasks = append([]Task(nil), lv.Tasks...)
		out[i] = lv
	}
	return out
}

// Get returns the level with the given id.
func (c *Catalog) Get(id int) (Level, bool) {
	i := sort.Search(len(c.levels), func(i int) bool { return c.levels[i].ID >= id })
	if i == len(c.levels) || c.levels[i].ID != id {
		return Level{}, false
	}
	lv := c.levels[i]
	lv.Tasks = append([]Task(nil), lv.Tasks...)
	return lv, true
}

func (c *Catalog) Len() int { return len(c.levels) }
