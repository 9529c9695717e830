package player

import (
	"strings"
	"time"
)

// Achievement names. The set is fixed; UnlockAchievement ignores anything else.
const (
	AchievementFirstSteps    = "First Steps"
	AchievementPizzaPro      = "Pizza Pro"
	AchievementSpeedChef     = "Speed Chef"
	AchievementBurgerMaster  = "Burger Master"
	AchievementNoodleNinja   = "Noodle Ninja"
	AchievementDessertWizard = "Dessert Wizard"
)

var Achievements = []string{
	AchievementFirstSteps,
	AchievementPizzaPro,
	AchievementSpeedChef,
	AchievementBurgerMaster,
	AchievementNoodleNinja,
	AchievementDessertWizard,
}

const (
	idPrefix   = "player_"
	namePrefix = "Player_"

	StartingCoins = 100
)

type Player struct {
	ID             string          `json:"playerId"`
	Name           string          `json:"playerName"`
	Level          int             `json:"level"`
	XP             int             `json:"xp"`
	Coins          int             `json:"coins"`
	CurrentLevel   int             `json:"currentLevel"` // level-progress pointer into the catalog
	CompletedTasks int             `json:"completedTasks"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastPlayed     time.Time       `json:"lastPlayed"`
	Achievements   map[string]bool `json:"achievements"`
}

// New returns a fresh player record with default progression values.
func New(id string, now time.Time) Player {
	ach := make(map[string]bool, len(Achievements))
	for _, name := range Achievements {
		ach[name] = false
	}
	return Player{
		ID:           id,
		Name:         namePrefix + strings.TrimPrefix(id, idPrefix),
		Level:        1,
		XP:           0,
		Coins:        StartingCoins,
		CurrentLevel: 1,
		CreatedAt:    now,
		LastPlayed:   now,
		Achievements: ach,
	}
}

// clone deep-copies the achievements map so callers never share state with the store.
func (p Player) clone() Player {
	ach := make(map[string]bool, len(p.Achievements))
	for k, v := range p.Achievements {
		ach[k] = v
	}
	p.Achievements = ach
	return p
}
