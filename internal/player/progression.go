package player

import "time"

// Fixed rewards. Completion handlers do not look up the targeted task or level.
const (
	TaskXPReward     = 25
	TaskCoinReward   = 10
	LevelXPReward    = 50
	LevelCoinReward  = 25
	XPPerLevelFactor = 100
)

// XPThreshold is the XP needed to advance from the given level.
func XPThreshold(level int) int {
	return level * XPPerLevelFactor
}

// AddXP adds xp and levels the player up until xp is below the current threshold.
func (p *Player) AddXP(amount int, now time.Time) {
	p.XP += amount
	for p.XP >= XPThreshold(p.Level) {
		p.XP -= XPThreshold(p.Level)
		p.Level++
	}
	p.touch(now)
}

func (p *Player) AddCoins(amount int, now time.Time) {
	p.Coins += amount
	p.touch(now)
}

// CompleteTask grants the fixed task reward. The completedTasks counter is left alone.
func (p *Player) CompleteTask(now time.Time) {
	p.AddXP(TaskXPReward, now)
	p.AddCoins(TaskCoinReward, now)
}

// CompleteLevel grants the fixed level reward and advances the progress pointer.
func (p *Player) CompleteLevel(now time.Time) {
	p.AddXP(LevelXPReward, now)
	p.AddCoins(LevelCoinReward, now)
	p.CurrentLevel++
	p.touch(now)
}

// UnlockAchievement marks a known achievement as earned. Unknown names are ignored
// and reported with false.
func (p *Player) UnlockAchievement(name string) bool {
	if _, ok := p.Achievements[name]; !ok {
		return false
	}
	p.Achievements[name] = true
	return true
}

// touch keeps LastPlayed monotonically non-decreasing.
func (p *Player) touch(now time.Time) {
	if now.After(p.LastPlayed) {
		p.LastPlayed = now
	}
}
