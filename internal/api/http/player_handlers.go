package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/swiftfood/internal/eventlog"
	"github.com/mind-engage/swiftfood/internal/player"
)

type createdResponse struct {
	PlayerID string `json:"playerId"`
	Message  string `json:"message"`
}

type rewardResponse struct {
	Message     string `json:"message"`
	XPGained    int    `json:"xpGained"`
	CoinsGained int    `json:"coinsGained"`
}

type achievementResponse struct {
	Message     string `json:"message"`
	Achievement string `json:"achievement"`
	Unlocked    bool   `json:"unlocked"`
}

// storeError maps store failures onto error payloads.
func (a *api) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, player.ErrPlayerNotFound) {
		a.rs.error(w, errPlayerNotFound)
		return
	}
	a.logger.Error("player store", "err", err)
	a.rs.error(w, internalError(err.Error()))
}

// POST /api/player
func (a *api) createPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := a.players.Create()
		if err != nil {
			a.storeError(w, err)
			return
		}
		a.record(r.Context(), eventlog.TypePlayerCreated, p.ID, map[string]any{"playerName": p.Name})
		a.rs.created(w, createdResponse{PlayerID: p.ID, Message: "Player created successfully"})
	}
}

// GET /api/player/{playerID}
func (a *api) getPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := a.players.Get(chi.URLParam(r, "playerID"))
		if err != nil {
			a.storeError(w, err)
			return
		}
		a.rs.ok(w, p)
	}
}

// PUT /api/player/{playerID}
// The body is drained but not parsed, so nothing is changed.
func (a *api) updatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := a.players.Update(chi.URLParam(r, "playerID"), nil); err != nil {
			a.storeError(w, err)
			return
		}
		a.rs.ok(w, message{Message: "Player data updated successfully"})
	}
}

// DELETE /api/player/{playerID}
func (a *api) deletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := a.players.Delete(chi.URLParam(r, "playerID"))
		if err != nil {
			a.storeError(w, err)
			return
		}
		a.record(r.Context(), eventlog.TypePlayerDeleted, p.ID, map[string]any{"level": p.Level, "coins": p.Coins})
		a.rs.ok(w, message{Message: "Player deleted successfully"})
	}
}

// POST /api/player/{playerID}/complete-task
func (a *api) completeTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := a.players.Apply(chi.URLParam(r, "playerID"), func(p *player.Player, now time.Time) {
			p.CompleteTask(now)
		})
		if err != nil {
			a.storeError(w, err)
			return
		}
		a.record(r.Context(), eventlog.TypeTaskCompleted, p.ID, map[string]any{
			"xpGained": player.TaskXPReward, "coinsGained": player.TaskCoinReward, "level": p.Level, "xp": p.XP,
		})
		a.rs.ok(w, rewardResponse{Message: "Task completed", XPGained: player.TaskXPReward, CoinsGained: player.TaskCoinReward})
	}
}

// POST /api/player/{playerID}/complete-level
func (a *api) completeLevelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := a.players.Apply(chi.URLParam(r, "playerID"), func(p *player.Player, now time.Time) {
			p.CompleteLevel(now)
		})
		if err != nil {
			a.storeError(w, err)
			return
		}
		a.record(r.Context(), eventlog.TypeLevelCompleted, p.ID, map[string]any{
			"xpGained": player.LevelXPReward, "coinsGained": player.LevelCoinReward, "currentLevel": p.CurrentLevel,
		})
		a.rs.ok(w, rewardResponse{Message: "Level completed", XPGained: player.LevelXPReward, CoinsGained: player.LevelCoinReward})
	}
}

// POST /api/player/{playerID}/achievements/{name}
// Unknown achievement names are not an error.
func (a *api) unlockAchievementHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		var known bool
		p, err := a.players.Apply(chi.URLParam(r, "playerID"), func(p *player.Player, _ time.Time) {
			known = p.UnlockAchievement(name)
		})
		if err != nil {
			a.storeError(w, err)
			return
		}
		if !known {
			a.rs.ok(w, achievementResponse{Message: "Unknown achievement", Achievement: name})
			return
		}
		a.record(r.Context(), eventlog.TypeAchievementUnlocked, p.ID, map[string]any{"achievement": name})
		a.rs.ok(w, achievementResponse{Message: "Achievement unlocked", Achievement: name, Unlocked: true})
	}
}
