package game

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// RunLog accumulates turn-scoped statistics across a session: how long it
// lasted, what was killed, what was used, and how it ended. Bookkeeping
// only — it never influences any engine invariant.
type RunLog struct {
	TurnsPlayed      int            `json:"turns_played"`
	EnemiesKilled    map[string]int `json:"enemies_killed"`
	ItemsUsed        map[string]int `json:"items_used"`
	InscriptionsRead int            `json:"inscriptions_read"`
	DamageDealt      int            `json:"damage_dealt"`
	DamageTaken      int            `json:"damage_taken"`
	CauseOfDeath     string         `json:"cause_of_death"`
}

func newRunLog() RunLog {
	return RunLog{
		EnemiesKilled: make(map[string]int),
		ItemsUsed:     make(map[string]int),
	}
}

// RunLog returns a copy of the game's accumulated statistics.
func (g *Game) RunLog() RunLog { return g.runLog }

// RecordTurn increments the turns-played counter. The engine never calls
// it itself; the host calls it once per tick (cmd/tty does so at the end
// of each loop iteration).
func (g *Game) RecordTurn() { g.runLog.TurnsPlayed++ }

// RecordKill credits an enemy kill by name.
func (g *Game) RecordKill(name string) { g.runLog.EnemiesKilled[name]++ }

// RecordItemUse credits one use of the named item.
func (g *Game) RecordItemUse(name string) { g.runLog.ItemsUsed[name]++ }

// RecordInscriptionRead increments the inscriptions-read counter.
func (g *Game) RecordInscriptionRead() { g.runLog.InscriptionsRead++ }

// RecordDamageDealt adds amount to the cumulative damage dealt.
func (g *Game) RecordDamageDealt(amount int) { g.runLog.DamageDealt += amount }

// RecordDamageTaken adds amount to the cumulative damage taken.
func (g *Game) RecordDamageTaken(amount int) { g.runLog.DamageTaken += amount }

// RecordDeath sets the cause-of-death string and transitions the engine to
// STOPPED.
func (g *Game) RecordDeath(cause string) {
	g.runLog.CauseOfDeath = cause
	g.SetState(StateStopped)
}

// SaveRunLog appends the current run as a single JSON line to filename.
// Failures are reported through g.logger rather than returned, matching
// the engine's policy that session bookkeeping never aborts play.
func (g *Game) SaveRunLog(filename string) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			g.logger.Warn("run log: cannot create data dir", map[string]any{"error": err})
			return
		}
	}
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		g.logger.Warn("run log: cannot open file", map[string]any{"error": err})
		return
	}
	defer f.Close()

	data, err := json.Marshal(g.runLog)
	if err != nil {
		g.logger.Warn("run log: cannot marshal JSON", map[string]any{"error": err})
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		g.logger.Warn("run log: cannot write entry", map[string]any{"error": err})
	}
}
