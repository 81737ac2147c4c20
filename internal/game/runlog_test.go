package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogRecordersAccumulate(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), nil)

	g.RecordTurn()
	g.RecordTurn()
	g.RecordKill("rat")
	g.RecordKill("rat")
	g.RecordKill("bat")
	g.RecordItemUse("potion")
	g.RecordInscriptionRead()
	g.RecordDamageDealt(10)
	g.RecordDamageTaken(4)

	rl := g.RunLog()
	if rl.TurnsPlayed != 2 {
		t.Errorf("TurnsPlayed = %d; want 2", rl.TurnsPlayed)
	}
	if rl.EnemiesKilled["rat"] != 2 || rl.EnemiesKilled["bat"] != 1 {
		t.Errorf("EnemiesKilled = %v; want rat:2 bat:1", rl.EnemiesKilled)
	}
	if rl.ItemsUsed["potion"] != 1 {
		t.Errorf("ItemsUsed[potion] = %d; want 1", rl.ItemsUsed["potion"])
	}
	if rl.InscriptionsRead != 1 {
		t.Errorf("InscriptionsRead = %d; want 1", rl.InscriptionsRead)
	}
	if rl.DamageDealt != 10 || rl.DamageTaken != 4 {
		t.Errorf("damage = dealt:%d taken:%d; want dealt:10 taken:4", rl.DamageDealt, rl.DamageTaken)
	}
}

func TestRecordDeathStopsTheEngine(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), nil)
	g.RecordDeath("🦀")

	if g.State() != StateStopped {
		t.Errorf("state = %v; want StateStopped", g.State())
	}
	if g.RunLog().CauseOfDeath != "🦀" {
		t.Errorf("CauseOfDeath = %q; want 🦀", g.RunLog().CauseOfDeath)
	}
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	g := New(rand.New(rand.NewSource(1)), nil)
	g.RecordTurn()
	g.RecordKill("rat")

	logPath := filepath.Join(tmp, "runs.jsonl")
	g.SaveRunLog(logPath)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "rat") {
		t.Errorf("log file does not contain enemy name; got: %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Errorf("log entry should end with newline; got: %q", content)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	logPath := filepath.Join(tmp, "runs.jsonl")

	for i := 0; i < 3; i++ {
		g := New(rand.New(rand.NewSource(1)), nil)
		g.RecordTurn()
		g.SaveRunLog(logPath)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}
