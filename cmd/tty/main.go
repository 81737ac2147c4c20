// tilekernel-tty is a terminal host demo: it generates a dungeon with
// internal/levelgen, drives internal/game's tick operations from keyboard
// input read through internal/termui, and renders the result with tcell.
// Build:
//
//	go build -o tilekernel-tty ./cmd/tty
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"tilekernel/internal/board"
	"tilekernel/internal/game"
	"tilekernel/internal/levelgen"
	"tilekernel/internal/termui"
)

// slogLogger adapts *slog.Logger to the board.Logger/game.Logger interface.
type slogLogger struct{ l *slog.Logger }

func (s slogLogger) Warn(msg string, fields map[string]any) {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	s.l.Warn(msg, args...)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slogLogger{l: slog.Default()}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	g := game.New(rng, logger)

	dungeon, result, err := levelgen.Generate(levelgen.Config{
		BoardName:     "floor-1",
		MapWidth:      60,
		MapHeight:     30,
		MinLeafSize:   8,
		MaxLeafSize:   20,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: levelgen.CorridorLShaped,
		BorderTop:     "#", BorderBottom: "#", BorderLeft: "#", BorderRight: "#",
		VoidCellGlyph: ".",
		NPCBudget:     20,
		NPCTable: []levelgen.NPCSpawnEntry{
			{Name: "rat", Glyph: "🐀", MaxHP: 5, Attack: 2, Defense: 0, ThreatCost: 2},
			{Name: "bat", Glyph: "🦇", MaxHP: 3, Attack: 3, Defense: 0, ThreatCost: 3},
		},
		ItemCount: 6,
		ItemTable: []levelgen.ItemSpawnEntry{
			{Name: "coin", Glyph: "🪙", Value: 10, InventorySpace: 1},
			{Name: "gem", Glyph: "💎", Value: 50, InventorySpace: 2},
		},
		Rand: rng,
	}, logger)
	if err != nil {
		return fmt.Errorf("generate level: %w", err)
	}

	if err := g.LoadGeneratedLevel(1, dungeon, result); err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	player := board.NewPlayer("you", "🧑", 20, 5, 2, 10)
	g.SetPlayer(player)
	if err := g.ChangeLevel(1); err != nil {
		return fmt.Errorf("enter level: %w", err)
	}

	renderer := termui.NewRenderer(screen, 4)
	input := termui.NewInput()

	for g.State() != game.StateStopped {
		b, err := g.CurrentBoard()
		if err != nil {
			return err
		}
		pos := player.Position()
		b.UpdateFOV(pos.Row, pos.Column, 8)
		renderer.CenterOn(pos.Row, pos.Column)
		renderer.DrawBoard(b)
		renderer.DrawHUD([]string{
			fmt.Sprintf("HP %d/%d  turns %d", player.HP(), player.MaxHP(), g.RunLog().TurnsPlayed),
			"move: hjkl/arrows (step onto items to pick them up)  wait: .  quit: q",
		})
		renderer.Show()

		ev := screen.PollEvent()
		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		dir, action := input.Resolve(keyEv)
		switch action {
		case termui.ActionQuit:
			g.SetState(game.StateStopped)
			continue
		case termui.ActionPause:
			if g.State() == game.StateRunning {
				g.SetState(game.StatePaused)
			} else {
				g.SetState(game.StateRunning)
			}
			continue
		}

		if dir != 0 {
			if err := g.MovePlayer(dir, 1); err != nil {
				return err
			}
		}
		if err := g.ActuateNPCs(); err != nil {
			return err
		}
		if err := g.ActuateProjectiles(); err != nil {
			return err
		}
		if err := g.AnimateItems(); err != nil {
			return err
		}
		g.RecordTurn()
	}
	return nil
}
