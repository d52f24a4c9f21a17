package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
)

// Mode selects between playing to a target and playing forever.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Registry IDs, also used as score-table keys.
const (
	IDClassic = "2048"
	IDEndless = "2048_endless"
)

// RulesFor builds session rules from config for a mode and optional challenge.
func RulesFor(cfg config.T2048Config, mode Mode, ch *Challenge) session.Rules {
	r := session.Rules{
		Size:              cfg.Grid.Size,
		WinValue:          cfg.Rules.WinValue,
		Spawn4Probability: cfg.Rules.Spawn4Probability,
		InitialTiles:      cfg.Rules.InitialTiles,
		HistoryLimit:      cfg.History.Limit,
		NoUndo:            cfg.History.Disabled,
	}
	if mode == ModeEndless {
		r.WinValue = 0
		return r
	}
	if ch != nil {
		ch.Apply(&r)
	}
	return r
}
