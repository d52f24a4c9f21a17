// Package leaderboard ranks players by category. Rankings are built from a
// fixed set of mock players merged with the local player's stats.
package leaderboard

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-2048/internal/profile"
	"github.com/vovakirdan/tui-2048/internal/stats"
)

// ErrUnknownCategory is returned for a category name that has no ranking.
var ErrUnknownCategory = errors.New("leaderboard: unknown category")

// Query limits.
const (
	DefaultLimit       = 20
	MaxLimit           = 100
	MinGamesForWinRate = 10
)

// Player is one leaderboard row before ranking. WinRate is a percentage.
type Player struct {
	UserID        string  `json:"userId"`
	Username      string  `json:"username"`
	BestScore     int     `json:"bestScore"`
	BestTile      int     `json:"bestTile"`
	GamesWon      int     `json:"gamesWon"`
	GamesPlayed   int     `json:"gamesPlayed"`
	WinRate       float64 `json:"winRate"`
	TotalMoves    int     `json:"totalMoves"`
	IsCurrentUser bool    `json:"isCurrentUser,omitempty"`
}

// Entry is a ranked player. Rank starts at 1.
type Entry struct {
	Player
	Rank  int    `json:"rank"`
	Value string `json:"value"` // Category field, formatted for display
}

// Category names a ranking.
type Category string

const (
	CategoryScore   Category = "score"
	CategoryTile    Category = "tile"
	CategoryWinRate Category = "winRate"
	CategoryWins    Category = "wins"
	CategoryMoves   Category = "moves"
)

// Categories lists every ranking in display order.
var Categories = []Category{CategoryScore, CategoryTile, CategoryWinRate, CategoryWins, CategoryMoves}

type strategy struct {
	label  string
	order  func(a, b Player) int
	keep   func(p Player, minGames int) bool
	format func(p Player) string
}

func keepAll(Player, int) bool { return true }

var strategies = map[Category]strategy{
	CategoryScore: {
		label:  "Best Score",
		order:  func(a, b Player) int { return cmp.Compare(b.BestScore, a.BestScore) },
		keep:   keepAll,
		format: func(p Player) string { return humanize.Comma(int64(p.BestScore)) },
	},
	CategoryTile: {
		label: "Best Tile",
		order: func(a, b Player) int {
			return cmp.Or(cmp.Compare(b.BestTile, a.BestTile), cmp.Compare(b.BestScore, a.BestScore))
		},
		keep:   keepAll,
		format: func(p Player) string { return strconv.Itoa(p.BestTile) },
	},
	CategoryWinRate: {
		label:  "Win Rate",
		order:  func(a, b Player) int { return cmp.Compare(b.WinRate, a.WinRate) },
		keep:   func(p Player, minGames int) bool { return p.GamesPlayed >= minGames },
		format: func(p Player) string { return fmt.Sprintf("%.1f%%", p.WinRate) },
	},
	CategoryWins: {
		label:  "Total Wins",
		order:  func(a, b Player) int { return cmp.Compare(b.GamesWon, a.GamesWon) },
		keep:   keepAll,
		format: func(p Player) string { return humanize.Comma(int64(p.GamesWon)) },
	},
	CategoryMoves: {
		label: "Total Moves",
		order: func(a, b Player) int {
			return cmp.Or(cmp.Compare(a.TotalMoves, b.TotalMoves), cmp.Compare(b.BestScore, a.BestScore))
		},
		keep:   func(p Player, _ int) bool { return p.GamesPlayed > 0 },
		format: func(p Player) string { return humanize.Comma(int64(p.TotalMoves)) },
	},
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := strategies[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Label is the column title for the category, empty if unknown.
func (c Category) Label() string {
	return strategies[c].label
}

// Options bound leaderboard queries. Zero fields take the package defaults.
type Options struct {
	DefaultLimit       int
	MaxLimit           int
	MinGamesForWinRate int
}

func (o Options) withDefaults() Options {
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = DefaultLimit
	}
	if o.MaxLimit <= 0 {
		o.MaxLimit = MaxLimit
	}
	if o.MinGamesForWinRate <= 0 {
		o.MinGamesForWinRate = MinGamesForWinRate
	}
	return o
}

// Board holds the players to rank.
type Board struct {
	players []Player
	current string
	opts    Options
}

// New builds a board from the mock players and, if non-nil, the current
// player, who replaces any mock player with the same user id.
func New(opts Options, current *Player) *Board {
	b := &Board{opts: opts.withDefaults()}
	for _, p := range mockPlayers {
		if current != nil && p.UserID == current.UserID {
			continue
		}
		b.players = append(b.players, p)
	}
	if current != nil {
		me := *current
		me.IsCurrentUser = true
		b.players = append(b.players, me)
		b.current = me.UserID
	}
	return b
}

// CurrentPlayer turns the local profile and stats into a Player.
// It returns nil when there is no profile.
func CurrentPlayer(p *profile.Profile, s stats.GameStats, bestScore int) *Player {
	if p == nil {
		return nil
	}
	return &Player{
		UserID:        p.UserID,
		Username:      p.Username,
		BestScore:     bestScore,
		BestTile:      s.BestTile,
		GamesWon:      s.GamesWon,
		GamesPlayed:   s.GamesPlayed,
		WinRate:       s.WinRatePercent(),
		TotalMoves:    s.TotalMoves,
		IsCurrentUser: true,
	}
}

// Load builds a board for the player stored in the given repositories.
// A missing profile yields the mock players only.
func Load(profiles *profile.Repository, st *stats.Repository, opts Options) (*Board, error) {
	p, err := profiles.Get()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: profile: %w", err)
	}
	if p == nil {
		return New(opts, nil), nil
	}
	s, err := st.Stats()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: stats: %w", err)
	}
	best, err := st.BestScore()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: best score: %w", err)
	}
	return New(opts, CurrentPlayer(p, s, best)), nil
}

// Top returns up to limit ranked entries. A non-positive limit uses the
// default, and limits above the maximum are capped.
func (b *Board) Top(c Category, limit int) ([]Entry, error) {
	st, ok := strategies[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	if limit <= 0 {
		limit = b.opts.DefaultLimit
	}
	limit = min(limit, b.opts.MaxLimit)

	ranked := make([]Player, 0, len(b.players))
	for _, p := range b.players {
		if st.keep(p, b.opts.MinGamesForWinRate) {
			ranked = append(ranked, p)
		}
	}
	slices.SortStableFunc(ranked, st.order)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]Entry, len(ranked))
	for i, p := range ranked {
		entries[i] = Entry{Player: p, Rank: i + 1, Value: st.format(p)}
	}
	return entries, nil
}

// UserRank finds the current player within the top MaxLimit entries.
// ok is false when there is no current player or they are filtered out.
func (b *Board) UserRank(c Category) (rank, total int, ok bool) {
	if b.current == "" {
		return 0, 0, false
	}
	entries, err := b.Top(c, b.opts.MaxLimit)
	if err != nil {
		return 0, 0, false
	}
	for _, e := range entries {
		if e.UserID == b.current {
			return e.Rank, len(entries), true
		}
	}
	return 0, len(entries), false
}
