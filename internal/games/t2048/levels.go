// Package t2048 plugs the 2048 session into the arcade platform: classic and
// endless modes, target challenges and rendering to a core.Screen.
package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/session"

// Challenge is a preset target with its own spawn odds.
type Challenge struct {
	ID     int
	Name   string
	Target int     // Tile value that wins the challenge
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Challenges lists the presets from easiest to hardest.
// Later challenges spawn more 4s, which fills the board faster.
var Challenges = []Challenge{
	{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
	{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
	{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
	{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
	{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
	{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
	{ID: 8, Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
	{ID: 9, Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
	{ID: 10, Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
}

// ChallengeCount returns the number of challenges.
func ChallengeCount() int {
	return len(Challenges)
}

// GetChallenge returns the challenge with the given 1-based ID, or nil.
func GetChallenge(id int) *Challenge {
	if id < 1 || id > len(Challenges) {
		return nil
	}
	return &Challenges[id-1]
}

// Apply overrides the target and spawn odds of r.
func (c Challenge) Apply(r *session.Rules) {
	r.WinValue = c.Target
	r.Spawn4Probability = c.Spawn4
}
