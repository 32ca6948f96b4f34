// Package hud formats the status line and event banners shared by the
// window and terminal front-ends.
package hud

import (
	"fmt"

	"github.com/younwookim/snowtux/internal/application/system"
	"github.com/younwookim/snowtux/internal/domain/entity"
)

// BannerTicks is how long a banner stays up
const BannerTicks = 120

// StatusLine renders the one-line HUD
func StatusLine(st system.Status) string {
	name := st.LevelName
	if name == "" {
		name = st.LevelID
	}
	return fmt.Sprintf("Level %d: %s  Coins: %d  Lives: %d  Deaths: %d", st.Index+1, name, st.Coins, st.Lives, st.Deaths)
}

// Message returns the banner text for an event, if it has one
func Message(ev system.Event) (string, bool) {
	switch e := ev.(type) {
	case system.LevelLoaded:
		if e.Name == "" {
			return e.ID, true
		}
		return e.Name, true
	case system.PlayerDied:
		if e.Cause == entity.KindDead {
			return "You fell", true
		}
		return fmt.Sprintf("Killed by %s", e.Cause), true
	case system.LevelCompleted:
		return "Level complete!", true
	case system.GameFinished:
		return "You finished the game! Press Enter to play again", true
	case system.PowerUp:
		if e.Kind == entity.KindOneUp {
			return "1UP!", true
		}
		return "Invincible!", true
	}
	return "", false
}

// Banner keeps the most recent message for BannerTicks ticks
type Banner struct {
	text string
	left int
}

// Push shows the message of every event that has one; the last one wins
func (b *Banner) Push(events []system.Event) {
	for _, ev := range events {
		if msg, ok := Message(ev); ok {
			b.text = msg
			b.left = BannerTicks
		}
	}
}

// Tick ages the banner by one tick
func (b *Banner) Tick() {
	if b.left > 0 {
		b.left--
	}
}

// Text returns the banner, or "" once it expired
func (b *Banner) Text() string {
	if b.left == 0 {
		return ""
	}
	return b.text
}
