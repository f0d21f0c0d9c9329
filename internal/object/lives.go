package object

import "github.com/tomz197/invaders/internal/config"

// Lives is the lives board: a counter shown as a row of ship icons.
type Lives struct {
	icons    []EntityID
	renderer Renderer
}

// NewLives creates the board and places one icon per life.
func NewLives(s config.LivesSettings, shipWidth int, ids *IDs, r Renderer) *Lives {
	l := &Lives{renderer: r}
	for i := 0; i < s.Count; i++ {
		id := ids.Next(KindLife)
		r.Place(id, s.X+i*shipWidth, s.Y)
		l.icons = append(l.icons, id)
	}
	return l
}

// Remaining returns the lives left.
func (l *Lives) Remaining() int {
	return len(l.icons)
}

// Consume takes one life and reports whether any remain.
func (l *Lives) Consume() bool {
	if n := len(l.icons); n > 0 {
		l.renderer.Remove(l.icons[n-1])
		l.icons = l.icons[:n-1]
	}
	return len(l.icons) > 0
}
