// Package render keeps the picture of a round and paints it onto
// terminals.
package render

import (
	"slices"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
)

// Sprite is one entity as last reported by the simulation.
type Sprite struct {
	ID   object.EntityID
	X, Y int
	W, H int
	Tag  string
}

// Sprites is an object.Renderer that records every entity in a table.
// It is not safe for concurrent use; frontends read it from the
// simulation goroutine between clock advances.
type Sprites struct {
	sizes map[object.Kind][2]int
	items map[object.EntityID]*Sprite
}

// NewSprites creates an empty table sized for s.
func NewSprites(s *config.Settings) *Sprites {
	return &Sprites{
		sizes: map[object.Kind][2]int{
			object.KindBarrier:   {s.Barrier.Width, s.Barrier.Height},
			object.KindDamage:    {s.Barrier.DamageSize, s.Barrier.DamageSize},
			object.KindShip:      {s.Ship.Width, s.Ship.Height},
			object.KindEnemyLow:  {s.Enemy.Size, s.Enemy.Size},
			object.KindEnemyMid:  {s.Enemy.Size, s.Enemy.Size},
			object.KindEnemyHigh: {s.Enemy.Size, s.Enemy.Size},
			object.KindBonus:     {s.Bonus.Width, s.Bonus.Height},
			object.KindMissile:   {1, s.Missile.Height},
			object.KindBomb:      {1, s.Bomb.Height},
			object.KindLife:      {s.Ship.Width, s.Ship.Height},
		},
		items: make(map[object.EntityID]*Sprite),
	}
}

func (s *Sprites) get(id object.EntityID) *Sprite {
	sp, ok := s.items[id]
	if !ok {
		size := s.sizes[id.Kind]
		sp = &Sprite{ID: id, W: size[0], H: size[1]}
		s.items[id] = sp
	}
	return sp
}

// Place implements object.Renderer.
func (s *Sprites) Place(id object.EntityID, x, y int) {
	sp := s.get(id)
	sp.X, sp.Y = x, y
}

// SetVisualState implements object.Renderer.
func (s *Sprites) SetVisualState(id object.EntityID, tag string) {
	s.get(id).Tag = tag
}

// Remove implements object.Renderer.
func (s *Sprites) Remove(id object.EntityID) {
	delete(s.items, id)
}

// Len returns the number of sprites on screen.
func (s *Sprites) Len() int {
	return len(s.items)
}

// Get returns a copy of one sprite.
func (s *Sprites) Get(id object.EntityID) (Sprite, bool) {
	sp, ok := s.items[id]
	if !ok {
		return Sprite{}, false
	}
	return *sp, true
}

// Snapshot returns every sprite in paint order: by kind, then by creation.
func (s *Sprites) Snapshot() []Sprite {
	out := make([]Sprite, 0, len(s.items))
	for _, sp := range s.items {
		out = append(out, *sp)
	}
	slices.SortFunc(out, func(a, b Sprite) int {
		if a.ID.Kind != b.ID.Kind {
			return int(a.ID.Kind) - int(b.ID.Kind)
		}
		return a.ID.Seq - b.ID.Seq
	})
	return out
}
