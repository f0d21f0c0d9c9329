package object

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Barrier is a static block that absorbs fire, collecting a damage zone
// per absorbed hit. It is never destroyed.
type Barrier struct {
	id       EntityID
	base     physics.Rect
	zones    []physics.Rect
	zoneSize int
	ids      *IDs
	renderer Renderer
}

// NewBarrier creates the barrier for the given 1-based slot and places it.
func NewBarrier(slot int, s config.BarrierSettings, ids *IDs, r Renderer) *Barrier {
	x := (s.Separation+s.Width)*slot - s.Width
	b := &Barrier{
		id:       ids.Next(KindBarrier),
		base:     physics.NewRect(x, s.Y, s.Width, s.Height),
		zoneSize: s.DamageSize,
		ids:      ids,
		renderer: r,
	}
	r.Place(b.id, x, s.Y)
	return b
}

// NewBarriers creates the configured row of barriers.
func NewBarriers(s config.BarrierSettings, ids *IDs, r Renderer) []*Barrier {
	barriers := make([]*Barrier, 0, s.Count)
	for slot := 1; slot <= s.Count; slot++ {
		barriers = append(barriers, NewBarrier(slot, s, ids, r))
	}
	return barriers
}

// ID returns the barrier's entity id.
func (b *Barrier) ID() EntityID { return b.id }

// Rect returns the barrier's base rectangle.
func (b *Barrier) Rect() physics.Rect { return b.base }

// Zones returns a copy of the recorded damage zones, oldest first.
func (b *Barrier) Zones() []physics.Rect {
	return append([]physics.Rect(nil), b.zones...)
}

// CheckCrash reports whether in hits the barrier. A hit on territory an
// existing zone already shields returns false and records nothing.
// Otherwise a new zone centred on the impact is recorded.
func (b *Barrier) CheckCrash(in physics.Rect) bool {
	if !physics.HitFromBelow(in, b.base) {
		return false
	}
	for _, z := range b.zones {
		if physics.Shields(z, in) {
			return false
		}
	}

	half := b.zoneSize / 2
	zone := physics.NewRect(in.TopLeftX-half, in.TopLeftY-half, b.zoneSize, b.zoneSize)
	b.zones = append(b.zones, zone)

	id := b.ids.Next(KindDamage)
	b.renderer.Place(id, zone.TopLeftX, zone.TopLeftY)
	b.renderer.SetVisualState(id, TagHole)
	return true
}
