// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// sprite is the engo side of a simulated entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer mirrors the entity store into engo space components. It
// only reads the store.
type EngoRenderer struct {
	store        *entity.Store
	renderSystem *common.RenderSystem
	viewport     physics.Vector2D

	sprites map[entity.ID]*sprite
}

// NewEngoRenderer creates a renderer drawing store through renderSystem
func NewEngoRenderer(store *entity.Store, renderSystem *common.RenderSystem, width, height float64) *EngoRenderer {
	r := &EngoRenderer{
		store:        store,
		renderSystem: renderSystem,
		viewport:     physics.Vector2D{X: width, Y: height},
		sprites:      make(map[entity.ID]*sprite),
	}
	store.OnDestroy(func(basic ecs.BasicEntity) {
		r.remove(entity.ID(basic.ID()))
	})
	return r
}

// Sync creates sprites for new entities and moves existing ones
func (r *EngoRenderer) Sync() {
	for _, id := range r.store.Query(entity.PositionMask | entity.ScaleMask) {
		pos, _ := r.store.Positions.Get(id)
		scale, _ := r.store.Scales.Get(id)
		diameter := scale.Diameter()

		s, ok := r.sprites[id]
		if !ok {
			s = r.add(id, diameter)
		}
		s.SpaceComponent.Position = ToScreen(pos.Vector2D, diameter, r.viewport)
		if ship, ok := r.store.Ships.Get(id); ok {
			s.SpaceComponent.Rotation = ScreenRotation(ship.Rotation)
		}
	}
}

func (r *EngoRenderer) add(id entity.ID, diameter float64) *sprite {
	drawable, tint := styleFor(r.store.Mask(id))
	s := &sprite{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: drawable,
			Color:    tint,
			Scale:    engo.Point{X: 1, Y: 1},
		},
		SpaceComponent: common.SpaceComponent{
			Width:  float32(diameter),
			Height: float32(diameter),
		},
	}
	r.sprites[id] = s
	r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

func (r *EngoRenderer) remove(id entity.ID) {
	if s, ok := r.sprites[id]; ok {
		r.renderSystem.Remove(s.BasicEntity)
		delete(r.sprites, id)
	}
}

// Len returns the number of sprites on screen
func (r *EngoRenderer) Len() int {
	return len(r.sprites)
}

// styleFor picks the shape and color of an entity from its components
func styleFor(m entity.Mask) (common.Drawable, color.Color) {
	switch {
	case m.Has(entity.ShipMask):
		return common.Triangle{TriangleType: common.TriangleIsosceles}, color.White
	case m.Has(entity.BulletMask):
		return common.Circle{}, color.RGBA{255, 255, 0, 255}
	default:
		return common.Circle{BorderWidth: 2, BorderColor: color.White}, color.Transparent
	}
}

// ToScreen converts a world position, where the origin is the center of
// the viewport and y points up, to the top-left corner of a sprite of the
// given diameter in engo coordinates.
func ToScreen(pos physics.Vector2D, diameter float64, viewport physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(pos.X + viewport.X/2 - diameter/2),
		Y: float32(viewport.Y/2 - pos.Y - diameter/2),
	}
}

// ScreenRotation converts a counter-clockwise rotation in radians to
// engo's clockwise degrees.
func ScreenRotation(rotation float64) float32 {
	return float32(-rotation * 180 / math.Pi)
}
