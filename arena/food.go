package arena

import "github.com/andrinmeier/meigames-snake2d/geom"

// Food is a single collectible. It only moves through Respawn.
type Food struct {
	Radius float64
	Center geom.Point
}

// NewFood returns food of the given radius at the origin; call Respawn or
// PlaceFood before use.
func NewFood(radius float64) *Food {
	return &Food{Radius: radius}
}

// Respawn moves the food to center.
func (f *Food) Respawn(center geom.Point) {
	f.Center = center
}

// Box returns the square the food occupies.
func (f *Food) Box() geom.BoundingBox {
	return geom.NewBox(f.Center, f.Radius)
}

// AnyPointsInside reports whether any of points touches the food.
func (f *Food) AnyPointsInside(points []geom.Point) bool {
	return f.Box().AnyInside(points)
}

// Rand is the source PlaceFood draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceFood respawns food at the center of a free square picked uniformly at
// random. It returns false, leaving the food where it was, when the arena has
// no free square left.
func PlaceFood(area *GameArea, food *Food, occupied []geom.BoundingBox, rng Rand) bool {
	free := area.FreeSquares(occupied)
	if len(free) == 0 {
		return false
	}
	food.Respawn(free[rng.Intn(len(free))].Center())
	return true
}
