package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrinmeier/meigames-snake2d/body"
	"github.com/andrinmeier/meigames-snake2d/geom"
)

func bruteForceFree(tiles, occupied []geom.BoundingBox) []geom.BoundingBox {
	free := []geom.BoundingBox{}
	for _, tile := range tiles {
		hit := false
		for _, occ := range occupied {
			if tile.Overlaps(occ) {
				hit = true
				break
			}
		}
		if !hit {
			free = append(free, tile)
		}
	}
	return free
}

func TestTiling(t *testing.T) {
	a := NewGameArea(100, 60, 20, 0)
	tiles := a.Tiles()
	require.Len(t, tiles, 15)
	assert.Equal(t, geom.NewRect(0, 0, 20, 20), tiles[0])
	assert.Equal(t, geom.NewRect(80, 40, 20, 20), tiles[14])

	a = NewGameArea(200, 200, 40, 25)
	for _, tile := range a.Tiles() {
		assert.GreaterOrEqual(t, tile.LeftBottom.X, 25.0)
		assert.LessOrEqual(t, tile.RightTop.X, 175.0)
		assert.LessOrEqual(t, tile.RightTop.Y, 175.0)
	}
	assert.Len(t, a.Tiles(), 9)
}

func TestTilingWithoutStride(t *testing.T) {
	a := NewGameArea(100, 100, 0, 0)
	assert.Empty(t, a.Tiles())
	assert.Empty(t, a.FreeSquares([]geom.BoundingBox{geom.NewRect(0, 0, 1, 1)}))
}

func TestResizeIsMemoized(t *testing.T) {
	a := NewGameArea(100, 100, 20, 0)
	assert.False(t, a.Resize(100, 100))
	assert.Len(t, a.Tiles(), 25)

	assert.True(t, a.Resize(40, 100))
	assert.Len(t, a.Tiles(), 10)
	w, h := a.Size()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 100.0, h)
}

func TestFreeSquaresExcludesOccupiedTile(t *testing.T) {
	a := NewGameArea(100, 100, 20, 0)
	tiles := a.Tiles()
	occupied := tiles[7]

	free := a.FreeSquares([]geom.BoundingBox{occupied})
	require.Len(t, free, len(tiles)-1)
	assert.NotContains(t, free, occupied)
	for i, tile := range tiles {
		if i != 7 {
			assert.Contains(t, free, tile)
		}
	}
}

func TestFreeSquaresContainment(t *testing.T) {
	a := NewGameArea(100, 100, 20, 0)

	inside := geom.NewBox(geom.Point{X: 30, Y: 30}, 5)
	free := a.FreeSquares([]geom.BoundingBox{inside})
	assert.Len(t, free, 24)
	assert.NotContains(t, free, geom.NewRect(20, 20, 20, 20))

	// a box covering four tiles contains them all
	big := geom.NewRect(0, 0, 40, 40)
	free = a.FreeSquares([]geom.BoundingBox{big})
	assert.Len(t, free, 21)

	// partial overlap is not detected
	straddling := geom.NewBox(geom.Point{X: 40, Y: 30}, 5)
	free = a.FreeSquares([]geom.BoundingBox{straddling})
	assert.Len(t, free, 25)
}

func TestFreeSquaresMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := NewGameArea(640, 480, 40, 25)

	for round := 0; round < 20; round++ {
		occupied := make([]geom.BoundingBox, 0, 200)
		for i := 0; i < 200; i++ {
			center := geom.Point{X: rng.Float64() * 700, Y: rng.Float64() * 540}
			half := 2 + rng.Float64()*60
			occupied = append(occupied, geom.NewBox(center, half))
		}
		assert.Equal(t, bruteForceFree(a.Tiles(), occupied), a.FreeSquares(occupied), "round %d", round)
	}
}

func TestOutOfBounds(t *testing.T) {
	o := NewOutOfBounds(100, 100)

	assert.True(t, o.Inside([]geom.Point{{X: 100, Y: 50}}))
	assert.False(t, o.Inside([]geom.Point{{X: 0, Y: 0}}))
	assert.False(t, o.Inside([]geom.Point{{X: 99.999, Y: 99.999}}))
	assert.True(t, o.Inside([]geom.Point{{X: 50, Y: 50}, {X: -0.1, Y: 50}}))
	assert.True(t, o.Inside([]geom.Point{{X: 50, Y: 100}}))
	assert.False(t, o.Inside(nil))

	o.Resize(200, 200)
	assert.False(t, o.Inside([]geom.Point{{X: 150, Y: 150}}))
}

func TestFood(t *testing.T) {
	f := NewFood(5)
	f.Respawn(geom.Point{X: 40, Y: 40})

	assert.True(t, f.AnyPointsInside([]geom.Point{{X: 44, Y: 36}}))
	assert.False(t, f.AnyPointsInside([]geom.Point{{X: 46, Y: 40}}))
	assert.Equal(t, geom.NewBox(geom.Point{X: 40, Y: 40}, 5), f.Box())
}

func TestPlaceFoodArenaFull(t *testing.T) {
	a := NewGameArea(100, 100, 50, 0)
	f := NewFood(5)
	f.Respawn(geom.Point{X: 1, Y: 2})

	ok := PlaceFood(a, f, []geom.BoundingBox{geom.NewRect(0, 0, 100, 100)}, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, f.Center)
}

func TestPlaceFoodUsesFreeSquare(t *testing.T) {
	a := NewGameArea(100, 100, 50, 0)
	f := NewFood(5)
	tiles := a.Tiles()
	occupied := tiles[:3]

	for seed := int64(0); seed < 10; seed++ {
		require.True(t, PlaceFood(a, f, occupied, rand.New(rand.NewSource(seed))))
		assert.Equal(t, tiles[3].Center(), f.Center)
	}
}

func TestPlaceFoodAwayFromBody(t *testing.T) {
	const foodRadius = 5
	a := NewGameArea(400, 400, 8*foodRadius, 0)
	b := body.New(5, 10)
	p := geom.Point{}
	v := geom.Velocity{Angle: geom.FromDegrees(0), Magnitude: 5}
	for i := 0; i < 3; i++ {
		p = v.Project(p)
		b.Append(p, v.Angle)
	}
	head, ok := b.Head()
	require.True(t, ok)
	assert.InDelta(t, 15, head.X, 1e-9)
	assert.False(t, b.HitItself())

	f := NewFood(foodRadius)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		require.True(t, PlaceFood(a, f, b.AllBoundingBoxes(), rng))
		for _, box := range b.AllBoundingBoxes() {
			tile := geom.NewBox(f.Center, 4*foodRadius)
			assert.False(t, tile.Overlaps(box))
		}
	}
}
