package levels

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeTiles(t *testing.T) {
	layer := []int{
		1, 1, 0, 0,
		1, 1, 0, 1,
		1, 1, 1, 1,
	}
	got := MergeTiles(layer, 4, 3)
	assert.Equal(t, []Rect{
		{X: 0, Y: 0, Width: 2, Height: 3},
		{X: 3, Y: 1, Width: 1, Height: 2},
		{X: 2, Y: 2, Width: 1, Height: 1},
	}, got)

	covered := 0
	for _, r := range got {
		covered += r.Width * r.Height
	}
	assert.Equal(t, 9, covered)
}

func TestMergeTilesEmpty(t *testing.T) {
	assert.Empty(t, MergeTiles(make([]int, 6), 3, 2))
	assert.Nil(t, MergeTiles(nil, 0, 0))
}

func TestRectBBIsYUp(t *testing.T) {
	bb := Rect{X: 2, Y: 0, Width: 3, Height: 1}.BB(10)
	assert.Equal(t, cp.BB{L: 2, B: 9, R: 5, T: 10}, bb)

	bb = Rect{X: 0, Y: 8, Width: 1, Height: 2}.BB(10)
	assert.Equal(t, cp.BB{L: 0, B: 0, R: 1, T: 2}, bb)
}

func TestDefaultLevel(t *testing.T) {
	lvl, err := Load("")
	require.NoError(t, err)

	spawn := lvl.Spawn()
	assert.Equal(t, cp.Vector{X: 4.5, Y: 3.5}, spawn)

	var floor *cp.BB
	for _, bb := range lvl.SolidBoxes() {
		if bb.ContainsVect(cp.Vector{X: spawn.X, Y: 1.5}) {
			bb := bb
			floor = &bb
		}
	}
	require.NotNil(t, floor, "spawn has floor beneath it")
	assert.Equal(t, 2.0, floor.T)

	assert.True(t, lvl.Physics(0))
	assert.False(t, lvl.Physics(1))
	assert.False(t, lvl.Physics(5))
	assert.Less(t, lvl.KillY(), lvl.Bounds().B)
}

func TestParseRejectsBadLevels(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"zero size", `{"width":0,"height":2}`},
		{"short layer", `{"width":2,"height":2,"layers":[[1,1,1]]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.data))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte(`{"width":2,"height":2,"layers":[[1]]}`))
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestSpawnFallsBackToTopMiddle(t *testing.T) {
	lvl := &Level{Width: 10, Height: 5}
	assert.Equal(t, cp.Vector{X: 5.5, Y: 4.5}, lvl.Spawn())
	assert.Equal(t, "#3c78ff", lvl.LayerColor(0))
}
