package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowStartsClosed(t *testing.T) {
	w := NewWindow(0.1)
	assert.False(t, w.Open())
	assert.True(t, w.Expired())
	assert.True(t, math.IsInf(w.Elapsed(), 1))

	w.Tick(1.0 / 60)
	assert.True(t, math.IsInf(w.Elapsed(), 1), "closed windows do not tick")
}

func TestWindowTicksToCeiling(t *testing.T) {
	const dt = 1.0 / 60
	w := NewWindow(0.1)
	w.Reset()

	open := 0
	for w.Open() {
		w.Tick(dt)
		open++
		if open > 100 {
			t.Fatal("window never closed")
		}
	}
	assert.Equal(t, 6, open)
	assert.True(t, w.Within(), "the step landing on the ceiling is still within")

	w.Tick(dt)
	assert.InDelta(t, 0.1, w.Elapsed(), 1e-9, "expired windows stop counting")
}

func TestWindowConsume(t *testing.T) {
	w := NewWindow(0.5)
	w.Reset()
	assert.True(t, w.Open())

	w.Consume()
	assert.False(t, w.Open())
	assert.False(t, w.Within())

	w.SetCeiling(100)
	assert.False(t, w.Open(), "a consumed window stays closed whatever the ceiling")
}

func TestZeroCeilingNeverOpens(t *testing.T) {
	w := NewWindow(0)
	w.Reset()
	assert.False(t, w.Open())
	assert.True(t, w.Within())
}
