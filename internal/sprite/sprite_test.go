package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSetExtents(t *testing.T) {
	set := DefaultSet(32, 32, 80, 32)

	assert.Equal(t, 32, set.Flyer.Width())
	assert.Equal(t, 32, set.Flyer.Height())
	assert.Equal(t, 80, set.GateBody.Width())
	assert.Equal(t, 32, set.GateBody.Height())
	assert.Equal(t, 80, set.GateCap.Width())
	assert.Equal(t, "gate-cap", set.GateCap.Name)
}

func TestFlyerSilhouette(t *testing.T) {
	m := New("flyer", FlyerImage(32, 32)).Mask

	assert.True(t, m.Get(16, 16), "centre is solid")
	assert.True(t, m.Get(31, 16), "beak reaches the right edge")
	for _, p := range [][2]int{{0, 0}, {31, 0}, {0, 31}, {31, 31}} {
		assert.False(t, m.Get(p[0], p[1]), "corner %v is transparent", p)
	}
	assert.Less(t, m.Count(), 32*32)
	assert.Greater(t, m.Count(), 32*32*3/4)
}

func TestGateSegments(t *testing.T) {
	body := FromImage(GateBodyImage(80, 32))
	endCap := FromImage(GateCapImage(80, 32))

	assert.Equal(t, 80*32, endCap.Count(), "cap is fully solid")
	assert.False(t, body.Get(0, 10), "body is inset on the left")
	assert.False(t, body.Get(79, 10), "body is inset on the right")
	assert.True(t, body.Get(5, 10))
	assert.True(t, body.Get(74, 10))
	assert.Equal(t, 70*32, body.Count())
}
