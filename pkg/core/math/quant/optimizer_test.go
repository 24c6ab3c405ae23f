package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShrinkPZeroIsFixed(t *testing.T) {
	assert.Equal(t, float32(0), shrinkP(0, 10, 0.7))
}

func TestShrinkPPullsTowardZero(t *testing.T) {
	got := shrinkP(1.0, 10, 0.7)
	assert.True(t, got >= 0 && got < 1.0, "shrinkage must not overshoot: got %v", got)
}

func TestGroupLayoutAxis0GroupsColumns(t *testing.T) {
	// [groupSize=4, groupCount=2] row-major: flat index i has group i%2.
	layout := newGroupLayout(8, 4, 0, true)
	assert.Equal(t, 2, layout.groupCount)
	assert.Equal(t, 0, layout.groupOf(0))
	assert.Equal(t, 1, layout.groupOf(1))
	assert.Equal(t, 0, layout.groupOf(2))
}

func TestGroupLayoutAxis1GroupsRows(t *testing.T) {
	// [groupCount=2, groupSize=4] row-major: flat index i has group i/4.
	layout := newGroupLayout(8, 4, 1, true)
	assert.Equal(t, 2, layout.groupCount)
	assert.Equal(t, 0, layout.groupOf(0))
	assert.Equal(t, 0, layout.groupOf(3))
	assert.Equal(t, 1, layout.groupOf(4))
}

func TestGroupLayoutNotChannelWiseIsOneGroup(t *testing.T) {
	layout := newGroupLayout(8, 4, 0, false)
	assert.Equal(t, 1, layout.groupCount)
	assert.Equal(t, 0, layout.groupOf(7))
}

func TestProximalOptimizerRefineCodesInRange(t *testing.T) {
	w := make([]float32, 64)
	for i := range w {
		w[i] = float32(i) - 32 + 0.3
	}
	layout := newGroupLayout(len(w), len(w), 0, true)
	scale := []float32{15.0 / 63.0}
	zero := []float32{7.5} // offset so w*scale+zero roughly spans [0,15]

	opt := NewProximalOptimizer(DefaultProximalOptimizerConfig())
	codes, outScale, outZero := opt.Refine(w, layout, scale, zero, 0, 15)

	assert.Len(t, codes, len(w))
	assert.Len(t, outScale, 1)
	assert.Len(t, outZero, 1)
	for _, c := range codes {
		assert.True(t, c >= 0 && c <= 15)
	}
}

func TestProximalOptimizerFallsBackToDefaults(t *testing.T) {
	opt := NewProximalOptimizer(ProximalOptimizerConfig{})
	assert.Equal(t, DefaultProximalOptimizerConfig(), opt.cfg)
}
