package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestMetaNumel(t *testing.T) {
	m := &Meta{Shape: []int{4, 8}}
	assert.Equal(t, 32, m.Numel())
}

func TestMetaChannelWise(t *testing.T) {
	single := &Meta{Scale: []float64{1.0}}
	assert.False(t, single.ChannelWise())

	multi := &Meta{Scale: []float64{1.0, 2.0}}
	assert.True(t, multi.ChannelWise())
}

func TestUnpackViewDType(t *testing.T) {
	assert.Equal(t, DTypeInt32, unpackViewDType(Packing3Bit, true))
	assert.Equal(t, DTypeUint8, unpackViewDType(Packing4Bit, true))
	assert.Equal(t, DTypeUint8, unpackViewDType("", false))
}

func TestMetaYAMLRoundTrip(t *testing.T) {
	gs := 64
	packing := Packing4Bit
	m := Meta{
		NBits:           4,
		GroupSize:       &gs,
		Shape:           []int{128, 128},
		Scale:           []float64{0.1, 0.2},
		Zero:            []float64{1, 2},
		Axis:            0,
		Packing:         &packing,
		UnpackViewDType: DTypeUint8,
		ViewAsFloat:     false,
		ComputeDType:    DTypeFloat32,
	}

	out, err := yaml.Marshal(&m)
	assert.NoError(t, err)

	var got Meta
	assert.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, m.NBits, got.NBits)
	assert.Equal(t, *m.GroupSize, *got.GroupSize)
	assert.Equal(t, m.Shape, got.Shape)
	assert.Equal(t, m.Scale, got.Scale)
	assert.Equal(t, *m.Packing, *got.Packing)
}

func TestMetaYAMLOptionalFieldsAreNull(t *testing.T) {
	m := Meta{NBits: 8, Shape: []int{4}, Scale: []float64{1}, Zero: []float64{0}}
	out, err := yaml.Marshal(&m)
	assert.NoError(t, err)

	var got Meta
	assert.NoError(t, yaml.Unmarshal(out, &got))
	assert.Nil(t, got.GroupSize)
	assert.Nil(t, got.Packing)
}

func TestMetaYAMLLegacyFieldsSerializeAsNull(t *testing.T) {
	m := Meta{NBits: 4, Shape: []int{4}, Scale: []float64{1}, Zero: []float64{0}}
	out, err := yaml.Marshal(&m)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "quantized_scale: null")
	assert.Contains(t, string(out), "quantized_zero: null")

	var got Meta
	assert.NoError(t, yaml.Unmarshal(out, &got))
	assert.Nil(t, got.QuantizedScale)
	assert.Nil(t, got.QuantizedZero)
}
