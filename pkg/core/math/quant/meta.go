package quant

import "gopkg.in/yaml.v3"

// DType tags the element type of a tensor or container view, used only in
// Meta's serialized form (the core never dispatches on it internally).
type DType string

const (
	DTypeFloat32  DType = "float32"
	DTypeFloat16  DType = "float16"
	DTypeBFloat16 DType = "bfloat16"
	DTypeUint8    DType = "uint8"
	DTypeInt32    DType = "int32"
	DTypeInt8     DType = "int8"
)

// Meta is the configuration record bound to a packed tensor and required
// to reconstruct it. It replaces the dynamic, string-keyed meta dictionary
// with a tagged record: every recognized key has a fixed field and type,
// and the legacy deprecated fields never reach this struct at all (see
// DeprecationGuard).
//
// QuantizedScale and QuantizedZero stand in for the source's legacy
// per-element quantized-scale/quantized-zero keys: recognized on the wire
// for backward compatibility, always nil here, never populated.
type Meta struct {
	NBits           float64
	GroupSize       *int
	Shape           []int
	Scale           []float64
	Zero            []float64
	Axis            int
	Packing         *PackingID
	UnpackViewDType DType
	ViewAsFloat     bool
	ComputeDType    DType
	QuantizedScale  *struct{}
	QuantizedZero   *struct{}
}

// metaYAML is the flat, recognized-keys wire shape of Meta.
type metaYAML struct {
	NBits           float64    `yaml:"nbits"`
	GroupSize       *int       `yaml:"group_size"`
	Shape           []int      `yaml:"shape"`
	Scale           []float64  `yaml:"scale"`
	Zero            []float64  `yaml:"zero"`
	Axis            int        `yaml:"axis"`
	Packing         *PackingID `yaml:"packing"`
	UnpackViewDType DType      `yaml:"unpack_view_dtype"`
	ViewAsFloat     bool       `yaml:"view_as_float"`
	ComputeDType    DType      `yaml:"compute_dtype"`
	QuantizedScale  *struct{}  `yaml:"quantized_scale"`
	QuantizedZero   *struct{}  `yaml:"quantized_zero"`
}

// MarshalYAML projects Meta onto the recognized-keys wire shape.
func (m Meta) MarshalYAML() (interface{}, error) {
	return metaYAML{
		NBits:           m.NBits,
		GroupSize:       m.GroupSize,
		Shape:           m.Shape,
		Scale:           m.Scale,
		Zero:            m.Zero,
		Axis:            m.Axis,
		Packing:         m.Packing,
		UnpackViewDType: m.UnpackViewDType,
		ViewAsFloat:     m.ViewAsFloat,
		ComputeDType:    m.ComputeDType,
		QuantizedScale:  m.QuantizedScale,
		QuantizedZero:   m.QuantizedZero,
	}, nil
}

// UnmarshalYAML decodes the recognized-keys wire shape into Meta. Unknown
// keys are silently ignored, matching yaml.v3's default decode behavior
// for a closed struct.
func (m *Meta) UnmarshalYAML(value *yaml.Node) error {
	var w metaYAML
	if err := value.Decode(&w); err != nil {
		return err
	}
	m.NBits = w.NBits
	m.GroupSize = w.GroupSize
	m.Shape = w.Shape
	m.Scale = w.Scale
	m.Zero = w.Zero
	m.Axis = w.Axis
	m.Packing = w.Packing
	m.UnpackViewDType = w.UnpackViewDType
	m.ViewAsFloat = w.ViewAsFloat
	m.ComputeDType = w.ComputeDType
	m.QuantizedScale = w.QuantizedScale
	m.QuantizedZero = w.QuantizedZero
	return nil
}

// Numel returns the element count implied by Shape.
func (m *Meta) Numel() int {
	n := 1
	for _, d := range m.Shape {
		n *= d
	}
	return n
}

// ChannelWise reports whether the codebook carries more than one group.
// A channel-wise quantization whose single group spans the whole tensor
// reports false.
func (m *Meta) ChannelWise() bool {
	return len(m.Scale) > 1
}

func unpackViewDType(id PackingID, ok bool) DType {
	if !ok {
		return DTypeUint8
	}
	if id == Packing3Bit {
		return DTypeInt32
	}
	return DTypeUint8
}
