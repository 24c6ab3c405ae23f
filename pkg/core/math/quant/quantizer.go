package quant

import (
	"fmt"
	"math"

	math32 "github.com/chewxy/math32"

	"github.com/itohio/weightquant/pkg/core/math/tensor"
	"github.com/itohio/weightquant/pkg/logger"
)

// scaleClamp bounds the inverse scale to preserve headroom in half
// precision.
const scaleClamp = 2e4

// zeroRangeTolerance is the group-range threshold below which the initial
// scale collapses to 1.0 (a NumericOverflow condition, handled here rather
// than propagated).
const zeroRangeTolerance = 1e-4

// PackedTensor is the host-owned result of Quantize: the bit-packed (or
// raw, for 5/6-bit widths) integer codes, plus enough bookkeeping to
// reverse a view_as_float reinterpretation on Dequantize.
type PackedTensor struct {
	Packing PackingID // zero value means no bitpack codec was applied.
	U8      []uint8
	I32     []int32
	Float   []float32 // populated instead of U8/I32 when ViewAsFloat was requested.

	// PackedLen is the true container length before any padding introduced
	// by the view_as_float byte regrouping; only meaningful when Float is
	// populated and Packing != Packing3Bit.
	PackedLen int
}

// codeBits returns the integer width the codes domain occupies for a given
// nbits value. 1.58 (ternary) occupies the 2-bit packing slot.
func codeBits(nbits float64) (int, bool) {
	switch nbits {
	case 1:
		return 1, true
	case 1.58, 2:
		return 2, true
	case 3:
		return 3, true
	case 4:
		return 4, true
	case 5:
		return 5, true
	case 6:
		return 6, true
	case 8:
		return 8, true
	default:
		return 0, false
	}
}

func validateParams(cfg WeightQuantParams, numel int) error {
	if _, ok := codeBits(cfg.NBits); !ok {
		return errUnsupported(fmt.Sprintf("nbits %v is not in the supported set", cfg.NBits))
	}
	if cfg.Axis != 0 && cfg.Axis != 1 {
		return errUnsupported(fmt.Sprintf("axis %d is not 0 or 1", cfg.Axis))
	}
	if cfg.GroupSize > 0 && numel%cfg.GroupSize != 0 {
		return errUnsupported(fmt.Sprintf("group_size %d does not divide numel %d", cfg.GroupSize, numel))
	}
	return nil
}

// flatten reads w's elements in row-major order into a float32 slice,
// matching the teacher's Calibrator.AddTensor iteration idiom.
func flatten(w tensor.Tensor) []float32 {
	out := make([]float32, 0, w.Size())
	for el := range w.Elements() {
		out = append(out, float32(el.Get()))
	}
	return out
}

// Quantize implements the orchestration operation: cast, group, compute
// the initial codebook, optionally refine it, and bit-pack the result.
func Quantize(w tensor.Tensor, cfg WeightQuantParams) (*PackedTensor, *Meta, error) {
	numel := w.Size()
	if err := validateParams(cfg, numel); err != nil {
		return nil, nil, err
	}

	origShape := append([]int(nil), w.Shape().ToSlice()...)
	data := flatten(w)

	layout := newGroupLayout(numel, cfg.GroupSize, cfg.Axis, cfg.ChannelWise)

	// Group statistics go through the Tensor reduction API, matching
	// spec.md §4.2 step 2-3: reshape to the group layout, then reduce
	// along the grouping axis (or the whole tensor when ungrouped).
	var minArr, maxArr []float32
	if cfg.ChannelWise && cfg.GroupSize > 0 {
		rows, cols := packedGroupDims(origShape, cfg.GroupSize, cfg.Axis, true)
		var grouped tensor.Tensor = tensor.FromFloat32(tensor.NewShape(rows, cols), append([]float32(nil), data...))
		minArr = flatten(grouped.Min(cfg.Axis))
		maxArr = flatten(grouped.Max(cfg.Axis))
	} else {
		minArr = flatten(w.Min())
		maxArr = flatten(w.Max())
	}

	bits, _ := codeBits(cfg.NBits)
	maxV := (1 << uint(bits)) - 1
	minV := 0

	s := make([]float32, layout.groupCount)
	zero := make([]float32, layout.groupCount)
	for g := range s {
		rng := maxArr[g] - minArr[g]
		if math32.Abs(rng) <= zeroRangeTolerance {
			logger.Log.Warn().Int("group", g).Msg("zero-range group, scale collapsed to 1.0")
			s[g] = 1.0
		} else {
			sg := float32(maxV) / rng
			if sg > scaleClamp {
				sg = scaleClamp
			}
			s[g] = sg
		}
		zero[g] = -minArr[g] * s[g]
		if cfg.RoundZero {
			zero[g] = float32(math.Round(float64(zero[g])))
		}
	}

	optimize := cfg.Optimize && cfg.ChannelWise

	var codes []int32
	if optimize {
		opt := NewProximalOptimizer(cfg.Optimizer)
		codes, s, zero = opt.Refine(data, layout, s, zero, minV, maxV)
	} else {
		codes = make([]int32, numel)
		for i, v := range data {
			g := layout.groupOf(i)
			q := float32(math.Round(float64(v*s[g] + zero[g])))
			if q < float32(minV) {
				q = float32(minV)
			}
			if q > float32(maxV) {
				q = float32(maxV)
			}
			codes[i] = int32(q)
		}
	}

	// Invert the scale for storage: the codebook carries the forward
	// scale (s) during refinement, but the meta/host contract stores its
	// reciprocal so dequantize is a single multiply.
	scaleOut := make([]float64, len(s))
	zeroOut := make([]float64, len(zero))
	for g := range s {
		scaleOut[g] = float64(1 / s[g])
		zeroOut[g] = float64(zero[g])
	}

	codesU8 := make([]uint8, len(codes))
	for i, c := range codes {
		codesU8[i] = uint8(c)
	}

	packed := &PackedTensor{}
	var packingPtr *PackingID
	packing, bpOk, err := PackingForNBits(cfg.NBits)
	if err != nil {
		return nil, nil, err
	}

	if cfg.BitPack && bpOk {
		// Same grouping test as Dequantize's meta.ChannelWise(): more than one group.
		rows, cols := packedGroupDims(origShape, cfg.GroupSize, cfg.Axis, len(s) > 1)
		u8, i32, err := Pack(packing, codesU8, rows, cols)
		if err != nil {
			return nil, nil, err
		}
		packed.U8, packed.I32, packed.Packing = u8, i32, packing
		packingPtr = &packing
	} else {
		packed.U8 = codesU8
	}

	if cfg.ViewAsFloat {
		packed.toFloatView()
	}

	meta := &Meta{
		NBits:           cfg.NBits,
		Shape:           origShape,
		Scale:           scaleOut,
		Zero:            zeroOut,
		Axis:            cfg.Axis,
		Packing:         packingPtr,
		UnpackViewDType: unpackViewDType(packing, bpOk),
		ViewAsFloat:     cfg.ViewAsFloat,
		ComputeDType:    cfg.ComputeDType,
	}
	if cfg.GroupSize > 0 {
		gs := cfg.GroupSize
		meta.GroupSize = &gs
	}

	return packed, meta, nil
}

// toFloatView reinterprets the packed container bytes as float32, the
// same bit width as the container element, with no copy semantics beyond
// the regrouping 4-uint8-container case requires.
func (p *PackedTensor) toFloatView() {
	switch {
	case len(p.I32) > 0:
		p.PackedLen = len(p.I32)
		p.Float = make([]float32, len(p.I32))
		for i, v := range p.I32 {
			p.Float[i] = math32.Float32frombits(uint32(v))
		}
		p.I32 = nil
	default:
		p.PackedLen = len(p.U8)
		n := (len(p.U8) + 3) / 4
		padded := make([]uint8, n*4)
		copy(padded, p.U8)
		p.Float = make([]float32, n)
		for i := 0; i < n; i++ {
			bits := uint32(padded[i*4]) | uint32(padded[i*4+1])<<8 | uint32(padded[i*4+2])<<16 | uint32(padded[i*4+3])<<24
			p.Float[i] = math32.Float32frombits(bits)
		}
		p.U8 = nil
	}
}

// fromFloatView reverses toFloatView, returning the u8/i32 container this
// packing id expects.
func (p *PackedTensor) fromFloatView(id PackingID) (u8 []uint8, i32 []int32) {
	if id == Packing3Bit {
		i32 = make([]int32, len(p.Float))
		for i, f := range p.Float {
			i32[i] = int32(math32.Float32bits(f))
		}
		return nil, i32
	}
	raw := make([]uint8, len(p.Float)*4)
	for i, f := range p.Float {
		bits := math32.Float32bits(f)
		raw[i*4] = uint8(bits)
		raw[i*4+1] = uint8(bits >> 8)
		raw[i*4+2] = uint8(bits >> 16)
		raw[i*4+3] = uint8(bits >> 24)
	}
	if p.PackedLen > 0 && p.PackedLen < len(raw) {
		raw = raw[:p.PackedLen]
	}
	return raw, nil
}

// Dequantize implements the reverse operation: unpack, reconstruct, and
// reshape to the original shape.
func Dequantize(packed *PackedTensor, meta *Meta) (tensor.Tensor, error) {
	u8, i32 := packed.U8, packed.I32
	if meta.ViewAsFloat {
		var id PackingID
		if meta.Packing != nil {
			id = *meta.Packing
		}
		u8, i32 = packed.fromFloatView(id)
	}

	numel := meta.Numel()
	groupSize := numel
	if meta.GroupSize != nil {
		groupSize = *meta.GroupSize
	}
	rows, cols := packedGroupDims(meta.Shape, groupSize, meta.Axis, meta.ChannelWise())

	var codes []uint8
	if meta.Packing != nil {
		var err error
		codes, err = Unpack(*meta.Packing, u8, i32, rows, cols)
		if err != nil {
			return nil, err
		}
	} else {
		codes = u8
	}

	if len(codes) != numel {
		return nil, errShape(fmt.Sprintf("unpacked code length %d does not match meta shape numel %d", len(codes), numel))
	}

	layout := newGroupLayout(numel, groupSize, meta.Axis, meta.ChannelWise())

	out := make([]float32, numel)
	for i, c := range codes {
		g := layout.groupOf(i)
		out[i] = (float32(c) - float32(meta.Zero[g])) * float32(meta.Scale[g])
	}

	var result tensor.Tensor = tensor.FromFloat32(tensor.NewShape(meta.Shape...), out)
	return result, nil
}

// QuantizeLayer applies Quantize independently to every named tensor in
// params, standing in for a host layer's parameter set.
func QuantizeLayer(params map[string]tensor.Tensor, cfg WeightQuantParams) (map[string]*PackedTensor, map[string]*Meta, error) {
	packedOut := make(map[string]*PackedTensor, len(params))
	metaOut := make(map[string]*Meta, len(params))
	for name, w := range params {
		packed, meta, err := Quantize(w, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("quant: parameter %q: %w", name, err)
		}
		packedOut[name] = packed
		metaOut[name] = meta
	}
	return packedOut, metaOut, nil
}
