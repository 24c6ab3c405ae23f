package quant

// WeightQuantParams is the host-facing request record for Quantize,
// mirroring the core API surface's cfg argument.
type WeightQuantParams struct {
	NBits        float64
	ChannelWise  bool
	GroupSize    int // 0 means "none": the whole tensor is one group along the grouping axis.
	Optimize     bool
	RoundZero    bool
	Axis         int
	ViewAsFloat  bool
	BitPack      bool
	ComputeDType DType
	Optimizer    ProximalOptimizerConfig
}

// Option mutates a WeightQuantParams before NewWeightQuantParams freezes it.
type Option func(*WeightQuantParams)

func WithNBits(n float64) Option         { return func(p *WeightQuantParams) { p.NBits = n } }
func WithChannelWise(b bool) Option      { return func(p *WeightQuantParams) { p.ChannelWise = b } }
func WithGroupSize(n int) Option         { return func(p *WeightQuantParams) { p.GroupSize = n } }
func WithOptimize(b bool) Option         { return func(p *WeightQuantParams) { p.Optimize = b } }
func WithRoundZero(b bool) Option        { return func(p *WeightQuantParams) { p.RoundZero = b } }
func WithAxis(axis int) Option           { return func(p *WeightQuantParams) { p.Axis = axis } }
func WithViewAsFloat(b bool) Option      { return func(p *WeightQuantParams) { p.ViewAsFloat = b } }
func WithBitPack(b bool) Option          { return func(p *WeightQuantParams) { p.BitPack = b } }
func WithComputeDType(dt DType) Option   { return func(p *WeightQuantParams) { p.ComputeDType = dt } }
func WithOptimizerConfig(cfg ProximalOptimizerConfig) Option {
	return func(p *WeightQuantParams) { p.Optimizer = cfg }
}

// NewWeightQuantParams builds a request record, defaulting to 4-bit,
// channel-wise, bit-packed quantization along axis 0.
func NewWeightQuantParams(opts ...Option) WeightQuantParams {
	p := WeightQuantParams{
		NBits:        4,
		ChannelWise:  true,
		GroupSize:    0,
		Optimize:     false,
		RoundZero:    false,
		Axis:         0,
		ViewAsFloat:  false,
		BitPack:      true,
		ComputeDType: DTypeFloat32,
		Optimizer:    DefaultProximalOptimizerConfig(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	// A single global scale/zero is too coarse for the proximal refinement
	// to help.
	if !p.ChannelWise {
		p.Optimize = false
	}
	return p
}
