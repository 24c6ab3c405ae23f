package quant

import (
	"math"

	math32 "github.com/chewxy/math32"

	"github.com/itohio/weightquant/pkg/logger"
)

// ProximalOptimizerConfig holds the half-quadratic schedule constants.
type ProximalOptimizerConfig struct {
	// P is the shrinkage exponent of the Lp proximal operator, p < 1.
	P float32
	// Beta0 is the initial penalty strength.
	Beta0 float32
	// Kappa is the per-iteration growth factor applied to beta.
	Kappa float32
	// TMax bounds the number of alternating-minimization iterations.
	TMax int
}

// DefaultProximalOptimizerConfig returns the documented defaults of the
// half-quadratic schedule: p=0.7, beta0=1e1, kappa=1.05, TMax=20.
func DefaultProximalOptimizerConfig() ProximalOptimizerConfig {
	return ProximalOptimizerConfig{P: 0.7, Beta0: 1e1, Kappa: 1.05, TMax: 20}
}

// groupLayout maps a flat, row-major array of length numel to the group it
// belongs to, following the axis convention: axis=0 reshapes the array to
// [groupSize, groupCount] and groups along columns; axis=1 reshapes to
// [groupCount, groupSize] and groups along rows. When channelWise is
// false every element belongs to a single group (group 0), regardless of
// axis.
type groupLayout struct {
	numel       int
	groupSize   int
	groupCount  int
	axis        int
	channelWise bool
}

func newGroupLayout(numel, groupSize, axis int, channelWise bool) groupLayout {
	if groupSize <= 0 {
		groupSize = numel
	}
	groupCount := 1
	if groupSize > 0 {
		groupCount = numel / groupSize
	}
	if !channelWise {
		groupCount = 1
	}
	return groupLayout{
		numel:       numel,
		groupSize:   groupSize,
		groupCount:  groupCount,
		axis:        axis,
		channelWise: channelWise,
	}
}

func (g groupLayout) groupOf(flatIdx int) int {
	if !g.channelWise {
		return 0
	}
	if g.axis == 0 {
		return flatIdx % g.groupCount
	}
	return flatIdx / g.groupSize
}

// ProximalOptimizer refines an affine codebook (scale, zero) and the
// integer codes it induces by alternating a hard quantization step with an
// Lp shrinkage step on the residual (half-quadratic splitting).
type ProximalOptimizer struct {
	cfg ProximalOptimizerConfig
}

// NewProximalOptimizer builds an optimizer with cfg, falling back to
// DefaultProximalOptimizerConfig when TMax is unset.
func NewProximalOptimizer(cfg ProximalOptimizerConfig) *ProximalOptimizer {
	if cfg.TMax <= 0 {
		cfg = DefaultProximalOptimizerConfig()
	}
	return &ProximalOptimizer{cfg: cfg}
}

// Refine runs the alternating minimization. w holds the real-valued
// weights already cast to float32; scale and zero are the initial
// per-group codebook (length layout.groupCount); minV/maxV bound the
// integer codes. It returns the best-so-far codes and codebook found
// before the divergence guard tripped, or after TMax iterations.
func (o *ProximalOptimizer) Refine(w []float32, layout groupLayout, scale, zero []float32, minV, maxV int) (codes []int32, outScale, outZero []float32) {
	n := len(w)
	e := make([]float32, n)
	eBar := make([]float32, n)
	cur := make([]int32, n)

	bestCodes := make([]int32, n)
	bestScale := append([]float32(nil), scale...)
	bestZero := append([]float32(nil), zero...)

	sums := make([]float32, layout.groupCount)
	counts := make([]int, layout.groupCount)

	beta := o.cfg.Beta0
	var prevErr float32 = math32.MaxFloat32

	for t := 0; t < o.cfg.TMax; t++ {
		// a, b: hard-quantize and form the residual in (w*scale+zero) space.
		for i, wi := range w {
			g := layout.groupOf(i)
			proj := wi*scale[g] + zero[g]
			q := float32(math.Round(float64(proj)))
			if q < float32(minV) {
				q = float32(minV)
			}
			if q > float32(maxV) {
				q = float32(maxV)
			}
			cur[i] = int32(q)
			e[i] = proj - q
		}

		// c: Lp shrinkage, the proximal operator of |.|^p at strength beta.
		for i, ei := range e {
			eBar[i] = shrinkP(ei, beta, o.cfg.P)
		}

		// d: analytic offset update, one reduction per group.
		for g := range sums {
			sums[g] = 0
			counts[g] = 0
		}
		for i := range w {
			g := layout.groupOf(i)
			sums[g] += float32(cur[i]) - w[i]*scale[g] + eBar[i]
			counts[g]++
		}
		for g := range sums {
			if counts[g] > 0 {
				zero[g] = sums[g] / float32(counts[g])
			}
		}

		// f: divergence guard on the average absolute shrinkage residual.
		var acc float32
		for i := range e {
			acc += math32.Abs(e[i] - eBar[i])
		}
		errT := acc / float32(n)

		if errT > prevErr {
			logger.Log.Debug().Int("iteration", t).Float("err", float64(errT)).Msg("proximal optimizer diverging, stopping")
			break
		}
		prevErr = errT
		copy(bestCodes, cur)
		copy(bestScale, scale)
		copy(bestZero, zero)

		beta *= o.cfg.Kappa
	}

	return bestCodes, bestScale, bestZero
}

// shrinkP is the proximal operator of |x|^p at strength beta: the argmin
// of (1/2)(x-e)^2 + (1/beta)|x|^p, applied to residual e. For p=0.7 this
// has the closed form sign(e)*max(0, |e| - (2/beta)*|e|^(p-1)); the same
// expression generalizes to other p in (0,1).
func shrinkP(e, beta, p float32) float32 {
	if e == 0 {
		return 0
	}
	mag := math32.Abs(e)
	thresh := (2 / beta) * math32.Pow(mag, p-1)
	shrunk := mag - thresh
	if shrunk < 0 {
		shrunk = 0
	}
	return math32.Copysign(shrunk, e)
}
