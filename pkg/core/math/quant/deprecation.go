package quant

import "github.com/itohio/weightquant/pkg/logger"

// DeprecatedFields mirrors the legacy host-facing parameters that must be
// accepted and silently ignored for backward compatibility: any non-nil
// value triggers a single process-lifetime warning, then is discarded.
type DeprecatedFields struct {
	ScaleQuantParams any
	ZeroQuantParams  any
	OffloadMeta      any
}

func (f DeprecatedFields) any() bool {
	return f.ScaleQuantParams != nil || f.ZeroQuantParams != nil || f.OffloadMeta != nil
}

// DeprecationGuard is a small, process-lifetime state object owned by the
// host call site (never by quant package state) that prints the
// deprecated-field warning at most once.
type DeprecationGuard struct {
	warned bool
}

// Check inspects fields and, on the first non-nil occurrence across the
// guard's lifetime, logs a one-time warning. Deprecated fields are never
// threaded through to Quantize regardless of whether this is called.
func (g *DeprecationGuard) Check(fields DeprecatedFields) {
	if g.warned || !fields.any() {
		return
	}
	g.warned = true
	logger.Log.Warn().Msg("scale_quant_params/zero_quant_params/offload_meta are deprecated and ignored")
}
