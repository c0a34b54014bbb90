// Package hooks provides default hook implementations.
package hooks

import "github.com/arloliu/santa/types"

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(string, []types.Pairing) = (*NopHooks)(nil).OnPairingsGenerated
	_ func(types.Person, string)    = (*NopHooks)(nil).OnDelivered
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnPairingsGenerated: h.OnPairingsGenerated,
		OnDelivered:         h.OnDelivered,
	}
}

// Fill returns a copy of hooks with every nil callback replaced by a no-op.
//
// Parameters:
//   - hooks: Caller-supplied hooks (nil yields all no-ops)
//
// Returns:
//   - types.Hooks: Hooks safe to call without nil checks
func Fill(hooks *types.Hooks) types.Hooks {
	filled := NewNop()
	if hooks == nil {
		return filled
	}

	if hooks.OnPairingsGenerated != nil {
		filled.OnPairingsGenerated = hooks.OnPairingsGenerated
	}
	if hooks.OnDelivered != nil {
		filled.OnDelivered = hooks.OnDelivered
	}

	return filled
}

// OnPairingsGenerated is a no-op implementation.
func (h *NopHooks) OnPairingsGenerated(_ string, _ []types.Pairing) {}

// OnDelivered is a no-op implementation.
func (h *NopHooks) OnDelivered(_ types.Person, _ string) {}
