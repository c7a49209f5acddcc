package common

const (
	// L1BRIDGE name to identify the L1 bridge component
	L1BRIDGE = "l1bridge"
	// L2BRIDGE name to identify the L2 bridge component
	L2BRIDGE = "l2bridge"
	// STATE_COMMITMENT name to identify the batch commitment component
	STATE_COMMITMENT = "state-commitment" //nolint:stylecheck
	// RELAYER name to identify the in-process sequencer relay (implies l1bridge, l2bridge)
	RELAYER = "relayer"
	// FINALIZER name to identify the finalization keeper (implies l1bridge, state-commitment)
	FINALIZER = "finalizer"
	// RPC name to identify the rpc component (implies l1bridge, l2bridge, state-commitment)
	RPC = "rpc"
)
