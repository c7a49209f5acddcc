package common

type Config struct {
	// L1NetworkID identifies the settlement domain
	L1NetworkID uint32 `mapstructure:"L1NetworkID"`
	// L2NetworkID identifies the execution domain, it tags the withdrawal ids the sequencer registers on L1
	L2NetworkID uint32 `mapstructure:"L2NetworkID"`
}
