package config

// DefaultMandatoryVars have no sensible default, they depend on the deployment
const DefaultMandatoryVars = `
# AdminAddr is the account allowed to rotate the trust actors and to register token pairs
AdminAddr = "0x0000000000000000000000000000000000000000"
# SequencerAddr is the trusted relayer of both bridges and the submitter of batches
SequencerAddr = "0x0000000000000000000000000000000000000000"
# BridgeL1Addr is the account holding the deposited assets on the L1 ledger
BridgeL1Addr = "0x0000000000000000000000000000000000000001"
# BridgeL2Addr is the account minting and burning the bridged assets on the L2 ledger
BridgeL2Addr = "0x0000000000000000000000000000000000000002"
`

// DefaultVars are not config keys, they are used to avoid repetition in config files
const DefaultVars = `
PathRWData = "/tmp/obridge"
NativeAsset = "0x0000000000000000000000000000000000000000"
ChallengeDelay = "168h"
`

// DefaultValues is the default configuration
const DefaultValues = `
# This is the default configuration for the obridge node

# Common configuration
[Common]
  # L1NetworkID identifies the settlement domain
  L1NetworkID = 0
  # L2NetworkID identifies the execution domain, it tags the withdrawal ids
  L2NetworkID = 1

# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[L1Bridge]
  # DBPath is the path of the database
  DBPath = "{{PathRWData}}/l1bridge.sqlite"
  # Address is the account of the bridge on the L1 ledger
  Address = "{{BridgeL1Addr}}"
  # ChallengeDelay is the time a registered withdrawal waits before it can be finalized
  ChallengeDelay = "{{ChallengeDelay}}"
  # RegistrationPolicy is "overwrite" or "reject-pending"
  RegistrationPolicy = "overwrite"
  # TokenPairs maps L1 assets to their L2 counterparts, the zero address is the native asset
  TokenPairs = [
    { L1Asset = "{{NativeAsset}}", L2Asset = "{{NativeAsset}}" },
  ]
  [L1Bridge.Authority]
    Admin = "{{AdminAddr}}"
    Sequencer = "{{SequencerAddr}}"

[L2Bridge]
  # DBPath is the path of the database
  DBPath = "{{PathRWData}}/l2bridge.sqlite"
  # Address is the account of the bridge on the L2 ledger
  Address = "{{BridgeL2Addr}}"
  # TokenPairs maps L1 assets to their L2 counterparts, the zero address is the native asset
  TokenPairs = [
    { L1Asset = "{{NativeAsset}}", L2Asset = "{{NativeAsset}}" },
  ]
  [L2Bridge.Authority]
    Admin = "{{AdminAddr}}"
    Sequencer = "{{SequencerAddr}}"

[StateCommitment]
  # DBPath is the path of the database
  DBPath = "{{PathRWData}}/statecommitment.sqlite"
  # FinalizationDelay is the challenge window of a submitted batch
  FinalizationDelay = "{{ChallengeDelay}}"
  [StateCommitment.Authority]
    Admin = "{{AdminAddr}}"
    Sequencer = "{{SequencerAddr}}"
    # Verifiers allowed to challenge batches
    Verifiers = []
  [StateCommitment.ProofVerifier]
    # FraudProofMode is "accept-all" or "non-empty"
    FraudProofMode = "accept-all"

[Relayer]
  # Enabled runs the relayer inside the node, only for devnets
  Enabled = false
  # DBPath is the path of the database where the relay cursors are kept
  DBPath = "{{PathRWData}}/relayer.sqlite"
  # Sequencer is the account the relayer acts as
  Sequencer = "{{SequencerAddr}}"
  # WaitPeriodNextEvents is the time waited between passes when nothing is published
  WaitPeriodNextEvents = "5s"
  # MaxEventsPerPass is the number of events read from a bridge log at once
  MaxEventsPerPass = 100
  # RetryAfterErrorPeriod is the time waited before relaying an event again
  RetryAfterErrorPeriod = "1s"
  # MaxRetryAttemptsAfterError is the number of retries of one event, -1 is unlimited
  MaxRetryAttemptsAfterError = 3

[Finalizer]
  # Enabled runs the keeper inside the node
  Enabled = true
  # Caller is the account the keeper finalizes as
  Caller = "{{SequencerAddr}}"
  # CheckInterval is the time between two passes
  CheckInterval = "30s"
  # MaxPerPass caps the withdrawals and the batches finalized in one pass
  MaxPerPass = 100

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10

[Metrics]
  # Enabled serves /metrics
  Enabled = false
  Host = "0.0.0.0"
  Port = 9091
`
