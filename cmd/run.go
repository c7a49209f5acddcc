package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"time"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/obridge"
	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/config"
	"github.com/0xPolygon/obridge/finalizer"
	"github.com/0xPolygon/obridge/l1bridge"
	"github.com/0xPolygon/obridge/l2bridge"
	"github.com/0xPolygon/obridge/ledger"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/metrics"
	"github.com/0xPolygon/obridge/registry"
	"github.com/0xPolygon/obridge/relayer"
	"github.com/0xPolygon/obridge/rpc"
	"github.com/0xPolygon/obridge/statecommitment"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
)

const metricsReadHeaderTimeout = 2 * time.Second

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		obridge.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	components := cliCtx.StringSlice(config.FlagComponents)
	m := runMetricsIfNeeded(c.Metrics)
	clk := clock.New()

	// the asset capabilities of both domains are kept in memory by this process
	l1Ledger := ledger.New("l1", log.WithFields("module", "l1ledger"))
	l2Ledger := ledger.New("l2", log.WithFields("module", "l2ledger"))

	bridgeL1 := runL1BridgeIfNeeded(ctx, components, c.L1Bridge, l1Ledger, clk, m)
	bridgeL2 := runL2BridgeIfNeeded(ctx, components, c.L2Bridge, l2Ledger, clk, m)
	commitment := runStateCommitmentIfNeeded(ctx, components, c.StateCommitment, clk, m)

	for _, component := range components {
		switch component {
		case bridgecommon.RELAYER:
			r := createRelayer(c.Relayer, c.Common.L2NetworkID, bridgeL1, bridgeL2)
			go r.Start(ctx)
		case bridgecommon.FINALIZER:
			f := createFinalizer(c.Finalizer, bridgeL1, commitment)
			go f.Start(ctx)
		case bridgecommon.RPC:
			server := createRPC(c.RPC, c.Common.L2NetworkID, bridgeL1, bridgeL2, commitment)
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal(err)
				}
			}()
		}
	}

	waitSignal([]context.CancelFunc{cancel})

	return nil
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", obridge.GitRev,
		"gitBranch", obridge.GitBranch,
		"goVersion", runtime.Version(),
		"built", obridge.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func waitSignal(cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	for sig := range signals {
		switch sig {
		case os.Interrupt, os.Kill:
			log.Info("terminating application gracefully...")

			exitStatus := 0
			for _, cancel := range cancelFuncs {
				cancel()
			}
			os.Exit(exitStatus)
		}
	}
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}

	return false
}

func runMetricsIfNeeded(cfg metrics.Config) metrics.Metricer {
	if !cfg.Enabled {
		return metrics.NoopMetrics
	}
	m := metrics.NewMetrics()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}
	go func() {
		log.Infof("serving metrics on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	return m
}

func runL1BridgeIfNeeded(
	ctx context.Context,
	components []string,
	cfg l1bridge.Config,
	l1Ledger *ledger.Ledger,
	clk clock.Clock,
	m metrics.Metricer,
) *l1bridge.BridgeL1 {
	if !isNeeded([]string{
		bridgecommon.L1BRIDGE, bridgecommon.RELAYER, bridgecommon.FINALIZER, bridgecommon.RPC,
	}, components) {
		return nil
	}
	logger := log.WithFields("module", bridgecommon.L1BRIDGE)
	bridgeL1, err := l1bridge.New(ctx, logger, cfg, ledger.NewCustody(l1Ledger, cfg.Address), clk, m)
	if err != nil {
		log.Fatalf("error creating the L1 bridge: %s", err)
	}

	return bridgeL1
}

func runL2BridgeIfNeeded(
	ctx context.Context,
	components []string,
	cfg l2bridge.Config,
	l2Ledger *ledger.Ledger,
	clk clock.Clock,
	m metrics.Metricer,
) *l2bridge.BridgeL2 {
	if !isNeeded([]string{bridgecommon.L2BRIDGE, bridgecommon.RELAYER, bridgecommon.RPC}, components) {
		return nil
	}
	logger := log.WithFields("module", bridgecommon.L2BRIDGE)
	minter := ledger.NewMinter(l2Ledger, cfg.Address, l2Assets(cfg.TokenPairs)...)
	bridgeL2, err := l2bridge.New(ctx, logger, cfg, minter, nil, clk, m)
	if err != nil {
		log.Fatalf("error creating the L2 bridge: %s", err)
	}

	return bridgeL2
}

// l2Assets are the assets the L2 bridge mints and burns: the counterpart of every pair, the
// L2 native coin included when the L1 native asset is paired with it
func l2Assets(pairs []registry.TokenPair) []common.Address {
	assets := make([]common.Address, 0, len(pairs))
	for _, pair := range pairs {
		assets = append(assets, pair.L2Asset)
	}
	return assets
}

func runStateCommitmentIfNeeded(
	ctx context.Context,
	components []string,
	cfg statecommitment.Config,
	clk clock.Clock,
	m metrics.Metricer,
) *statecommitment.StateCommitment {
	if !isNeeded([]string{
		bridgecommon.STATE_COMMITMENT, bridgecommon.FINALIZER, bridgecommon.RPC,
	}, components) {
		return nil
	}
	logger := log.WithFields("module", bridgecommon.STATE_COMMITMENT)
	commitment, err := statecommitment.New(ctx, logger, cfg, nil, clk, m)
	if err != nil {
		log.Fatalf("error creating the state commitment chain: %s", err)
	}

	return commitment
}

func createRelayer(
	cfg relayer.Config,
	l2NetworkID uint32,
	bridgeL1 *l1bridge.BridgeL1,
	bridgeL2 *l2bridge.BridgeL2,
) *relayer.Relayer {
	logger := log.WithFields("module", bridgecommon.RELAYER)
	if !cfg.Enabled {
		logger.Warn("the relayer component was requested but Relayer.Enabled is false")
	}
	r, err := relayer.New(logger, cfg, l2NetworkID, bridgeL1, bridgeL2)
	if err != nil {
		log.Fatalf("error creating the relayer: %s", err)
	}

	return r
}

func createFinalizer(
	cfg finalizer.Config,
	bridgeL1 *l1bridge.BridgeL1,
	commitment *statecommitment.StateCommitment,
) *finalizer.Finalizer {
	logger := log.WithFields("module", bridgecommon.FINALIZER)
	var (
		withdrawals finalizer.WithdrawalFinalizer
		batches     finalizer.BatchFinalizer
	)
	if bridgeL1 != nil {
		withdrawals = bridgeL1
	}
	if commitment != nil {
		batches = commitment
	}

	return finalizer.New(logger, cfg, withdrawals, batches)
}

func createRPC(
	cfg jRPC.Config,
	l2NetworkID uint32,
	bridgeL1 *l1bridge.BridgeL1,
	bridgeL2 *l2bridge.BridgeL2,
	commitment *statecommitment.StateCommitment,
) *jRPC.Server {
	logger := log.WithFields("module", bridgecommon.RPC)
	var (
		l1 rpc.L1Bridger
		l2 rpc.L2Bridger
	)
	if bridgeL1 != nil {
		l1 = bridgeL1
	}
	if bridgeL2 != nil {
		l2 = bridgeL2
	}
	services := []jRPC.Service{
		{
			Name: rpc.BRIDGE,
			Service: rpc.NewBridgeEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				l2NetworkID,
				l1,
				l2,
			),
		},
		{
			Name: rpc.COMMITMENT,
			Service: rpc.NewCommitmentEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				commitment,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}
