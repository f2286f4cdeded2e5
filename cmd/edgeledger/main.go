// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/edgeai-labs/edgeledger/builtin"
	"github.com/edgeai-labs/edgeledger/genesis"
	"github.com/edgeai-labs/edgeledger/kv"
	"github.com/edgeai-labs/edgeledger/log"
	"github.com/edgeai-labs/edgeledger/metrics"
	"github.com/edgeai-labs/edgeledger/state"
)

var (
	version   string
	gitCommit string
	logger    = log.WithContext("pkg", "main")
)

func fullVersion() string {
	if gitCommit == "" {
		return version + "-dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "edgeledger",
		Usage:     "deterministic subscription and staking ledger",
		Copyright: "2025 EdgeAI Labs",
		Flags: []cli.Flag{
			genesisFlag,
			dataDirFlag,
			cacheFlag,
			verbosityFlag,
			enableMetricsFlag,
			metricsAddrFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	initLogger(ctx)

	genePath := ctx.String(genesisFlag.Name)
	if genePath == "" {
		return fmt.Errorf("--%s required", genesisFlag.Name)
	}
	data, err := os.ReadFile(genePath)
	if err != nil {
		return err
	}
	gene, err := genesis.Parse(data)
	if err != nil {
		return err
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	st := state.New(store)
	populated, err := st.HasRecord(builtin.Config.WithState(st).Address())
	if err != nil {
		return err
	}
	if populated {
		logger.Info("ledger already initialized, skipping genesis")
	} else {
		if err := gene.Build(st); err != nil {
			return err
		}
		if err := st.Commit(); err != nil {
			return err
		}
		logger.Info("ledger initialized from genesis", "path", genePath)
	}

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		srv := &http.Server{
			Addr:    ctx.String(metricsAddrFlag.Name),
			Handler: metrics.HTTPHandler(),
		}
		go func() {
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
		defer srv.Close()
		logger.Info("metrics serving", "addr", srv.Addr)
		<-handleExitSignal()
	}
	logger.Info("exited")
	return nil
}

func openStore(ctx *cli.Context) (kv.GetPutCloser, error) {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		logger.Warn("no data directory, ledger state will not persist")
		return kv.NewMem()
	}
	return kv.New(dataDir, ctx.Int(cacheFlag.Name))
}

func initLogger(ctx *cli.Context) {
	var level slog.Level
	switch v := ctx.Int(verbosityFlag.Name); {
	case v <= 0:
		level = slog.LevelError
	case v == 1:
		level = slog.LevelWarn
	case v <= 3:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	log.SetDefault(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func handleExitSignal() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	return ch
}
