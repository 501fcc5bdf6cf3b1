// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/luxfi/curve/pkg/config"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/events"
	"github.com/luxfi/curve/pkg/ledger"
	"github.com/luxfi/curve/pkg/store"
	"github.com/luxfi/geth/common"
	"go.uber.org/zap"
)

// Curve carries the process-wide state shared by commands.
type Curve struct {
	Log     *zap.Logger
	Conf    *config.Config
	Events  *events.Recorder
	baseDir string

	closers []func() error
}

func New() *Curve {
	return &Curve{Log: zap.NewNop(), Events: &events.Recorder{}}
}

func (app *Curve) Setup(baseDir string, log *zap.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
}

func (app *Curve) GetBaseDir() string {
	return app.baseDir
}

func (app *Curve) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Curve) GetStoreDir() string {
	return filepath.Join(app.baseDir, constants.StoreDir)
}

// GetConfigPath is the loaded config file, or the default location when
// none was found.
func (app *Curve) GetConfigPath() string {
	if p := app.Conf.GetConfigPath(); p != "" {
		return p
	}
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

// Caller is the acting address for owner-only commands: from, else owner.
func (app *Curve) Caller() (common.Address, error) {
	for _, key := range []string{config.FromKey, config.OwnerKey} {
		addr, err := app.Conf.Address(key)
		if err != nil {
			return common.Address{}, err
		}
		if addr != (common.Address{}) {
			return addr, nil
		}
	}
	return common.Address{}, constants.ErrNoCaller
}

// Sink logs every event and records it for display.
func (app *Curve) Sink() events.Sink {
	return events.Multi{events.NewLogSink(app.Log.Named("events")), app.Events}
}

// OpenStore opens the configured parameter store. It is closed by Close.
func (app *Curve) OpenStore() (*store.DBStore, error) {
	s, err := store.Open(
		app.Conf.GetConfigStringValue(config.StoreTypeKey),
		app.Conf.GetConfigStringValue(config.StorePathKey),
	)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, s.Close)
	return s, nil
}

// Host is the pair of collaborators that answer supply and pool queries.
type Host struct {
	Ledger   curve.TokenLedger
	Registry curve.PoolRegistry
	Static   *ledger.Static
}

// OpenHost returns the static fixture when pools-file is set and an RPC
// client otherwise.
func (app *Curve) OpenHost(ctx context.Context) (Host, error) {
	if path := app.Conf.GetConfigStringValue(config.PoolsFileKey); path != "" {
		s, err := ledger.LoadStatic(path)
		if err != nil {
			return Host{}, err
		}
		app.Log.Debug("using static pools file", zap.String("path", path))
		return Host{Ledger: s, Registry: s, Static: s}, nil
	}

	network, err := app.Conf.Network()
	if err != nil {
		return Host{}, err
	}
	if network.RPC == "" {
		return Host{}, constants.ErrNoEndpoint
	}
	manager, err := app.Conf.Address(config.ManagerKey)
	if err != nil {
		return Host{}, err
	}
	if manager == (common.Address{}) {
		return Host{}, constants.ErrNoManager
	}
	dialCtx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	client, err := ledger.Dial(dialCtx, network, manager)
	if err != nil {
		return Host{}, err
	}
	app.closers = append(app.closers, func() error {
		client.Close()
		return nil
	})
	app.Log.Debug("connected",
		zap.String("network", network.Name),
		zap.String("rpc", network.RPC),
		zap.Int64("chain-id", network.ChainID),
	)
	return Host{Ledger: client, Registry: client}, nil
}

// Strategy assembles a curve strategy from the configured store and host.
func (app *Curve) Strategy(ctx context.Context, sink events.Sink) (*curve.Strategy, Host, error) {
	db, err := app.OpenStore()
	if err != nil {
		return nil, Host{}, err
	}
	host, err := app.OpenHost(ctx)
	if err != nil {
		return nil, Host{}, err
	}
	owner, err := app.Conf.Address(config.OwnerKey)
	if err != nil {
		return nil, Host{}, err
	}
	manager, err := app.Conf.Address(config.ManagerKey)
	if err != nil {
		return nil, Host{}, err
	}
	s, err := curve.New(curve.Config{
		Store:    db,
		Ledger:   host.Ledger,
		Registry: host.Registry,
		Events:   sink,
		Log:      app.Log.Named("curve"),
	}, owner, manager)
	if err != nil {
		return nil, Host{}, err
	}
	return s, host, nil
}

// Close releases everything opened through the app, newest first.
func (app *Curve) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	if len(errs) > 0 {
		return fmt.Errorf("closing: %w", errors.Join(errs...))
	}
	return nil
}
