// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/luxfi/curve/cmd/admincmd"
	"github.com/luxfi/curve/cmd/configcmd"
	"github.com/luxfi/curve/cmd/poolcmd"
	"github.com/luxfi/curve/pkg/application"
	"github.com/luxfi/curve/pkg/config"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app *application.Curve

	logLevel string
	Version  = "0.3.0"
	cfgFile  string
)

// flag name -> config key
var configFlags = map[string]string{
	"network":    config.NetworkKey,
	"rpc":        config.RPCKey,
	"manager":    config.ManagerKey,
	"owner":      config.OwnerKey,
	"from":       config.FromKey,
	"store":      config.StoreTypeKey,
	"store-path": config.StorePathKey,
	"pools-file": config.PoolsFileKey,
}

func NewRootCmd() *cobra.Command {
	if app == nil {
		app = application.New()
	}
	rootCmd := &cobra.Command{
		Use: "curve",
		Long: `Curve - sigmoid bonding curve pricing for token launch pools.

Prices rise along a logistic curve from an initial price toward a ceiling as
circulating supply grows. Curve parameters are stored per pool; supply and
pool state come from an EVM node or a static pools file.

COMMAND OVERVIEW:

  init        Register the curve of a pool
  info        Show stored curve parameters
  price       Current spot price of a pool
  schedule    Price table across the supply range
  quote       Price buys and sells
  simulate    Walk a fresh curve through a series of buys
  owner       Show strategy administration
  config      CLI configuration

QUICK START:

  curve simulate --initial-price 1 --total-supply 1000000 --amount 50000

  curve config set owner 0x...
  curve init 0x01 --initial-price 1 --total-supply 1000000 --pools-file pools.yaml
  curve quote buy 0x01 --amount 100 --pools-file pools.yaml`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.curve/config.yaml)")
	pf.StringVar(&logLevel, "log-level", "WARN", "log level for the application")
	pf.Bool("verbose", false, "Show verbose output (info level logs)")
	pf.Bool("debug", false, "Show debug output (debug level logs)")
	pf.Bool("quiet", false, "Show only errors (quiet mode)")
	pf.Bool("events", false, "Print the events emitted by the command")
	pf.String("network", "", "network preset: "+strings.Join(ledgerNetworkNames(), ", "))
	pf.String("rpc", "", "custom RPC endpoint (overrides the network default)")
	pf.String("manager", "", "pool state manager address")
	pf.String("owner", "", "strategy owner recorded on first use")
	pf.String("from", "", "acting address for owner-only commands")
	pf.String("store", "", "parameter store backend: badgerdb or memdb")
	pf.String("store-path", "", "parameter store directory")
	pf.String("pools-file", "", "static YAML pools file used instead of RPC")
	bindFlags(pf)

	rootCmd.AddCommand(poolcmd.NewCmds(app)...)
	rootCmd.AddCommand(admincmd.NewCmds(app)...)
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func bindFlags(pf *pflag.FlagSet) {
	for name, key := range configFlags {
		_ = viper.BindPFlag(key, pf.Lookup(name))
	}
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	conf := config.New()
	conf.SetDefaults(baseDir)
	if err := initConfig(baseDir); err != nil {
		return err
	}

	log, err := setupLogging(cmd, baseDir, conf)
	if err != nil {
		return err
	}
	ux.Logger = ux.New(log, cmd.OutOrStdout())
	app.Setup(baseDir, log, conf)

	if used := viper.ConfigFileUsed(); used != "" {
		app.Log.Debug("using config file", zap.String("config-file", used))
	}
	return nil
}

func closeApp() error {
	err := app.Close()
	_ = app.Log.Sync()
	return err
}

func setupEnv() (string, error) {
	baseDir := os.Getenv(constants.EnvHome)
	if baseDir == "" {
		usr, err := user.Current()
		if err != nil {
			// no logger here yet
			fmt.Printf("unable to get system user %s\n", err)
			return "", err
		}
		baseDir = filepath.Join(usr.HomeDir, constants.BaseDirName)
	}

	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

// displayLevel resolves the console level from flags, defaulting to WARN.
func displayLevel(cmd *cobra.Command) (zapcore.Level, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("debug"):
		return zapcore.DebugLevel, nil
	case flags.Changed("verbose"):
		return zapcore.InfoLevel, nil
	case flags.Changed("quiet"):
		return zapcore.ErrorLevel, nil
	}
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	return level, nil
}

// setupLogging writes human-readable logs to stderr at the display level and
// JSON logs at info or below to a rotated file under the base directory.
func setupLogging(cmd *cobra.Command, baseDir string, conf *config.Config) (*zap.Logger, error) {
	level, err := displayLevel(cmd)
	if err != nil {
		return nil, err
	}
	fileLevel := zapcore.InfoLevel
	if level < fileLevel {
		fileLevel = level
	}

	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    conf.GetConfigIntValue(config.LogMaxSizeKey),
		MaxBackups: conf.GetConfigIntValue(config.LogMaxFilesKey),
		MaxAge:     constants.RetainOldFiles,
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotator), fileLevel),
	)
	return zap.New(core).Named("curve"), nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(baseDir string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(baseDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	// CURVE_STORE_PATH -> store.path, CURVE_POOLS_FILE -> pools-file
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			// No config file is normal
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Run executes the CLI with args, writing command output to out. The app is
// closed even when the command fails.
func Run(args []string, out io.Writer) error {
	viper.Reset()
	app = application.New()
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	err := rootCmd.Execute()
	return errors.Join(err, closeApp())
}

// Execute runs the CLI against the process arguments.
// This is called by main.main().
func Execute() {
	if err := Run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
