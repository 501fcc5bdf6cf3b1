// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/ledger"
	"github.com/luxfi/curve/pkg/store"
	"github.com/luxfi/geth/common"
	"github.com/spf13/viper"
)

// Keys understood in the config file. Each can also be set through the
// environment as CURVE_<KEY> with dots and dashes replaced by underscores.
const (
	NetworkKey     = "network"
	RPCKey         = "rpc"
	ManagerKey     = "manager"
	OwnerKey       = "owner"
	FromKey        = "from"
	StoreTypeKey   = "store.type"
	StorePathKey   = "store.path"
	PoolsFileKey   = "pools-file"
	LogMaxSizeKey  = "log.max-size"
	LogMaxFilesKey = "log.max-files"
)

var Keys = []string{
	NetworkKey, RPCKey, ManagerKey, OwnerKey, FromKey,
	StoreTypeKey, StorePathKey, PoolsFileKey, LogMaxSizeKey, LogMaxFilesKey,
}

type Config struct {
	v *viper.Viper
}

// New wraps the global viper instance populated by the root command.
func New() *Config {
	return &Config{v: viper.GetViper()}
}

func NewWithViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// SetDefaults installs defaults that depend on the base directory.
func (c *Config) SetDefaults(baseDir string) {
	c.v.SetDefault(StoreTypeKey, store.BadgerType)
	c.v.SetDefault(StorePathKey, filepath.Join(baseDir, constants.StoreDir))
	c.v.SetDefault(LogMaxSizeKey, constants.MaxLogFileSize)
	c.v.SetDefault(LogMaxFilesKey, constants.MaxNumOfLogFiles)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetConfigIntValue(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// SetConfigValue stores key and writes the config file, creating it at
// defaultPath when none was loaded.
func (c *Config) SetConfigValue(key string, value interface{}, defaultPath string) error {
	c.v.Set(key, value)
	if c.ConfigFileExists() {
		return c.v.WriteConfig()
	}
	c.v.SetConfigFile(defaultPath)
	return c.v.WriteConfigAs(defaultPath)
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

// Settings returns the effective value of every known key.
func (c *Config) Settings() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		out[k] = c.v.GetString(k)
	}
	return out
}

func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Address parses an address-valued key. An unset key yields the zero address.
func (c *Config) Address(key string) (common.Address, error) {
	raw := c.v.GetString(key)
	if raw == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%s: invalid address %q", key, raw)
	}
	return common.HexToAddress(raw), nil
}

// Network resolves the network preset and applies an rpc override. An rpc
// without a network name yields an endpoint with no chain id check; neither
// falls back to the local preset.
func (c *Config) Network() (ledger.Network, error) {
	name := c.v.GetString(NetworkKey)
	rpc := c.v.GetString(RPCKey)
	if name == "" && rpc == "" {
		name = constants.DefaultNetwork
	}
	n := ledger.GetNetwork(name)
	switch {
	case n != nil && rpc != "":
		n.RPC = rpc
		return *n, nil
	case n != nil:
		return *n, nil
	case rpc != "":
		return ledger.Network{Name: name, RPC: rpc}, nil
	default:
		return ledger.Network{}, fmt.Errorf("unknown network %q", name)
	}
}
