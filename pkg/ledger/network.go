// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"sort"
	"strings"
)

// Network is an RPC endpoint and the chain id it must report.
type Network struct {
	Name    string
	ChainID int64
	RPC     string
}

var (
	LuxMainnet = Network{Name: "Lux Mainnet", ChainID: 96369, RPC: "http://localhost:8546"}
	LuxTestnet = Network{Name: "Lux Testnet", ChainID: 96368, RPC: "http://localhost:8547"}
	ZooMainnet = Network{Name: "Zoo Mainnet", ChainID: 200200, RPC: "http://localhost:8545"}
	Local      = Network{Name: "Local", ChainID: 1337, RPC: "http://127.0.0.1:9650/ext/bc/C/rpc"}

	NetworksByName = map[string]*Network{
		"lux":         &LuxMainnet,
		"lux-mainnet": &LuxMainnet,
		"lux-testnet": &LuxTestnet,
		"testnet":     &LuxTestnet,
		"zoo":         &ZooMainnet,
		"zoo-mainnet": &ZooMainnet,
		"local":       &Local,
	}
)

// GetNetwork returns a copy of the named preset, or nil.
func GetNetwork(name string) *Network {
	n, ok := NetworksByName[strings.ToLower(name)]
	if !ok {
		return nil
	}
	cp := *n
	return &cp
}

// NetworkNames lists the accepted preset names.
func NetworkNames() []string {
	names := make([]string, 0, len(NetworksByName))
	for name := range NetworksByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
