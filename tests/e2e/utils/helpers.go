// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"github.com/luxfi/curve/pkg/config"
	"github.com/luxfi/curve/tests/e2e/commands"
)

// SetupStaticHost creates a home directory whose config points at the pools
// fixture, with Owner as strategy owner and Manager as pool state manager.
func SetupStaticHost() string {
	dir := SetupHome()
	commands.SetConfig(config.OwnerKey, Owner)
	commands.SetConfig(config.ManagerKey, Manager)
	commands.SetConfig(config.PoolsFileKey, WritePoolsFile(dir))
	return dir
}
