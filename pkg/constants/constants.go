// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".curve"
	LogDir      = "logs"
	LogFileName = "curve.log"
	StoreDir    = "store"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "yaml"
	EnvPrefix             = "CURVE"
	EnvHome               = "CURVE_HOME"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	RequestTimeout = 30 * time.Second

	DefaultNetwork = "local"
	DefaultPlaces  = 6
	SchedulePoints = 11
)
