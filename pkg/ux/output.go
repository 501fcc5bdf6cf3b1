// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Logger *UserLog

// UserLog separates command output, written to writer, from diagnostics,
// which go to the structured log.
type UserLog struct {
	log    *zap.Logger
	writer io.Writer
}

func New(log *zap.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserLog{log: log, writer: userwriter}
}

func (ul *UserLog) Writer() io.Writer { return ul.writer }

// PrintToUser prints msg to the user writer only.
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	_, _ = fmt.Fprintln(ul.writer, fmt.Sprintf(msg, args...))
}

func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.log.Info(fmt.Sprintf(msg, args...))
}

func (ul *UserLog) PrintLineSeparator(msg ...string) {
	separator := "=========================================="
	if len(msg) > 0 && msg[0] != "" {
		separator = msg[0]
	}
	_, _ = fmt.Fprintln(ul.writer, separator)
}

func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	formatted := fmt.Sprintf("✓ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formatted)
	ul.log.Info(formatted)
}

func groupThousands(n uint64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatUnits renders an integer count of base units with grouped digits.
func FormatUnits(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	if !v.IsUint64() {
		return v.Dec()
	}
	return groupThousands(v.Uint64())
}

// FormatAmount renders an 18-decimal value rounded to places, grouping the
// integer digits in thousands.
func FormatAmount(v *uint256.Int, places int32) string {
	s := fixedpoint.FormatFixed(v, places)
	whole, frac, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return s
	}
	grouped := groupThousands(n)
	if hasFrac {
		return grouped + "." + frac
	}
	return grouped
}
