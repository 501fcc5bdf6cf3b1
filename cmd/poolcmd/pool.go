// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poolcmd

import (
	"context"
	"strings"

	"github.com/luxfi/curve/pkg/application"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/events"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.Curve

// NewCmds returns the pool-level commands, mounted directly on the root.
func NewCmds(injectedApp *application.Curve) []*cobra.Command {
	app = injectedApp
	return []*cobra.Command{
		newInitCmd(),
		newInfoCmd(),
		newPriceCmd(),
		newScheduleCmd(),
		newQuoteCmd(),
		newSimulateCmd(),
	}
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), constants.RequestTimeout)
}

func openStrategy(ctx context.Context) (*curve.Strategy, application.Host, error) {
	return app.Strategy(ctx, app.Sink())
}

// printEvents shows the events recorded during the command when --events is
// set.
func printEvents(cmd *cobra.Command) {
	if on, _ := cmd.Flags().GetBool("events"); !on {
		return
	}
	recorded := app.Events.Events()
	if len(recorded) == 0 {
		return
	}
	ux.Logger.PrintToUser("")
	table := ux.DefaultTable(ux.Logger, "Event", "Topics", "Data")
	for _, e := range recorded {
		topics := make([]string, 0, len(e.Topics))
		for _, t := range e.Topics[1:] {
			topics = append(topics, t.Hex())
		}
		table.AppendCompat([]string{e.Name, strings.Join(topics, "\n"), formatWords(e)})
	}
	_ = table.Render()
}

func formatWords(e events.Event) string {
	words := e.Words()
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = ux.FormatAmount(w, constants.DefaultPlaces)
	}
	return strings.Join(out, "\n")
}
