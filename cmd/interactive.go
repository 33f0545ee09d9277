package cmd

import (
	"github.com/bnema/termfolio/internal/adapters/render/tui"
	"github.com/bnema/termfolio/internal/domain"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, state *app) error {
	return tui.Run(cmd.Context(), state.load, tui.Options{
		BootDelay: state.cfg.Boot.Delay,
		Animate:   state.cfg.Reveal.Enabled,
		Terminal:  state.terminalOptions(),
		Logger:    state.logger.Logger,
	}, cmd.InOrStdin(), cmd.OutOrStdout())
}

// loadContent shows a spinner on stderr while a remote document downloads.
// Machine-readable output skips it.
func loadContent(cmd *cobra.Command, state *app, quiet bool) (domain.ContentDocument, error) {
	ctx := cmd.Context()
	if !state.remote || quiet {
		return state.load(ctx)
	}

	return tui.Load(ctx, state.load, cmd.ErrOrStderr())
}
