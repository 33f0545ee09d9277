package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/termfolio/internal/adapters/render/tui"
	"github.com/bnema/termfolio/internal/application"
	"github.com/bnema/termfolio/internal/domain"
	"github.com/spf13/cobra"
)

const bootEntryID = "boot"

type execReport struct {
	Missing []domain.SectionName  `json:"missing,omitempty"`
	Boot    *domain.Output        `json:"boot,omitempty"`
	Entries []domain.SessionEntry `json:"entries"`
}

func newExecCmd(state *app) *cobra.Command {
	var asJSON bool
	var animate bool
	var withBoot bool

	cmd := &cobra.Command{
		Use:   "exec [input...]",
		Short: "Submit inputs to a booted terminal and print the session log",
		Long: "exec skips the boot delay, submits every argument in order as if typed at the prompt, " +
			"and prints the resulting session log.",
		Example: "  termfolio exec help skills\n  termfolio exec --json projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadContent(cmd, state, asJSON)
			if err != nil {
				return err
			}

			term := application.NewTerminal(doc, state.terminalOptions())
			bootScreen := term.BootScreen()
			term.CompleteBoot()

			for _, input := range args {
				if _, err := term.Submit(input); err != nil {
					return fmt.Errorf("submit %q: %w", input, err)
				}
			}

			entries := term.Entries()
			out := cmd.OutOrStdout()

			if asJSON {
				report := execReport{Missing: doc.Missing(), Entries: entries}
				if withBoot {
					report.Boot = &bootScreen
				}
				return writeJSON(out, report)
			}

			if withBoot {
				entries = append([]domain.SessionEntry{{ID: bootEntryID, Output: bootScreen}}, entries...)
			}

			renderOpts := tui.RenderOptions{Prompt: doc.Meta.Prompt}
			if animate && state.cfg.Reveal.Enabled {
				return tui.Play(cmd.Context(), out, state.clock, entries, renderOpts)
			}

			_, err = fmt.Fprintln(out, tui.Render(entries, nil, renderOpts))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the session log as JSON")
	cmd.Flags().BoolVar(&animate, "animate", false, "type revealed blocks one character at a time")
	cmd.Flags().BoolVar(&withBoot, "boot", false, "print the boot screen first")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
