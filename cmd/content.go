package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/termfolio/internal/adapters/export"
	"github.com/bnema/termfolio/internal/domain"
	"github.com/spf13/cobra"
)

func newContentCmd(state *app) *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the terminal content document",
	}

	contentCmd.AddCommand(
		newContentShowCmd(state),
		newContentCheckCmd(state),
	)

	return contentCmd
}

func newContentShowCmd(state *app) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded document as json, toml, yaml or markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			doc, err := loadContent(cmd, state, output == "")
			if err != nil {
				return err
			}

			data, err := export.Encode(doc, parsed)
			if err != nil {
				return err
			}

			if output != "" {
				if err := export.WriteFile(output, data); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s content to %s\n", parsed, output)
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "output format: json, toml, yaml or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

type sectionCheck struct {
	Section domain.SectionName `json:"section"`
	Present bool               `json:"present"`
	Reason  string             `json:"reason,omitempty"`
}

func newContentCheckCmd(state *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which content sections loaded; fails when any is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := loadContent(cmd, state, asJSON)
			if err != nil {
				return err
			}

			statuses := doc.Statuses()
			if asJSON {
				checks := make([]sectionCheck, 0, len(statuses))
				for _, status := range statuses {
					check := sectionCheck{Section: status.Name, Present: status.Present}
					if status.Reason != nil {
						check.Reason = status.Reason.Error()
					}
					checks = append(checks, check)
				}
				if err := writeJSON(cmd.OutOrStdout(), checks); err != nil {
					return err
				}
			} else {
				for _, status := range statuses {
					line := fmt.Sprintf("ok       %s", status.Name)
					if !status.Present {
						line = fmt.Sprintf("missing  %s: %v", status.Name, status.Reason)
					}
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
						return err
					}
				}
			}

			if missing := doc.Missing(); len(missing) > 0 {
				names := make([]string, 0, len(missing))
				for _, name := range missing {
					names = append(names, string(name))
				}
				return fmt.Errorf("%w: %s", domain.ErrSectionMissing, strings.Join(names, ", "))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print section statuses as JSON")

	return cmd
}
