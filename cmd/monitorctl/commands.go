package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the attributes of every registered section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Format = format
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			return a.withSections(func() error {
				return writeEntries(cmd.OutOrStdout(), a.cfg.Format, a.discovery.Dump())
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var events bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the identifiers of registered sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSections(func() error {
				out := cmd.OutOrStdout()
				for _, id := range a.discovery.List() {
					if _, err := fmt.Fprintln(out, id); err != nil {
						return err
					}
				}
				if events {
					return writeEvents(out, a.discovery.Events())
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&events, "events", false, "also print the registration journal")
	return cmd
}
