package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ircbar/internal/relay"
)

func relayCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Query relay clients",
	}
	cmd.AddCommand(relayCountCmd(e), relayListCmd(e))
	return cmd
}

func relayCountCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "count [status]",
		Short:     "Print the number of relay clients, optionally with one status",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: relay.StatusNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			eng, err := e.startEngine(ctx)
			if err != nil {
				return err
			}
			var filter string
			if len(args) == 1 {
				filter = args[0]
			}
			n, err := eng.Info(ctx, relay.InfoClientCount, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func relayListCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list [id]",
		Short: "Print relay clients, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			eng, err := e.startEngine(ctx)
			if err != nil {
				return err
			}
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			items, err := eng.Infolist(ctx, relay.InfolistRelay, id, "")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(items); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return cmd
}
