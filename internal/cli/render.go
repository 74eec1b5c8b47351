package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ircbar/internal/style"
)

func renderCmd(e *env) *cobra.Command {
	var (
		buffer string
		plain  bool
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "render [items...]",
		Short: "Print bar item labels for a buffer",
		Long: "Print one line per item that has something to show. Without item " +
			"names every registered item is rendered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			eng, err := e.startEngine(ctx)
			if err != nil {
				return err
			}

			items := args
			if len(items) == 0 {
				items = eng.Items()
			}
			out := cmd.OutOrStdout()
			renderer := style.NewRenderer(out, style.DefaultTheme(), style.NoColor(plain))

			for _, item := range items {
				label, err := eng.Label(ctx, item, buffer)
				if err != nil {
					return err
				}
				if !label.Present {
					e.logger.Debug().Str("item", item).Str("buffer", buffer).Msg("no output")
					continue
				}
				text := renderer.Render(label.Text)
				if raw {
					text = fmt.Sprintf("%q", label.Text)
				}
				fmt.Fprintf(out, "%s\t%s\n", item, text)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&buffer, "buffer", "b", "", "buffer name, full (irc.libera.#go) or short")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	cmd.Flags().BoolVar(&raw, "raw", false, "print labels with style markers quoted")
	return cmd
}
