// Package cli wires the cobra command tree over the application container.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/calcagent/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "calcagent [question]",
		Short: "Natural-language calculator agent",
		Long:  "calcagent answers short math questions phrased in plain English,\nlike \"What's 25 + 17?\" or \"square root of 144\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runAsk(container, cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAskCommand(container))
	root.AddCommand(newReplCommand(container))
	root.AddCommand(newServeCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	return root, nil
}

func newAskCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(container, cmd, args)
		},
	}
}

func runAsk(container *app.Container, cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	fmt.Fprintln(cmd.OutOrStdout(), container.Agent.ProcessQuery(question))
	return nil
}
