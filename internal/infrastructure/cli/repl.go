package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/doeshing/calcagent/internal/app"
)

func newReplCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(container, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runRepl drives the line-based terminal loop: read a question, hand it to
// the agent, print the response, until an exit command or EOF.
func runRepl(container *app.Container, in io.Reader, out io.Writer) error {
	banner := container.Config.Agent.WelcomeBanner && stdinIsTerminal(in)
	if banner {
		fmt.Fprintln(out, container.Agent.Welcome())
		fmt.Fprintln(out)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			// EOF ends the session like an explicit quit.
			fmt.Fprintln(out)
			break
		}
		line := scanner.Text()
		if container.Normalizer.IsExitCommand(line) {
			break
		}
		fmt.Fprintf(out, "Agent: %s\n\n", container.Agent.ProcessQuery(line))
	}

	if banner {
		fmt.Fprintln(out, container.Agent.Goodbye())
	}
	return scanner.Err()
}

// stdinIsTerminal suppresses the banner when input is piped in.
func stdinIsTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
