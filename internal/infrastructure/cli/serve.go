package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/calcagent/internal/app"
	"github.com/doeshing/calcagent/internal/infrastructure/httpapi"
)

func newServeCommand(container *app.Container) *cobra.Command {
	var address string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" {
				address = container.Config.Server.Address
			}
			if port == 0 {
				port = container.Config.Server.Port
			}

			server := httpapi.NewServer(address, port, container.Agent, container.History, container.Logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Calculator Agent listening on http://%s:%d\n", address, port)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start(ctx)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Bind address (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config)")
	return cmd
}
