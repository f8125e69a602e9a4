package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/internal/metrics"
)

func newServeCmd(opts *options) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schedulers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts)
		},
	}
	serveCmd.Flags().IntVar(&opts.port, "port", 9095, "HTTP port")
	return serveCmd
}

func serve(ctx context.Context, opts *options) error {
	handler := api.NewSchedulerHandlerImpl(opts.config, metrics.New())
	app := api.NewApp(handler)

	go func() {
		<-ctx.Done()
		logrus.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%d", opts.port)
	logrus.Infof("listening on %s", addr)
	return app.Listen(addr)
}
