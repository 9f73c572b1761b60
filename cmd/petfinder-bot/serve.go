package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petfinder-bot/internal/common/config"
	"petfinder-bot/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Lex events over HTTP for local testing",
	Long:  `Starts an HTTP server accepting Lex V1 events on POST /lex, with /health, /intents and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(context.Background(), cmd)
		if err != nil {
			return err
		}
		defer a.close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.cfg.Server.Address
		}

		srv := &http.Server{
			Addr: addr,
			Handler: server.New(server.Config{
				Dispatcher: a.dispatcher,
				Logger:     a.log,
				Version:    a.cfg.App.Version,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			a.log.Info("http server listening", map[string]interface{}{"addr": addr})
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			a.log.Info("shutting down", map[string]interface{}{"signal": sig.String()})

			timeout := config.GetDuration(a.cfg.Server.ShutdownTimeout)
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				a.log.Warn("graceful shutdown did not complete", map[string]interface{}{"error": err.Error()})
				return srv.Close()
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (defaults to server.address)")
}
