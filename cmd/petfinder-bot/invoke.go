package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"petfinder-bot/internal/dialog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Process one Lex event from a file and print the response",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("event")
		raw, err := readEvent(path, cmd.InOrStdin())
		if err != nil {
			return err
		}

		a, err := newApp(context.Background(), cmd)
		if err != nil {
			return err
		}
		defer a.close()

		ctx := dialog.WithRequestID(context.Background(), uuid.NewString())
		resp, err := a.dispatcher.HandleEvent(ctx, raw)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
	invokeCmd.Flags().String("event", "-", "Event JSON file, or - for stdin")
}

func readEvent(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}
	return raw, nil
}
