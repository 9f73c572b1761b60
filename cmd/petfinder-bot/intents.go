package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
)

var intentsCmd = &cobra.Command{
	Use:   "intents",
	Short: "Print the registered intents and their slot vocabularies",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(context.Background(), cmd)
		if err != nil {
			return err
		}
		defer a.close()

		reg := a.dispatcher.Registry()
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			return reg.Save(out)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reg)
	},
}

func init() {
	rootCmd.AddCommand(intentsCmd)
	intentsCmd.Flags().String("out", "", "Write the registry to this file instead of stdout")
}
