// cmd/petfinder-bot/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "petfinder-bot",
	Short: "Lex fulfillment handler for the PetFinder bot",
	Long: `petfinder-bot validates FindPet slots and looks up adoptable pets on Petfinder.
Without a subcommand it runs as an AWS Lambda function.`,
	SilenceUsage: true,
	RunE:         runLambda,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (defaults to configs/config.yaml)")
}
