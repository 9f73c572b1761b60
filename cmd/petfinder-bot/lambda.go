package main

import (
	"context"

	"petfinder-bot/internal/dialog"
	"petfinder-bot/internal/models"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/spf13/cobra"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run as an AWS Lambda function (default)",
	RunE:  runLambda,
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}

func runLambda(cmd *cobra.Command, args []string) error {
	a, err := newApp(context.Background(), cmd)
	if err != nil {
		return err
	}

	// lambda.Start never returns; flush on SIGTERM instead.
	lambda.StartWithOptions(lambdaHandler(a.dispatcher), lambda.WithEnableSIGTERM(a.close))
	return nil
}

// lambdaHandler adapts the dispatcher to the aws-lambda-go handler shape.
func lambdaHandler(d *dialog.Dispatcher) func(context.Context, *models.DialogRequest) (*models.Response, error) {
	return func(ctx context.Context, event *models.DialogRequest) (*models.Response, error) {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			ctx = dialog.WithRequestID(ctx, lc.AwsRequestID)
		}
		return d.HandleRequest(ctx, event)
	}
}
