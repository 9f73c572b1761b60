// internal/common/aws/sns.go
package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"petfinder-bot/internal/common/errors"
	"petfinder-bot/internal/models"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSService is the subset of the SNS API used here.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// NewSNSClient loads the default AWS credential chain for region.
func NewSNSClient(ctx context.Context, region string) (*sns.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return sns.NewFromConfig(cfg), nil
}

// MatchPublisher publishes fulfilled pet matches to an SNS topic.
type MatchPublisher struct {
	client   SNSService
	topicARN string
}

func NewMatchPublisher(client SNSService, topicARN string) *MatchPublisher {
	return &MatchPublisher{client: client, topicARN: topicARN}
}

func (p *MatchPublisher) Publish(ctx context.Context, event models.MatchEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.NewNotificationSendFailedError("sns", fmt.Errorf("marshal event: %w", err))
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: awssdk.String(p.topicARN),
		Message:  awssdk.String(string(body)),
		Subject:  awssdk.String("Pet match"),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"intent": {
				DataType:    awssdk.String("String"),
				StringValue: awssdk.String(event.IntentName),
			},
			"animal": {
				DataType:    awssdk.String("String"),
				StringValue: awssdk.String(attributeValue(event.Criteria.Animal)),
			},
		},
	})
	if err != nil {
		return errors.NewNotificationSendFailedError("sns", err)
	}
	return nil
}

// SNS rejects empty string attribute values.
func attributeValue(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
