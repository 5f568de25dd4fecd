package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SignatureAttribute carries the provider's signature header alongside the
// raw body through the queue, so the consumer can verify it unchanged.
const SignatureAttribute = "WebhookSignature"

// SQSClient publishes raw webhook deliveries to the processing queue.
type SQSClient struct {
	svc      *sqs.Client
	queueURL string
}

// NewSQSClient creates an SQS client bound to one queue URL.
func NewSQSClient(ctx context.Context, queueURL string) (*SQSClient, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("sqs queue URL is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SQSClient{
		svc:      sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// SendWebhookMessage enqueues one raw webhook delivery. The body is passed
// through byte for byte; the signature travels as a message attribute.
func (c *SQSClient) SendWebhookMessage(ctx context.Context, body []byte, signature string) (string, error) {
	out, err := c.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(c.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			SignatureAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(signature),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send webhook message: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
