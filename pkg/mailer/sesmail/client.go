// Package sesmail provides a mailer.Client backed by Amazon SES (API v2).
package sesmail

import (
	"context"
	"fmt"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

const charset = "UTF-8"

// API is the subset of *sesv2.Client used by Client.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Options configures the SES client. Empty credentials fall back to the
// default AWS credential chain (environment, shared config, instance role).
type Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Client sends emails through SES.
type Client struct {
	api    API
	sender domain.SubscriberEmail
}

// New loads the AWS configuration and builds an SES client.
func New(ctx context.Context, options Options, sender domain.SubscriberEmail) (*Client, error) {
	loaders := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(options.Region)}
	if options.AccessKeyID != "" && options.SecretAccessKey != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKeyID, options.SecretAccessKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return NewWithAPI(sesv2.NewFromConfig(cfg), sender), nil
}

// NewWithAPI wraps an existing SES API implementation.
func NewWithAPI(api API, sender domain.SubscriberEmail) *Client {
	return &Client{api: api, sender: sender}
}

func (c *Client) Send(ctx context.Context, email mailer.Email) error {
	out, err := c.api.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.sender.String()),
		Destination:      &types.Destination{ToAddresses: []string{email.To.String()}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(email.HTMLBody), Charset: aws.String(charset)},
					Text: &types.Content{Data: aws.String(email.TextBody), Charset: aws.String(charset)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("could not send email via ses: %w", err)
	}

	logger.Debug(ctx, "email accepted by ses", zap.String("messageId", aws.ToString(out.MessageId)))

	return nil
}

var _ mailer.Client = (*Client)(nil)
