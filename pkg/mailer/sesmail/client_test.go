package sesmail_test

import (
	"context"
	"errors"
	"newsletter/pkg/domain"
	"newsletter/pkg/mailer"
	"newsletter/pkg/mailer/sesmail"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}

	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestClient_Send(t *testing.T) {
	api := &fakeSES{}
	c := sesmail.NewWithAPI(api, "newsletter@example.com")

	err := c.Send(context.Background(), mailer.Email{
		To:       domain.SubscriberEmail("ursula_le_guin@gmail.com"),
		Subject:  "Issue #1",
		HTMLBody: "<p>Hello</p>",
		TextBody: "Hello",
	})
	require.NoError(t, err)

	require.Equal(t, "newsletter@example.com", aws.ToString(api.input.FromEmailAddress))
	require.Equal(t, []string{"ursula_le_guin@gmail.com"}, api.input.Destination.ToAddresses)
	msg := api.input.Content.Simple
	require.Equal(t, "Issue #1", aws.ToString(msg.Subject.Data))
	require.Equal(t, "<p>Hello</p>", aws.ToString(msg.Body.Html.Data))
	require.Equal(t, "Hello", aws.ToString(msg.Body.Text.Data))
}

func TestClient_Send_error(t *testing.T) {
	sesErr := errors.New("MessageRejected")
	c := sesmail.NewWithAPI(&fakeSES{err: sesErr}, "newsletter@example.com")

	err := c.Send(context.Background(), mailer.Email{To: "a@example.com"})
	require.ErrorIs(t, err, sesErr)
}
