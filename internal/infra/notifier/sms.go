package notifier

import (
	"context"

	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMSSender delivers transactional text messages straight to phone numbers.
type SMSSender struct {
	client   SNSPublisher
	senderID string
}

func NewSMSSender(ctx context.Context, cfg config.NotifyConfig) (*SMSSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load aws config")
	}
	return NewSMSSenderWithClient(sns.NewFromConfig(awsCfg), cfg.SMSSenderID), nil
}

func NewSMSSenderWithClient(client SNSPublisher, senderID string) *SMSSender {
	return &SMSSender{client: client, senderID: senderID}
}

func (s *SMSSender) SendSMS(ctx context.Context, to, text string) error {
	if to == "" {
		return errs.New("sms recipient is empty")
	}
	in := &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(text),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {DataType: aws.String("String"), StringValue: aws.String("Transactional")},
		},
	}
	if s.senderID != "" {
		in.MessageAttributes["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}
	if _, err := s.client.Publish(ctx, in); err != nil {
		return errs.Wrap(err, "failed to publish sms")
	}
	return nil
}
