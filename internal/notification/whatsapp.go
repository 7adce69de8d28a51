package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider delivers WhatsApp messages through the Twilio Messages API.
type TwilioProvider struct {
	config WhatsAppConfig
	client *twilio.RestClient
}

// NewTwilioProvider creates a new TwilioProvider with the given credentials.
func NewTwilioProvider(config WhatsAppConfig) *TwilioProvider {
	return &TwilioProvider{
		config: config,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AccountSID,
			Password: config.AuthToken,
		}),
	}
}

// NewTwilioMessenger is a MessengerFactory backed by TwilioProvider.
func NewTwilioMessenger(config WhatsAppConfig) Messenger {
	return NewTwilioProvider(config)
}

// Name returns the provider identifier.
func (p *TwilioProvider) Name() string { return "twilio" }

// Send creates a WhatsApp message for to and returns its SID.
// The Twilio client has no context support, so ctx is only checked before
// the call is made.
func (p *TwilioProvider) Send(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(p.config.FromNumber)
	params.SetBody(body)

	resp, err := p.client.Api.CreateMessage(params)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Message: twilioMessage(err), Err: err}
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

// twilioMessage extracts the human-readable message from a Twilio API error.
func twilioMessage(err error) string {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		return restErr.Message
	}
	return err.Error()
}

// ProviderError is returned when a delivery provider rejects a send.
type ProviderError struct {
	Provider string
	// Message is the provider's own description of the failure, if any.
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
