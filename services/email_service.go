package services

import (
	"fmt"
	"sync"
	"time"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOTPEmail delivers a one-time verification code to a freshly registered
// or re-verifying user
func (es *EmailService) SendOTPEmail(user *tables.User, code string, expiry time.Duration) error {
	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1a1a2e; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.code { font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; padding: 20px; background-color: #fff; border: 1px solid #ddd; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Verify your email address</h1>
				</div>
				<div class="content">
					<p>Hi %s,</p>
					<p>Use the code below to finish setting up your account:</p>
					<div class="code">%s</div>
					<p>This code expires in %.0f minutes.</p>
					<p>If you didn't create an account, you can safely ignore this email.</p>
				</div>
				<div class="footer">
					<p>%s &middot; Need help? Contact %s</p>
				</div>
			</div>
		</body>
		</html>
	`, user.Username, code, expiry.Minutes(), es.cfg.Server.AppName, es.cfg.Email.SupportEmail)

	if err := es.SendEmail([]string{user.Email}, "Your verification code", emailBody); err != nil {
		return err
	}

	es.logger.Debug("OTP email sent", gecho.Field("user_id", user.Id))
	return nil
}

// SendSellerNotificationEmail mirrors an in-app notification to the store
// owner's inbox. Failures are logged, not surfaced: email mirroring is
// best-effort and must not fail the triggering request.
func (es *EmailService) SendSellerNotificationEmail(owner *tables.User, store *tables.Store, notification *tables.Notification) {
	storeLink := fmt.Sprintf("%s/dashboard", es.cfg.Server.FrontendURL)

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1a1a2e; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.button { display: inline-block; padding: 15px 30px; background-color: #1a1a2e; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>%s</h1>
				</div>
				<div class="content">
					<p>%s</p>
					<p style="text-align: center;">
						<a href="%s" class="button">Open your dashboard</a>
					</p>
				</div>
			</div>
		</body>
		</html>
	`, store.BrandName, notification.Message, storeLink)

	subject := fmt.Sprintf("New activity on %s", store.BrandName)
	if err := es.SendEmail([]string{owner.Email}, subject, emailBody); err != nil {
		es.logger.Warn("Failed to mirror notification to email",
			gecho.Field("store_id", store.Id),
			gecho.Field("error", err),
		)
	}
}
