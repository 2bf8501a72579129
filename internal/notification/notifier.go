package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"go-crm/internal/shared/apperror"

	"go.uber.org/zap"
)

var ErrEmailDeliveryFailed = apperror.New(
	"EMAIL_DELIVERY_FAILED",
	"Failed to send email",
	http.StatusInternalServerError,
)

type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

// Sender delivers one rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type InviteNewUser struct {
	To               string
	Name             string
	OrganizationName string
	Password         string
}

type SaleRecorded struct {
	To               []string
	OrganizationName string
	SaleNumber       string
	LeadName         string
	ProductName      string
	Quantity         int
	TotalPrice       float64
}

//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	SendVerification(ctx context.Context, to, name, token string) error
	SendInviteNewUser(ctx context.Context, invite InviteNewUser) error
	SendInviteExistingUser(ctx context.Context, to, name, organizationName string) error
	SendPasswordReset(ctx context.Context, to, name, userID, token string) error
	SendSaleRecorded(ctx context.Context, sale SaleRecorded) error
}

type notifier struct {
	sender  Sender
	baseURL string
	logger  *zap.Logger
}

func NewNotifier(sender Sender, baseURL string, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification.notifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.notifier")
	}
	return &notifier{
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  l,
	}
}

func (n *notifier) SendVerification(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/api/v1/verify?token=%s", n.baseURL, url.QueryEscape(token))
	return n.send(ctx, "verification", []string{to}, "Verify your email address", verificationTmpl, map[string]any{
		"Name": name,
		"Link": link,
	})
}

func (n *notifier) SendInviteNewUser(ctx context.Context, invite InviteNewUser) error {
	return n.send(ctx, "invite_new_user", []string{invite.To}, "You have been invited to "+invite.OrganizationName, inviteNewUserTmpl, map[string]any{
		"Name":             invite.Name,
		"Email":            invite.To,
		"OrganizationName": invite.OrganizationName,
		"Password":         invite.Password,
		"LoginURL":         n.baseURL + "/login",
	})
}

func (n *notifier) SendInviteExistingUser(ctx context.Context, to, name, organizationName string) error {
	return n.send(ctx, "invite_existing_user", []string{to}, "You have been added to "+organizationName, inviteExistingUserTmpl, map[string]any{
		"Name":             name,
		"OrganizationName": organizationName,
		"LoginURL":         n.baseURL + "/login",
	})
}

func (n *notifier) SendPasswordReset(ctx context.Context, to, name, userID, token string) error {
	link := fmt.Sprintf("%s/reset-password/%s?token=%s", n.baseURL, url.PathEscape(userID), url.QueryEscape(token))
	return n.send(ctx, "password_reset", []string{to}, "Reset your password", passwordResetTmpl, map[string]any{
		"Name": name,
		"Link": link,
	})
}

func (n *notifier) SendSaleRecorded(ctx context.Context, sale SaleRecorded) error {
	if len(sale.To) == 0 {
		return nil
	}
	return n.send(ctx, "sale_recorded", sale.To, "New sale "+sale.SaleNumber, saleRecordedTmpl, map[string]any{
		"OrganizationName": sale.OrganizationName,
		"SaleNumber":       sale.SaleNumber,
		"LeadName":         sale.LeadName,
		"ProductName":      sale.ProductName,
		"Quantity":         sale.Quantity,
		"TotalPrice":       fmt.Sprintf("%.2f", sale.TotalPrice),
	})
}

func (n *notifier) send(ctx context.Context, kind string, to []string, subject string, tmpl *template.Template, data map[string]any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		n.logger.Error("render email failed", zap.String("kind", kind), zap.Error(err))
		return ErrEmailDeliveryFailed.WithCause(err)
	}

	if err := n.sender.Send(ctx, Message{To: to, Subject: subject, HTMLBody: body.String()}); err != nil {
		n.logger.Error("send email failed",
			zap.String("kind", kind),
			zap.Strings("to", to),
			zap.Error(err),
		)
		return ErrEmailDeliveryFailed.WithCause(err)
	}

	n.logger.Debug("email sent", zap.String("kind", kind), zap.Strings("to", to))
	return nil
}
