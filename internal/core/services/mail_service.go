package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/core/domain"
)

// ReservationSummary is the payload for manager approval notices
type ReservationSummary struct {
	ID      uint
	Date    string
	Details string
}

// Mailer sends account and reservation notifications
type Mailer interface {
	SendActivation(user *models.User) error
	SendReset(user *models.User) error
	NotifyManagerApproved(user *models.User) error
	NotifyAdminsManagerPending(manager *models.User, admins []*models.User) error
	NotifyManagerReservationPending(manager *models.User, reservation ReservationSummary) error
}

// MailService sends notifications over SMTP
type MailService struct {
	cfg     *config.Config
	enabled bool
}

// NewMailService creates a new mail service.
// Delivery is disabled when SMTP_HOST is not configured.
func NewMailService(cfg *config.Config) *MailService {
	return &MailService{
		cfg:     cfg,
		enabled: cfg.SMTP.Host != "",
	}
}

// IsEnabled checks if mail delivery is enabled
func (s *MailService) IsEnabled() bool {
	return s.enabled
}

// send delivers an HTML mail to the recipients
func (s *MailService) send(to []string, subject, body string) error {
	if !s.enabled {
		return domain.ErrMailDelivery
	}

	smtpCfg := s.cfg.SMTP
	msg := strings.Join([]string{
		"From: " + smtpCfg.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := smtpCfg.Host + ":" + smtpCfg.Port
	auth := smtp.PlainAuth("", smtpCfg.User, smtpCfg.Pass, smtpCfg.Host)

	if err := smtp.SendMail(addr, auth, smtpCfg.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}
	return nil
}

// SendActivation sends the account activation link
func (s *MailService) SendActivation(user *models.User) error {
	link := fmt.Sprintf("%s/auth/activate/%s", s.cfg.AppURL, user.ActivationLink)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
		  <h2>Hello, %s!</h2>
		  <p>Thank you for registering at <strong>Bulivard</strong>.</p>
		  <p>Please activate your account by clicking the link below:</p>
		  <a href="%s">Activate Account</a>
		  <p>If you did not sign up, please ignore this email.</p>
		</div>`, user.FullName, link)

	return s.send([]string{user.Email}, "Activate Your Account - Bulivard", body)
}

// SendReset sends the password reset link
func (s *MailService) SendReset(user *models.User) error {
	link := fmt.Sprintf("%s/auth/reset-password/%s", s.cfg.AppURL, user.ResetLink)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
		  <h2>Password Reset Request</h2>
		  <p>We received a request to reset your password on <strong>Bulivard</strong>.</p>
		  <p>Click the link below to set a new password:</p>
		  <a href="%s">Reset Password</a>
		  <p>If you did not request a password reset, you can safely ignore this email.</p>
		</div>`, link)

	return s.send([]string{user.Email}, "Reset Your Password - Bulivard", body)
}

// NotifyManagerApproved tells a manager their account is active
func (s *MailService) NotifyManagerApproved(user *models.User) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
		  <h2>Your Account Has Been Activated!</h2>
		  <p>Dear <strong>%s</strong>,</p>
		  <p>Your account on <strong>Bulivard</strong> has been successfully activated.</p>
		  <p>You can now log in and start using the platform.</p>
		</div>`, user.FullName)

	return s.send([]string{user.Email}, "Account Activated - Bulivard", body)
}

// NotifyAdminsManagerPending asks admins to review a pending manager signup
func (s *MailService) NotifyAdminsManagerPending(manager *models.User, admins []*models.User) error {
	if len(admins) == 0 {
		return nil
	}
	to := make([]string, 0, len(admins))
	for _, admin := range admins {
		to = append(to, admin.Email)
	}

	link := fmt.Sprintf("%s/auth/activate-manager/%d", s.cfg.AppURL, manager.ID)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
		  <h2>Manager Activation Needed</h2>
		  <p>A new manager <strong>%s</strong> has registered.</p>
		  <p>Please review and activate their account:</p>
		  <a href="%s">Activate Manager</a>
		</div>`, manager.FullName, link)

	return s.send(to, "Manager Activation Required - Bulivard", body)
}

// NotifyManagerReservationPending asks a manager to approve a new reservation
func (s *MailService) NotifyManagerReservationPending(manager *models.User, reservation ReservationSummary) error {
	link := fmt.Sprintf("%s/reservation/activate/%d", s.cfg.AppURL, reservation.ID)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
		  <h2>Reservation Needs Approval</h2>
		  <p>Hello <strong>%s</strong>,</p>
		  <p>A new reservation has been created and needs your approval:</p>
		  <ul>
		    <li><strong>Date:</strong> %s</li>
		    <li><strong>Details:</strong> %s</li>
		  </ul>
		  <a href="%s">Activate Reservation</a>
		</div>`, manager.FullName, reservation.Date, reservation.Details, link)

	return s.send([]string{manager.Email}, "Reservation Requires Activation - Bulivard", body)
}
