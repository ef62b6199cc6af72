package services

import (
	"fmt"
	"strings"

	"github.com/nwfth/forms-go/mailer"
	"github.com/nwfth/forms-go/models"
)

type MailService struct {
	sender mailer.Sender
}

func NewMailService(sender mailer.Sender) *MailService {
	return &MailService{sender: sender}
}

// submissionCopy returns the phrase used in the notification body for each
// form type. Unknown types fall back to a generic phrase.
func submissionCopy(formType string) string {
	switch formType {
	case string(models.FormTypePurchaseRequest):
		return "purchase request"
	case string(models.FormTypeTravelRequest):
		return "travel request"
	case string(models.FormTypeMajorCapital):
		return "major capital authorization request"
	case string(models.FormTypeMinorCapital):
		return "minor capital authorization request"
	default:
		return "request"
	}
}

func sanitizeName(formType string) string {
	return strings.ReplaceAll(formType, " ", "_")
}

// SendFormSubmission mails the rendered form to the recipient with the PDF
// attached and the company logo embedded inline.
func (s *MailService) SendFormSubmission(form *models.Form, pdf []byte, to string) error {
	subject := form.FormType + " Submission"
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; color: #333;">
  <img src="cid:logo.png" alt="NWFTH" style="max-width: 180px; margin-bottom: 16px;" />
  <p>Dear Sir/Madam,</p>
  <p><strong>%s</strong> (%s) has submitted a %s in our system.</p>
  <p>Please find the submitted form attached as a PDF document.</p>
  <p>Best regards,<br/>NWFTH - Forms System</p>
</div>`, form.OwnerName, form.Department, submissionCopy(form.FormType))

	attachment := mailer.Attachment{
		Filename: fmt.Sprintf("%s_%d.pdf", sanitizeName(form.FormType), form.ID),
		Content:  pdf,
	}
	return s.sender.Send(to, subject, body, attachment)
}

// SendPasswordReset mails the one-hour reset link.
func (s *MailService) SendPasswordReset(user models.User, link string) error {
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; color: #333;">
  <img src="cid:logo.png" alt="NWFTH" style="max-width: 180px; margin-bottom: 16px;" />
  <p>Dear %s,</p>
  <p>We received a request to reset the password for your account.</p>
  <p><a href="%s">Reset your password</a></p>
  <p>This link expires in one hour. If you did not request a reset, you can ignore this email.</p>
  <p>Best regards,<br/>NWFTH - Forms System</p>
</div>`, user.Name, link)

	return s.sender.Send(user.Email, "Password Reset Request", body)
}
