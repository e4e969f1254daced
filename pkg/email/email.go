package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"go-mentorship-backend/config"
	"go-mentorship-backend/internal/domain"
)

// EmailService sends the match notification via SMTP. It implements
// domain.MatchNotifier.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// matchEmailData holds the data for match notification emails
type matchEmailData struct {
	MentorName     string
	MentorEmail    string
	MentorPhone    string
	StudentName    string
	StudentEmail   string
	StudentPhone   string
	StudentYear    string
	StudentProgram string
	Linkedin       string
	Fecha          string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// matchEmailTemplate is the HTML template for match notifications. One
// message goes to both the mentor and the student.
const matchEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nueva mentoría registrada</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 12px; }
        .label { font-weight: bold; color: #555; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>¡Nueva mentoría registrada!</h1>
        </div>
        <div class="content">
            <p>Se registró una solicitud de mentoría el {{.Fecha}}.</p>
            <div class="field">
                <span class="label">Graduado-Mentor:</span> {{.MentorName}} ({{.MentorEmail}}{{if .MentorPhone}}, {{.MentorPhone}}{{end}})
            </div>
            <div class="field">
                <span class="label">Alumno:</span> {{.StudentName}} ({{.StudentEmail}}, {{.StudentPhone}})
            </div>
            <div class="field">
                <span class="label">Carrera:</span> {{.StudentProgram}} — {{.StudentYear}}° año
            </div>
            {{if .Linkedin}}
            <div class="field">
                <span class="label">LinkedIn del alumno:</span> {{.Linkedin}}
            </div>
            {{end}}
            <p>Les pedimos que se pongan en contacto para coordinar el primer encuentro.</p>
        </div>
        <div class="footer">
            <p>Este correo fue enviado automáticamente por el programa de mentorías.</p>
        </div>
    </div>
</body>
</html>`

// SendMatchNotification sends a single message summarizing the match to
// both the mentor's and the requester's addresses.
func (s *EmailService) SendMatchNotification(mentor *domain.MentorRecord, sel *domain.Selection) error {
	tmpl, err := template.New("match").Parse(matchEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	data := matchEmailData{
		MentorName:     mentor.FullName(),
		MentorEmail:    mentor.Email,
		MentorPhone:    mentor.Phone,
		StudentName:    sel.Name + " " + sel.Surname,
		StudentEmail:   sel.Email,
		StudentPhone:   sel.Phone,
		StudentYear:    sel.YearInProgram,
		StudentProgram: sel.Program,
		Linkedin:       sel.LinkedinURL,
		Fecha:          sel.Timestamp,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	to := recipients(mentor.Email, sel.Email)
	if len(to) == 0 {
		return fmt.Errorf("no recipient addresses for match notification")
	}

	subject := fmt.Sprintf("Mentoría: %s y %s", mentor.FullName(), data.StudentName)

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		strings.Join(to, ", "),
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, to, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func recipients(addrs ...string) []string {
	var to []string
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a != "" {
			to = append(to, a)
		}
	}
	return to
}
