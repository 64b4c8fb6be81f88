package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/matheusvll/casaflor-api/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, notifyTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		NotifyTo: notifyTo,
	}
}

// SendConversionNotice avisa a equipe que um lead fechou e virou evento.
func (s *EmailSender) SendConversionNotice(payload queue.ConversionPayload) error {
	data := ConversionEmailData{
		LeadName:   payload.LeadName,
		Contact:    payload.LeadContact,
		EventTitle: payload.EventTitle,
		EventType:  payload.EventType,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
	}

	tmplPath := filepath.Join("templates", "conversion.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@casaflor.com.br")
	m.SetHeader("To", s.NotifyTo)
	m.SetHeader("Subject", fmt.Sprintf("🎉 Lead fechado: %s (%s)", payload.LeadName, payload.EventTitle))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
