package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const leadAlertTemplate = `<h2>Nuevo inscrito en el Plan de Ejecución</h2>
<p><strong>Nombre:</strong> {{.Name}}</p>
<p><strong>Celular:</strong> {{.Phone}}</p>
<p>Contactar por WhatsApp: <a href="https://wa.me/{{.Phone}}">wa.me/{{.Phone}}</a></p>`

func NewEmailSender(host string, port int, user, password, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		To:       to,
	}
}

// SendLeadAlert avisa al buzón de campaña que entró un lead nuevo.
func (s *EmailSender) SendLeadAlert(name, phone string) error {
	t, err := template.New("lead_alert").Parse(leadAlertTemplate)
	if err != nil {
		return fmt.Errorf("error en template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, LeadAlertData{Name: name, Phone: phone}); err != nil {
		return fmt.Errorf("error procesando template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Nuevo inscrito: %s", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error enviando email SMTP: %w", err)
	}

	return nil
}
