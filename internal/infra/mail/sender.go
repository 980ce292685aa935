package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type reminderEmailData struct {
	Name     string
	Title    string
	Location string
	When     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendAppointmentReminder(to, name, title, location string, startsAt time.Time) error {
	data := reminderEmailData{
		Name:     name,
		Title:    title,
		Location: location,
		When:     startsAt.Format("Mon, 2 Jan 2006 at 3:04 PM"),
	}

	tmplPath := filepath.Join("templates", "reminder.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("reading reminder template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering reminder template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Reminder: %s on %s", title, data.When))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending reminder email: %w", err)
	}
	return nil
}
