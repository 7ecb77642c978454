package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"wedding_planner/config"

	"gopkg.in/gomail.v2"
)

// RsvpConfirmationData is the payload for the RSVP confirmation template.
type RsvpConfirmationData struct {
	GuestName   string
	EventName   string
	WeddingDate string
	VenueName   string
	Attending   bool
	WebsiteLink string
}

var rsvpConfirmationTmpl = template.Must(template.New("rsvp_confirmation").Parse(`
<html>
<body>
  <p>Hi {{.GuestName}},</p>
  {{if .Attending}}
  <p>Thank you for confirming your attendance at <strong>{{.EventName}}</strong>{{if .WeddingDate}} on {{.WeddingDate}}{{end}}{{if .VenueName}} at {{.VenueName}}{{end}}. We can't wait to celebrate with you!</p>
  {{else}}
  <p>We're sorry you can't make it to <strong>{{.EventName}}</strong>. Thank you for letting us know.</p>
  {{end}}
  {{if .WebsiteLink}}<p>Find all the details at <a href="{{.WebsiteLink}}">{{.WebsiteLink}}</a>.</p>{{end}}
</body>
</html>`))

// SendRsvpConfirmationEmail sends the RSVP confirmation (async so the RSVP
// response is not delayed by SMTP).
func SendRsvpConfirmationEmail(to string, data RsvpConfirmationData) {
	go func() {
		var body bytes.Buffer
		if err := rsvpConfirmationTmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render RSVP confirmation email: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		portStr := config.Config("SMTP_PORT")
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")
		if host == "" || from == "" {
			log.Println("SMTP not configured, skipping RSVP confirmation email")
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "RSVP received for "+data.EventName)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send RSVP confirmation email: %v", err)
		}
	}()
}
