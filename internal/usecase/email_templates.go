package usecase

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	TemplateWelcome  = "welcome"
	TemplateWaitlist = "waitlist"

	welcomeSubject  = "ACCESS GRANTED: Welcome to Noir Labs"
	waitlistSubject = "WAITLIST CONFIRMED: You are in queue"

	defaultWelcomeName = "Agent"
)

var emailTemplates = template.Must(template.New(TemplateWelcome).Parse(`<div style="font-family: sans-serif; background-color: #f5f5f5; padding: 40px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border: 4px solid black; border-radius: 20px; overflow: hidden; box-shadow: 10px 10px 0px #000;">
    <div style="background: #000; padding: 20px; text-align: center;">
      <h1 style="color: #fff; text-transform: uppercase; letter-spacing: 4px; margin: 0;">Access Granted</h1>
    </div>
    <div style="padding: 40px;">
      <h2 style="font-size: 24px; font-weight: 900; margin-bottom: 20px;">Welcome back, {{.Name}}.</h2>
      <p style="font-size: 16px; line-height: 1.6; color: #333;">
        Your secure connection to <strong>Noir Labs</strong> has been re-established.
        The experiments are waiting for your input.
      </p>
      <div style="margin: 30px 0; text-align: center;">
        <a href="https://noirlabs.ai" style="display: inline-block; background: #05ffa1; color: #000; padding: 15px 30px; font-weight: 900; text-decoration: none; border: 2px solid #000; border-radius: 10px; text-transform: uppercase;">Enter Laboratory</a>
      </div>
      <p style="font-size: 14px; color: #666; font-style: italic;">"Science is magic that works."</p>
    </div>
    <div style="background: #f0f0f0; padding: 15px; text-align: center; border-top: 2px solid #000; font-size: 12px; color: #888;">
      &copy; NOIR LABS. Secure transmission.
    </div>
  </div>
</div>
{{define "waitlist"}}<div style="font-family: sans-serif; background-color: #f5f5f5; padding: 40px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border: 4px solid black; border-radius: 20px; overflow: hidden; box-shadow: 10px 10px 0px #000;">
    <div style="background: #ff71ce; padding: 20px; text-align: center; border-bottom: 4px solid black;">
      <h1 style="color: #000; text-transform: uppercase; letter-spacing: 3px; margin: 0; font-weight: 900;">Waitlist Confirmed</h1>
    </div>
    <div style="padding: 40px;">
      <h2 style="font-size: 24px; font-weight: 900; margin-bottom: 20px;">You're on the list!</h2>
      <p style="font-size: 16px; line-height: 1.6; color: #333;">
        We have received your request for early access for {{.Email}}. You are now in the queue for <strong>Noir Labs Public Beta</strong>.
      </p>
      <p style="font-size: 16px; line-height: 1.6; color: #333;">
        We are gradually opening access to ensure system stability. Watch your inbox for your exclusive invite code.
      </p>
      <div style="margin: 30px 0; padding: 20px; background: #fffb96; border: 2px solid black; border-radius: 10px;">
        <strong>Status:</strong> Pending Approval<br>
        <strong>Priority:</strong> Standard
      </div>
    </div>
    <div style="background: #000; padding: 15px; text-align: center; font-size: 12px; color: #fff;">
      NOIR LABS // EXPERIMENTAL DIVISION
    </div>
  </div>
</div>{{end}}`))

type welcomeData struct{ Name string }

type waitlistData struct{ Email string }

func renderTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", name, err)
	}
	return buf.String(), nil
}
