package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func sendMail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Println("Sendgrid API key not configured, skipping email to " + toEmail)
		return nil
	}

	from := mail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendEnrollmentEmail sends an email notification when a user enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; padding: 20px;">
				<h2>Enrollment Successful!</h2>
				<p>Dear %s,</p>
				<p>You have successfully enrolled in:</p>
				<h3>%s</h3>
				<p>You can now access all the course content and start learning. Track your
				progress and complete all lectures to finish the course.</p>
				<p>Happy Learning!<br>The LearnHub Team</p>
			</body>
		</html>
	`, userName, courseName)

	if err := sendMail(email, userName, "Course Enrollment Confirmation", body); err != nil {
		log.Printf("Error sending enrollment email: %v", err)
		return err
	}
	return nil
}

// SendCompletionEmail sends an email when a user completes all lectures of a course
func SendCompletionEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; padding: 20px;">
				<h2>Course Completed!</h2>
				<p>Dear %s,</p>
				<p>Congratulations on completing the course:</p>
				<h3>%s</h3>
				<p>Well done on this achievement!<br>The LearnHub Team</p>
			</body>
		</html>
	`, userName, courseName)

	if err := sendMail(email, userName, "Course Completion", body); err != nil {
		log.Printf("Error sending completion email: %v", err)
		return err
	}
	return nil
}
