package utils

import (
	"fmt"
	"net/smtp"

	"dc3/config"
)

// SendCertificateValidatedEmail notifies the company representative that an
// administrator validated their certificate request and documents can be
// generated.
func SendCertificateValidatedEmail(email, repName, companyName, folio string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	to := []string{email}

	subject := "Subject: Constancias DC-3 validadas\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Solicitud validada</h2>
					<p style="font-size: 16px; color: #555555;">Estimado(a) %s,</p>
					<p style="font-size: 16px; color: #555555;">La solicitud de constancias DC-3 de <b>%s</b> fue validada y aprobada.</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">Folio: %s</h3>
					<p style="font-size: 14px; color: #666666;">Ya puede descargar las constancias desde el sistema. Cada documento incluye un código QR de verificación.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Sistema de Constancias DC-3</p>
				</div>
			</body>
		</html>
	`, repName, companyName, folio)

	message := []byte(subject + "\n" + body)
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
	if err != nil {
		fmt.Println("Error sending validation email:", err)
		return err
	}

	fmt.Println("Validation email sent successfully to", email)
	return nil
}
