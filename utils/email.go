package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// OrderEmailData dados para os templates de e-mail de pedido
type OrderEmailData struct {
	OrderCode   string
	EventName   string
	EventDate   string
	Location    string
	BuyerName   string
	Tickets     string
	Subtotal    float64
	Discount    float64
	TotalAmount float64
	CancelledAt string
}

func dialer() *gomail.Dialer {
	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	return gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
}

func renderTemplate(path string, data OrderEmailData) (string, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", err
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendOrderConfirmationEmail envia a confirmação com um QR por ingresso (async)
func SendOrderConfirmationEmail(to string, data OrderEmailData, qrAttachments map[string][]byte) {
	go func() { // async para não atrasar a resposta
		body, err := renderTemplate("templates/order_confirmation.html", data)
		if err != nil {
			log.Printf("Erro ao renderizar template de confirmação: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Confirmação do pedido #"+data.OrderCode)
		m.SetBody("text/html", body)

		for filename, qrBytes := range qrAttachments {
			qr := qrBytes
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(qr))
				return err
			}))
		}

		if err := dialer().DialAndSend(m); err != nil {
			log.Printf("Erro ao enviar e-mail de confirmação: %v", err)
		}
	}()
}

// SendOrderCancelledEmail aviso de cancelamento (async)
func SendOrderCancelledEmail(to string, data OrderEmailData) {
	go func() {
		body, err := renderTemplate("templates/order_cancelled.html", data)
		if err != nil {
			log.Printf("Erro ao renderizar template de cancelamento: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Pedido cancelado #"+data.OrderCode)
		m.SetBody("text/html", body)

		if err := dialer().DialAndSend(m); err != nil {
			log.Printf("Erro ao enviar e-mail de cancelamento: %v", err)
		}
	}()
}

// SendWaitlistEmail aviso simples em texto para a lista de espera
func SendWaitlistEmail(to, eventName, ticketName string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{to}
	e.Subject = "Ingressos disponíveis - " + eventName
	e.Text = []byte("Boa notícia! Novos ingressos do tipo \"" + ticketName + "\" estão disponíveis para o evento " + eventName + ". Garanta o seu antes que esgotem novamente.")

	return e.Send(host+":"+port, smtp.PlainAuth("", username, password, host))
}
