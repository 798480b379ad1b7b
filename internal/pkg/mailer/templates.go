package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"logistics/internal/entities"
)

const (
	creationMailSubject     = "Nova entrega"
	cancellationMailSubject = "Entrega cancelada"

	creationMailTag     = "delivery-creation"
	cancellationMailTag = "delivery-cancellation"
)

var creationMailTemplate = template.Must(template.New("creationMail").Parse(`<div style="font-family: Arial, Helvetica, sans-serif; font-size: 16px; line-height: 1.6; color: #222; max-width: 600px;">
  <strong>Olá, {{.Deliveryman}}</strong>
  <p>Você tem uma nova entrega aguardando retirada.</p>
  <p>
    <strong>Produto:</strong> {{.Product}}<br />
    <strong>Destinatário:</strong> {{.Recipient}}<br />
    <strong>Endereço:</strong> {{.Street}}, {{.Number}} - {{.City}}/{{.State}}<br />
    <strong>CEP:</strong> {{.ZipCode}}
  </p>
  <p>As retiradas podem ser feitas entre 08:00 e 18:00.</p>
</div>`))

var cancellationMailTemplate = template.Must(template.New("cancellationMail").Parse(`<div style="font-family: Arial, Helvetica, sans-serif; font-size: 16px; line-height: 1.6; color: #222; max-width: 600px;">
  <strong>Olá, {{.Deliveryman}}</strong>
  <p>A entrega <strong>#{{.DeliveryID}}</strong> ({{.Product}}) foi cancelada.</p>
  <p>
    <strong>Destinatário:</strong> {{.Recipient}}<br />
    <strong>Motivo:</strong> {{.Reason}}
  </p>
  <p>Não é mais necessário retirar ou entregar este produto.</p>
</div>`))

type creationMailContext struct {
	Deliveryman string
	Recipient   string
	Product     string
	Street      string
	Number      string
	City        string
	State       string
	ZipCode     string
}

type cancellationMailContext struct {
	Deliveryman string
	Recipient   string
	Product     string
	DeliveryID  int64
	Reason      string
}

// CreationMail собирает письмо курьеру о новой доставке.
func CreationMail(job *entities.CreationMailJob) (SendEmailParams, error) {
	var body strings.Builder
	err := creationMailTemplate.Execute(&body, creationMailContext{
		Deliveryman: job.Deliveryman.Name,
		Recipient:   job.Recipient.Name,
		Product:     job.Product,
		Street:      job.Recipient.Street,
		Number:      job.Recipient.Number,
		City:        job.Recipient.City,
		State:       job.Recipient.State,
		ZipCode:     job.Recipient.ZipCode,
	})
	if err != nil {
		return SendEmailParams{}, fmt.Errorf("render creation mail: %w", err)
	}

	return SendEmailParams{
		SendTo:   job.Deliveryman.Email,
		Subject:  creationMailSubject,
		BodyHTML: body.String(),
		Tag:      creationMailTag,
	}, nil
}

// CancellationMail собирает письмо курьеру об отмене доставки.
func CancellationMail(job *entities.CancellationMailJob) (SendEmailParams, error) {
	var body strings.Builder
	err := cancellationMailTemplate.Execute(&body, cancellationMailContext{
		Deliveryman: job.Delivery.Deliveryman.Name,
		Recipient:   job.Delivery.Recipient.Name,
		Product:     job.Delivery.Product,
		DeliveryID:  job.Delivery.ID,
		Reason:      job.Problem.Description,
	})
	if err != nil {
		return SendEmailParams{}, fmt.Errorf("render cancellation mail: %w", err)
	}

	return SendEmailParams{
		SendTo:   job.Delivery.Deliveryman.Email,
		Subject:  cancellationMailSubject,
		BodyHTML: body.String(),
		Tag:      cancellationMailTag,
	}, nil
}
