package mailer

import (
	"bytes"
	"html/template"
	"time"

	"go-cafe-pos/pkg/config"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// OrdenCompra is a restock request sent to a supplier address
type OrdenCompra struct {
	Producto      string
	Cantidad      int
	Motivo        string
	Destino       string
	UsuarioNombre string
}

// TicketLinea is one itemized row of a purchase ticket
type TicketLinea struct {
	Producto       string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// Ticket is the purchase receipt emailed to a client
type Ticket struct {
	Destino       string
	Cliente       string
	Fecha         time.Time
	Lineas        []TicketLinea
	Total         decimal.Decimal
	IVA           decimal.Decimal
	TotalConIVA   decimal.Decimal
	UsuarioNombre string
}

// Mailer sends the two notification message types. Sends are synchronous
// and fire-and-forget: a relay failure surfaces as an error, no retry.
type Mailer interface {
	EnviarOrdenCompra(orden OrdenCompra) error
	EnviarTicket(ticket Ticket) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(opts config.Options) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(opts.SMTPHost, opts.SMTPPort, opts.EmailUser, opts.EmailPass),
		from:   opts.EmailUser,
	}
}

func (m *smtpMailer) EnviarOrdenCompra(orden OrdenCompra) error {
	body, err := BuildOrdenCompraBody(orden)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", orden.Destino)
	msg.SetHeader("Subject", "ORDEN DE COMPRA: "+orden.Producto+" - URGENCIAS")
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

func (m *smtpMailer) EnviarTicket(ticket Ticket) error {
	body, err := BuildTicketBody(ticket)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", ticket.Destino)
	msg.SetHeader("Subject", "Ticket de compra - Cafetería")
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

var ordenCompraTmpl = template.Must(template.New("orden_compra").Parse(`
<h3>Nueva Solicitud de Orden de Compra</h3>
<p>El empleado {{if .UsuarioNombre}}{{.UsuarioNombre}}{{else}}Sistema{{end}} ha solicitado una orden urgente de inventario.</p>
<hr>
<p><strong>Producto Solicitado:</strong> {{.Producto}}</p>
<p><strong>Cantidad a Ordenar:</strong> {{.Cantidad}} unidades</p>
<p><strong>Motivo / Observaciones:</strong> {{if .Motivo}}{{.Motivo}}{{else}}No especificado{{end}}</p>
<p>Por favor, procesar esta orden lo antes posible.</p>
`))

var ticketTmpl = template.Must(template.New("ticket").Parse(`
<h3>Ticket de Compra</h3>
<p><strong>Cliente:</strong> {{.Cliente}}</p>
<p><strong>Fecha:</strong> {{.Fecha.Format "2006-01-02 15:04"}}</p>
<p><strong>Atendido por:</strong> {{.UsuarioNombre}}</p>
<hr>
<table border="0" cellpadding="4">
  <tr><th>Producto</th><th>Cantidad</th><th>Precio</th><th>Subtotal</th></tr>
  {{range .Lineas}}
  <tr>
    <td>{{.Producto}}</td>
    <td>{{.Cantidad}}</td>
    <td>${{.PrecioUnitario}}</td>
    <td>${{.Subtotal}}</td>
  </tr>
  {{end}}
</table>
<hr>
<p><strong>Subtotal:</strong> ${{.Total}}</p>
<p><strong>IVA:</strong> ${{.IVA}}</p>
<p><strong>Total:</strong> ${{.TotalConIVA}}</p>
<p>¡Gracias por su compra!</p>
`))

// BuildOrdenCompraBody renders the restock-request HTML body
func BuildOrdenCompraBody(orden OrdenCompra) (string, error) {
	var buf bytes.Buffer
	if err := ordenCompraTmpl.Execute(&buf, orden); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildTicketBody renders the purchase-ticket HTML body
func BuildTicketBody(ticket Ticket) (string, error) {
	var buf bytes.Buffer
	if err := ticketTmpl.Execute(&buf, ticket); err != nil {
		return "", err
	}
	return buf.String(), nil
}
