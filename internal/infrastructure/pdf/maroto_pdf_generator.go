// Package pdf implementa la generación de los documentos del negocio:
// cotización, factura y confirmación de tarifa al carrier.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: EverFlown Logistics + lema                          │
//	│  TÍTULO: QUOTE / INVOICE / RATE CONFIRMATION                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: números de documento, fechas, destinatario           │
//	│  TABLA: ruta | equipo | commodity | monto                    │
//	│  TOTAL + términos + notas                                    │
//	│  FOOTER                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/everflown/logistics-api/internal/application/usecase"
	"github.com/everflown/logistics-api/internal/domain/entity"
)

const (
	companyName    = "EverFlown Logistics"
	companyTagline = "Professional Freight Brokerage Services"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 41, Green: 128, Blue: 185}
	colorGray    = &props.Color{Red: 128, Green: 128, Blue: 128}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.DocumentGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implementa usecase.DocumentGenerator usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// GenerateQuotePDF genera el PDF de una cotización.
func (g *MarotoGenerator) GenerateQuotePDF(quote *entity.Quote, recipient usecase.DocumentRecipient) ([]byte, error) {
	m := newDocument("Freight Quote")

	m.AddRows(brandHeaderRows()...)
	m.AddRows(titleRow("FREIGHT QUOTE"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(
		fieldRow("Quote Number:", quote.QuoteNumber, "Quote Date:", quote.CreatedAt.Format("January 2, 2006")),
		fieldRow("Valid Until:", quote.ValidUntil.Format("January 2, 2006"), "Status:", quote.Status),
	)

	if recipient.CompanyName != "" {
		m.AddRows(recipientRows("Quote For:", recipient)...)
	}

	m.AddRows(tableHeaderRow("Origin - Destination", "Equipment", "Weight (lbs)", "Commodity", "Quoted Rate"))
	route := fmt.Sprintf("%s, %s - %s, %s", quote.OriginCity, quote.OriginState, quote.DestinationCity, quote.DestinationState)
	weight := ""
	if quote.Weight != nil && *quote.Weight > 0 {
		weight = fmt.Sprintf("%.0f", *quote.Weight)
	}
	m.AddRows(tableDataRow(route, quote.EquipmentType, weight,
		commodityOrDefault(quote.Commodity), "$"+quote.QuotedRate.StringFixed(2)))

	if quote.PickupDate != nil {
		m.AddRows(fieldRow("Requested Pickup:", quote.PickupDate.Format("January 2, 2006"), "", ""))
	}

	m.AddRows(totalRow("Total Quoted Rate:", "$"+quote.QuotedRate.StringFixed(2)))

	m.AddRows(sectionTitleRow("Terms and Conditions:"))
	for _, term := range []string{
		"This quote is valid until the date specified above",
		"Rates are subject to change based on market conditions",
		"Additional charges may apply for special handling requirements",
		"Payment terms will be established upon booking confirmation",
		"All shipments subject to our standard terms and conditions",
	} {
		m.AddRows(bulletRow(term))
	}

	if quote.Notes != nil && *quote.Notes != "" {
		m.AddRows(notesRows("Additional Notes:", *quote.Notes)...)
	}

	m.AddRows(footerRows(
		"Thank you for considering EverFlown Logistics for your freight needs!",
		"Contact us to book this shipment or discuss your requirements.",
	)...)

	return render(m)
}

// GenerateInvoicePDF genera el PDF de una factura. Order y customer pueden
// venir en nil si la factura no tiene esos vínculos.
func (g *MarotoGenerator) GenerateInvoicePDF(invoice *entity.Invoice, order *entity.Order, customer *entity.Customer) ([]byte, error) {
	m := newDocument("Invoice")

	m.AddRows(brandHeaderRows()...)
	m.AddRows(titleRow("INVOICE"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	orderNumber := ""
	if order != nil {
		orderNumber = order.OrderNumber
	}
	m.AddRows(
		fieldRow("Invoice Number:", invoice.InvoiceNumber, "Invoice Date:", invoice.CreatedAt.Format("January 2, 2006")),
		fieldRow("Due Date:", invoice.DueDate.Format("January 2, 2006"), "Order Number:", orderNumber),
	)

	if customer != nil {
		m.AddRows(billToRows(customer)...)
	}

	if order != nil {
		m.AddRows(tableHeaderRow("Origin - Destination", "Equipment Type", "Commodity", "Amount", ""))
		route := fmt.Sprintf("%s, %s - %s, %s", order.OriginCity, order.OriginState, order.DestinationCity, order.DestinationState)
		m.AddRows(tableDataRow(route, order.EquipmentType,
			commodityOrDefault(order.Commodity), "$"+invoice.Amount.StringFixed(2), ""))
	}

	m.AddRows(totalRow("Total Amount:", "$"+invoice.Amount.StringFixed(2)))

	if customer != nil && customer.PaymentTerms != "" {
		m.AddRows(sectionTitleRow("Payment Terms:"))
		m.AddRows(bulletRow(customer.PaymentTerms))
	}

	if invoice.Notes != nil && *invoice.Notes != "" {
		m.AddRows(notesRows("Notes:", *invoice.Notes)...)
	}

	m.AddRows(footerRows(
		"Thank you for your business! For questions about this invoice, please contact us.",
		"EverFlown Logistics - Your Trusted Freight Partner",
	)...)

	return render(m)
}

// GenerateRateConfirmationPDF genera la confirmación de tarifa que se envía
// al carrier al asignarle una carga.
func (g *MarotoGenerator) GenerateRateConfirmationPDF(dispatch *entity.Dispatch, order *entity.Order, carrier *entity.Carrier) ([]byte, error) {
	m := newDocument("Rate Confirmation")

	m.AddRows(brandHeaderRows()...)
	m.AddRows(titleRow("RATE CONFIRMATION"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	orderNumber := ""
	if order != nil {
		orderNumber = order.OrderNumber
	}
	m.AddRows(
		fieldRow("Order Number:", orderNumber, "Date:", dispatch.CreatedAt.Format("January 2, 2006")),
		fieldRow("Status:", dispatch.Status, "Carrier Rate:", "$"+dispatch.CarrierRate.StringFixed(2)),
	)

	if carrier != nil {
		m.AddRows(carrierRows(carrier)...)
	}

	if dispatch.DriverName != nil || dispatch.TruckNumber != nil {
		m.AddRows(fieldRow(
			"Driver:", strOrDash(dispatch.DriverName)+"  "+strOrDash(dispatch.DriverPhone),
			"Truck / Trailer:", strOrDash(dispatch.TruckNumber)+" / "+strOrDash(dispatch.TrailerNumber),
		))
	}

	if order != nil {
		m.AddRows(tableHeaderRow("Origin - Destination", "Equipment", "Pickup", "Commodity", "Rate"))
		route := fmt.Sprintf("%s, %s - %s, %s", order.OriginCity, order.OriginState, order.DestinationCity, order.DestinationState)
		m.AddRows(tableDataRow(route, order.EquipmentType, order.PickupDate.Format("01/02/2006"),
			commodityOrDefault(order.Commodity), "$"+dispatch.CarrierRate.StringFixed(2)))
	}

	m.AddRows(totalRow("Agreed Carrier Rate:", "$"+dispatch.CarrierRate.StringFixed(2)))

	m.AddRows(sectionTitleRow("Terms and Conditions:"))
	for _, term := range []string{
		"Carrier agrees to transport the shipment described above at the agreed rate",
		"Carrier must maintain active insurance and operating authority for the duration of transport",
		"Detention, layover and accessorial charges require prior written approval",
		"Proof of delivery is required before payment is released",
	} {
		m.AddRows(bulletRow(term))
	}

	if dispatch.Notes != nil && *dispatch.Notes != "" {
		m.AddRows(notesRows("Dispatch Notes:", *dispatch.Notes)...)
	}

	m.AddRows(footerRows(
		"Please sign and return this confirmation before pickup.",
		"EverFlown Logistics - Your Trusted Freight Partner",
	)...)

	return render(m)
}

// ── Secciones compartidas ─────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(companyName, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// brandHeaderRows: nombre de la empresa + lema.
func brandHeaderRows() []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(7).Add(col.New(12).Add(
			text.New(companyTagline, props.Text{Size: 10, Color: colorGray}),
		)),
	}
}

func titleRow(title string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 16, Top: 2}),
	))
}

// fieldRow: dos pares etiqueta/valor en una fila. El segundo par puede venir vacío.
func fieldRow(label1, value1, label2, value2 string) core.Row {
	cols := []core.Col{
		col.New(3).Add(text.New(label1, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(3).Add(text.New(value1, props.Text{Size: 9, Top: 1})),
	}
	if label2 != "" {
		cols = append(cols,
			col.New(3).Add(text.New(label2, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(3).Add(text.New(value2, props.Text{Size: 9, Top: 1})),
		)
	}
	return row.New(6).Add(cols...)
}

// recipientRows: destinatario de una cotización.
func recipientRows(title string, r usecase.DocumentRecipient) []core.Row {
	rows := []core.Row{
		sectionTitleRow(title),
		row.New(5).Add(col.New(12).Add(
			text.New(r.CompanyName, props.Text{Style: fontstyle.Bold, Size: 10}),
		)),
	}
	if r.ContactPerson != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Attn: "+r.ContactPerson, props.Text{Size: 9}),
		)))
	}
	contact := ""
	if r.Email != "" {
		contact = "Email: " + r.Email
	}
	if r.Phone != "" {
		if contact != "" {
			contact += "   |   "
		}
		contact += "Phone: " + r.Phone
	}
	if contact != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(contact, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	return rows
}

// billToRows: bloque de facturación del cliente.
func billToRows(c *entity.Customer) []core.Row {
	rows := []core.Row{
		sectionTitleRow("Bill To:"),
		row.New(5).Add(col.New(12).Add(
			text.New(c.CompanyName, props.Text{Style: fontstyle.Bold, Size: 10}),
		)),
	}
	if c.ContactPerson != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Attn: "+c.ContactPerson, props.Text{Size: 9}),
		)))
	}
	if c.BillingAddress != nil && *c.BillingAddress != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(*c.BillingAddress, props.Text{Size: 9}),
		)))
	}
	cityLine := fmt.Sprintf("%s, %s %s",
		strOrDash(c.BillingCity), strOrDash(c.BillingState), strOrDash(c.BillingZipCode))
	rows = append(rows, row.New(5).Add(col.New(12).Add(
		text.New(cityLine, props.Text{Size: 9}),
	)))
	return rows
}

// carrierRows: bloque del transportista en la confirmación de tarifa.
func carrierRows(c *entity.Carrier) []core.Row {
	rows := []core.Row{
		sectionTitleRow("Carrier:"),
		row.New(5).Add(col.New(12).Add(
			text.New(c.CompanyName, props.Text{Style: fontstyle.Bold, Size: 10}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("MC: %s   |   DOT: %s   |   Phone: %s",
				strOrDash(c.MCNumber), strOrDash(c.DOTNumber), c.Phone,
			), props.Text{Size: 9, Color: colorGray}),
		)),
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de envío. La quinta columna es opcional.
func tableHeaderRow(c1, c2, c3, c4, c5 string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	if c5 == "" {
		return row.New(8).Add(
			h(c1, 5, align.Left),
			h(c2, 3, align.Left),
			h(c3, 2, align.Left),
			h(c4, 2, align.Right),
		)
	}
	return row.New(8).Add(
		h(c1, 4, align.Left),
		h(c2, 2, align.Left),
		h(c3, 2, align.Center),
		h(c4, 2, align.Left),
		h(c5, 2, align.Right),
	)
}

func tableDataRow(c1, c2, c3, c4, c5 string) core.Row {
	d := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	if c5 == "" {
		return row.New(7).Add(
			d(c1, 5, align.Left),
			d(c2, 3, align.Left),
			d(c3, 2, align.Left),
			d(c4, 2, align.Right),
		)
	}
	return row.New(7).Add(
		d(c1, 4, align.Left),
		d(c2, 2, align.Left),
		d(c3, 2, align.Center),
		d(c4, 2, align.Left),
		d(c5, 2, align.Right),
	)
}

func totalRow(label, value string) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3,
		})),
		col.New(3).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3,
		})),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
	))
}

func bulletRow(s string) core.Row {
	return row.New(5).Add(col.New(12).Add(
		text.New("• "+s, props.Text{Size: 9, Left: 2}),
	))
}

func notesRows(title, notes string) []core.Row {
	return []core.Row{
		sectionTitleRow(title),
		row.New(10).Add(col.New(12).Add(
			text.New(notes, props.Text{Size: 9}),
		)),
	}
}

func footerRows(line1, line2 string) []core.Row {
	return []core.Row{
		row.New(8),
		row.New(5).Add(col.New(12).Add(
			text.New(line1, props.Text{Size: 8, Style: fontstyle.Italic, Color: colorGray}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(line2, props.Text{Size: 8, Style: fontstyle.Italic, Color: colorGray}),
		)),
	}
}

func commodityOrDefault(c *string) string {
	if c != nil && *c != "" {
		return *c
	}
	return "General Freight"
}

func strOrDash(s *string) string {
	if s != nil && *s != "" {
		return *s
	}
	return "—"
}
