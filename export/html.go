package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/cgrworks/quotation-api/models"
)

var quotationTmpl = template.Must(template.New("quotation").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Quotation {{.QuotationNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; color: #111; margin: 40px; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #1d4ed8; padding-bottom: 16px; }
  .header h1 { margin: 0; color: #1d4ed8; }
  .meta { text-align: right; font-size: 14px; }
  .client { margin: 24px 0; font-size: 14px; }
  table { width: 100%; border-collapse: collapse; font-size: 14px; }
  th, td { border: 1px solid #d1d5db; padding: 8px; text-align: left; vertical-align: top; }
  th { background: #f3f4f6; }
  td.num, th.num { text-align: right; white-space: nowrap; }
  .desc { white-space: pre-line; }
  .callout { margin: 6px 0; padding: 8px; font-size: 13px; border-left: 4px solid; }
  .callout.red { border-color: #dc2626; background: #fef2f2; }
  .callout.blue { border-color: #2563eb; background: #eff6ff; }
  .section-img { max-width: 260px; margin: 6px 6px 0 0; }
  .totals { margin-top: 24px; width: 320px; margin-left: auto; font-size: 14px; }
  .totals td { border: none; padding: 4px 8px; }
  .totals .grand { font-weight: bold; border-top: 2px solid #111; }
  .terms { margin-top: 40px; font-size: 12px; page-break-before: always; }
  @media print { .no-print { display: none; } }
</style>
</head>
<body>
<div class="header">
  <div>
    <h1>{{.Company}}</h1>
    <div>Tel: {{.Tel}} &middot; Email: {{.Email}}</div>
  </div>
  <div class="meta">
    <div><strong>Quotation No:</strong> {{.QuotationNumber}}</div>
    <div><strong>Date:</strong> {{.Date}}</div>
    <div><strong>Validity:</strong> {{.ValidityDays}} Days</div>
  </div>
</div>

<div class="client">
  <strong>{{.Client.Name}}</strong><br>
  Attn: {{.Client.ContactPerson}}<br>
  {{.Client.Address}}<br>
  {{.Client.Email}} {{.Client.Phone}}
</div>

<div class="client"><strong>Project:</strong> {{.Project.ServiceType}}{{if .Project.Description}} &mdash; {{.Project.Description}}{{end}}</div>

<table>
  <thead>
    <tr>
      <th>S/N</th><th>Description</th><th class="num">Qty</th><th>UOM</th>
      <th class="num">Rate (S$)</th><th class="num">Amount (S$)</th>
    </tr>
  </thead>
  <tbody>
  {{range .Sections}}
    <tr>
      <td>{{.ItemNumber}}</td>
      <td>
        <strong>{{.Name}}</strong>
        <div class="desc">{{.Description}}</div>
        {{range .Images}}<img class="section-img" src="{{.Src}}" alt="{{.Alt}}">{{end}}
        {{range .Annotations}}<div class="callout {{.Type}}">{{.Text}}</div>{{end}}
      </td>
      <td class="num">{{.Quantity}}</td>
      <td>{{.UOM}}</td>
      <td class="num">{{money .Rate}}</td>
      <td class="num">{{money .Amount}}</td>
    </tr>
  {{end}}
  </tbody>
</table>

<table class="totals">
  <tr><td>Subtotal</td><td class="num">S$ {{money .Totals.Subtotal}}</td></tr>
  <tr><td>GST (7%)</td><td class="num">S$ {{money .Totals.GST}}</td></tr>
  <tr class="grand"><td>Total</td><td class="num">S$ {{money .Totals.Total}}</td></tr>
</table>

<div class="terms">
  <h3>Terms and Conditions</h3>
  <p>&bull; This quotation is valid for {{.ValidityDays}} days from the date of issue.</p>
  <p>&bull; All prices are subject to change based on material availability and market conditions.</p>
  <p>&bull; Payment terms: 50% advance payment required before project commencement.</p>
  <p>&bull; Project timeline will be confirmed upon quotation approval.</p>
  <p>&bull; Any additional work not included in this quotation will be quoted separately.</p>
  <p>&bull; Warranty covers workmanship for 12 months from project completion.</p>
</div>
</body>
</html>`))

type quotationPage struct {
	models.Quotation
	Company string
	Tel     string
	Email   string
	Date    string
}

// RenderHTML produces the printable quotation page.
func RenderHTML(q models.Quotation) (string, error) {
	page := quotationPage{
		Quotation: q,
		Company:   companyName,
		Tel:       companyTel,
		Email:     companyEmail,
		Date:      q.CreatedAt.Format("02 Jan 2006"),
	}
	var buf bytes.Buffer
	if err := quotationTmpl.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
