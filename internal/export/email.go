package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/sales-plan/backend/internal/models"
)

var emailTmpl = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
<h1>Sales Plan {{.Year}}</h1>
{{range .Months}}
<section class="month">
  <h2>{{.Name}}{{if .Theme}} &ndash; {{.Theme}}{{end}}</h2>
  {{if .Offers}}
  <table border="1" cellpadding="6" cellspacing="0" class="offers">
    <tr><th>Offer</th><th>Type</th><th>Pricing</th><th>Discount</th></tr>
    {{range .Offers}}
    <tr><td>{{.Title}}</td><td>{{.Type}}</td><td>{{.Pricing}}</td><td>{{.Discount}}</td></tr>
    {{end}}
  </table>
  {{else}}
  <p>No offers planned.</p>
  {{end}}
  {{if .Collateral}}
  <h3>Collateral</h3>
  <ul class="collateral">
    {{range .Collateral}}
    <li>{{.Offer}}: {{.Type}} ({{.CollateralNeeded}}) due {{.DueDate}}</li>
    {{end}}
  </ul>
  {{end}}
  {{if .Timeline}}
  <h3>CRM Timeline</h3>
  <ul class="timeline">
    {{range .Timeline}}
    <li>{{.SendDate}}: {{.Offer}}</li>
    {{end}}
  </ul>
  {{end}}
</section>
{{end}}
</body>
</html>`))

type emailMonth struct {
	Name       string
	Theme      string
	Offers     []models.Offer
	Collateral []models.MarketingCollateral
	Timeline   []models.CRMTimeline
}

// BuildEmailHTML renders the plan digest the dashboard mails out: one
// section per month with its offers, collateral and timeline.
func BuildEmailHTML(months []models.Month, year int) (string, error) {
	data := struct {
		Year   int
		Months []emailMonth
	}{Year: year}

	for _, m := range months {
		data.Months = append(data.Months, emailMonth{
			Name:       m.Name,
			Theme:      m.Theme,
			Offers:     activeOffers(m.Offers),
			Collateral: m.MarketingCollateral.Records(),
			Timeline:   m.CRMTimeline.Records(),
		})
	}

	var b strings.Builder
	if err := emailTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render email digest: %w", err)
	}
	return b.String(), nil
}

func activeOffers(offers []models.Offer) []models.Offer {
	var out []models.Offer
	for _, o := range offers {
		if !o.Cancelled {
			out = append(out, o)
		}
	}
	return out
}
