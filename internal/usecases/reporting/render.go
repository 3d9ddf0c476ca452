package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/ndixit/domain-clicks-report/internal/domain"
)

// reportEmail é a reprodução do corpo HTML do relatório diário. A decisão de
// exibir ou não a tabela de detalhamento já vem pronta de TableRows; o
// template só imprime.
var reportEmail = template.Must(template.New("report").Funcs(template.FuncMap{
	"comma": commaSeparated,
}).Parse(`
  <p>&nbsp;</p>
  <div style="padding: 40px;">
    <div style="max-width: 840px; margin: 0 auto; background: linear-gradient(145deg,#ffffff,#f5f7ff); padding: 44px; border-radius: 28px; box-shadow: 0 14px 36px rgba(80,80,200,0.18); font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
      <h1 style="margin: 0 0 8px 0; font-size: 28px; font-weight: 500; color: #111827;">Hey {{.Recipient.GreetingName}},</h1>
      <h3 style="margin: 0 0 26px 0; font-size: 17px; font-weight: 600; color: #6b7280;">Here&rsquo;s your daily domain wise clicks report.</h3>

      <h1 style="margin: 0 0 10px 0; font-size: 30px; font-weight: 600; color: #4338ca;">Daily Domain Wise Clicks Report &#9889;</h1>
      <p style="margin: 0 0 30px 0; color: #6b7280; font-size: 15px;">Date: <strong>{{.Report.Date}}</strong></p>

      <div style="background: linear-gradient(135deg,#e4e7ff,#d8dcff); padding: 22px 26px; border-radius: 22px; border-left: 6px solid #6366f1; margin-bottom: 36px;">
        <div style="font-size: 15px; color: #374151; line-height: 1.7;">
          <strong>&#127760; Domains:</strong> {{.Report.TotalDomains}}<br />
          <strong>&#127970; Companies:</strong> {{.Report.TotalCompanies}}<br />
          <strong>&#128433; Total Clicks:</strong> {{comma .Report.TotalClicks}}<br />
          <strong>&#129485; Unique IPs:</strong> {{comma .Report.TotalUniqueIPs}}
        </div>
      </div>

{{range .Report.Domains}}
  <div style="padding: 26px; margin-bottom: 28px; border-radius: 24px; background: #ffffff; border: 1px solid #e4e6ef; box-shadow: 0 8px 24px rgba(99,102,241,0.14);">
    <h3 style="margin: 0 0 6px 0; font-size: 20px; color: #4f46e5; font-weight: 600;">{{.DisplayName}}</h3>
{{if .Type.IsTableEligible}}
    <div style="font-size: 14px; color: #374151; margin-bottom: 14px;">
      <strong>Domain Type:</strong>
      <span style="display: inline-block; padding: 3px 10px; border-radius: 999px; background: #eef2ff; color: #4338ca; font-size: 12px; font-weight: 600;">
        {{.Type}}
      </span>
    </div>
    <div style="margin-top: 10px; font-size: 15px;">
      <strong>Total Clicks:</strong> {{.TotalClicks}} &nbsp;&nbsp;
      <strong>Unique IPs:</strong> {{.TotalUniqueIPs}}
    </div>
  <table style="width: 100%; border-collapse: collapse; margin-top: 18px; background: #fafbff; border-radius: 14px; overflow: hidden; border: 1px solid #e2e7ff;">
    <thead>
      <tr style="background: #eef2ff;">
        <th style="padding: 10px; font-size: 12px; text-align: left;">Company</th>
        <th style="padding: 10px; font-size: 12px; text-align: left;">End Url Domain</th>
        <th style="padding: 10px; font-size: 12px; text-align: right;">Clicks</th>
        <th style="padding: 10px; font-size: 12px; text-align: right;">Unique IPs</th>
      </tr>
    </thead>
    <tbody>
{{range .TableRows}}
  <tr>
    <td style="padding: 10px;">{{.Company}}</td>
    <td style="padding: 10px;">{{.EndURLDomain}}</td>
    <td style="padding: 10px; text-align: right;">{{.Clicks}}</td>
    <td style="padding: 10px; text-align: right;">{{.UniqueIPs}}</td>
  </tr>
{{end}}
    </tbody>
  </table>
{{else}}
    <div style="font-size: 14px; color: #374151; margin-bottom: 12px;">
      <strong>Domain Type:</strong> {{.Type}}
    </div>
    <div style="font-size: 15px; line-height: 1.6;">
      <strong>Clicks:</strong> {{.TotalClicks}}<br />
      <strong>Unique IPs:</strong> {{.TotalUniqueIPs}}
    </div>
{{end}}
  </div>
{{end}}

      <div style="margin-top: 42px; text-align: center; color: #9ca3af; font-size: 13px;">
        Sent to <strong>{{.Recipient.GreetingName}}</strong> &middot; {{.Recipient.Email}}<br />
        Generated automatically &middot; Daily Domain Analytics
      </div>
    </div>
  </div>
`))

type reportEmailData struct {
	Report    *domain.ClickReport
	Recipient domain.Recipient
}

// RenderReportEmail monta o corpo HTML do relatório para um destinatário
func RenderReportEmail(report *domain.ClickReport, recipient domain.Recipient) (string, error) {
	var out bytes.Buffer

	err := reportEmail.Execute(&out, reportEmailData{
		Report:    report,
		Recipient: recipient,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao renderizar o relatório: %w", err)
	}

	return out.String(), nil
}

// ReportSubject monta o assunto do e-mail do relatório
func ReportSubject(date string) string {
	return fmt.Sprintf("Daily Domain Click Report - %s", date)
}

// commaSeparated formata um inteiro com separador de milhares
func commaSeparated(n int) string {
	s := strconv.Itoa(n)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}

	return out
}
