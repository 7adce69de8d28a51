package notification

import (
	"bytes"
	"html/template"
)

// receiptTmpl is the branded HTML checkout receipt. All fields are
// auto-escaped by html/template.
var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1.0">
  <title>Checkout - {{.CustomerName}}</title>
</head>
<body style="margin:0;padding:0;background-color:#faf5f7;
     font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" role="presentation"
         style="background-color:#faf5f7;padding:40px 16px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" role="presentation"
               style="max-width:600px;width:100%;">

          <!-- ── Header ─────────────────────────────────────────── -->
          <tr>
            <td style="background:linear-gradient(135deg,#9d174d,#db2777);padding:28px 40px;
                       border-radius:12px 12px 0 0;text-align:center;">
              <p style="margin:0;font-size:24px;font-weight:700;color:#ffffff;">💇 {{.Business.Name}}</p>
              <p style="margin:6px 0 0;font-size:12px;color:#fce7f3;letter-spacing:0.4px;">{{.Business.Tagline}}</p>
              <p style="margin:14px 0 0;font-size:13px;color:#ffffff;">Checkout Receipt</p>
            </td>
          </tr>

          <!-- ── Customer info ──────────────────────────────────── -->
          <tr>
            <td style="background-color:#ffffff;padding:28px 40px 8px;">
              <table width="100%" cellpadding="0" cellspacing="0" role="presentation"
                     style="font-size:14px;color:#374151;">
                <tr>
                  <td style="padding:6px 0;width:50%;"><span style="color:#9ca3af;">Customer</span><br><strong>{{.CustomerName}}</strong></td>
                  <td style="padding:6px 0;width:50%;"><span style="color:#9ca3af;">Phone</span><br><strong>{{.CustomerPhone}}</strong></td>
                </tr>
                <tr>
                  <td style="padding:6px 0;"><span style="color:#9ca3af;">Date</span><br><strong>{{.Date}}</strong></td>
                  <td style="padding:6px 0;"><span style="color:#9ca3af;">Payment Method</span><br><strong>{{.PaymentMethod}}</strong></td>
                </tr>
              </table>
            </td>
          </tr>

          <!-- ── Line items ─────────────────────────────────────── -->
          <tr>
            <td style="background-color:#ffffff;padding:16px 40px;">
              <table width="100%" cellpadding="0" cellspacing="0" role="presentation"
                     style="font-size:14px;color:#374151;border-collapse:collapse;">
                <tr style="background-color:#fdf2f8;">
                  <th align="left" style="padding:10px;">Description</th>
                  <th align="center" style="padding:10px;">Qty</th>
                  <th align="right" style="padding:10px;">Unit Price</th>
                  <th align="right" style="padding:10px;">Total</th>
                </tr>
                {{- range .Items}}
                <tr>
                  <td style="padding:10px;border-bottom:1px solid #f3f4f6;">{{.Description}}</td>
                  <td align="center" style="padding:10px;border-bottom:1px solid #f3f4f6;">{{.Quantity}}</td>
                  <td align="right" style="padding:10px;border-bottom:1px solid #f3f4f6;">{{.UnitPrice}}</td>
                  <td align="right" style="padding:10px;border-bottom:1px solid #f3f4f6;">{{.LineTotal}}</td>
                </tr>
                {{- end}}
              </table>
            </td>
          </tr>

          <!-- ── Totals ─────────────────────────────────────────── -->
          <tr>
            <td style="background-color:#ffffff;padding:8px 40px 24px;">
              <table width="100%" cellpadding="0" cellspacing="0" role="presentation"
                     style="font-size:14px;color:#374151;">
                <tr><td style="padding:4px 0;">Subtotal</td><td align="right">{{.Subtotal}}</td></tr>
                {{- if .ShowDiscount}}
                <tr><td style="padding:4px 0;color:#059669;">Discount</td><td align="right" style="color:#059669;">-{{.Discount}}</td></tr>
                {{- end}}
                {{- if .ShowTax}}
                <tr><td style="padding:4px 0;">Tax</td><td align="right">{{.Tax}}</td></tr>
                {{- end}}
                <tr>
                  <td style="padding:10px 0;font-size:18px;font-weight:700;border-top:2px solid #db2777;">Total</td>
                  <td align="right" style="padding:10px 0;font-size:18px;font-weight:700;border-top:2px solid #db2777;">{{.Total}}</td>
                </tr>
                <tr><td style="padding:4px 0;">Amount Paid</td><td align="right">{{.Paid}}</td></tr>
                {{- if .HasBalance}}
                <tr><td style="padding:4px 0;color:#dc2626;font-weight:600;">Outstanding Balance</td><td align="right" style="color:#dc2626;font-weight:600;">{{.Balance}}</td></tr>
                {{- else}}
                <tr><td colspan="2" align="center" style="padding:12px 0 0;">
                  <span style="background-color:#d1fae5;color:#065f46;padding:6px 14px;border-radius:20px;
                               font-size:12px;font-weight:700;letter-spacing:0.4px;">✓ PAID IN FULL</span>
                </td></tr>
                {{- end}}
              </table>
            </td>
          </tr>
          {{- if .Notes}}

          <!-- ── Notes ──────────────────────────────────────────── -->
          <tr>
            <td style="background-color:#ffffff;padding:0 40px 28px;">
              <div style="background-color:#fffbeb;border-left:3px solid #f59e0b;padding:12px 16px;
                          font-size:13px;color:#78350f;white-space:pre-wrap;"><strong>Notes:</strong> {{.Notes}}</div>
            </td>
          </tr>
          {{- end}}

          <!-- ── Footer ────────────────────────────────────────── -->
          <tr>
            <td style="background-color:#f9fafb;padding:20px 40px;text-align:center;
                       border-top:1px solid #e5e7eb;border-radius:0 0 12px 12px;">
              <p style="margin:0;font-size:13px;font-weight:600;color:#374151;">Thank you for choosing {{.Business.Name}}!</p>
              <p style="margin:6px 0 0;font-size:12px;color:#9ca3af;">📍 {{.Business.Address}}</p>
              <p style="margin:2px 0 0;font-size:12px;color:#9ca3af;">📞 {{.Business.Phone}} · ✉️ {{.Business.Email}}</p>
              <p style="margin:2px 0 0;font-size:12px;color:#9ca3af;">🌐 {{.Business.Website}} · 🕐 {{.Business.Hours}}</p>
            </td>
          </tr>

        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// RenderReceiptHTML renders the HTML checkout receipt for v.
func RenderReceiptHTML(v ReceiptView) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
