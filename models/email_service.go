package models

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/newbienorbie/prostore/config"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

// SendPurchaseReceipt mails the order receipt to the buyer. Failures are the
// caller's to log; a lost receipt never fails the payment flow.
func (s *EmailService) SendPurchaseReceipt(order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", order.UserEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - %s", order.ID, config.AppConfig.AppName))

	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(`
            <tr>
                <td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: center;">%d</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">$%s</td>
            </tr>`, item.Name, item.Qty, item.Price))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #1f2937; }
        .order-box { background-color: #f9fafb; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .totals td { padding: 4px 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">%s</div>
        </div>
        <h2 style="color: #333;">Purchase Receipt</h2>
        <p>Thank you for your order!</p>

        <div class="order-box">
            <p><strong>Order ID:</strong> %s</p>
            <p><strong>Purchase Date:</strong> %s</p>
            <table style="width: 100%%; border-collapse: collapse;">
                <tr>
                    <th style="text-align: left; padding: 8px;">Product</th>
                    <th style="padding: 8px;">Qty</th>
                    <th style="text-align: right; padding: 8px;">Price</th>
                </tr>
                %s
            </table>
            <table class="totals" style="width: 100%%; margin-top: 16px;">
                <tr><td>Items</td><td style="text-align: right;">$%s</td></tr>
                <tr><td>Shipping</td><td style="text-align: right;">$%s</td></tr>
                <tr><td>Tax</td><td style="text-align: right;">$%s</td></tr>
                <tr><td><strong>Total</strong></td><td style="text-align: right;"><strong>$%s</strong></td></tr>
            </table>
        </div>

        <p>Your order has been paid and is being processed. We'll notify you when it ships.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`,
		config.AppConfig.AppName,
		order.ID,
		order.CreatedAt.Format("January 2, 2006"),
		rows.String(),
		order.ItemsPrice,
		order.ShippingPrice,
		order.TaxPrice,
		order.TotalPrice,
	)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
