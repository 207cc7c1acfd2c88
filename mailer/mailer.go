package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/ELWAANY111/Verto-Store55/models"
)

// Mailer sends order notifications to a fixed administrative address over
// SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New creates a Mailer using the given SMTP credentials. Notifications are
// delivered to the adminAddr mailbox.
func New(host string, port int, user, pass, adminAddr string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		to:     adminAddr,
	}
}

// NotifyOrderCreated emails a summary of the order to the admin address.
func (m *Mailer) NotifyOrderCreated(order *models.Order) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Store Admin")
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New order from %s", order.FullName))
	msg.SetBody("text/plain", Summary(order))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send order notification: %w", err)
	}
	return nil
}

// Summary renders a plain-text description of the order for the email body.
func Summary(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n\n", order.ID.Hex())
	fmt.Fprintf(&b, "Customer: %s\n", order.FullName)
	fmt.Fprintf(&b, "Ship to: %s, %s %s\n", order.Address, order.City, order.ZipCode)
	fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "Payment method: %s\n\n", order.PaymentMethod)
	for _, item := range order.CartItems {
		name := item.Name
		if name == "" {
			name = item.ProductID.Hex()
		}
		fmt.Fprintf(&b, "  %d x %s @ %.2f\n", item.Quantity, name, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.TotalPrice)
	return b.String()
}
