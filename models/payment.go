package models

import "strings"

// Internal payment method identifiers. The display names are what clients show;
// only the internal form is stored.
const (
	PaymentPaypal         = "Paypal"
	PaymentStripe         = "Stripe"
	PaymentTouchngo       = "Touchngo"
	PaymentCashOnDelivery = "Cashondelivery"
)

const DefaultPaymentMethod = PaymentTouchngo

var paymentMethodDisplay = map[string]string{
	PaymentPaypal:         "PayPal",
	PaymentStripe:         "Stripe",
	PaymentTouchngo:       "Touch 'n Go",
	PaymentCashOnDelivery: "Cash on Delivery",
}

// PaymentMethods lists the internal identifiers in a stable order.
var PaymentMethods = []string{
	PaymentPaypal,
	PaymentStripe,
	PaymentTouchngo,
	PaymentCashOnDelivery,
}

// NormalizePaymentMethod maps either an internal identifier or a display name
// (case-insensitively) to the internal form. Unknown input returns "".
func NormalizePaymentMethod(method string) string {
	trimmed := strings.TrimSpace(method)
	for internal, display := range paymentMethodDisplay {
		if strings.EqualFold(trimmed, internal) || strings.EqualFold(trimmed, display) {
			return internal
		}
	}
	return ""
}

// PaymentMethodDisplay returns the display name for an internal identifier.
func PaymentMethodDisplay(method string) string {
	if display, ok := paymentMethodDisplay[method]; ok {
		return display
	}
	return method
}
