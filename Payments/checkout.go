package Payments

import (
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

// AppointmentPriceCents is the fixed price of a booking, in minor units.
const AppointmentPriceCents = 5000

// Setup reads the Stripe secret key from the environment. Call once at
// startup, after the .env file has been loaded.
func Setup() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
}

func successURL() string {
	if url := os.Getenv("CHECKOUT_SUCCESS_URL"); url != "" {
		return url
	}
	return "http://localhost:8000/success"
}

func cancelURL() string {
	if url := os.Getenv("CHECKOUT_CANCEL_URL"); url != "" {
		return url
	}
	return "http://localhost:8000/cancel"
}

// CreateCheckoutSession builds a single line-item checkout for the fixed
// appointment price and returns the hosted checkout page URL.
func CreateCheckoutSession(patientName string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Appointment with %s", patientName)),
					},
					UnitAmount: stripe.Int64(AppointmentPriceCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL()),
		CancelURL:  stripe.String(cancelURL()),
	}

	checkout, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}
	return checkout.URL, nil
}
