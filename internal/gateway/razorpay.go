package gateway

import (
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase"

	"github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// RazorpayGateway adapts the Razorpay SDK to the narrow gateway port.
// Callback signatures are HMACs of "orderID|paymentID" under the key
// secret; webhook signatures cover the raw body under the separate
// webhook secret.
type RazorpayGateway struct {
	client *razorpay.Client
	cfg    config.RazorpayConfig
}

func NewRazorpayGateway(cfg config.RazorpayConfig) usecase.PaymentGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
	}
}

func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to create razorpay order")
	}
	orderID, ok := order["id"].(string)
	if !ok {
		return "", errs.New("razorpay order response missing id")
	}
	return orderID, nil
}

func (g *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.cfg.KeySecret)
}

func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	return utils.VerifyWebhookSignature(string(body), signature, g.cfg.WebhookSecret)
}
