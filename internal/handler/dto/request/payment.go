package request

type ConfirmPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type RedeemCredentialRequest struct {
	Token string `json:"token" binding:"required"`
}
