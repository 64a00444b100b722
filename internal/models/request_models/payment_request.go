package request_models

// KiwifyWebhook is the payload the payment provider posts on every order
// event. Only the fields the tier transition needs are mapped; the raw
// body is kept for the telemetry snapshot.
type KiwifyWebhook struct {
	OrderStatus string         `json:"order_status"`
	ProductID   string         `json:"product_id"`
	ProductName string         `json:"product_name"`
	Customer    KiwifyCustomer `json:"Customer"`
}

type KiwifyCustomer struct {
	Email string `json:"email"`
}
