package payment

// Intent is the backend's answer to create-payment-intent: an opaque
// client secret the provider uses to tie the confirmation to the amount.
type Intent struct {
	ClientSecret string `json:"clientSecret"`
}

const StatusSucceeded = "succeeded"

// ConfirmResult is the provider's terminal answer for a confirmation
// attempt. Anything other than StatusSucceeded leaves the order unmade.
type ConfirmResult struct {
	Status  string
	Message string
}

func (r *ConfirmResult) Succeeded() bool {
	return r != nil && r.Status == StatusSucceeded
}
