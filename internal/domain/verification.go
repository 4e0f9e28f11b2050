package domain

// Phone verification flow: input -> verify -> verified. The countdown is
// the Redis TTL on the stored code; resend is blocked while it runs.

type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type SendCodeResponse struct {
	Phone            string `json:"phone"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code" validate:"required,numeric,len=6"`
}

type VerifyCodeResponse struct {
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}
