package auth

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type SignupRequest struct {
	BusinessName   string `json:"business_name" validate:"required,min=2,max=255"`
	BusinessType   string `json:"business_type" validate:"omitempty,max=64"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	WhatsappNumber string `json:"whatsapp_number" validate:"omitempty,min=8,max=20"`
}

type PasswordRecoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AuthResponse struct {
	SessionToken string `json:"session_token"`
	TenantID     string `json:"tenant_id"`
	BusinessName string `json:"business_name,omitempty"`
	Redirect     string `json:"redirect"`
}

type SessionResponse struct {
	TenantID      string `json:"tenant_id,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Theme         string `json:"theme,omitempty"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}
