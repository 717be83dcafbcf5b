package aifeatures

// The AI surfaces pass loosely typed documents through from the backend:
// their shape is owned by the model prompts and changes without notice,
// so nothing here pins field names down.

type InsightResponse struct {
	Result map[string]interface{} `json:"result"`
}

type SocialContentRequest struct {
	Platform     string `json:"platform" validate:"required,oneof=instagram facebook twitter whatsapp"`
	ContentType  string `json:"content_type" validate:"required,max=64"`
	ServiceFocus string `json:"service_focus" validate:"max=128"`
	Tone         string `json:"tone" validate:"max=64"`
}

type PersonalizationRequest struct {
	CustomerID  string                 `json:"customer_id" validate:"required,max=64"`
	Preferences map[string]interface{} `json:"preferences" validate:"required"`
}
