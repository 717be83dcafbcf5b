package settings

type SettingsResponse struct {
	Theme        string `json:"theme"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
	BusinessCode string `json:"business_code,omitempty"`
	TimeZone     string `json:"time_zone,omitempty"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type ResetRequest struct {
	WipeProfile bool `json:"wipe_profile"`
}
