package entity

// BusinessProfile mirrors the backend's singleton per-tenant profile. The
// nested policy objects stay loosely typed because the setup assistant
// patches them with arbitrary keys.
type BusinessProfile struct {
	Name             string                 `json:"name"`
	BusinessType     string                 `json:"business_type"`
	BusinessCode     string                 `json:"business_code,omitempty"`
	Tagline          string                 `json:"tagline,omitempty"`
	ProfileImageURL  string                 `json:"profile_image_url,omitempty"`
	CoverImageURL    string                 `json:"cover_image_url,omitempty"`
	Location         string                 `json:"location,omitempty"`
	ContactPhone     string                 `json:"contact_phone,omitempty"`
	WhatsappNumber   string                 `json:"whatsapp_number,omitempty"`
	TimeZone         string                 `json:"time_zone,omitempty"`
	OpeningHours     map[string]string      `json:"opening_hours,omitempty"`
	Services         []Service              `json:"services"`
	BookingRules     map[string]interface{} `json:"booking_rules,omitempty"`
	Payments         map[string]interface{} `json:"payments,omitempty"`
	Refunds          map[string]interface{} `json:"refunds,omitempty"`
	VoiceAndLanguage map[string]interface{} `json:"voice_and_language,omitempty"`
}

// Service is an ordered entry in the profile's catalog. IDs are opaque
// strings assigned by the backend and optional; the list position is not a
// stable identifier.
type Service struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Category        string   `json:"category,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
}

// ProfilePatch is a partial profile. Nil fields were absent from the patch
// and must not override the draft; a non-nil Services slice replaces the
// catalog wholesale.
type ProfilePatch struct {
	Name             *string                `json:"name,omitempty"`
	BusinessType     *string                `json:"business_type,omitempty"`
	BusinessCode     *string                `json:"business_code,omitempty"`
	Tagline          *string                `json:"tagline,omitempty"`
	ProfileImageURL  *string                `json:"profile_image_url,omitempty"`
	CoverImageURL    *string                `json:"cover_image_url,omitempty"`
	Location         *string                `json:"location,omitempty"`
	ContactPhone     *string                `json:"contact_phone,omitempty"`
	WhatsappNumber   *string                `json:"whatsapp_number,omitempty"`
	TimeZone         *string                `json:"time_zone,omitempty"`
	OpeningHours     map[string]string      `json:"opening_hours,omitempty"`
	Services         *[]Service             `json:"services,omitempty"`
	BookingRules     map[string]interface{} `json:"booking_rules,omitempty"`
	Payments         map[string]interface{} `json:"payments,omitempty"`
	Refunds          map[string]interface{} `json:"refunds,omitempty"`
	VoiceAndLanguage map[string]interface{} `json:"voice_and_language,omitempty"`
}
