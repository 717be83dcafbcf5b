package onboarding

import (
	"AgentDock/internal/entity"
	"math"
	"strings"
)

// DefaultDraft is the wizard's starting point for a brand-new tenant:
// general business, Lagos time, naira pricing, typical shop hours and one
// empty half-hour service to edit.
func DefaultDraft() entity.BusinessProfile {
	return entity.BusinessProfile{
		BusinessType: "general",
		TimeZone:     "Africa/Lagos",
		OpeningHours: map[string]string{
			"monday":    "09:00-18:00",
			"tuesday":   "09:00-18:00",
			"wednesday": "09:00-18:00",
			"thursday":  "09:00-18:00",
			"friday":    "09:00-18:00",
			"saturday":  "10:00-16:00",
			"sunday":    "closed",
		},
		Payments: map[string]interface{}{
			"currency": "NGN",
		},
		Services: []entity.Service{
			{Name: "", DurationMinutes: 30},
		},
	}
}

// FillDefaults backfills empty sections of an existing profile with the
// wizard defaults, so a half-finished tenant still sees a complete form.
func FillDefaults(profile entity.BusinessProfile) entity.BusinessProfile {
	defaults := DefaultDraft()

	if profile.BusinessType == "" {
		profile.BusinessType = defaults.BusinessType
	}
	if profile.TimeZone == "" {
		profile.TimeZone = defaults.TimeZone
	}
	if len(profile.OpeningHours) == 0 {
		profile.OpeningHours = defaults.OpeningHours
	}
	if len(profile.Payments) == 0 {
		profile.Payments = defaults.Payments
	}
	if len(profile.Services) == 0 {
		profile.Services = defaults.Services
	}

	return profile
}

// Merge applies a partial update onto a draft. Top-level fields present in
// the patch win; the nested policy objects merge key by key so patching one
// weekday keeps the rest; the services list is replaced wholesale when the
// patch carries one. The business code is backend-assigned and never
// patchable.
func Merge(base entity.BusinessProfile, patch *entity.ProfilePatch) entity.BusinessProfile {
	if patch == nil {
		return base
	}

	if patch.Name != nil {
		base.Name = *patch.Name
	}
	if patch.BusinessType != nil {
		base.BusinessType = *patch.BusinessType
	}
	if patch.Tagline != nil {
		base.Tagline = *patch.Tagline
	}
	if patch.ProfileImageURL != nil {
		base.ProfileImageURL = *patch.ProfileImageURL
	}
	if patch.CoverImageURL != nil {
		base.CoverImageURL = *patch.CoverImageURL
	}
	if patch.Location != nil {
		base.Location = *patch.Location
	}
	if patch.ContactPhone != nil {
		base.ContactPhone = *patch.ContactPhone
	}
	if patch.WhatsappNumber != nil {
		base.WhatsappNumber = *patch.WhatsappNumber
	}
	if patch.TimeZone != nil {
		base.TimeZone = *patch.TimeZone
	}

	base.OpeningHours = mergeStringMap(base.OpeningHours, patch.OpeningHours)
	base.BookingRules = mergeMap(base.BookingRules, patch.BookingRules)
	base.Payments = mergeMap(base.Payments, patch.Payments)
	base.Refunds = mergeMap(base.Refunds, patch.Refunds)
	base.VoiceAndLanguage = mergeMap(base.VoiceAndLanguage, patch.VoiceAndLanguage)

	if patch.Services != nil {
		base.Services = append([]entity.Service(nil), (*patch.Services)...)
	}

	return base
}

func mergeStringMap(base, patch map[string]string) map[string]string {
	if len(patch) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

func mergeMap(base, patch map[string]interface{}) map[string]interface{} {
	if len(patch) == 0 {
		return base
	}
	merged := make(map[string]interface{}, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Completeness scores the draft against the six checks the dashboard
// surfaces: name, location, contact, hours, a named service and a policy.
func Completeness(profile entity.BusinessProfile) int {
	checks := []bool{
		strings.TrimSpace(profile.Name) != "",
		strings.TrimSpace(profile.Location) != "",
		strings.TrimSpace(profile.ContactPhone) != "" || strings.TrimSpace(profile.WhatsappNumber) != "",
		hasOpeningHours(profile.OpeningHours),
		hasNamedService(profile.Services),
		len(profile.Refunds) > 0 || len(profile.BookingRules) > 0,
	}

	done := 0
	for _, ok := range checks {
		if ok {
			done++
		}
	}

	percent := int(math.Round(float64(done) / float64(len(checks)) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func hasOpeningHours(hours map[string]string) bool {
	for _, v := range hours {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func hasNamedService(services []entity.Service) bool {
	for _, svc := range services {
		if strings.TrimSpace(svc.Name) != "" {
			return true
		}
	}
	return false
}
