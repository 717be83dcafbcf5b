package dashboard

import (
	"net/url"
	"os"
)

const sandboxNumberEnv = "WHATSAPP_SANDBOX_NUMBER"

// SandboxLinks builds the wa.me deep links shown on the overview card:
// one to open the shared sandbox number, one that pre-fills the tenant's
// START code so a test customer lands on the right business. Both are
// empty until the backend has assigned a business code.
func SandboxLinks(businessCode string) (joinLink, startLink, startCode string) {
	if businessCode == "" {
		return "", "", ""
	}

	number := os.Getenv(sandboxNumberEnv)
	if number == "" {
		return "", "", ""
	}

	startCode = "START-" + businessCode
	joinLink = "https://wa.me/" + number
	startLink = joinLink + "?text=" + url.QueryEscape(startCode)
	return joinLink, startLink, startCode
}
