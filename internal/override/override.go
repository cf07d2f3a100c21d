// Package override is the configuration-injection point consumed by the
// patched server: given a provider identifier it returns an optional
// endpoint override. Absent overrides yield default behavior, so the layer
// is purely additive.
package override

import (
	"os"

	"github.com/joho/godotenv"
)

// Override is a custom endpoint for one provider.
type Override struct {
	Provider string
	BaseURL  string
	APIKey   string
}

// provider maps an identifier to the environment variables that configure
// it. LegacyBaseURLVar, when set, is consulted after BaseURLVar.
type provider struct {
	ID               string
	BaseURLVar       string
	APIKeyVar        string
	LegacyBaseURLVar string
}

var providers = []provider{
	{ID: "openai", BaseURLVar: "OPENAI_BASE_URL", APIKeyVar: "OPENAI_API_KEY"},
	{ID: "xai", BaseURLVar: "XAI_BASE_URL", APIKeyVar: "XAI_API_KEY"},
	{ID: "dial", BaseURLVar: "DIAL_BASE_URL", APIKeyVar: "DIAL_API_KEY", LegacyBaseURLVar: "DIAL_API_HOST"},
}

// LoadEnv reads .env files into the process environment before lookups.
// Missing files are fine; real environment variables win.
func LoadEnv(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// Providers lists every identifier that supports an endpoint override.
func Providers() []string {
	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}
	return ids
}

// For returns the override for a provider identifier, or false when none is
// configured or the identifier is unknown.
func For(id string) (Override, bool) {
	for _, p := range providers {
		if p.ID != id {
			continue
		}
		baseURL := os.Getenv(p.BaseURLVar)
		if baseURL == "" && p.LegacyBaseURLVar != "" {
			baseURL = os.Getenv(p.LegacyBaseURLVar)
		}
		if baseURL == "" {
			return Override{}, false
		}
		return Override{Provider: id, BaseURL: baseURL, APIKey: os.Getenv(p.APIKeyVar)}, true
	}
	return Override{}, false
}
