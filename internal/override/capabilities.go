package override

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capabilities describe what a model is assumed to support.
type Capabilities struct {
	Model        string
	Provider     string
	FriendlyName string

	ContextWindow   int
	MaxOutputTokens int

	SupportsSystemPrompts   bool
	SupportsStreaming       bool
	SupportsFunctionCalling bool
	SupportsJSONMode        bool
	SupportsImages          bool
	SupportsTemperature     bool

	Description string
}

// DefaultCapabilities returns conservative assumptions for a model name that
// is not in the provider's registry. Only available when the provider has an
// active endpoint override; without one the caller should surface the usual
// unknown-model error.
func DefaultCapabilities(model, providerID string) (Capabilities, bool) {
	if _, ok := For(providerID); !ok {
		return Capabilities{}, false
	}
	title := cases.Title(language.English).String(providerID)
	return Capabilities{
		Model:        model,
		Provider:     providerID,
		FriendlyName: fmt.Sprintf("%s (%s)", title, model),
		// Conservative defaults for OpenAI-compatible endpoints.
		ContextWindow:           128000,
		MaxOutputTokens:         4096,
		SupportsSystemPrompts:   true,
		SupportsStreaming:       true,
		SupportsFunctionCalling: true,
		SupportsJSONMode:        true,
		SupportsImages:          false,
		SupportsTemperature:     true,
		Description:             fmt.Sprintf("custom model via %s endpoint override", providerID),
	}, true
}
