package render

import "strings"

// Tier is the minimum plan a template is offered on. Tiers are informational only.
type Tier string

const (
	TierFree     Tier = "free"
	TierPro      Tier = "pro"
	TierBusiness Tier = "business"
)

// DefaultTemplateID is used when a caller names no template or an unknown one.
const DefaultTemplateID = "classic"

// Template is one registry entry.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tier    Tier   `json:"tier"`
	Default bool   `json:"default"`
	File    string `json:"-"`
}

var registry = []Template{
	{ID: "classic", Name: "Classic", Tier: TierFree, Default: true, File: "templates/classic.html"},
	{ID: "modern", Name: "Modern", Tier: TierPro, File: "templates/modern.html"},
	{ID: "minimal", Name: "Minimal", Tier: TierPro, File: "templates/minimal.html"},
	{ID: "executive", Name: "Executive", Tier: TierBusiness, File: "templates/executive.html"},
}

// Templates returns a copy of the registry in display order.
func Templates() []Template {
	out := make([]Template, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the template registered under id. Unknown ids resolve to the
// default template with ok=false.
func Lookup(id string) (Template, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range registry {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range registry {
		if t.Default {
			return t, false
		}
	}
	return registry[0], false
}
