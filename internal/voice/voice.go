// Package voice holds the static catalog of supported voices.
package voice

// Descriptor describes one provider voice.
type Descriptor struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// catalog lists the two Lithuanian neural voices the service supports.
// Voice negotiation beyond this list is out of scope.
var catalog = []Descriptor{
	{
		Name:        "lt-LT-LeonasNeural",
		Gender:      "Male",
		Language:    "Lithuanian",
		Description: "Natural-sounding male Lithuanian voice",
	},
	{
		Name:        "lt-LT-OnaNeural",
		Gender:      "Female",
		Language:    "Lithuanian",
		Description: "Natural-sounding female Lithuanian voice",
	},
}

// Catalog returns the supported voices. The returned slice is a copy, so
// callers cannot mutate the catalog.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}
