// pkg/registry/schema.go
package registry

// IntentRegistry lists the intents a fulfillment deployment serves.
type IntentRegistry struct {
	Version string   `json:"version"`
	Bot     string   `json:"bot"`
	Intents []Intent `json:"intents"`
}

type Intent struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Slots       []Slot   `json:"slots,omitempty"`
	ErrorCodes  []string `json:"errorCodes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Slot struct {
	Name      string   `json:"name"`
	Validated bool     `json:"validated"`
	Values    []string `json:"values,omitempty"`
}
