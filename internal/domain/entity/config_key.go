package entity

// ConfigKeyInfo documents one configuration key for `config schema`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "gesture.drag_slop".
	Key string `json:"key"`

	// Type is the Go type name.
	Type string `json:"type"`

	// Default is the default value rendered as text.
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted values of string enums.
	Values []string `json:"values,omitempty"`

	// Range describes numeric bounds such as "1-64".
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}
