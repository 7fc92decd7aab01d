package models

// Envelope is the uniform JSON shape returned by every API endpoint,
// successful or not.
//
// Errors is present only on validation failures and carries a mapping from
// field name to the ordered list of violation messages for that field.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	StatusCode int    `json:"status_code"`

	Errors map[string][]string `json:"errors,omitempty"`

	// Meta is injected by the versioning middleware after the handler has
	// produced its envelope. Handlers normally leave it nil.
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries the versioning metadata attached to every JSON object
// response that does not already declare a "meta" key.
type Meta struct {
	APIVersion string `json:"api_version"`
	Timestamp  string `json:"timestamp"`
}
