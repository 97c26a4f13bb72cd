package webfinger

// Document represents a WebFinger response (RFC 7033 JRD)
type Document struct {
	Subject string   `json:"subject,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
	Links   []Link   `json:"links"`
}

// Link represents a link in a WebFinger document.
//
// Only the rel values named in constants.go are acted on. Links with any
// other rel are carried but ignored, so documents from servers with
// protocol extensions still parse.
type Link struct {
	Rel      string `json:"rel"`
	Type     string `json:"type,omitempty"`
	Href     string `json:"href,omitempty"`
	Template string `json:"template,omitempty"`
}
