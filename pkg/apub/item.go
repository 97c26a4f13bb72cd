package apub

import "encoding/json"

// Activity type discriminators this package distinguishes. The tag set
// is open: anything that is not a Create decodes as a payload-free
// boost item rather than failing.
const (
	TypeCreate   = "Create"
	TypeAnnounce = "Announce"
)

// Item is one activity in an outbox page, discriminated by Type.
// Object and Published are only populated for Create activities.
type Item struct {
	Type      string `json:"type"`
	Published string `json:"published,omitempty"`
	Object    *Note  `json:"object,omitempty"`
}

// IsPost reports whether the item is a rendered post (a Create)
func (i Item) IsPost() bool {
	return i.Type == TypeCreate
}

// UnmarshalJSON decodes an activity by its type tag. Create activities
// keep their embedded object; every other type (Announce, Like,
// Delete, anything a server ships next) becomes a bare item carrying
// only its type string.
func (i *Item) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	if head.Type != TypeCreate {
		*i = Item{Type: head.Type}
		return nil
	}

	var full struct {
		Type      string `json:"type"`
		Published string `json:"published"`
		Object    *Note  `json:"object"`
	}
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}

	*i = Item{Type: full.Type, Published: full.Published, Object: full.Object}
	return nil
}
