package apub

// ActivityStreamsContext is the JSON-LD context IRI for ActivityStreams
const ActivityStreamsContext = "https://www.w3.org/ns/activitystreams"

// Media types for ActivityPub requests
const (
	// MediaTypeActivityJSON is the Accept value for WebFinger discovery
	MediaTypeActivityJSON = "application/activity+json"

	// MediaTypeLDJSON is the Accept value for actor and outbox fetches
	MediaTypeLDJSON = `application/ld+json; profile="https://www.w3.org/ns/activitystreams"`
)

// Actor is an ActivityPub actor document. The pipeline only needs
// Outbox; the remaining fields feed the discover command and are
// tolerated as absent.
type Actor struct {
	Context           any    `json:"@context,omitempty"`
	ID                string `json:"id,omitempty"`
	Type              string `json:"type,omitempty"`
	PreferredUsername string `json:"preferredUsername,omitempty"`
	Name              string `json:"name,omitempty"`
	Summary           string `json:"summary,omitempty"`
	URL               string `json:"url,omitempty"`
	Inbox             string `json:"inbox,omitempty"`
	Outbox            string `json:"outbox"`
	Followers         string `json:"followers,omitempty"`
	Following         string `json:"following,omitempty"`
	Published         string `json:"published,omitempty"`
}

// OutboxIndex is the top-level OrderedCollection of an actor's outbox.
// Only First is consumed when resolving posts; TotalItems and Last are
// carried for the discover command and future paging.
type OutboxIndex struct {
	ID         string `json:"id,omitempty"`
	Type       string `json:"type,omitempty"`
	TotalItems int    `json:"totalItems"`
	First      string `json:"first"`
	Last       string `json:"last,omitempty"`
}

// Page is one OrderedCollectionPage of an outbox
type Page struct {
	ID           string `json:"id,omitempty"`
	Type         string `json:"type,omitempty"`
	PartOf       string `json:"partOf,omitempty"`
	Next         string `json:"next,omitempty"`
	Prev         string `json:"prev,omitempty"`
	OrderedItems []Item `json:"orderedItems"`
}

// Posts returns the Create items of the page in their original order,
// dropping boosts and any other activity kinds
func (p *Page) Posts() []Item {
	var posts []Item
	for _, item := range p.OrderedItems {
		if item.IsPost() {
			posts = append(posts, item)
		}
	}
	return posts
}

// Note is the object embedded in a Create activity
type Note struct {
	ID           string `json:"id,omitempty"`
	Type         string `json:"type,omitempty"`
	Published    string `json:"published,omitempty"`
	URL          string `json:"url,omitempty"`
	AttributedTo string `json:"attributedTo,omitempty"`
	Content      string `json:"content"`
}
