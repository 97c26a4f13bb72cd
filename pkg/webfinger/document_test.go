package webfinger

import (
	"errors"
	"testing"
)

func TestParseDocument(t *testing.T) {
	body := []byte(`{
		"subject": "acct:alice@example.social",
		"aliases": ["https://example.social/@alice"],
		"links": [
			{"rel": "http://webfinger.net/rel/profile-page", "type": "text/html", "href": "https://example.social/@alice"},
			{"rel": "self", "type": "application/activity+json", "href": "https://example.social/actor/alice"},
			{"rel": "http://ostatus.org/schema/1.0/subscribe", "template": "https://example.social/authorize_interaction?uri={uri}"}
		]
	}`)

	doc, err := ParseDocument(body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if doc.Subject != "acct:alice@example.social" {
		t.Errorf("Unexpected subject: %q", doc.Subject)
	}
	if len(doc.Links) != 3 {
		t.Fatalf("Expected 3 links, got %d", len(doc.Links))
	}

	href, err := doc.FeedHref()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if href != "https://example.social/actor/alice" {
		t.Errorf("Expected actor href, got %q", href)
	}

	if doc.ProfileHref() != "https://example.social/@alice" {
		t.Errorf("Unexpected profile href: %q", doc.ProfileHref())
	}
	if doc.SubscribeTemplate() != "https://example.social/authorize_interaction?uri={uri}" {
		t.Errorf("Unexpected subscribe template: %q", doc.SubscribeTemplate())
	}
}

func TestDocument_FeedHref_LastWins(t *testing.T) {
	doc := &Document{
		Links: []Link{
			{Rel: RelProfilePage, Href: "https://example.social/@alice"},
			{Rel: RelSelf, Href: "A"},
			{Rel: RelSelf, Href: "B"},
			{Rel: RelSubscribe, Template: "https://example.social/follow?uri={uri}"},
		},
	}

	href, err := doc.FeedHref()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if href != "B" {
		t.Errorf("Expected last self link to win, got %q", href)
	}
}

func TestDocument_FeedHref_Missing(t *testing.T) {
	doc := &Document{
		Links: []Link{
			{Rel: RelProfilePage, Href: "https://example.social/@alice"},
		},
	}

	_, err := doc.FeedHref()
	if !errors.Is(err, ErrNoFeedLink) {
		t.Errorf("Expected ErrNoFeedLink, got %v", err)
	}
}

func TestParseDocument_UnknownRelsIgnored(t *testing.T) {
	body := []byte(`{
		"links": [
			{"rel": "http://example.org/rel/new-hotness", "href": "https://example.social/hot"},
			{"rel": "self", "href": "https://example.social/actor/alice"}
		]
	}`)

	doc, err := ParseDocument(body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	href, err := doc.FeedHref()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if href != "https://example.social/actor/alice" {
		t.Errorf("Unexpected feed href: %q", href)
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	if _, err := ParseDocument([]byte("not json")); err == nil {
		t.Error("Expected parse error for malformed body")
	}
}
