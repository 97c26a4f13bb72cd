package webfinger

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoFeedLink indicates a WebFinger document with no self link
var ErrNoFeedLink = errors.New("no feed link")

// ParseDocument parses a WebFinger response body
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse webfinger document: %w", err)
	}
	return &doc, nil
}

// FeedHref returns the href of the actor document link.
//
// The links are scanned in document order and the last self link wins;
// real documents carry at most one. The last-wins rule is established
// resolution behavior, change it only with a compatibility review.
func (d *Document) FeedHref() (string, error) {
	href := ""
	for _, link := range d.Links {
		if link.Rel == RelSelf && link.Href != "" {
			href = link.Href
		}
	}

	if href == "" {
		return "", ErrNoFeedLink
	}
	return href, nil
}

// ProfileHref returns the href of the first profile-page link, or empty
// if the document has none
func (d *Document) ProfileHref() string {
	for _, link := range d.Links {
		if link.Rel == RelProfilePage {
			return link.Href
		}
	}
	return ""
}

// SubscribeTemplate returns the remote-follow URI template, or empty if
// the document has none
func (d *Document) SubscribeTemplate() string {
	for _, link := range d.Links {
		if link.Rel == RelSubscribe {
			return link.Template
		}
	}
	return ""
}
