package apclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/esmevane/apread/pkg/apub"
	"github.com/esmevane/apread/pkg/webfinger"
)

// Resolution is the full record of one handle resolution: each stage's
// request URL, parsed document, and raw body. The raw bodies back the
// discover command's --raw and --expand output.
type Resolution struct {
	Handle       webfinger.Handle
	WebFingerURL string
	WebFinger    *webfinger.Document
	WebFingerRaw json.RawMessage
	ActorURL     string
	Actor        *apub.Actor
	ActorRaw     json.RawMessage
	Index        *apub.OutboxIndex
	IndexRaw     json.RawMessage
	Page         *apub.Page
	PageRaw      json.RawMessage
}

// Resolve walks the discovery chain for a handle: WebFinger document,
// actor document, outbox index, first outbox page. Each stage's URL
// comes from the previous stage's response, so the four fetches are
// strictly sequential. The first failure aborts the whole walk.
func (c *Client) Resolve(ctx context.Context, handle webfinger.Handle) (*Resolution, error) {
	res := &Resolution{
		Handle:       handle,
		WebFingerURL: handle.WebFingerURL(),
	}

	var doc webfinger.Document
	raw, err := c.fetch(ctx, res.WebFingerURL, apub.MediaTypeActivityJSON, &doc)
	if err != nil {
		return nil, fmt.Errorf("webfinger: %w", err)
	}
	res.WebFinger, res.WebFingerRaw = &doc, raw

	res.ActorURL, err = doc.FeedHref()
	if err != nil {
		return nil, err
	}

	var actor apub.Actor
	raw, err = c.fetch(ctx, res.ActorURL, apub.MediaTypeLDJSON, &actor)
	if err != nil {
		return nil, fmt.Errorf("actor: %w", err)
	}
	res.Actor, res.ActorRaw = &actor, raw

	var index apub.OutboxIndex
	raw, err = c.fetch(ctx, actor.Outbox, apub.MediaTypeLDJSON, &index)
	if err != nil {
		return nil, fmt.Errorf("outbox: %w", err)
	}
	res.Index, res.IndexRaw = &index, raw

	var page apub.Page
	raw, err = c.fetch(ctx, index.First, apub.MediaTypeLDJSON, &page)
	if err != nil {
		return nil, fmt.Errorf("outbox page: %w", err)
	}
	res.Page, res.PageRaw = &page, raw

	return res, nil
}

// FetchWebFinger fetches and parses only the WebFinger document for a
// handle, for callers that stop before the actor walk (the open
// command resolves a profile page this way).
func (c *Client) FetchWebFinger(ctx context.Context, handle webfinger.Handle) (*webfinger.Document, error) {
	var doc webfinger.Document
	if _, err := c.fetch(ctx, handle.WebFingerURL(), apub.MediaTypeActivityJSON, &doc); err != nil {
		return nil, fmt.Errorf("webfinger: %w", err)
	}
	return &doc, nil
}
