package webfinger

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadHandle indicates the input string is not an id@domain handle
var ErrBadHandle = errors.New("unable to read handle")

// Handle is a parsed fediverse address, e.g. "alice@example.social"
type Handle struct {
	ID     string
	Domain string
}

// ParseHandle splits a raw id@domain string into a Handle.
//
// Components past the second are silently dropped: "a@b@c" parses as
// id "a" on domain "b". A leading @ leaves the first component empty
// and fails; strip it before calling.
func ParseHandle(raw string) (Handle, error) {
	parts := strings.Split(raw, "@")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Handle{}, ErrBadHandle
	}

	return Handle{ID: parts[0], Domain: parts[1]}, nil
}

// String returns the handle in id@domain form
func (h Handle) String() string {
	return h.ID + "@" + h.Domain
}

// Acct returns the acct: URI for the handle
func (h Handle) Acct() string {
	return "acct:" + h.String()
}

// WebFingerURL returns the discovery URL for the handle.
//
// The resource query value is inserted literally, not percent-escaped;
// servers expect the acct: form verbatim and callers are responsible
// for supplying valid identifier components.
func (h Handle) WebFingerURL() string {
	return fmt.Sprintf("https://%s%s?resource=%s", h.Domain, WellKnownPath, h.Acct())
}
