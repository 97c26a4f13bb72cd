package webfinger

// Link relation types seen in fediverse WebFinger documents

// RelProfilePage is the link relation for a user's web profile page
const RelProfilePage = "http://webfinger.net/rel/profile-page"

// RelSelf is the link relation for the user's ActivityPub actor document
const RelSelf = "self"

// RelSubscribe is the link relation for the remote-follow template
const RelSubscribe = "http://ostatus.org/schema/1.0/subscribe"

// WellKnownPath is the path portion of the WebFinger discovery endpoint
const WellKnownPath = "/.well-known/webfinger"
