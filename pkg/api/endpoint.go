package api

import (
	"net/url"
	"strings"
)

// Endpoint is the collection path an item lives under, e.g. /api/reviews.
type Endpoint string

const Reviews Endpoint = "/api/reviews"

func DiscussionPosts(discussionID string) Endpoint {
	return Endpoint("/api/discussions/" + url.PathEscape(discussionID) + "/posts")
}

// Path builds {endpoint}/{id}/{parts...}.
func (e Endpoint) Path(id string, parts ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(string(e), "/"))
	if id != "" {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(id))
	}
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}
