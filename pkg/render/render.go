// Package render turns outbox pages into terminal output: it extracts
// post content, converts the embedded HTML to markdown, and arranges
// the wrapped result under a per-post header.
package render

import (
	"fmt"
	"io"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/mitchellh/go-wordwrap"

	"github.com/esmevane/apread/pkg/apub"
	"github.com/esmevane/apread/pkg/webfinger"
)

// DefaultWidth is the wrap column used when no width is configured
const DefaultWidth = 80

const (
	headerWidth = 15
	indent      = "     "
)

var converter = md.NewConverter("", true, nil)

// Post is one renderable post extracted from an outbox page
type Post struct {
	Markdown  string
	Published string
}

// ExtractPosts filters a page down to its Create items, in order, and
// converts each embedded note's HTML content to markdown. Conversion
// is treated as total: if the converter rejects the input, the raw
// content is kept as-is.
func ExtractPosts(page *apub.Page) []Post {
	var posts []Post
	for _, item := range page.Posts() {
		content := ""
		if item.Object != nil {
			content = item.Object.Content
		}
		posts = append(posts, Post{
			Markdown:  htmlToMarkdown(content),
			Published: item.Published,
		})
	}
	return posts
}

func htmlToMarkdown(content string) string {
	out, err := converter.ConvertString(content)
	if err != nil {
		return content
	}
	return out
}

// Wrap breaks text to the given column width, returning the lines
func Wrap(text string, width uint) []string {
	if width == 0 {
		width = DefaultWidth
	}
	wrapped := wordwrap.WrapString(text, width)
	if wrapped == "" {
		return nil
	}
	return strings.Split(wrapped, "\n")
}

// Render writes the posts to w: for each post the handle's id
// right-aligned in a 15-column header, a blank line, the body wrapped
// to width and indented five spaces, then a blank separator line.
func Render(w io.Writer, handle webfinger.Handle, posts []Post, width uint) error {
	for _, post := range posts {
		if _, err := fmt.Fprintf(w, "%*s\n\n", headerWidth, handle.ID); err != nil {
			return err
		}
		for _, line := range Wrap(post.Markdown, width) {
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
