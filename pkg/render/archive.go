package render

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/esmevane/apread/pkg/webfinger"
)

// WriteArchive saves each post as a numbered markdown file under dir,
// named {id}-{NNN}.md in page order. The filesystem is injected so
// tests run against an in-memory one.
func WriteArchive(fs afero.Fs, dir string, handle webfinger.Handle, posts []Post) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create archive dir: %w", err)
	}

	for i, post := range posts {
		var buf bytes.Buffer
		if post.Published != "" {
			fmt.Fprintf(&buf, "Published: %s\n\n", post.Published)
		}
		buf.WriteString(post.Markdown)
		buf.WriteString("\n")

		name := fmt.Sprintf("%s-%03d.md", handle.ID, i+1)
		path := filepath.Join(dir, name)
		if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}
