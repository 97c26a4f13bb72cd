package apub

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kazarena/json-gold/ld"
)

// Expand runs JSON-LD expansion on a raw ActivityPub document,
// resolving every term against the document's @context so properties
// come back as fully-qualified IRIs. Used by the discover command to
// show what a server is actually publishing behind its aliases.
func Expand(raw []byte, client *http.Client) ([]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document for expansion: %w", err)
	}

	options := ld.NewJsonLdOptions("")
	options.DocumentLoader = ld.NewDefaultDocumentLoader(client)

	expanded, err := ld.NewJsonLdProcessor().Expand(doc, options)
	if err != nil {
		return nil, fmt.Errorf("json-ld expansion failed: %w", err)
	}

	return expanded, nil
}
