// Package prompt composes the fixed-template prompt sent to the model
// provider. Build is a pure function: no I/O, no state.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"docqa/internal/domain"
)

// Template is the fixed prompt layout. The trailing ANSWER: cue tells the
// model where generation should begin.
const Template = `You are answering questions about a document the user uploaded.
Use only the document content below.

DOCUMENT CONTENT:
%s

----------------------------------------

QUESTION: %s

ANSWER:`

// Build serializes the document content and interpolates it, together with
// the literal question, into Template.
func Build(document json.RawMessage, contentType domain.ContentType, question string) string {
	return fmt.Sprintf(Template, serialize(document, contentType), question)
}

// serialize renders the client-held document JSON as readable text. Table
// content is re-indented without re-decoding, which keeps sheet order
// byte-for-byte; text content is the decoded JSON string.
func serialize(document json.RawMessage, contentType domain.ContentType) string {
	if contentType == domain.ContentTypeTable {
		var out bytes.Buffer
		if err := json.Indent(&out, document, "", "  "); err != nil {
			return string(document)
		}
		return out.String()
	}
	var text string
	if err := json.Unmarshal(document, &text); err != nil {
		return string(document)
	}
	return text
}
