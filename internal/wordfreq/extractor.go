// internal/wordfreq/extractor.go
package wordfreq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultMediaType is the media type of an exported chat archive.
	DefaultMediaType = "application/json"
	// DefaultMessagesField names the array of message objects in an archive.
	DefaultMessagesField = "messages"
	// DefaultContentField names the text field of a message object.
	DefaultContentField = "content"
)

// utf8BOM is dropped from the start of a document, as browsers do when reading text.
var utf8BOM = []byte("\xef\xbb\xbf")

// RawInput is one uploaded unit of a batch.
type RawInput struct {
	Name      string
	MediaType string
	Data      []byte
}

// MessageRecord is a single message extracted from a RawInput. A nil Content
// means the message carried no text field.
type MessageRecord struct {
	Content *string
}

// Text returns the record's content, or "" when absent.
func (r MessageRecord) Text() string {
	if r.Content == nil {
		return ""
	}
	return *r.Content
}

// ExtractResult is the outcome of extracting one input. Exactly one of
// Records, Skipped or Err describes it: parsed, ignored for its media type, or
// failed. A failed input never has records.
type ExtractResult struct {
	Name    string
	Records []MessageRecord
	Skipped bool
	Err     *MalformedInputError
}

// OK reports whether the input was parsed.
func (r ExtractResult) OK() bool {
	return !r.Skipped && r.Err == nil
}

// ExtractorOptions configures an Extractor. Zero fields fall back to defaults.
type ExtractorOptions struct {
	MediaTypes     []string
	MessagesField  string
	ContentField   string
	RepairEncoding bool
}

// Extractor turns raw archive inputs into message records.
type Extractor struct {
	mediaTypes     map[string]struct{}
	messagesField  string
	contentField   string
	repairEncoding bool
	schema         *gojsonschema.Schema
}

// NewExtractor builds an Extractor and compiles the archive schema for the
// configured field names.
func NewExtractor(opts ExtractorOptions) (*Extractor, error) {
	e := &Extractor{
		mediaTypes:     make(map[string]struct{}),
		messagesField:  strings.TrimSpace(opts.MessagesField),
		contentField:   strings.TrimSpace(opts.ContentField),
		repairEncoding: opts.RepairEncoding,
	}
	if e.messagesField == "" {
		e.messagesField = DefaultMessagesField
	}
	if e.contentField == "" {
		e.contentField = DefaultContentField
	}

	mediaTypes := opts.MediaTypes
	if len(mediaTypes) == 0 {
		mediaTypes = []string{DefaultMediaType}
	}
	for _, mt := range mediaTypes {
		if normalized := normalizeMediaType(mt); normalized != "" {
			e.mediaTypes[normalized] = struct{}{}
		}
	}
	if len(e.mediaTypes) == 0 {
		return nil, fmt.Errorf("at least one media type is required")
	}

	schema, err := compileArchiveSchema(e.messagesField, e.contentField)
	if err != nil {
		return nil, err
	}
	e.schema = schema
	return e, nil
}

// Accepts reports whether mediaType marks an input the extractor parses.
func (e *Extractor) Accepts(mediaType string) bool {
	_, ok := e.mediaTypes[normalizeMediaType(mediaType)]
	return ok
}

// Extract parses in into message records. It never panics or aborts on bad
// input; failures are reported in the result.
func (e *Extractor) Extract(in RawInput) ExtractResult {
	result := ExtractResult{Name: in.Name}
	if !e.Accepts(in.MediaType) {
		result.Skipped = true
		return result
	}

	fail := func(reason string, err error) ExtractResult {
		result.Err = &MalformedInputError{Name: in.Name, Reason: reason, Err: err}
		return result
	}

	if !utf8.Valid(in.Data) {
		return fail("invalid encoding", fmt.Errorf("document is not valid UTF-8"))
	}
	data := bytes.TrimPrefix(in.Data, utf8BOM)
	if err := validateArchive(e.schema, data); err != nil {
		return fail("unexpected structure", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fail("unexpected structure", err)
	}
	var messages []map[string]json.RawMessage
	if err := json.Unmarshal(doc[e.messagesField], &messages); err != nil {
		return fail("unexpected structure", fmt.Errorf("decode %s: %w", e.messagesField, err))
	}

	records := make([]MessageRecord, 0, len(messages))
	for i, msg := range messages {
		var content *string
		if raw, ok := msg[e.contentField]; ok {
			if err := json.Unmarshal(raw, &content); err != nil {
				return fail("unexpected structure", fmt.Errorf("decode %s[%d].%s: %w", e.messagesField, i, e.contentField, err))
			}
		}
		if content != nil && e.repairEncoding {
			repaired := repairMojibake(*content)
			content = &repaired
		}
		records = append(records, MessageRecord{Content: content})
	}
	result.Records = records
	return result
}

// MediaTypeForName returns the media type a browser file picker would declare
// for a file name, judged by its extension.
func MediaTypeForName(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return normalizeMediaType(mime.TypeByExtension(strings.ToLower(name[idx:])))
}

func normalizeMediaType(mt string) string {
	mt = strings.TrimSpace(mt)
	if mt == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(mt)
	if err != nil {
		return strings.ToLower(mt)
	}
	return parsed
}
