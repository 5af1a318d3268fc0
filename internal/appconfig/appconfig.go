// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwiater/chatfreq/internal/wordfreq"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultListenAddr is where the HTTP service listens when the config omits it.
	defaultListenAddr = ":8080"
	// defaultMaxUploadBytes caps the multipart body accepted by the HTTP service.
	defaultMaxUploadBytes = 32 << 20
	// maxWorkers bounds concurrent extraction regardless of configuration.
	maxWorkers = 64
)

// Config represents the top-level application configuration.
type Config struct {
	Debug             bool     `json:"debug"`
	JSONMode          bool     `json:"jsonMode"`
	LogFile           string   `json:"logFile,omitempty"`
	Limit             int      `json:"limit,omitempty"`
	Workers           int      `json:"workers,omitempty"`
	RepairEncoding    bool     `json:"repairEncoding"`
	MediaTypes        []string `json:"mediaTypes,omitempty"`
	MessagesField     string   `json:"messagesField,omitempty"`
	ContentField      string   `json:"contentField,omitempty"`
	ExtraStopWords    []string `json:"extraStopWords,omitempty"`
	AllowedExtensions []string `json:"allowedExtensions,omitempty"`
	ExcludeGlobs      []string `json:"excludeGlobs,omitempty"`
	ListenAddr        string   `json:"listenAddr,omitempty"`
	MaxUploadBytes    int64    `json:"maxUploadBytes,omitempty"`
	ConfigPath        string   `json:"-"`
}

// RankLimit returns the ranked view size, falling back to the default if not specified.
func (c Config) RankLimit() int {
	if c.Limit <= 0 {
		return wordfreq.DefaultLimit
	}
	return c.Limit
}

// WorkerCount returns how many inputs are extracted concurrently.
func (c Config) WorkerCount() int {
	switch {
	case c.Workers <= 0:
		return 1
	case c.Workers > maxWorkers:
		return maxWorkers
	default:
		return c.Workers
	}
}

// AcceptedMediaTypes returns the media types treated as chat archives.
func (c Config) AcceptedMediaTypes() []string {
	if types := nonBlank(c.MediaTypes); len(types) > 0 {
		return types
	}
	return []string{wordfreq.DefaultMediaType}
}

// InputExtensions returns the file extensions collected when walking directories.
func (c Config) InputExtensions() []string {
	if exts := nonBlank(c.AllowedExtensions); len(exts) > 0 {
		return exts
	}
	return []string{".json"}
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	if addr := strings.TrimSpace(c.ListenAddr); addr != "" {
		return addr
	}
	return defaultListenAddr
}

// UploadLimit returns the maximum accepted upload size in bytes.
func (c Config) UploadLimit() int64 {
	if c.MaxUploadBytes <= 0 {
		return defaultMaxUploadBytes
	}
	return c.MaxUploadBytes
}

// MessagesFieldName returns the archive field holding the message array.
func (c Config) MessagesFieldName() string {
	if f := strings.TrimSpace(c.MessagesField); f != "" {
		return f
	}
	return wordfreq.DefaultMessagesField
}

// ContentFieldName returns the message field holding the text.
func (c Config) ContentFieldName() string {
	if f := strings.TrimSpace(c.ContentField); f != "" {
		return f
	}
	return wordfreq.DefaultContentField
}

// ExtractorOptions translates the archive settings for the extractor.
func (c Config) ExtractorOptions() wordfreq.ExtractorOptions {
	return wordfreq.ExtractorOptions{
		MediaTypes:     c.AcceptedMediaTypes(),
		MessagesField:  c.MessagesFieldName(),
		ContentField:   c.ContentFieldName(),
		RepairEncoding: c.RepairEncoding,
	}
}

// StopWords returns the default stop words plus any configured extras.
func (c Config) StopWords() wordfreq.StopWordSet {
	return wordfreq.DefaultStopWords().With(c.ExtraStopWords...)
}

// NewAnalyzer builds an analyzer from the configuration.
func (c Config) NewAnalyzer(opts ...wordfreq.Option) (*wordfreq.Analyzer, error) {
	extractor, err := wordfreq.NewExtractor(c.ExtractorOptions())
	if err != nil {
		return nil, fmt.Errorf("configure extractor: %w", err)
	}
	base := []wordfreq.Option{
		wordfreq.WithExtractor(extractor),
		wordfreq.WithStopWords(c.StopWords()),
		wordfreq.WithLimit(c.RankLimit()),
		wordfreq.WithWorkers(c.WorkerCount()),
	}
	return wordfreq.NewAnalyzer(append(base, opts...)...)
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Limit < 0 {
		return errors.New("limit must be zero or greater")
	}
	if c.Workers < 0 {
		return errors.New("workers must be zero or greater")
	}
	if c.MaxUploadBytes < 0 {
		return errors.New("maxUploadBytes must be zero or greater")
	}
	if c.MessagesFieldName() == c.ContentFieldName() {
		return errors.New("messagesField and contentField must differ")
	}
	return nil
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
