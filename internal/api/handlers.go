package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwiater/chatfreq/internal/logging"
	"github.com/mwiater/chatfreq/internal/render"
	"github.com/mwiater/chatfreq/internal/wordfreq"
)

// uploadField is the multipart field carrying the archive files.
const uploadField = "files"

func NewHandler(analyzer Analyzer, maxUploadBytes int64) *Handler {
	return &Handler{
		analyzer:       analyzer,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) PostAnalyze(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var files []*multipart.FileHeader
	form, err := c.MultipartForm()
	switch {
	case err == nil:
		files = form.File[uploadField]
	case errors.Is(err, http.ErrNotMultipart):
		// treated as an empty batch below
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{
				Error:   "upload too large",
				Message: fmt.Sprintf("Uploads are limited to %d bytes.", h.maxUploadBytes),
			})
			return
		}
		logging.LogEvent("[HTTP] Invalid upload form: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid form", Message: err.Error()})
		return
	}

	inputs := make([]wordfreq.RawInput, 0, len(files))
	for _, fh := range files {
		input, err := readUpload(fh)
		if err != nil {
			logging.LogEvent("[HTTP] Failed to read upload %s: %v", fh.Filename, err)
			c.JSON(http.StatusBadRequest, errorResponse{Error: "unreadable upload", Message: err.Error()})
			return
		}
		inputs = append(inputs, input)
	}

	report, err := h.analyzer.Analyze(c.Request.Context(), inputs)
	if err != nil {
		if errors.Is(err, wordfreq.ErrEmptyBatch) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Message: wordfreq.UserMessage(err)})
			return
		}
		logging.LogEvent("[HTTP] Analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, render.NewReportJSON(report))
}

func (h *Handler) GetTop(c *gin.Context) {
	if !h.analyzer.Analyzed() {
		h.preconditionFailed(c)
		return
	}
	c.JSON(http.StatusOK, topResponse{
		Top:     h.analyzer.Top(),
		Summary: h.analyzer.Summary(),
	})
}

func (h *Handler) GetSearch(c *gin.Context) {
	if !h.analyzer.Analyzed() {
		h.preconditionFailed(c)
		return
	}
	word := c.Query("word")
	if strings.TrimSpace(word) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "word required", Message: "Enter a word to search."})
		return
	}

	res, err := h.analyzer.Search(word)
	if err != nil {
		if errors.Is(err, wordfreq.ErrNoAnalysis) {
			h.preconditionFailed(c)
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "search failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, render.NewLookupJSON(res))
}

func (h *Handler) GetHealth(c *gin.Context) {
	table := h.analyzer.Table()
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"timestamp":      time.Now().Format(time.RFC3339),
		"analyzed":       table != nil,
		"distinct_words": table.Len(),
	})
}

func (h *Handler) preconditionFailed(c *gin.Context) {
	c.JSON(http.StatusConflict, errorResponse{
		Error:   wordfreq.ErrNoAnalysis.Error(),
		Message: wordfreq.UserMessage(wordfreq.ErrNoAnalysis),
	})
}

// readUpload reads one uploaded file. The part's declared Content-Type is
// used as the media type; generic or missing types fall back to the file
// extension.
func readUpload(fh *multipart.FileHeader) (wordfreq.RawInput, error) {
	f, err := fh.Open()
	if err != nil {
		return wordfreq.RawInput{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return wordfreq.RawInput{}, err
	}

	mediaType := strings.TrimSpace(fh.Header.Get("Content-Type"))
	if mediaType == "" || strings.HasPrefix(mediaType, "application/octet-stream") {
		mediaType = wordfreq.MediaTypeForName(fh.Filename)
	}
	return wordfreq.RawInput{Name: fh.Filename, MediaType: mediaType, Data: data}, nil
}
