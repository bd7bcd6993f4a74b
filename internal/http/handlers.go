package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/factorio-tools/bpeditor/internal/analyze"
	"github.com/factorio-tools/bpeditor/internal/blueprint"
	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
	"github.com/factorio-tools/bpeditor/internal/editor"
	"github.com/factorio-tools/bpeditor/internal/logging"
	"github.com/factorio-tools/bpeditor/internal/monitoring"
)

const serviceVersion = "0.3.0"

// Handlers contains all HTTP handlers.
type Handlers struct {
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// NewHandlers creates a new handler set.
func NewHandlers(log *logging.Logger, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{log: log, metrics: metrics}
}

// stringRequest carries one exchange string.
type stringRequest struct {
	String string `json:"string" binding:"required"`
}

// encodeRequest carries a document to encode. Exactly one field must be
// set.
type encodeRequest struct {
	Blueprint *blueprint.Blueprint     `json:"blueprint,omitempty"`
	Book      *blueprint.BlueprintBook `json:"blueprint_book,omitempty"`
}

// analyzeRequest accepts either one exchange string or a blob of text to
// scan for them.
type analyzeRequest struct {
	String string `json:"string,omitempty"`
	Text   string `json:"text,omitempty"`
}

// Root handles the index health check.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "bpeditor",
		"version": serviceVersion,
	})
}

// Health reports service health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Decode parses an exchange string and returns the contained document.
func (h *Handlers) Decode(c *gin.Context) {
	var req stringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	bp, book, kind, err := codec.DecodeAny(req.String)
	h.metrics.RecordDecode(string(kind), err)
	if err != nil {
		h.log.Warn("decode failed", zap.Error(err))
		unprocessable(c, err)
		return
	}

	switch kind {
	case codec.KindBlueprint:
		c.JSON(http.StatusOK, gin.H{"kind": kind, "blueprint": bp})
	case codec.KindBook:
		c.JSON(http.StatusOK, gin.H{"kind": kind, "blueprint_book": book})
	}
}

// Encode serializes a document into an exchange string.
func (h *Handlers) Encode(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if (req.Blueprint == nil) == (req.Book == nil) {
		badRequest(c, errors.New("exactly one of blueprint or blueprint_book is required"))
		return
	}

	var (
		s    string
		kind codec.Kind
		err  error
	)
	if req.Blueprint != nil {
		kind = codec.KindBlueprint
		fillDefaults(req.Blueprint)
		s, err = codec.Encode(req.Blueprint)
	} else {
		kind = codec.KindBook
		fillBookDefaults(req.Book)
		s, err = codec.EncodeBook(req.Book)
	}
	h.metrics.RecordEncode(string(kind), err)
	if err != nil {
		h.log.Error("encode failed", zap.Error(err))
		unprocessable(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"kind": kind, "string": s})
}

// Analyze runs the analyzer over one string or a blob of text.
func (h *Handlers) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	switch {
	case req.String != "":
		report := analyze.String(req.String, 1)
		h.metrics.StringsAnalyzed.Inc()
		c.JSON(http.StatusOK, gin.H{"report": report})
	case req.Text != "":
		reports, summary := analyze.Text(req.Text)
		h.metrics.StringsAnalyzed.Add(float64(len(reports)))
		c.JSON(http.StatusOK, gin.H{"reports": reports, "summary": summary})
	default:
		badRequest(c, errors.New("one of string or text is required"))
	}
}

// Stats computes statistics for one exchange string.
func (h *Handlers) Stats(c *gin.Context) {
	var req stringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	bp, book, kind, err := codec.DecodeAny(req.String)
	h.metrics.RecordDecode(string(kind), err)
	if err != nil {
		unprocessable(c, err)
		return
	}

	switch kind {
	case codec.KindBlueprint:
		c.JSON(http.StatusOK, gin.H{"kind": kind, "stats": editor.Wrap(bp).Stats()})
	case codec.KindBook:
		c.JSON(http.StatusOK, gin.H{"kind": kind, "stats": editor.WrapBook(book).Stats()})
	}
}

// Validate decodes an exchange string and reports validation issues. For
// a book, every contained blueprint is validated.
func (h *Handlers) Validate(c *gin.Context) {
	var req stringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	bp, book, kind, err := codec.DecodeAny(req.String)
	h.metrics.RecordDecode(string(kind), err)
	if err != nil {
		unprocessable(c, err)
		return
	}

	issues := []editor.Issue{}
	switch kind {
	case codec.KindBlueprint:
		issues = append(issues, editor.Wrap(bp).Validate()...)
	case codec.KindBook:
		issues = append(issues, editor.WrapBook(book).Validate()...)
	}

	c.JSON(http.StatusOK, gin.H{"kind": kind, "valid": len(issues) == 0, "issues": issues})
}

func fillDefaults(bp *blueprint.Blueprint) {
	if bp.Item == "" {
		bp.Item = "blueprint"
	}
	if bp.Version == 0 {
		bp.Version = blueprint.DefaultVersion
	}
}

func fillBookDefaults(book *blueprint.BlueprintBook) {
	if book.Item == "" {
		book.Item = "blueprint-book"
	}
	if book.Version == 0 {
		book.Version = blueprint.DefaultVersion
	}
	for _, entry := range book.Blueprints {
		if entry.Blueprint != nil {
			fillDefaults(entry.Blueprint)
		}
		if entry.Book != nil {
			fillBookDefaults(entry.Book)
		}
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func unprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
