package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "memo2text/internal/api/errors"
	"memo2text/internal/api/middleware"
	"memo2text/internal/api/v1/dto"
	"memo2text/internal/app/api"
	"memo2text/internal/app/api/provider"
)

// TranscriptionHandler exposes transcription over HTTP.
type TranscriptionHandler struct {
	registry *provider.Registry
}

func NewTranscriptionHandler(registry *provider.Registry) *TranscriptionHandler {
	return &TranscriptionHandler{registry: registry}
}

// Create transcribes the referenced audio file and returns the text. The call
// blocks for the whole model load and inference.
func (h *TranscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateTranscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, apierrors.NewBadRequestError(err.Error()))
		return
	}

	// Resolve the name first so the response can report which engine ran,
	// also when the default served the request.
	engineName := req.Engine
	if engineName == "" {
		engineName = h.registry.DefaultName()
	}
	engine, err := h.registry.Get(engineName)
	if err != nil {
		middleware.HandleError(c, apierrors.NewValidationError(err.Error(), map[string]string{"engine": "unknown engine"}))
		return
	}

	var text string
	if mt, ok := engine.(api.ModelTranscriber); ok && req.Model != "" {
		text, err = mt.TranscriptWithModel(req.FilePath, req.Model)
	} else {
		text, err = engine.Transcript(req.FilePath)
	}
	if err != nil {
		middleware.HandleError(c, apierrors.FromAppError(err))
		return
	}

	c.JSON(http.StatusOK, dto.TranscriptionResponse{
		Text:   text,
		Engine: engineName,
		Model:  req.Model,
	})
}

// ListEngines returns the registered engine names.
func (h *TranscriptionHandler) ListEngines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"engines": h.registry.Names()})
}
