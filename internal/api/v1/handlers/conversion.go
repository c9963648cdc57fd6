package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "memo2text/internal/api/errors"
	"memo2text/internal/api/middleware"
	"memo2text/internal/api/v1/dto"
	"memo2text/internal/app/audio"
)

// ConversionHandler exposes the MP3 conversion operation over HTTP.
type ConversionHandler struct{}

func NewConversionHandler() *ConversionHandler {
	return &ConversionHandler{}
}

// Create converts the referenced audio file to MP3. The call blocks for the
// whole encode; there is no job queue behind it.
func (h *ConversionHandler) Create(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, apierrors.NewBadRequestError(err.Error()))
		return
	}

	if err := audio.ConvertToMP3(req.InputPath, req.OutputPath); err != nil {
		middleware.HandleError(c, apierrors.FromAppError(err))
		return
	}

	resp := dto.ConvertResponse{OutputPath: req.OutputPath}
	if duration, err := audio.GetAudioDuration(req.OutputPath); err == nil {
		resp.DurationSec = duration
	}

	c.JSON(http.StatusCreated, resp)
}
