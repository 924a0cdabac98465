package scoretext

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"orientation-backend/internal/extract"
	"orientation-backend/internal/shared/server/respond"
	"orientation-backend/internal/shared/telemetry"
)

const maxUploadBytes = 5 << 20

// Handler exposes the score-slip extraction endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extractScores)
}

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	TrackID string             `json:"trackId"`
	Scores  map[string]float64 `json:"scores"`
}

// extractScores accepts either raw text (JSON body) or an uploaded score slip
// (multipart "file", PDF or plain text) and returns the parsed score mapping
// with the detected track. Image OCR happens upstream; this endpoint only
// parses text.
func (h *Handler) extractScores(c *gin.Context) {
	extractionID := uuid.NewString()
	c.Set("extractionId", extractionID)

	text, ok := h.readText(c)
	if !ok {
		return
	}

	scores := ParseScores(text)
	if len(scores) == 0 {
		respond.Error(c, http.StatusUnprocessableEntity, "no_scores_found", "no recognizable scores in the provided text", nil)
		return
	}

	trackID := DetectTrack(scores)
	telemetry.Info("extract.complete", map[string]any{
		"extraction_id": extractionID,
		"track_id":      trackID,
		"subjects":      len(scores),
	})

	respond.OK(c, extractResponse{TrackID: trackID, Scores: scores})
}

func (h *Handler) readText(c *gin.Context) (string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		if header.Size > maxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds size limit", nil)
			return "", false
		}
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read uploaded file", nil)
			return "", false
		}
		if len(data) > maxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds size limit", nil)
			return "", false
		}
		text, err := extract.TextFromBytes(c.Request.Context(), data, header.Header.Get("Content-Type"), header.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "could not extract text from file", nil)
			return "", false
		}
		return text, true
	}

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text or file is required", nil)
		return "", false
	}
	return req.Text, true
}
