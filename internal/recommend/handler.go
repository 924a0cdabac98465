package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"orientation-backend/internal/catalog"
	"orientation-backend/internal/shared/server/respond"
	"orientation-backend/internal/shared/telemetry"
)

// Handler exposes the scoring engine and catalog read endpoints.
type Handler struct {
	Engine  *Engine
	Catalog *catalog.Catalog
}

// NewHandler constructs a Handler.
func NewHandler(engine *Engine, cat *catalog.Catalog) *Handler {
	return &Handler{Engine: engine, Catalog: cat}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommend", h.recommend)
	rg.GET("/tracks", h.listTracks)
	rg.GET("/subjects", h.listSubjects)
}

// recommendationView decorates an engine result with the advisory status
// label for the UI.
type recommendationView struct {
	Recommendation
	Status string `json:"status"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	recommendationID := uuid.NewString()
	c.Set("recommendationId", recommendationID)
	c.Set("trackId", req.TrackID)

	results, err := h.Engine.Recommend(req.TrackID, req.Scores)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "trackId and scores are required", nil)
		case errors.Is(err, ErrInvalidTrack):
			respond.Error(c, http.StatusBadRequest, ErrorCodeInvalidTrack, "unknown track identifier", nil)
		default:
			telemetry.Error("recommend.failed", map[string]any{
				"recommendation_id": recommendationID,
				"track_id":          req.TrackID,
				"error":             err.Error(),
			})
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to compute recommendations", nil)
		}
		return
	}

	telemetry.Info("recommend.complete", map[string]any{
		"recommendation_id": recommendationID,
		"track_id":          req.TrackID,
		"subjects":          len(req.Scores),
		"results":           len(results),
	})

	views := make([]recommendationView, 0, len(results))
	for _, result := range results {
		views = append(views, recommendationView{
			Recommendation: result,
			Status:         Classify(result.StudentScore, result.MinScore2024),
		})
	}
	respond.OK(c, views)
}

type trackView struct {
	ID               string   `json:"id"`
	NameAr           string   `json:"name_ar"`
	NameFr           string   `json:"name_fr"`
	RequiredSubjects []string `json:"required_subjects"`
}

func (h *Handler) listTracks(c *gin.Context) {
	tracks := h.Catalog.Tracks()
	views := make([]trackView, 0, len(tracks))
	for _, track := range tracks {
		views = append(views, trackView{
			ID:               track.ID,
			NameAr:           track.NameAr,
			NameFr:           track.NameFr,
			RequiredSubjects: track.RequiredSubjects,
		})
	}
	respond.OK(c, views)
}

func (h *Handler) listSubjects(c *gin.Context) {
	respond.OK(c, h.Catalog.Subjects())
}
