package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"facade-scan/internal/client"
	"facade-scan/internal/service"
)

type Handler struct {
	buildingService  *service.BuildingService
	detectionService *service.DetectionService
	statsService     *service.StatsService
	geocoder         *client.GeocoderClient
	log              zerolog.Logger
}

func NewHandler(
	buildingService *service.BuildingService,
	detectionService *service.DetectionService,
	statsService *service.StatsService,
	geocoder *client.GeocoderClient,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		buildingService:  buildingService,
		detectionService: detectionService,
		statsService:     statsService,
		geocoder:         geocoder,
		log:              log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/buildings", h.listBuildings)
		api.POST("/buildings", h.createBuilding)
		api.GET("/buildings/:id", h.getBuilding)
		api.GET("/buildings/:id/windows", h.listWindows)
		api.GET("/buildings/:id/windows/summary", h.windowSummary)
		api.POST("/buildings/:id/detect", h.startDetection)
		api.GET("/buildings/:id/sessions", h.listSessions)
		api.GET("/sessions/recent", h.recentSessions)
		api.GET("/stats", h.overview)
		api.GET("/geocode", h.geocode)
	}
}

func (h *Handler) listBuildings(c *gin.Context) {
	buildings, err := h.buildingService.ListBuildings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(buildings))
}

func (h *Handler) createBuilding(c *gin.Context) {
	var req struct {
		Name          string   `json:"name" binding:"required"`
		Address       *string  `json:"address"`
		Latitude      *float64 `json:"latitude" binding:"required"`
		Longitude     *float64 `json:"longitude" binding:"required"`
		GooglePlaceID *string  `json:"google_place_id"`
		Geometry      *string  `json:"geometry"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	building, err := h.buildingService.CreateBuilding(c.Request.Context(), service.CreateBuildingInput{
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		GooglePlaceID: req.GooglePlaceID,
		Geometry:      req.Geometry,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(building))
}

func (h *Handler) getBuilding(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	building, err := h.buildingService.GetBuilding(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(building))
}

func (h *Handler) listWindows(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	windows, err := h.buildingService.ListWindows(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(windows))
}

func (h *Handler) windowSummary(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	summary, err := h.statsService.WindowSummary(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) startDetection(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	session, err := h.detectionService.StartDetection(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, successResponse(session))
}

func (h *Handler) listSessions(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	sessions, err := h.detectionService.ListSessions(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(sessions))
}

func (h *Handler) recentSessions(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, errorResponse("invalid limit"))
			return
		}
		limit = parsed
	}

	sessions, err := h.statsService.RecentSessions(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(sessions))
}

func (h *Handler) overview(c *gin.Context) {
	stats, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) geocode(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, errorResponse("query is required"))
		return
	}

	result, err := h.geocoder.Geocode(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, client.ErrNoResults) {
			c.JSON(http.StatusNotFound, errorResponse("no results for query"))
			return
		}
		h.log.Error().Err(err).Msg("geocode failed")
		c.JSON(http.StatusBadGateway, errorResponse("geocoder unavailable"))
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrStorage):
		h.log.Error().Err(err).Msg("storage error")
		c.JSON(http.StatusServiceUnavailable, errorResponse("storage unavailable"))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
