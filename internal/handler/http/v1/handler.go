package v1

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/community_map_system/internal/config"
	"github.com/shenikar/community_map_system/internal/geocode"
	"github.com/shenikar/community_map_system/internal/models"
	"github.com/shenikar/community_map_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Geocoder - контракт прокси геокодирования. Вызовы уходят во внешний сервис
// и выполняются вне мьютексов ядра.
type Geocoder interface {
	Search(ctx context.Context, address string) ([]geocode.Location, error)
	Reverse(ctx context.Context, lat, lon float64) (*geocode.Location, error)
}

type Handler struct {
	incidentService  service.IncidentService
	communityService service.CommunityService
	geocoder         Geocoder
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(incidentService service.IncidentService, communityService service.CommunityService, geocoder Geocoder, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  incidentService,
		communityService: communityService,
		geocoder:         geocoder,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError транслирует таксономию ошибок сервиса в HTTP-статусы.
// 4xx несут машиночитаемый код причины, 5xx наружу непрозрачны и логируются.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case models.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message, "code": appErr.Reason})
			return
		case models.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message, "code": appErr.Reason})
			return
		}
	}
	log.WithError(err).Error("Unexpected internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary Report a new incident
// @Description Submit a new incident report. Cluster count and verification status are computed at admission.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": models.ReasonInvalidCoordinates})
		return
	}

	incident, err := h.incidentService.CreateIncident(c.Request.Context(), DTOToIncidentInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary List active incidents
// @Description List incidents inside the retention window, newest first. Contact fields are not part of the public payload.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param hours query int false "Narrowing window in hours (e.g. 2, 4, 6)"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid hours parameter"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	hours := 0
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be a positive integer", "code": models.ReasonInvalidHoursWindow})
			return
		}
		hours = parsed
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), hours)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary React to an incident
// @Description Record a like or dislike. At most one reaction per identity key; repeating is a no-op, switching moves the count.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param reaction body ReactRequest true "Reaction with identity key"
// @Success 200 {object} ReactionResponse
// @Failure 400 {object} map[string]string "Invalid reaction or missing identity key"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/react [post]
func (h *Handler) reactToIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found", "code": models.ReasonIncidentNotFound})
		return
	}
	log := h.logger.WithField("method", "reactToIncident").WithField("id", id)

	var input ReactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Ключ идентичности допускается и заголовком, тело имеет приоритет
	if input.IdentityKey == "" {
		input.IdentityKey = c.GetHeader("X-Identity-Key")
	}

	counts, err := h.incidentService.React(c.Request.Context(), id, input.IdentityKey, input.Reaction)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReactionResponse{LikeCount: counts.Likes, DislikeCount: counts.Dislikes})
}

// @Summary Presence heartbeat
// @Description Refresh a map session and return the number of currently active users.
// @Tags Presence
// @Accept json
// @Produce json
// @Param sessionId path string true "Client session ID"
// @Success 200 {object} HeartbeatResponse
// @Failure 400 {object} map[string]string "Missing session id"
// @Router /users/heartbeat/{sessionId} [post]
func (h *Handler) heartbeat(c *gin.Context) {
	log := h.logger.WithField("method", "heartbeat")

	count, err := h.incidentService.Heartbeat(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, HeartbeatResponse{ActiveCount: count})
}

// @Summary List incidents with contact fields
// @Description Admin listing including reporter contact fields. Requires the shared admin credential.
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Success 200 {array} AdminIncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /admin/incidents [get]
func (h *Handler) listIncidentsAdmin(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidentsAdmin")

	incidents, err := h.incidentService.ListIncidentsAdmin(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAdminIncidentResponses(incidents))
}

// @Summary Update an incident
// @Description Admin update of category, urgency and description. Location, timestamps, verification and cluster count are immutable.
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Fields to update"
// @Success 200 {object} AdminIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /admin/incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found", "code": models.ReasonIncidentNotFound})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	incident, err := h.incidentService.UpdateIncident(c.Request.Context(), id, DTOToIncidentUpdate(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAdminIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Admin deletion of an incident. Removes the record and its reactions unconditionally.
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /admin/incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found", "code": models.ReasonIncidentNotFound})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Verify the admin credential
// @Description Check the shared admin account and PIN pair used to gate the admin dashboard.
// @Tags Admin
// @Accept json
// @Produce json
// @Param auth body AdminVerifyRequest true "Admin credential"
// @Success 200 {object} map[string]any "Verified"
// @Failure 401 {object} map[string]string "Invalid account or PIN"
// @Router /admin/verify [post]
func (h *Handler) verifyAdmin(c *gin.Context) {
	var input AdminVerifyRequest
	log := h.logger.WithField("method", "verifyAdmin")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountOK := subtle.ConstantTimeCompare([]byte(input.Account), []byte(h.cfg.AdminAccount)) == 1
	pinOK := subtle.ConstantTimeCompare([]byte(input.Pin), []byte(h.cfg.AdminPin)) == 1
	if !accountOK || !pinOK {
		log.Warn("Invalid admin credential provided")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid account or PIN"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin verified"})
}

// @Summary Geocode an address
// @Description Forward geocoding via the external geocoding service.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param address body GeocodeRequest true "Address to look up"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Empty address"
// @Router /geocode [post]
func (h *Handler) geocodeAddress(c *gin.Context) {
	var input GeocodeRequest
	log := h.logger.WithField("method", "geocodeAddress")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": models.ReasonEmptyAddress})
		return
	}

	locations, err := h.geocoder.Search(c.Request.Context(), input.Address)
	if err != nil {
		log.WithError(err).Error("Geocoding request failed")
		c.JSON(http.StatusOK, GeocodeResponse{Success: false, Message: "Error searching address"})
		return
	}
	c.JSON(http.StatusOK, LocationsToGeocodeResponse(locations))
}

// @Summary Reverse geocode coordinates
// @Description Reverse geocoding via the external geocoding service.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param coordinates body ReverseGeocodeRequest true "Coordinates to look up"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Missing coordinates"
// @Router /geocode/reverse [post]
func (h *Handler) reverseGeocode(c *gin.Context) {
	var input ReverseGeocodeRequest
	log := h.logger.WithField("method", "reverseGeocode")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": models.ReasonInvalidCoordinates})
		return
	}

	location, err := h.geocoder.Reverse(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		log.WithError(err).Error("Reverse geocoding request failed")
		c.JSON(http.StatusOK, GeocodeResponse{Success: false, Message: "Error resolving coordinates"})
		return
	}
	c.JSON(http.StatusOK, LocationsToGeocodeResponse([]geocode.Location{*location}))
}

// @Summary Post a chat message
// @Tags Community
// @Accept json
// @Produce json
// @Param message body ChatMessageRequest true "Chat message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "Empty message"
// @Router /chat [post]
func (h *Handler) postChatMessage(c *gin.Context) {
	var input ChatMessageRequest
	log := h.logger.WithField("method", "postChatMessage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, err := h.communityService.PostChatMessage(c.Request.Context(), input.Author, input.Message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// @Summary List recent chat messages
// @Tags Community
// @Produce json
// @Success 200 {array} models.ChatMessage
// @Router /chat [get]
func (h *Handler) listChatMessages(c *gin.Context) {
	log := h.logger.WithField("method", "listChatMessages")

	messages, err := h.communityService.ListChatMessages(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Add a street highlight
// @Tags Community
// @Accept json
// @Produce json
// @Param highlight body StreetHighlightRequest true "Street highlight"
// @Success 201 {object} models.StreetHighlight
// @Failure 400 {object} map[string]string "Validation error"
// @Router /streets/highlights [post]
func (h *Handler) addStreetHighlight(c *gin.Context) {
	var input StreetHighlightRequest
	log := h.logger.WithField("method", "addStreetHighlight")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	highlight, err := h.communityService.AddStreetHighlight(c.Request.Context(), input.StreetKey, input.Color)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, highlight)
}

// @Summary List street highlights
// @Tags Community
// @Produce json
// @Success 200 {array} models.StreetHighlight
// @Router /streets/highlights [get]
func (h *Handler) listStreetHighlights(c *gin.Context) {
	log := h.logger.WithField("method", "listStreetHighlights")

	highlights, err := h.communityService.ListStreetHighlights(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, highlights)
}

// @Summary Delete a street highlight
// @Tags Admin
// @Security AdminAuth
// @Param id path int true "Highlight ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Highlight not found"
// @Router /streets/highlights/{id} [delete]
func (h *Handler) deleteStreetHighlight(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "street highlight not found", "code": models.ReasonRecordNotFound})
		return
	}
	log := h.logger.WithField("method", "deleteStreetHighlight").WithField("id", id)

	if err := h.communityService.RemoveStreetHighlight(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add a street note
// @Tags Community
// @Accept json
// @Produce json
// @Param note body StreetNoteRequest true "Street note"
// @Success 201 {object} models.StreetNote
// @Failure 400 {object} map[string]string "Validation error"
// @Router /streets/notes [post]
func (h *Handler) addStreetNote(c *gin.Context) {
	var input StreetNoteRequest
	log := h.logger.WithField("method", "addStreetNote")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.communityService.AddStreetNote(c.Request.Context(), input.StreetKey, input.Note)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// @Summary List street notes
// @Tags Community
// @Produce json
// @Success 200 {array} models.StreetNote
// @Router /streets/notes [get]
func (h *Handler) listStreetNotes(c *gin.Context) {
	log := h.logger.WithField("method", "listStreetNotes")

	notes, err := h.communityService.ListStreetNotes(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// @Summary Delete a street note
// @Tags Admin
// @Security AdminAuth
// @Param id path int true "Note ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Note not found"
// @Router /streets/notes/{id} [delete]
func (h *Handler) deleteStreetNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "street note not found", "code": models.ReasonRecordNotFound})
		return
	}
	log := h.logger.WithField("method", "deleteStreetNote").WithField("id", id)

	if err := h.communityService.RemoveStreetNote(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the welcome notice
// @Tags Community
// @Produce json
// @Success 200 {object} models.WelcomeNotice
// @Router /notice [get]
func (h *Handler) getWelcomeNotice(c *gin.Context) {
	log := h.logger.WithField("method", "getWelcomeNotice")

	notice, err := h.communityService.GetWelcomeNotice(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// @Summary Update the welcome notice
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param notice body NoticeRequest true "Notice content"
// @Success 200 {object} models.WelcomeNotice
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notice [put]
func (h *Handler) setWelcomeNotice(c *gin.Context) {
	var input NoticeRequest
	log := h.logger.WithField("method", "setWelcomeNotice")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	notice, err := h.communityService.SetWelcomeNotice(c.Request.Context(), input.Content)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// @Summary API root
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Community Map API"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
