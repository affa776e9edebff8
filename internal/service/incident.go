package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_map_system/internal/models"
	"github.com/shenikar/community_map_system/internal/presence"
	"github.com/shenikar/community_map_system/internal/store"
	"github.com/shenikar/community_map_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// CreateIncidentInput - сырой вход операции создания. Поля проверяются здесь,
// на границе сервиса, внутренние компоненты повторной валидации не делают.
type CreateIncidentInput struct {
	Category     string
	Urgency      string
	Description  string
	Latitude     float64
	Longitude    float64
	ContactEmail string
	ContactPhone string
}

// IncidentService определяет контракт уровня запросов над ядром инцидентов и присутствия
type IncidentService interface {
	CreateIncident(ctx context.Context, input CreateIncidentInput) (*models.Incident, error)
	ListIncidents(ctx context.Context, hours int) ([]*models.Incident, error)
	ListIncidentsAdmin(ctx context.Context) ([]*models.Incident, error)
	React(ctx context.Context, incidentID uuid.UUID, identityKey string, reaction string) (models.ReactionCounts, error)
	UpdateIncident(ctx context.Context, incidentID uuid.UUID, upd models.IncidentUpdate) (*models.Incident, error)
	DeleteIncident(ctx context.Context, incidentID uuid.UUID) error
	Heartbeat(ctx context.Context, sessionID string) (int, error)
}

type incidentService struct {
	incidents *store.IncidentStore
	reactions *store.ReactionLedger
	tracker   *presence.Tracker
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
}

// NewIncidentService собирает сервис и связывает хук чистки хранилища с реестром
// реакций: строки просроченных и удаленных инцидентов выпадают из реестра.
// Окно удержания и радиус кластеризации живут в самих хранилищах.
func NewIncidentService(incidents *store.IncidentStore, reactions *store.ReactionLedger, tracker *presence.Tracker, publisher webhook.WebhookPublisher, logger *logrus.Logger) IncidentService {
	incidents.SetExpiryHook(reactions.Remove)
	return &incidentService{
		incidents: incidents,
		reactions: reactions,
		tracker:   tracker,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateIncident валидирует и допускает новое сообщение об инциденте
func (s *incidentService) CreateIncident(ctx context.Context, input CreateIncidentInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"category": input.Category,
	})
	log.Info("Attempting to create a new incident report")

	category := models.Category(input.Category)
	if !category.IsValid() {
		return nil, models.NewValidationError(models.ReasonInvalidCategory, fmt.Sprintf("unknown category %q", input.Category))
	}
	urgency := models.Urgency(input.Urgency)
	if !urgency.IsValid() {
		return nil, models.NewValidationError(models.ReasonInvalidUrgency, fmt.Sprintf("unknown urgency %q", input.Urgency))
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, models.NewValidationError(models.ReasonEmptyDescription, "description must not be empty")
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, models.NewValidationError(models.ReasonInvalidCoordinates, "latitude must be within ±90 and longitude within ±180")
	}

	inc := s.incidents.Create(category, urgency, input.Description, input.Latitude, input.Longitude, input.ContactEmail, input.ContactPhone)

	// Доставка событий - best effort, допуск инцидента от нее не зависит
	if err := s.publisher.Publish(ctx, webhook.WebhookEvent{
		Type:         webhook.EventIncidentCreated,
		IncidentID:   inc.ID,
		Category:     inc.Category,
		Urgency:      inc.Urgency,
		Latitude:     inc.Latitude,
		Longitude:    inc.Longitude,
		ClusterCount: inc.ClusterCount,
		IsVerified:   inc.IsVerified,
		Timestamp:    inc.CreatedAt,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish incident created event")
	}

	log.WithField("incident_id", inc.ID).WithField("cluster_count", inc.ClusterCount).Info("Incident created successfully")
	return inc, nil
}

// ListIncidents возвращает публичную ленту. hours - необязательный сужающий фильтр
// поверх окна удержания, 0 означает отсутствие фильтра.
func (s *incidentService) ListIncidents(ctx context.Context, hours int) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"hours":   hours,
	})

	if hours < 0 {
		return nil, models.NewValidationError(models.ReasonInvalidHoursWindow, "hours must be a positive integer")
	}

	incidents := s.incidents.List(time.Duration(hours) * time.Hour)
	s.fillReactionCounts(incidents)

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// ListIncidentsAdmin возвращает полную ленту с контактными полями
func (s *incidentService) ListIncidentsAdmin(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidentsAdmin",
	})

	incidents := s.incidents.List(0)
	s.fillReactionCounts(incidents)

	log.WithField("count", len(incidents)).Info("Admin incidents listed successfully")
	return incidents, nil
}

// React применяет реакцию с идемпотентностью по ключу идентичности
func (s *incidentService) React(ctx context.Context, incidentID uuid.UUID, identityKey string, reaction string) (models.ReactionCounts, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "React",
		"incident_id": incidentID,
	})

	r := models.Reaction(reaction)
	if !r.IsValid() {
		return models.ReactionCounts{}, models.NewValidationError(models.ReasonInvalidReaction, "reaction must be 'like' or 'dislike'")
	}
	if strings.TrimSpace(identityKey) == "" {
		return models.ReactionCounts{}, models.NewValidationError(models.ReasonMissingIdentityKey, "identity_key is required")
	}

	// Проверка существования и запись реакции берут разные мьютексы, никогда не оба сразу
	if !s.incidents.Exists(incidentID) {
		log.Warn("Reaction to unknown or expired incident")
		return models.ReactionCounts{}, models.NewNotFoundError(models.ReasonIncidentNotFound, fmt.Sprintf("incident with id %s not found", incidentID))
	}

	counts := s.reactions.React(incidentID, identityKey, r)
	log.WithField("likes", counts.Likes).WithField("dislikes", counts.Dislikes).Info("Reaction recorded")
	return counts, nil
}

// UpdateIncident применяет админское обновление подмножества полей
func (s *incidentService) UpdateIncident(ctx context.Context, incidentID uuid.UUID, upd models.IncidentUpdate) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incidentID,
	})
	log.Info("Attempting to update incident")

	if upd.Category != nil && !upd.Category.IsValid() {
		return nil, models.NewValidationError(models.ReasonInvalidCategory, fmt.Sprintf("unknown category %q", *upd.Category))
	}
	if upd.Urgency != nil && !upd.Urgency.IsValid() {
		return nil, models.NewValidationError(models.ReasonInvalidUrgency, fmt.Sprintf("unknown urgency %q", *upd.Urgency))
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) == "" {
		return nil, models.NewValidationError(models.ReasonEmptyDescription, "description must not be empty")
	}

	inc, ok := s.incidents.Update(incidentID, upd)
	if !ok {
		log.Warn("Attempted to update a non-existent incident")
		return nil, models.NewNotFoundError(models.ReasonIncidentNotFound, fmt.Sprintf("incident with id %s not found for update", incidentID))
	}

	counts := s.reactions.Counts(inc.ID)
	inc.LikeCount = counts.Likes
	inc.DislikeCount = counts.Dislikes

	log.Info("Incident updated successfully")
	return inc, nil
}

// DeleteIncident безусловно удаляет инцидент (админская операция)
func (s *incidentService) DeleteIncident(ctx context.Context, incidentID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": incidentID,
	})
	log.Info("Attempting to delete incident")

	if !s.incidents.Delete(incidentID) {
		log.Warn("Attempted to delete a non-existent incident")
		return models.NewNotFoundError(models.ReasonIncidentNotFound, fmt.Sprintf("incident with id %s not found for delete", incidentID))
	}

	log.Info("Incident deleted successfully")
	return nil
}

// Heartbeat продлевает сессию присутствия и возвращает число активных пользователей
func (s *incidentService) Heartbeat(ctx context.Context, sessionID string) (int, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, models.NewValidationError(models.ReasonMissingSessionID, "session id is required")
	}
	return s.tracker.Heartbeat(sessionID), nil
}

// fillReactionCounts материализует счетчики реакций на копиях инцидентов.
// Мьютекс хранилища к этому моменту уже отпущен.
func (s *incidentService) fillReactionCounts(incidents []*models.Incident) {
	for _, inc := range incidents {
		counts := s.reactions.Counts(inc.ID)
		inc.LikeCount = counts.Likes
		inc.DislikeCount = counts.Dislikes
	}
}
