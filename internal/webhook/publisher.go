package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_map_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	// EventIncidentCreated - единственный тип событий, публикуемый ядром
	EventIncidentCreated = "incident.created"
)

// WebhookEvent - событие о допуске нового инцидента для внешних подписчиков.
// Контактные поля наружу не уходят, событие несет публичную проекцию.
type WebhookEvent struct {
	Type         string          `json:"type"`
	IncidentID   uuid.UUID       `json:"incident_id"`
	Category     models.Category `json:"category"`
	Urgency      models.Urgency  `json:"urgency"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	ClusterCount int             `json:"cluster_count"`
	IsVerified   bool            `json:"is_verified"`
	Timestamp    time.Time       `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
