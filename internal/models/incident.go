package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - закрытый перечень категорий инцидентов
type Category string

const (
	CategoryProtest    Category = "protest"
	CategoryTheft      Category = "theft"
	CategoryHarassment Category = "harassment"
	CategoryAntisocial Category = "antisocial"
	CategoryOther      Category = "other"
)

// Urgency - закрытый перечень уровней срочности
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// IsValid проверяет, что категория входит в перечень
func (c Category) IsValid() bool {
	switch c {
	case CategoryProtest, CategoryTheft, CategoryHarassment, CategoryAntisocial, CategoryOther:
		return true
	}
	return false
}

// IsValid проверяет, что срочность входит в перечень
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// Incident представляет единичное сообщение об инциденте на карте.
// ClusterCount фиксируется в момент создания и задним числом не пересчитывается,
// LikeCount/DislikeCount материализуются из ReactionLedger при чтении.
type Incident struct {
	ID           uuid.UUID `json:"id"`
	Category     Category  `json:"category"`
	Urgency      Urgency   `json:"urgency"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	ClusterCount int       `json:"cluster_count"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// IncidentUpdate - допустимое для админа подмножество полей инцидента.
// Координаты, метка времени, верификация и cluster_count после создания неизменяемы.
type IncidentUpdate struct {
	Category    *Category
	Urgency     *Urgency
	Description *string
}

// Reaction - реакция пользователя на инцидент
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// IsValid проверяет, что реакция входит в перечень
func (r Reaction) IsValid() bool {
	return r == ReactionLike || r == ReactionDislike
}

// ReactionCounts - снимок счетчиков реакций по одному инциденту
type ReactionCounts struct {
	Likes    int
	Dislikes int
}
