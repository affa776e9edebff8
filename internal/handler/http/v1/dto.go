package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания сообщения об инциденте.
// Семантика категории/срочности/описания проверяется на границе сервиса,
// здесь только структурное наличие координат.
// @Description DTO для создания сообщения об инциденте
type CreateIncidentRequest struct {
	Category     string   `json:"category"`
	Urgency      string   `json:"urgency"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
	ContactEmail string   `json:"contact_email,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
}

// UpdateIncidentRequest DTO для админского обновления инцидента.
// Обновляемое подмножество: категория, срочность, описание.
// @Description DTO для админского обновления инцидента
type UpdateIncidentRequest struct {
	Category    *string `json:"category,omitempty"`
	Urgency     *string `json:"urgency,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ReactRequest DTO для реакции на инцидент
// @Description DTO для реакции на инцидент
type ReactRequest struct {
	Reaction    string `json:"reaction" validate:"required"`
	IdentityKey string `json:"identity_key"`
}

// IncidentResponse - публичная проекция инцидента. Контактных полей в типе нет,
// наружу они не уходят даже пустыми.
// @Description Публичная проекция инцидента
type IncidentResponse struct {
	ID           uuid.UUID `json:"id"`
	Category     string    `json:"category"`
	Urgency      string    `json:"urgency"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	IsVerified   bool      `json:"is_verified"`
	ClusterCount int       `json:"cluster_count"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminIncidentResponse - админская проекция инцидента с контактными полями
// @Description Админская проекция инцидента
type AdminIncidentResponse struct {
	IncidentResponse
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// ReactionResponse DTO со счетчиками реакций после применения
// @Description Счетчики реакций после применения
type ReactionResponse struct {
	LikeCount    int `json:"like_count"`
	DislikeCount int `json:"dislike_count"`
}

// HeartbeatResponse DTO с числом активных пользователей
// @Description Число активных пользователей
type HeartbeatResponse struct {
	ActiveCount int `json:"active_count"`
}

// AdminVerifyRequest DTO для проверки общей админской учетки
// @Description DTO для проверки админской учетки
type AdminVerifyRequest struct {
	Account string `json:"account" validate:"required"`
	Pin     string `json:"pin" validate:"required"`
}

// GeocodeRequest DTO для прямого геокодирования адреса
// @Description DTO для прямого геокодирования
type GeocodeRequest struct {
	Address string `json:"address" validate:"required"`
}

// ReverseGeocodeRequest DTO для обратного геокодирования координат
// @Description DTO для обратного геокодирования
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// GeocodeLocation - один результат геокодирования
type GeocodeLocation struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// GeocodeResponse DTO с результатами геокодирования
// @Description Результаты геокодирования
type GeocodeResponse struct {
	Success   bool              `json:"success"`
	Locations []GeocodeLocation `json:"locations,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// ChatMessageRequest DTO для сообщения чата
// @Description DTO для сообщения чата
type ChatMessageRequest struct {
	Author  string `json:"author,omitempty"`
	Message string `json:"message" validate:"required"`
}

// StreetHighlightRequest DTO для подсветки участка улицы
// @Description DTO для подсветки улицы
type StreetHighlightRequest struct {
	StreetKey string `json:"street_key" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

// StreetNoteRequest DTO для заметки об участке улицы
// @Description DTO для заметки об улице
type StreetNoteRequest struct {
	StreetKey string `json:"street_key" validate:"required"`
	Note      string `json:"note" validate:"required"`
}

// NoticeRequest DTO для обновления приветственного уведомления
// @Description DTO для приветственного уведомления
type NoticeRequest struct {
	Content string `json:"content"`
}
