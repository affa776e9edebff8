package models

import "time"

// ChatMessage - сообщение общего чата сообщества
type ChatMessage struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// StreetHighlight - подсветка участка улицы на карте
type StreetHighlight struct {
	ID        int64     `json:"id"`
	StreetKey string    `json:"street_key"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// StreetNote - текстовая заметка, привязанная к участку улицы
type StreetNote struct {
	ID        int64     `json:"id"`
	StreetKey string    `json:"street_key"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// WelcomeNotice - содержимое приветственного уведомления
type WelcomeNotice struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
