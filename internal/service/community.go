package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/community_map_system/internal/models"
	"github.com/sirupsen/logrus"
)

const chatHistoryLimit = 100

// CommunityRepository определяет контракт для работы с бд сквозных данных сообщества
type CommunityRepository interface {
	SaveChatMessage(ctx context.Context, msg *models.ChatMessage) error
	ListChatMessages(ctx context.Context, limit int) ([]*models.ChatMessage, error)
	CreateStreetHighlight(ctx context.Context, h *models.StreetHighlight) error
	ListStreetHighlights(ctx context.Context) ([]*models.StreetHighlight, error)
	DeleteStreetHighlight(ctx context.Context, id int64) (bool, error)
	CreateStreetNote(ctx context.Context, n *models.StreetNote) error
	ListStreetNotes(ctx context.Context) ([]*models.StreetNote, error)
	DeleteStreetNote(ctx context.Context, id int64) (bool, error)
	GetWelcomeNotice(ctx context.Context) (*models.WelcomeNotice, error)
	UpsertWelcomeNotice(ctx context.Context, content string) (*models.WelcomeNotice, error)
}

// CommunityService - тонкая сквозная прослойка над хранилищем данных сообщества.
// Реальных инвариантов здесь нет, ядро инцидентов в эти данные не заглядывает.
type CommunityService interface {
	PostChatMessage(ctx context.Context, author, message string) (*models.ChatMessage, error)
	ListChatMessages(ctx context.Context) ([]*models.ChatMessage, error)
	AddStreetHighlight(ctx context.Context, streetKey, color string) (*models.StreetHighlight, error)
	ListStreetHighlights(ctx context.Context) ([]*models.StreetHighlight, error)
	RemoveStreetHighlight(ctx context.Context, id int64) error
	AddStreetNote(ctx context.Context, streetKey, note string) (*models.StreetNote, error)
	ListStreetNotes(ctx context.Context) ([]*models.StreetNote, error)
	RemoveStreetNote(ctx context.Context, id int64) error
	GetWelcomeNotice(ctx context.Context) (*models.WelcomeNotice, error)
	SetWelcomeNotice(ctx context.Context, content string) (*models.WelcomeNotice, error)
}

type communityService struct {
	repo   CommunityRepository
	logger *logrus.Logger
}

func NewCommunityService(repo CommunityRepository, logger *logrus.Logger) CommunityService {
	return &communityService{repo: repo, logger: logger}
}

// PostChatMessage сохраняет сообщение общего чата
func (s *communityService) PostChatMessage(ctx context.Context, author, message string) (*models.ChatMessage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "community",
		"method":  "PostChatMessage",
	})

	if strings.TrimSpace(message) == "" {
		return nil, models.NewValidationError(models.ReasonEmptyMessage, "message must not be empty")
	}

	msg := &models.ChatMessage{Author: author, Message: message}
	if err := s.repo.SaveChatMessage(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to save chat message in repository")
		return nil, fmt.Errorf("service: could not save chat message: %w", err)
	}
	return msg, nil
}

// ListChatMessages возвращает последние сообщения чата
func (s *communityService) ListChatMessages(ctx context.Context) ([]*models.ChatMessage, error) {
	messages, err := s.repo.ListChatMessages(ctx, chatHistoryLimit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list chat messages from repository")
		return nil, fmt.Errorf("service: could not list chat messages: %w", err)
	}
	return messages, nil
}

// AddStreetHighlight сохраняет подсветку участка улицы
func (s *communityService) AddStreetHighlight(ctx context.Context, streetKey, color string) (*models.StreetHighlight, error) {
	h := &models.StreetHighlight{StreetKey: streetKey, Color: color}
	if err := s.repo.CreateStreetHighlight(ctx, h); err != nil {
		s.logger.WithError(err).Error("Failed to create street highlight in repository")
		return nil, fmt.Errorf("service: could not create street highlight: %w", err)
	}
	return h, nil
}

// ListStreetHighlights возвращает все подсветки улиц
func (s *communityService) ListStreetHighlights(ctx context.Context) ([]*models.StreetHighlight, error) {
	highlights, err := s.repo.ListStreetHighlights(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list street highlights from repository")
		return nil, fmt.Errorf("service: could not list street highlights: %w", err)
	}
	return highlights, nil
}

// RemoveStreetHighlight удаляет подсветку улицы (админская операция)
func (s *communityService) RemoveStreetHighlight(ctx context.Context, id int64) error {
	found, err := s.repo.DeleteStreetHighlight(ctx, id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete street highlight in repository")
		return fmt.Errorf("service: could not delete street highlight: %w", err)
	}
	if !found {
		return models.NewNotFoundError(models.ReasonRecordNotFound, fmt.Sprintf("street highlight with id %d not found", id))
	}
	return nil
}

// AddStreetNote сохраняет заметку об участке улицы
func (s *communityService) AddStreetNote(ctx context.Context, streetKey, note string) (*models.StreetNote, error) {
	n := &models.StreetNote{StreetKey: streetKey, Note: note}
	if err := s.repo.CreateStreetNote(ctx, n); err != nil {
		s.logger.WithError(err).Error("Failed to create street note in repository")
		return nil, fmt.Errorf("service: could not create street note: %w", err)
	}
	return n, nil
}

// ListStreetNotes возвращает все заметки об улицах
func (s *communityService) ListStreetNotes(ctx context.Context) ([]*models.StreetNote, error) {
	notes, err := s.repo.ListStreetNotes(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list street notes from repository")
		return nil, fmt.Errorf("service: could not list street notes: %w", err)
	}
	return notes, nil
}

// RemoveStreetNote удаляет заметку об улице (админская операция)
func (s *communityService) RemoveStreetNote(ctx context.Context, id int64) error {
	found, err := s.repo.DeleteStreetNote(ctx, id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete street note in repository")
		return fmt.Errorf("service: could not delete street note: %w", err)
	}
	if !found {
		return models.NewNotFoundError(models.ReasonRecordNotFound, fmt.Sprintf("street note with id %d not found", id))
	}
	return nil
}

// GetWelcomeNotice возвращает приветственное уведомление
func (s *communityService) GetWelcomeNotice(ctx context.Context) (*models.WelcomeNotice, error) {
	notice, err := s.repo.GetWelcomeNotice(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get welcome notice from repository")
		return nil, fmt.Errorf("service: could not get welcome notice: %w", err)
	}
	return notice, nil
}

// SetWelcomeNotice заменяет содержимое приветственного уведомления (админская операция)
func (s *communityService) SetWelcomeNotice(ctx context.Context, content string) (*models.WelcomeNotice, error) {
	notice, err := s.repo.UpsertWelcomeNotice(ctx, content)
	if err != nil {
		s.logger.WithError(err).Error("Failed to upsert welcome notice in repository")
		return nil, fmt.Errorf("service: could not set welcome notice: %w", err)
	}
	return notice, nil
}
