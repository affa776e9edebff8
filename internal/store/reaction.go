package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/community_map_system/internal/models"
)

// ReactionLedger ведет учет реакций с инвариантом "не более одной реакции на пару
// (инцидент, ключ идентичности)". Повтор той же реакции - no-op, смена реакции
// атомарно переносит единицу между счетчиками, двойного учета не возникает.
//
// Коллекция защищена собственным мьютексом; чтение счетчиков для проекции
// отдает снимок, поэтому вызывающая сторона никогда не держит два мьютекса
// одновременно.
type ReactionLedger struct {
	mu        sync.Mutex
	reactions map[uuid.UUID]map[string]models.Reaction
	counts    map[uuid.UUID]models.ReactionCounts
}

// NewReactionLedger создает пустой реестр реакций
func NewReactionLedger() *ReactionLedger {
	return &ReactionLedger{
		reactions: make(map[uuid.UUID]map[string]models.Reaction),
		counts:    make(map[uuid.UUID]models.ReactionCounts),
	}
}

// React применяет реакцию для пары (incidentID, identityKey) и возвращает
// счетчики после применения. Существование инцидента проверяет вызывающий
// сервис до обращения сюда.
func (l *ReactionLedger) React(incidentID uuid.UUID, identityKey string, reaction models.Reaction) models.ReactionCounts {
	l.mu.Lock()
	defer l.mu.Unlock()

	byIdentity, ok := l.reactions[incidentID]
	if !ok {
		byIdentity = make(map[string]models.Reaction)
		l.reactions[incidentID] = byIdentity
	}

	counts := l.counts[incidentID]
	prev, had := byIdentity[identityKey]

	switch {
	case !had:
		counts = applyDelta(counts, reaction, 1)
	case prev == reaction:
		// идемпотентный повтор, счетчики не меняются
		return counts
	default:
		counts = applyDelta(counts, prev, -1)
		counts = applyDelta(counts, reaction, 1)
	}

	byIdentity[identityKey] = reaction
	l.counts[incidentID] = counts
	return counts
}

// Counts возвращает снимок счетчиков по инциденту
func (l *ReactionLedger) Counts(incidentID uuid.UUID) models.ReactionCounts {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[incidentID]
}

// Remove удаляет все реакции перечисленных инцидентов. Вызывается хуком чистки
// IncidentStore и при админском удалении, чтобы реестр не накапливал строки
// уже не существующих записей.
func (l *ReactionLedger) Remove(incidentIDs []uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range incidentIDs {
		delete(l.reactions, id)
		delete(l.counts, id)
	}
}

func applyDelta(c models.ReactionCounts, r models.Reaction, delta int) models.ReactionCounts {
	switch r {
	case models.ReactionLike:
		c.Likes += delta
	case models.ReactionDislike:
		c.Dislikes += delta
	}
	return c
}
