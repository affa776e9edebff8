package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/community_map_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReact_FirstReaction(t *testing.T) {
	l := NewReactionLedger()
	incidentID := uuid.New()

	counts := l.React(incidentID, "device-1", models.ReactionLike)

	assert.Equal(t, models.ReactionCounts{Likes: 1, Dislikes: 0}, counts)
}

func TestReact_RepeatIsNoop(t *testing.T) {
	// Повтор той же реакции от того же ключа не накручивает счетчик
	l := NewReactionLedger()
	incidentID := uuid.New()

	for i := 0; i < 5; i++ {
		l.React(incidentID, "device-1", models.ReactionLike)
	}

	assert.Equal(t, models.ReactionCounts{Likes: 1, Dislikes: 0}, l.Counts(incidentID))
}

func TestReact_SwitchMovesCount(t *testing.T) {
	// Смена реакции атомарно переносит единицу между счетчиками
	l := NewReactionLedger()
	incidentID := uuid.New()

	l.React(incidentID, "device-1", models.ReactionLike)
	counts := l.React(incidentID, "device-1", models.ReactionDislike)

	assert.Equal(t, models.ReactionCounts{Likes: 0, Dislikes: 1}, counts)

	// Обратная смена возвращает исходное состояние
	counts = l.React(incidentID, "device-1", models.ReactionLike)
	assert.Equal(t, models.ReactionCounts{Likes: 1, Dislikes: 0}, counts)
}

func TestReact_DistinctIdentities(t *testing.T) {
	l := NewReactionLedger()
	incidentID := uuid.New()

	l.React(incidentID, "device-1", models.ReactionLike)
	l.React(incidentID, "device-2", models.ReactionLike)
	counts := l.React(incidentID, "device-3", models.ReactionDislike)

	assert.Equal(t, models.ReactionCounts{Likes: 2, Dislikes: 1}, counts)
}

func TestReact_IndependentPerIncident(t *testing.T) {
	l := NewReactionLedger()
	a := uuid.New()
	b := uuid.New()

	l.React(a, "device-1", models.ReactionLike)
	l.React(b, "device-1", models.ReactionDislike)

	assert.Equal(t, models.ReactionCounts{Likes: 1}, l.Counts(a))
	assert.Equal(t, models.ReactionCounts{Dislikes: 1}, l.Counts(b))
}

func TestCounts_UnknownIncidentIsZero(t *testing.T) {
	l := NewReactionLedger()

	assert.Equal(t, models.ReactionCounts{}, l.Counts(uuid.New()))
}

func TestRemove_DropsLedgerRows(t *testing.T) {
	// Подготовка
	l := NewReactionLedger()
	incidentID := uuid.New()
	l.React(incidentID, "device-1", models.ReactionLike)

	// Действие
	l.Remove([]uuid.UUID{incidentID})

	// Проверки: счетчики обнулены, прежний ключ снова считается новым
	assert.Equal(t, models.ReactionCounts{}, l.Counts(incidentID))
	counts := l.React(incidentID, "device-1", models.ReactionLike)
	assert.Equal(t, models.ReactionCounts{Likes: 1}, counts)
}

func TestReact_ConcurrentIdentities(t *testing.T) {
	// Инвариант "одна реакция на ключ" держится под конкурентной нагрузкой
	l := NewReactionLedger()
	incidentID := uuid.New()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("device-%d", n)
			// каждый ключ дергает обе реакции, последняя должна победить
			l.React(incidentID, key, models.ReactionDislike)
			l.React(incidentID, key, models.ReactionLike)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, models.ReactionCounts{Likes: workers, Dislikes: 0}, l.Counts(incidentID))
}
