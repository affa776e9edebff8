package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_map_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRetention     = 6 * time.Hour
	testClusterRadius = 500.0
)

// fakeClock — управляемый источник времени для симуляции окна удержания
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestStore() (*IncidentStore, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	s := NewIncidentStore(testRetention, testClusterRadius)
	s.SetClock(clock.Now)
	return s, clock
}

func TestCreate_FirstIncidentClusterCountOne(t *testing.T) {
	// Подготовка
	s, _ := newTestStore()

	// Действие
	inc := s.Create(models.CategoryTheft, models.UrgencyHigh, "Кража в парке", -37.8136, 144.9631, "", "")

	// Проверки
	assert.Equal(t, 1, inc.ClusterCount)
	assert.False(t, inc.IsVerified)
	assert.NotEqual(t, uuid.Nil, inc.ID)
	assert.Equal(t, 1, s.ActiveCount())
}

func TestCreate_ClusterCountsFrozen(t *testing.T) {
	// Подготовка: три отчета в одной точке друг за другом
	s, _ := newTestStore()

	a := s.Create(models.CategoryTheft, models.UrgencyHigh, "первый", -37.8136, 144.9631, "", "")
	b := s.Create(models.CategoryProtest, models.UrgencyLow, "второй рядом", -37.8140, 144.9633, "", "")
	c := s.Create(models.CategoryOther, models.UrgencyMedium, "третий рядом", -37.8137, 144.9630, "", "")

	// Проверки: счетчик растет монотонно по порядку создания
	assert.Equal(t, 1, a.ClusterCount)
	assert.Equal(t, 2, b.ClusterCount)
	assert.Equal(t, 3, c.ClusterCount)

	// Более ранние записи не инкрементируются задним числом
	got, ok := s.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.ClusterCount)
}

func TestCreate_ClusterIgnoresCategory(t *testing.T) {
	// Кластеризация считает соседей любой категории
	s, _ := newTestStore()

	s.Create(models.CategoryTheft, models.UrgencyHigh, "кража", -37.8136, 144.9631, "", "")
	inc := s.Create(models.CategoryProtest, models.UrgencyLow, "протест рядом", -37.8138, 144.9632, "", "")

	assert.Equal(t, 2, inc.ClusterCount)
}

func TestCreate_FarIncidentNotClustered(t *testing.T) {
	s, _ := newTestStore()

	s.Create(models.CategoryTheft, models.UrgencyHigh, "кража", -37.8136, 144.9631, "", "")
	// ~1.1 км южнее, вне радиуса 500 м
	inc := s.Create(models.CategoryTheft, models.UrgencyHigh, "другая кража", -37.8236, 144.9631, "", "")

	assert.Equal(t, 1, inc.ClusterCount)
}

func TestCreate_ExpiredNeighborsNotCounted(t *testing.T) {
	// Подготовка: сосед выпадает из окна удержания до нового отчета
	s, clock := newTestStore()

	s.Create(models.CategoryTheft, models.UrgencyHigh, "старый", -37.8136, 144.9631, "", "")
	clock.Advance(testRetention + time.Minute)

	// Действие
	inc := s.Create(models.CategoryTheft, models.UrgencyHigh, "новый", -37.8136, 144.9631, "", "")

	// Проверки: просроченный сосед не участвует в кластере
	assert.Equal(t, 1, inc.ClusterCount)
	assert.Equal(t, 1, s.ActiveCount())
}

func TestCreate_VerificationFromContactFields(t *testing.T) {
	s, _ := newTestStore()

	tests := []struct {
		name     string
		email    string
		phone    string
		verified bool
	}{
		{"без контактов", "", "", false},
		{"только email", "a@b.c", "", true},
		{"только телефон", "", "+61400000000", true},
		{"оба контакта", "a@b.c", "+61400000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc := s.Create(models.CategoryOther, models.UrgencyLow, "x", 10, 10, tt.email, tt.phone)
			assert.Equal(t, tt.verified, inc.IsVerified)
		})
	}
}

func TestUpdate_DoesNotTouchDerivedFields(t *testing.T) {
	// Подготовка
	s, _ := newTestStore()
	inc := s.Create(models.CategoryTheft, models.UrgencyHigh, "до правки", -37.8136, 144.9631, "a@b.c", "")

	newCategory := models.CategoryProtest
	newDescription := "после правки"

	// Действие
	updated, ok := s.Update(inc.ID, models.IncidentUpdate{
		Category:    &newCategory,
		Description: &newDescription,
	})

	// Проверки: правятся только явные поля, производные неизменны
	require.True(t, ok)
	assert.Equal(t, models.CategoryProtest, updated.Category)
	assert.Equal(t, "после правки", updated.Description)
	assert.Equal(t, models.UrgencyHigh, updated.Urgency)
	assert.Equal(t, inc.ClusterCount, updated.ClusterCount)
	assert.Equal(t, inc.IsVerified, updated.IsVerified)
	assert.Equal(t, inc.CreatedAt, updated.CreatedAt)
	assert.Equal(t, inc.Latitude, updated.Latitude)
}

func TestUpdate_UnknownID(t *testing.T) {
	s, _ := newTestStore()

	_, ok := s.Update(uuid.New(), models.IncidentUpdate{})

	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore()
	inc := s.Create(models.CategoryTheft, models.UrgencyHigh, "x", 10, 10, "", "")

	assert.True(t, s.Delete(inc.ID))
	assert.False(t, s.Exists(inc.ID))
	assert.False(t, s.Delete(inc.ID))
}

func TestList_NewestFirst(t *testing.T) {
	// Подготовка: три записи с разными временами создания
	s, clock := newTestStore()

	first := s.Create(models.CategoryTheft, models.UrgencyHigh, "первый", 10, 10, "", "")
	clock.Advance(time.Minute)
	second := s.Create(models.CategoryTheft, models.UrgencyHigh, "второй", 20, 20, "", "")
	clock.Advance(time.Minute)
	third := s.Create(models.CategoryTheft, models.UrgencyHigh, "третий", 30, 30, "", "")

	// Действие
	list := s.List(0)

	// Проверки
	require.Len(t, list, 3)
	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, first.ID, list[2].ID)
}

func TestList_WindowNarrowsResult(t *testing.T) {
	// Подготовка: запись пятичасовой давности и свежая
	s, clock := newTestStore()

	s.Create(models.CategoryTheft, models.UrgencyHigh, "старый", 10, 10, "", "")
	clock.Advance(5 * time.Hour)
	fresh := s.Create(models.CategoryTheft, models.UrgencyHigh, "свежий", 20, 20, "", "")

	// Действие и проверки: окно в 2 часа отсекает старую запись
	narrowed := s.List(2 * time.Hour)
	require.Len(t, narrowed, 1)
	assert.Equal(t, fresh.ID, narrowed[0].ID)

	// Без сужения обе записи на месте
	full := s.List(0)
	assert.Len(t, full, 2)

	// Окно шире удержания эквивалентно его отсутствию
	wide := s.List(24 * time.Hour)
	assert.Len(t, wide, 2)
}

func TestList_ExpiredRecordsSweptOut(t *testing.T) {
	// Подготовка
	s, clock := newTestStore()

	expired := s.Create(models.CategoryTheft, models.UrgencyHigh, "уйдет", 10, 10, "", "")
	clock.Advance(testRetention - time.Minute)
	survivor := s.Create(models.CategoryTheft, models.UrgencyHigh, "останется", 20, 20, "", "")
	clock.Advance(2 * time.Minute)

	// Действие
	list := s.List(0)

	// Проверки: запись старше шести часов исчезла вместе с индексом
	require.Len(t, list, 1)
	assert.Equal(t, survivor.ID, list[0].ID)
	assert.False(t, s.Exists(expired.ID))
}

func TestExpiryHook_ReceivesExpiredIDs(t *testing.T) {
	// Подготовка
	s, clock := newTestStore()

	var notified []uuid.UUID
	s.SetExpiryHook(func(ids []uuid.UUID) {
		notified = append(notified, ids...)
	})

	a := s.Create(models.CategoryTheft, models.UrgencyHigh, "a", 10, 10, "", "")
	b := s.Create(models.CategoryTheft, models.UrgencyHigh, "b", 20, 20, "", "")
	clock.Advance(testRetention + time.Minute)

	// Действие: любое обращение запускает чистку
	s.ActiveCount()

	// Проверки
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, notified)
}

func TestExpiryHook_FiredOnDelete(t *testing.T) {
	s, _ := newTestStore()

	var notified []uuid.UUID
	s.SetExpiryHook(func(ids []uuid.UUID) {
		notified = append(notified, ids...)
	})

	inc := s.Create(models.CategoryTheft, models.UrgencyHigh, "x", 10, 10, "", "")
	s.Delete(inc.ID)

	assert.Equal(t, []uuid.UUID{inc.ID}, notified)
}

func TestGet_ReturnsCopy(t *testing.T) {
	// Мутация возвращенного значения не должна пролезать в хранилище
	s, _ := newTestStore()
	inc := s.Create(models.CategoryTheft, models.UrgencyHigh, "оригинал", 10, 10, "", "")

	got, ok := s.Get(inc.ID)
	require.True(t, ok)
	got.Description = "испорчено"

	again, ok := s.Get(inc.ID)
	require.True(t, ok)
	assert.Equal(t, "оригинал", again.Description)
}
