package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_map_system/internal/geo"
	"github.com/shenikar/community_map_system/internal/models"
)

// IncidentStore владеет записями инцидентов и их жизненным циклом:
// Created -> Active -> Expired (запись удаляется). Хранение только в памяти,
// лента живет шесть часов и долговременная персистентность ей не нужна.
//
// Коллекция защищена одним мьютексом. Чистка просроченных записей выполняется
// попутно при каждом обращении, отдельного фонового таймера нет. Снимок активного
// множества для подсчета кластера берется под тем же мьютексом, что и чистка,
// поэтому кластеризация не гонится с удалением считаемых записей.
type IncidentStore struct {
	mu        sync.Mutex
	incidents []*models.Incident
	byID      map[uuid.UUID]*models.Incident

	retention     time.Duration
	clusterRadius float64

	now      func() time.Time
	onExpire func(ids []uuid.UUID)
}

// NewIncidentStore создает хранилище с заданным окном удержания и радиусом кластеризации
func NewIncidentStore(retention time.Duration, clusterRadiusMeters float64) *IncidentStore {
	return &IncidentStore{
		incidents:     make([]*models.Incident, 0),
		byID:          make(map[uuid.UUID]*models.Incident),
		retention:     retention,
		clusterRadius: clusterRadiusMeters,
		now:           time.Now,
	}
}

// SetClock подменяет источник времени. Используется в тестах для симуляции
// прохождения окна удержания.
func (s *IncidentStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetExpiryHook регистрирует обработчик, получающий id просроченных инцидентов.
// Вызывается строго после освобождения мьютекса хранилища, чтобы подписчик
// (ReactionLedger) мог взять собственный мьютекс без риска взаимной блокировки.
func (s *IncidentStore) SetExpiryHook(fn func(ids []uuid.UUID)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = fn
}

// Create допускает новый инцидент. Вход считается проверенным на границе сервиса.
// createdAt назначает сервер, is_verified выводится из контактных полей,
// cluster_count = 1 + число активных инцидентов любой категории в радиусе
// кластеризации на момент создания. Значение замораживается: более ранние
// инциденты при появлении соседнего нового не инкрементируются (односторонняя
// атрибуция, счетчики у соседей могут расходиться).
func (s *IncidentStore) Create(category models.Category, urgency models.Urgency, description string, lat, lng float64, contactEmail, contactPhone string) *models.Incident {
	s.mu.Lock()

	expired := s.sweepLocked()

	center := geo.Point{Latitude: lat, Longitude: lng}
	candidates := make([]geo.Point, len(s.incidents))
	for i, inc := range s.incidents {
		candidates[i] = geo.Point{Latitude: inc.Latitude, Longitude: inc.Longitude}
	}
	neighbors := geo.CountWithinRadius(center, s.clusterRadius, candidates)

	inc := &models.Incident{
		ID:           uuid.New(),
		Category:     category,
		Urgency:      urgency,
		Description:  description,
		Latitude:     lat,
		Longitude:    lng,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		IsVerified:   contactEmail != "" || contactPhone != "",
		ClusterCount: 1 + neighbors,
		CreatedAt:    s.now().UTC(),
	}
	s.incidents = append(s.incidents, inc)
	s.byID[inc.ID] = inc

	s.mu.Unlock()
	s.fireExpiry(expired)

	return copyIncident(inc)
}

// List возвращает активные инциденты новее now-window, отсортированные по убыванию
// createdAt. window == 0 означает отсутствие сужающего фильтра, жестким потолком
// в любом случае остается окно удержания. Перед выборкой выполняется чистка.
func (s *IncidentStore) List(window time.Duration) []*models.Incident {
	s.mu.Lock()

	expired := s.sweepLocked()

	var cutoff time.Time
	if window > 0 && window < s.retention {
		cutoff = s.now().UTC().Add(-window)
	}

	result := make([]*models.Incident, 0, len(s.incidents))
	for i := len(s.incidents) - 1; i >= 0; i-- {
		inc := s.incidents[i]
		if !cutoff.IsZero() && inc.CreatedAt.Before(cutoff) {
			continue
		}
		result = append(result, copyIncident(inc))
	}

	s.mu.Unlock()
	s.fireExpiry(expired)

	return result
}

// Get возвращает копию активного инцидента по id
func (s *IncidentStore) Get(id uuid.UUID) (*models.Incident, bool) {
	s.mu.Lock()

	expired := s.sweepLocked()
	inc, ok := s.byID[id]
	var out *models.Incident
	if ok {
		out = copyIncident(inc)
	}

	s.mu.Unlock()
	s.fireExpiry(expired)

	return out, ok
}

// Exists сообщает, активен ли инцидент с данным id
func (s *IncidentStore) Exists(id uuid.UUID) bool {
	_, ok := s.Get(id)
	return ok
}

// Update применяет админское подмножество полей. Просроченный или неизвестный id
// равнозначны: запись отсутствует.
func (s *IncidentStore) Update(id uuid.UUID, upd models.IncidentUpdate) (*models.Incident, bool) {
	s.mu.Lock()

	expired := s.sweepLocked()
	inc, ok := s.byID[id]
	var out *models.Incident
	if ok {
		if upd.Category != nil {
			inc.Category = *upd.Category
		}
		if upd.Urgency != nil {
			inc.Urgency = *upd.Urgency
		}
		if upd.Description != nil {
			inc.Description = *upd.Description
		}
		out = copyIncident(inc)
	}

	s.mu.Unlock()
	s.fireExpiry(expired)

	return out, ok
}

// Delete безусловно удаляет инцидент. Возвращает false для неизвестного id.
func (s *IncidentStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()

	expired := s.sweepLocked()
	_, ok := s.byID[id]
	if ok {
		s.removeLocked(id)
		expired = append(expired, id)
	}

	s.mu.Unlock()
	s.fireExpiry(expired)

	return ok
}

// ActiveCount возвращает число активных инцидентов после чистки
func (s *IncidentStore) ActiveCount() int {
	s.mu.Lock()

	expired := s.sweepLocked()
	n := len(s.incidents)

	s.mu.Unlock()
	s.fireExpiry(expired)

	return n
}

// sweepLocked удаляет записи старше окна удержания. Вызывается под мьютексом,
// возвращает id удаленных инцидентов для пост-обработки вне мьютекса.
func (s *IncidentStore) sweepLocked() []uuid.UUID {
	cutoff := s.now().UTC().Add(-s.retention)

	var expired []uuid.UUID
	kept := s.incidents[:0]
	for _, inc := range s.incidents {
		if inc.CreatedAt.Before(cutoff) {
			expired = append(expired, inc.ID)
			delete(s.byID, inc.ID)
			continue
		}
		kept = append(kept, inc)
	}
	for i := len(kept); i < len(s.incidents); i++ {
		s.incidents[i] = nil
	}
	s.incidents = kept
	return expired
}

func (s *IncidentStore) removeLocked(id uuid.UUID) {
	delete(s.byID, id)
	for i, inc := range s.incidents {
		if inc.ID == id {
			s.incidents = append(s.incidents[:i], s.incidents[i+1:]...)
			return
		}
	}
}

func (s *IncidentStore) fireExpiry(ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	s.mu.Lock()
	hook := s.onExpire
	s.mu.Unlock()
	if hook != nil {
		hook(ids)
	}
}

// copyIncident возвращает независимую копию, чтобы наружу не утекали указатели
// на записи под мьютексом
func copyIncident(inc *models.Incident) *models.Incident {
	c := *inc
	return &c
}
