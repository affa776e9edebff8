package presence

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Tracker считает пользователей, присутствующих на карте "прямо сейчас".
// Сессии живут в go-cache с окном присутствия в качестве срока жизни записи:
// heartbeat продлевает сессию, замолчавшие сессии выпадают из счетчика.
// Фоновый janitor не запускается, просроченные записи убираются попутно
// при каждом обращении - тот же ленивый паттерн, что и у IncidentStore.
//
// sessionId принимается как есть, без аутентификации и фильтрации ботов:
// клиент, генерирующий множество id, завысит счетчик. Это принятое
// приближение, а не граница безопасности.
type Tracker struct {
	sessions *gocache.Cache
}

// NewTracker создает трекер с заданным окном присутствия
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		sessions: gocache.New(window, 0),
	}
}

// Heartbeat продлевает сессию (создавая запись при первом обращении), убирает
// просроченные сессии и возвращает число активных, включая сессию вызывающего.
func (t *Tracker) Heartbeat(sessionID string) int {
	t.sessions.SetDefault(sessionID, time.Now().UTC())
	t.sessions.DeleteExpired()
	return t.sessions.ItemCount()
}

// ActiveCount возвращает число активных сессий после чистки
func (t *Tracker) ActiveCount() int {
	t.sessions.DeleteExpired()
	return t.sessions.ItemCount()
}
