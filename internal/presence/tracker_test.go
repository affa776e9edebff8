package presence

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Окна короткие и реальные: go-cache меряет срок жизни записей настенными
// часами, поэтому просрочку здесь проверяем через time.Sleep.

func TestHeartbeat_CountsCaller(t *testing.T) {
	tr := NewTracker(time.Minute)

	assert.Equal(t, 1, tr.Heartbeat("session-1"))
}

func TestHeartbeat_RepeatDoesNotInflate(t *testing.T) {
	tr := NewTracker(time.Minute)

	tr.Heartbeat("session-1")
	tr.Heartbeat("session-1")
	count := tr.Heartbeat("session-1")

	assert.Equal(t, 1, count)
}

func TestHeartbeat_DistinctSessions(t *testing.T) {
	tr := NewTracker(time.Minute)

	tr.Heartbeat("session-1")
	tr.Heartbeat("session-2")
	count := tr.Heartbeat("session-3")

	assert.Equal(t, 3, count)
}

func TestHeartbeat_StaleSessionDrops(t *testing.T) {
	// Подготовка: замолчавшая сессия и сессия, которая продолжает стучать
	tr := NewTracker(50 * time.Millisecond)

	tr.Heartbeat("silent")
	tr.Heartbeat("alive")

	// Действие: ждем за пределами окна, поддерживая живую сессию
	time.Sleep(30 * time.Millisecond)
	tr.Heartbeat("alive")
	time.Sleep(30 * time.Millisecond)

	// Проверки: heartbeat продлил "alive", "silent" выпала из счетчика
	count := tr.Heartbeat("alive")
	assert.Equal(t, 1, count)
}

func TestActiveCount_AfterExpiry(t *testing.T) {
	tr := NewTracker(30 * time.Millisecond)

	tr.Heartbeat("session-1")
	assert.Equal(t, 1, tr.ActiveCount())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, tr.ActiveCount())
}

func TestHeartbeat_Concurrent(t *testing.T) {
	tr := NewTracker(time.Minute)

	const sessions = 20
	var wg sync.WaitGroup
	wg.Add(sessions)
	for i := 0; i < sessions; i++ {
		go func(n int) {
			defer wg.Done()
			tr.Heartbeat(fmt.Sprintf("session-%d", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, sessions, tr.ActiveCount())
}
