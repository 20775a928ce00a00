package widget

import (
	"sync"
	"time"
)

// State состояние контейнера встраиваемого календарного виджета
type State int

const (
	StateClosed State = iota
	StateLoading
	StateReady
)

// DefaultRevealDelay задержка перед показом виджета вместо индикатора загрузки
const DefaultRevealDelay = 2 * time.Second

// Host контейнер с отложенным показом виджета
// Open запускает таймер Loading -> Ready; Close отменяет таймер,
// и сработавший после Close таймер состояние не меняет
type Host struct {
	mu          sync.Mutex
	state       State
	timer       *time.Timer
	revealDelay time.Duration
	generation  uint64
}

// NewHost создает закрытый контейнер; delay <= 0 заменяется на DefaultRevealDelay
func NewHost(delay time.Duration) *Host {
	if delay <= 0 {
		delay = DefaultRevealDelay
	}
	return &Host{revealDelay: delay}
}

// Open переводит контейнер в Loading и запускает таймер показа
// Повторный Open открытого контейнера - no-op
func (h *Host) Open() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateClosed {
		return
	}

	h.state = StateLoading
	h.generation++
	gen := h.generation

	h.timer = time.AfterFunc(h.revealDelay, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		// Таймер устаревшего поколения (контейнер закрыли) игнорируется
		if h.generation == gen && h.state == StateLoading {
			h.state = StateReady
		}
	})
}

// Close закрывает контейнер и отменяет незавершённый таймер показа
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.generation++
	h.state = StateClosed
}

// State возвращает текущее состояние контейнера
func (h *Host) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
