package access

import (
	"context"
	"sync"
)

// State состояние гейта в рамках одного визита
type State int

const (
	StateLocked State = iota
	StateUnlocked
)

// Сообщения, отображаемые пользователю
const (
	msgInvalidPassword = "Invalid password"
	msgTransportFault  = "Something went wrong"
)

// Gate двухсостоянийный гейт доступа к форме
// Состояние живёт только в памяти процесса: новый Gate всегда Locked
type Gate struct {
	mu       sync.Mutex
	verifier Verifier
	state    State
	lastErr  string
}

// NewGate создает гейт в состоянии Locked
func NewGate(verifier Verifier) *Gate {
	return &Gate{verifier: verifier}
}

// Verify отправляет кандидата верификатору
// Успех переводит гейт в Unlocked и снимает прежнюю ошибку;
// отказ оставляет Locked с сообщением об ошибке;
// транспортный сбой оставляет Locked с общим сообщением
func (g *Gate) Verify(ctx context.Context, candidate string) bool {
	ok, err := g.verifier.VerifyPassword(ctx, candidate)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.lastErr = msgTransportFault
		return false
	}
	if !ok {
		g.lastErr = msgInvalidPassword
		return false
	}

	g.state = StateUnlocked
	g.lastErr = ""
	return true
}

// State возвращает текущее состояние гейта
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Unlocked возвращает true, если доступ к форме открыт
func (g *Gate) Unlocked() bool {
	return g.State() == StateUnlocked
}

// Err возвращает отображаемое сообщение последней неудачной проверки
func (g *Gate) Err() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}
