package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cyber-invaders/engine"
)

// KeystrokeHandler consumes presentation-independent keystrokes
type KeystrokeHandler interface {
	OnKeystroke(engine.Key)
}

// InputHandler translates tcell events into game keystrokes
type InputHandler struct {
	handler KeystrokeHandler
	screen  tcell.Screen
}

// NewInputHandler creates a new input handler
// screen may be nil when resize handling is not needed
func NewInputHandler(handler KeystrokeHandler, screen tcell.Screen) *InputHandler {
	return &InputHandler{
		handler: handler,
		screen:  screen,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.screen != nil {
			h.screen.Sync()
		}
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	// Handle exit keys
	if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if key, ok := TranslateKey(ev); ok {
		h.handler.OnKeystroke(key)
	}
	return true
}

// TranslateKey maps a tcell key event to a game keystroke
// Unmapped keys report false and are dropped
func TranslateKey(ev *tcell.EventKey) (engine.Key, bool) {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return engine.Key{Kind: engine.KeyBackspace}, true
	case tcell.KeyEscape:
		return engine.Key{Kind: engine.KeyEscape}, true
	case tcell.KeyEnter:
		return engine.Key{Kind: engine.KeyEnter}, true
	case tcell.KeyRune:
		return engine.CharKey(ev.Rune()), true
	}
	return engine.Key{}, false
}
