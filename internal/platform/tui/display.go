package tui

import "github.com/vovakirdan/tui-flappy/internal/game"

// HUD holds what the session last wrote to the screen overlay.
type HUD struct {
	texts map[game.Node]string
	hit   bool
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{texts: make(map[game.Node]string)}
}

// SetText replaces the text of a node.
func (h *HUD) SetText(node game.Node, text string) {
	h.texts[node] = text
}

// MarkActor tints the bird after a crash.
func (h *HUD) MarkActor(hit bool) {
	h.hit = hit
}

// Text returns the current text of a node.
func (h *HUD) Text(node game.Node) string {
	return h.texts[node]
}

// Hit reports whether the bird is marked as crashed.
func (h *HUD) Hit() bool {
	return h.hit
}
