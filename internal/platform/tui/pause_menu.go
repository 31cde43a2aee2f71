package tui

// Pause menu entries.
const (
	MenuContinue = "Continue"
	MenuExit     = "Exit"
)

// PauseMenu is the list shown while the game is paused.
type PauseMenu struct {
	items  []string
	cursor int
}

// NewPauseMenu creates the menu with the cursor on Continue.
func NewPauseMenu() *PauseMenu {
	return &PauseMenu{items: []string{MenuContinue, MenuExit}}
}

// Items returns the menu entries.
func (m *PauseMenu) Items() []string {
	return m.items
}

// Cursor returns the highlighted index.
func (m *PauseMenu) Cursor() int {
	return m.cursor
}

// Up moves the cursor up, wrapping around.
func (m *PauseMenu) Up() {
	m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
}

// Down moves the cursor down, wrapping around.
func (m *PauseMenu) Down() {
	m.cursor = (m.cursor + 1) % len(m.items)
}

// Selected returns the highlighted entry.
func (m *PauseMenu) Selected() string {
	return m.items[m.cursor]
}

// Reset moves the cursor back to the first entry.
func (m *PauseMenu) Reset() {
	m.cursor = 0
}
