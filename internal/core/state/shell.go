package state

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Shell holds UI-only flags. They are independent: opening one overlay never
// closes another.
type Shell struct {
	SidePanelOpen bool  `json:"sidePanelOpen"`
	AuthModalOpen bool  `json:"authModalOpen"`
	Theme         Theme `json:"theme"`
}

func NewShell() Shell {
	return Shell{Theme: ThemeLight}
}

func (s *Shell) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
		return
	}
	s.Theme = ThemeDark
}

// CloseOverlays resets transient flags. The theme is kept.
func (s *Shell) CloseOverlays() {
	s.SidePanelOpen = false
	s.AuthModalOpen = false
}
