package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"geo/internal/geo"
)

// Run 启动终端界面；gfen 为空时从初始局面开始
func Run(gfen string) error {
	g := geo.NewGame()
	if gfen != "" {
		if err := g.Load(gfen); err != nil {
			return err
		}
	}
	p := tea.NewProgram(NewModel(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
