package tui

import (
	"dersctl/pkg/config"
	"dersctl/pkg/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	// These act as fallbacks until GetTheme picks up the saved accent color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.DefaultAccentColor))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the user's saved accent color and constructs the form theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	if err != nil {
		cfg = nil
	}
	baseColor := cfg.ResolvedAccentColor()

	// Update the global lipgloss accent so plain CLI output also receives the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
// This is used for live-previewing styles before they are officially saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// ViewerOptions configures the interactive schedule viewer
type ViewerOptions struct {
	Source      viewer.Source
	Logger      *zap.Logger
	Collation   language.Tag
	AccentColor string
}

// RunTUI launches the interactive schedule viewer and blocks until the user quits
func RunTUI(opts ViewerOptions) error {
	accent := opts.AccentColor
	if accent == "" {
		accent = config.DefaultAccentColor
	}
	if opts.Collation == language.Und {
		opts.Collation = language.Turkish
	}

	ctrl := viewer.NewController(
		viewer.WithLogger(opts.Logger),
		viewer.WithCollation(opts.Collation),
	)

	p := tea.NewProgram(newViewerModel(ctrl, opts.Source, accent), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
