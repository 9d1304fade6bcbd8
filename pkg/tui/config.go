package tui

import (
	"fmt"
	"net/url"
	"strings"

	"dersctl/pkg/config"
	"dersctl/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Schedule Sheet URL", "source"),
						huh.NewOption("Set Class Sort Language", "collation"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "source":
			err = runSetSourceTUI(cfg)
		case "collation":
			err = runSetCollationTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.dersctl.json) ---"))
			fmt.Println(DescribeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// DescribeConfig renders the effective settings, marking built-in defaults
func DescribeConfig(cfg *config.AppConfig) string {
	var b strings.Builder

	source := cfg.ResolvedSourceURL()
	if cfg == nil || cfg.SourceURL == "" {
		source += " (default)"
	}
	fmt.Fprintf(&b, "Sheet URL: %s\n", source)
	fmt.Fprintf(&b, "Accent Color: %s\n", cfg.ResolvedAccentColor())
	fmt.Fprintf(&b, "Sort Language: %s\n", cfg.CollationTag())
	return b.String()
}

// ValidateSourceURL accepts absolute http(s) URLs
func ValidateSourceURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}

func runSetSourceTUI(cfg *config.AppConfig) error {
	input := cfg.SourceURL

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Published sheet CSV URL").
				Description("Leave empty to use the built-in schedule sheet.").
				Placeholder(schedule.DefaultSourceURL).
				Value(&input).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return ValidateSourceURL(strings.TrimSpace(s))
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SourceURL = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Schedule source set to: %s\n", cfg.ResolvedSourceURL())))
	return nil
}

func runSetCollationTUI(cfg *config.AppConfig) error {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which alphabet should classes with the same grade follow?").
				Options(
					huh.NewOption("Türkçe", language.Turkish.String()),
					huh.NewOption("English", language.English.String()),
					huh.NewOption("Deutsch", language.German.String()),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Collation = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Class sort language changed to: %s\n", selected)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// ValidateHexColor accepts "#RRGGBB"
func ValidateHexColor(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range str[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
	}
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for dersctl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Mor", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Pembe", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Mavi", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Yeşil", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidateHexColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
