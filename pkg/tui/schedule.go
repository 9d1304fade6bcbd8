package tui

import (
	"context"
	"fmt"
	"io"

	"dersctl/pkg/schedule"
	"dersctl/pkg/viewer"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

// FetchWithSpinner downloads the sheet while showing a spinner
func FetchWithSpinner(src viewer.Source, title string) ([]schedule.Course, error) {
	var courses []schedule.Course
	var err error

	_ = spinner.New().
		Title(title).
		Action(func() {
			courses, err = src.FetchCourses(context.Background())
		}).
		Run()

	return courses, err
}

// PickClass asks the user to choose one of the given class identifiers
func PickClass(classes []string) (string, error) {
	var selected string

	options := make([]huh.Option[string], 0, len(classes))
	for _, id := range classes {
		options = append(options, huh.NewOption(id, id))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(viewer.ChooseClassText).
				Description("Enter = confirm. Start typing to filter.").
				Options(options...).
				Value(&selected).
				Filtering(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// RunScheduleTUI fetches the sheet, lets the user pick a class and prints its courses
func RunScheduleTUI(src viewer.Source, tag language.Tag, w io.Writer) error {
	courses, err := FetchWithSpinner(src, "Fetching the weekly schedule...")
	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}

	classes := schedule.ClassIDs(courses, tag)
	if len(classes) == 0 {
		fmt.Fprintln(w, errorStyle.Render("No classes found in the schedule!"))
		return nil
	}

	class, err := PickClass(classes)
	if err != nil {
		return err
	}

	PrintClass(w, courses, class)
	return nil
}

// PrintClass writes the course list of one class the same way the viewer shows it
func PrintClass(w io.Writer, courses []schedule.Course, class string) {
	v := viewer.Render(viewer.State{Courses: courses, Selected: class})
	if !v.ShowList {
		fmt.Fprintln(w, errorStyle.Render("No class selected!"))
		return
	}

	titleStyle := accentStyle.Bold(true).Padding(1, 0)
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	fmt.Fprintln(w, titleStyle.Render(v.Heading))
	for _, e := range v.Entries {
		if e.Placeholder {
			fmt.Fprintln(w, errorStyle.Render(e.Name))
			continue
		}
		fmt.Fprintf(w, "• %s\n  %s\n", e.Name, infoStyle.Render(e.Info))
	}
}
