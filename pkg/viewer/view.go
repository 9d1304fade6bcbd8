package viewer

import (
	"fmt"

	"dersctl/pkg/schedule"
)

// Labels shown by the viewer
const (
	TitleText       = "📚 Haftalık Ders Programı"
	ChooseClassText = "Sınıf Seç"
	LoadingText     = "📡 Veriler yükleniyor..."
	NoCoursesText   = "Bu sınıf için ders bulunamadı."
)

// Entry is one line of the course list
type Entry struct {
	Name        string
	Info        string
	Placeholder bool
}

// View is the rendered form of a State
type View struct {
	Title       string
	ButtonLabel string
	ModalOpen   bool
	Options     []string
	Loading     bool
	ShowList    bool
	Heading     string
	Entries     []Entry
}

// Render derives what the viewer shows from s
func Render(s State) View {
	v := View{
		Title:       TitleText,
		ButtonLabel: ChooseClassText,
		ModalOpen:   s.ModalOpen,
		Loading:     s.Loading,
	}
	if s.HasSelection() {
		v.ButtonLabel = s.Selected
	}
	if s.ModalOpen {
		v.Options = s.Classes
	}

	if !s.HasSelection() || s.Loading {
		return v
	}

	v.ShowList = true
	v.Heading = fmt.Sprintf("%s Sınıfı", s.Selected)

	for _, c := range schedule.CoursesFor(s.Courses, s.Selected) {
		v.Entries = append(v.Entries, Entry{
			Name: c.CourseName,
			Info: fmt.Sprintf("%s - %s", c.Instructor, c.TimeSlot),
		})
	}
	if len(v.Entries) == 0 {
		v.Entries = []Entry{{Name: NoCoursesText, Placeholder: true}}
	}
	return v
}

// View renders the current state
func (c *Controller) View() View {
	return Render(c.state)
}
