package viewer

import "dersctl/pkg/schedule"

// State is everything the viewer shows. Selected is empty when no class is selected.
type State struct {
	Courses   []schedule.Course
	Classes   []string
	Selected  string
	ModalOpen bool
	Loading   bool
}

// HasSelection reports whether a class is currently selected
func (s State) HasSelection() bool {
	return s.Selected != ""
}
