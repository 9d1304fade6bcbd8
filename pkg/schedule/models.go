package schedule

// Course represents a single row of the weekly schedule sheet
type Course struct {
	ClassName  string `json:"class_name"`  // "9A", always trimmed and uppercased
	CourseName string `json:"course_name"` // "Matematik"
	Instructor string `json:"instructor"`  // "Ayşe Yılmaz"
	TimeSlot   string `json:"time_slot"`   // Free-form, e.g. "Pazartesi 09:00-09:40"
}

// Column headers of the published sheet
const (
	ColumnClass      = "Sınıf"
	ColumnCourse     = "Ders"
	ColumnInstructor = "Hoca"
	ColumnTimeSlot   = "Saat"
)
