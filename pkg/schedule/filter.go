package schedule

// CoursesFor returns the courses of a single class, in sheet order.
// class is expected in normalized (trimmed, uppercase) form.
func CoursesFor(courses []Course, class string) []Course {
	if class == "" {
		return nil
	}

	var matched []Course
	for _, c := range courses {
		if c.ClassName == class {
			matched = append(matched, c)
		}
	}
	return matched
}
