package schedule

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ParseCourses reads a comma-separated document whose first line is the header.
// Empty lines are skipped and cells missing from short rows are left empty.
func ParseCourses(r io.Reader) ([]Course, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		// The first occurrence of a duplicated header wins
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	cell := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var courses []Course
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		courses = append(courses, Course{
			ClassName:  strings.ToUpper(cell(record, ColumnClass)),
			CourseName: cell(record, ColumnCourse),
			Instructor: cell(record, ColumnInstructor),
			TimeSlot:   cell(record, ColumnTimeSlot),
		})
	}

	return courses, nil
}
