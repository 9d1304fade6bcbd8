package schedule

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// gradeNumber extracts the first run of digits in a class identifier ("10B" -> 10).
// Identifiers without digits count as grade 0.
func gradeNumber(id string) int {
	digits := digitRun.FindString(id)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// SortClassIDs orders identifiers by their embedded grade number, then by
// locale-aware comparison of the whole identifier. The sort is stable.
func SortClassIDs(ids []string, tag language.Tag) {
	col := collate.New(tag)
	sort.SliceStable(ids, func(i, j int) bool {
		ni, nj := gradeNumber(ids[i]), gradeNumber(ids[j])
		if ni != nj {
			return ni < nj
		}
		return col.CompareString(ids[i], ids[j]) < 0
	})
}

// ClassIDs returns the distinct, non-empty class identifiers found in courses,
// ordered with SortClassIDs.
func ClassIDs(courses []Course, tag language.Tag) []string {
	seen := make(map[string]bool)
	var ids []string

	for _, c := range courses {
		if c.ClassName == "" || seen[c.ClassName] {
			continue
		}
		seen[c.ClassName] = true
		ids = append(ids, c.ClassName)
	}

	SortClassIDs(ids, tag)
	return ids
}
