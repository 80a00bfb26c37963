package academic

import (
	"math"
	"sort"
)

// PassingGrade is the approval cut on the 0-100 scale.
const PassingGrade = 70

// GradeAverage is the arithmetic mean of the grade field; 0 when the set is
// empty.
func GradeAverage(grades []Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g.Grade
	}
	return sum / float64(len(grades))
}

// PeriodGradeAverage is GradeAverage scoped to the selected period.
func PeriodGradeAverage(grades []Grade, selectedPeriodID *string) float64 {
	return GradeAverage(FilterByPeriod(grades, selectedPeriodID))
}

// IsPassing applies the approval cut (0-100 scale).
func IsPassing(average float64) bool {
	return average >= PassingGrade
}

// SubjectAverage is one bar of the per-subject average chart.
type SubjectAverage struct {
	SubjectID string  `json:"subjectId"`
	Name      string  `json:"name"`
	Average   float64 `json:"average"` // rounded to one decimal
}

// SubjectAverages computes the mean grade per subject (rounded to one
// decimal, 0 for subjects with no grades), in the catalog's subject order.
func SubjectAverages(grades []Grade, subjects []Subject, selectedPeriodID *string) []SubjectAverage {
	scoped := FilterByPeriod(grades, selectedPeriodID)
	averages := make([]SubjectAverage, 0, len(subjects))
	for _, sub := range subjects {
		matching := make([]Grade, 0)
		for _, g := range scoped {
			if g.SubjectID == sub.ID {
				matching = append(matching, g)
			}
		}
		averages = append(averages, SubjectAverage{
			SubjectID: sub.ID,
			Name:      sub.Name,
			Average:   round1(GradeAverage(matching)),
		})
	}
	return averages
}

// CourseAverage is one bar of the legacy per-course chart (0-10 scale).
type CourseAverage struct {
	CourseID string  `json:"courseId"`
	Name     string  `json:"name"`
	Average  float64 `json:"average"` // rounded to one decimal
}

// DefaultCourseLimit is how many courses the legacy chart shows.
const DefaultCourseLimit = 5

// CourseAverages computes the mean of course-keyed grades per course, for the
// first `limit` courses of the catalog (limit <= 0 takes all). Grades keyed
// by subject are ignored here: the legacy chart only reads courseId.
func CourseAverages(grades []Grade, courses []Course, limit int) []CourseAverage {
	if limit > 0 && len(courses) > limit {
		courses = courses[:limit]
	}
	averages := make([]CourseAverage, 0, len(courses))
	for _, c := range courses {
		matching := make([]Grade, 0)
		for _, g := range grades {
			if g.CourseID == c.ID {
				matching = append(matching, g)
			}
		}
		averages = append(averages, CourseAverage{
			CourseID: c.ID,
			Name:     c.Name,
			Average:  round1(GradeAverage(matching)),
		})
	}
	return averages
}

// StudentGradeAverage is the mean of a single student's grades within the
// selected period; 0 when the student has none.
func StudentGradeAverage(grades []Grade, studentID string, selectedPeriodID *string) float64 {
	matching := make([]Grade, 0)
	for _, g := range FilterByPeriod(grades, selectedPeriodID) {
		if g.StudentID == studentID {
			matching = append(matching, g)
		}
	}
	return GradeAverage(matching)
}

// SortGradesByDateDesc orders a copy of the grades latest-first (the history
// table ordering).
func SortGradesByDateDesc(grades []Grade) []Grade {
	sorted := make([]Grade, len(grades))
	copy(sorted, grades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
