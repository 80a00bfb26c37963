package academic

import (
	"math"
	"testing"
)

func TestGradeAverage(t *testing.T) {
	if got := GradeAverage(nil); got != 0 {
		t.Errorf("GradeAverage(nil) = %v, want 0", got)
	}

	grades := []Grade{{Grade: 85}, {Grade: 90}, {Grade: 75}}
	got := GradeAverage(grades)
	if math.Abs(got-83.333) > 0.001 {
		t.Errorf("GradeAverage() = %v, want ~83.333", got)
	}
}

func TestIsPassing(t *testing.T) {
	tests := []struct {
		average float64
		want    bool
	}{
		{70, true},
		{70.01, true},
		{69.99, false},
		{0, false},
		{100, true},
	}
	for _, tt := range tests {
		if got := IsPassing(tt.average); got != tt.want {
			t.Errorf("IsPassing(%v) = %v, want %v", tt.average, got, tt.want)
		}
	}
}

func TestSubjectAverages(t *testing.T) {
	subjects := []Subject{
		{ID: "sub1", Name: "Cálculo I"},
		{ID: "sub2", Name: "Física I"},
		{ID: "sub3", Name: "Química"},
	}
	grades := []Grade{
		{SubjectID: "sub1", PeriodID: "p1", Grade: 85},
		{SubjectID: "sub1", PeriodID: "p1", Grade: 90},
		{SubjectID: "sub1", PeriodID: "p1", Grade: 75},
		{SubjectID: "sub2", PeriodID: "p1", Grade: 60},
		{SubjectID: "sub2", PeriodID: "p2", Grade: 100}, // other period
	}

	got := SubjectAverages(grades, subjects, strPtr("p1"))
	if len(got) != 3 {
		t.Fatalf("SubjectAverages() returned %d rows, want 3", len(got))
	}
	if got[0].Average != 83.3 {
		t.Errorf("SubjectAverages()[0].Average = %v, want 83.3", got[0].Average)
	}
	if got[1].Average != 60 {
		t.Errorf("SubjectAverages()[1].Average = %v, want 60", got[1].Average)
	}
	// subject with no grades still gets a (zero) bar, in catalog order
	if got[2].SubjectID != "sub3" || got[2].Average != 0 {
		t.Errorf("SubjectAverages()[2] = %+v", got[2])
	}
}

func TestCourseAverages(t *testing.T) {
	courses := []Course{
		{ID: "c1", Name: "Matemáticas"},
		{ID: "c2", Name: "Historia"},
		{ID: "c3", Name: "Lengua"},
	}
	grades := []Grade{
		{CourseID: "c1", Grade: 8.5},
		{CourseID: "c1", Grade: 7},
		{SubjectID: "sub1", Grade: 95}, // subject-keyed, must not bleed in
	}

	got := CourseAverages(grades, courses, 2)
	if len(got) != 2 {
		t.Fatalf("CourseAverages() returned %d rows, want 2", len(got))
	}
	if got[0].Average != 7.8 { // (8.5+7)/2 = 7.75 -> 7.8
		t.Errorf("CourseAverages()[0].Average = %v, want 7.8", got[0].Average)
	}
	if got[1].CourseID != "c2" || got[1].Average != 0 {
		t.Errorf("CourseAverages()[1] = %+v", got[1])
	}
}

func TestStudentGradeAverage(t *testing.T) {
	grades := []Grade{
		{StudentID: "s1", PeriodID: "p1", Grade: 80},
		{StudentID: "s1", PeriodID: "p1", Grade: 90},
		{StudentID: "s2", PeriodID: "p1", Grade: 40},
		{StudentID: "s1", PeriodID: "p2", Grade: 10},
	}
	if got := StudentGradeAverage(grades, "s1", strPtr("p1")); got != 85 {
		t.Errorf("StudentGradeAverage() = %v, want 85", got)
	}
	if got := StudentGradeAverage(grades, "s9", strPtr("p1")); got != 0 {
		t.Errorf("StudentGradeAverage(s9) = %v, want 0", got)
	}
}

func TestSortGradesByDateDesc(t *testing.T) {
	grades := []Grade{
		{ID: "g1", Date: "2025-03-01"},
		{ID: "g2", Date: "2025-05-20"},
		{ID: "g3", Date: "2025-04-15"},
	}
	got := SortGradesByDateDesc(grades)
	if got[0].ID != "g2" || got[1].ID != "g3" || got[2].ID != "g1" {
		t.Errorf("SortGradesByDateDesc() = %v", got)
	}
	// input order untouched
	if grades[0].ID != "g1" {
		t.Error("SortGradesByDateDesc() mutated its input")
	}
}
