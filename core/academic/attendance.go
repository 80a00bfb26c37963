package academic

import (
	"math"
	"sort"
)

// Absence thresholds for the over-absence alert view. Fixed business rules.
const (
	CriticalAbsenceThreshold = 5
	WarningAbsenceThreshold  = 3
)

type AbsenceLevel string

const (
	AbsenceNormal   AbsenceLevel = "normal"
	AbsenceWarning  AbsenceLevel = "warning"
	AbsenceCritical AbsenceLevel = "critical"
)

// AbsenceSeverity buckets an absence count for display.
func AbsenceSeverity(count int) AbsenceLevel {
	switch {
	case count >= CriticalAbsenceThreshold:
		return AbsenceCritical
	case count >= WarningAbsenceThreshold:
		return AbsenceWarning
	default:
		return AbsenceNormal
	}
}

// AttendanceSummary partitions a set of attendance records by status.
// Present+Absent+Late+Excused always equals Total.
type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
	Total   int `json:"total"`
	// Rate is present/total as a percentage rounded to the nearest integer,
	// 0 when the set is empty.
	Rate int `json:"rate"`
}

func summarize(attendance []Attendance) AttendanceSummary {
	var s AttendanceSummary
	for _, a := range attendance {
		switch a.Status {
		case AttendancePresent:
			s.Present++
		case AttendanceAbsent:
			s.Absent++
		case AttendanceLate:
			s.Late++
		case AttendanceExcused:
			s.Excused++
		}
		s.Total++
	}
	s.Rate = AttendanceRate(s.Present, s.Total)
	return s
}

// AttendanceRate computes round(present/total*100); 0 when total is 0.
func AttendanceRate(present, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// SummarizeAttendance buckets the records of the selected period (all periods
// when selectedPeriodID is nil).
func SummarizeAttendance(attendance []Attendance, selectedPeriodID *string) AttendanceSummary {
	return summarize(FilterByPeriod(attendance, selectedPeriodID))
}

// SummarizeAttendanceByDate buckets the records of a single date (the daily
// register view).
func SummarizeAttendanceByDate(attendance []Attendance, date string) AttendanceSummary {
	daily := make([]Attendance, 0, len(attendance))
	for _, a := range attendance {
		if a.Date == date {
			daily = append(daily, a)
		}
	}
	return summarize(daily)
}

// Absentee is one row of the "students with most absences" ranking.
type Absentee struct {
	StudentID  string       `json:"studentId"`
	Name       string       `json:"name"`
	CareerCode string       `json:"careerCode"`
	Count      int          `json:"count"`
	Level      AbsenceLevel `json:"level"`
}

// DefaultAbsenteeLimit is how many absentees the dashboard card shows.
const DefaultAbsenteeLimit = 5

// TopAbsentees groups absent records by student, counts them and returns the
// top `limit` students ordered by count descending (ties keep first-absence
// order). Absences referencing a student that no longer exists are skipped.
// CareerCode is empty when the student's career cannot be resolved.
func TopAbsentees(attendance []Attendance, students []Student, careers []Career, selectedPeriodID *string, limit int) []Absentee {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, a := range FilterByPeriod(attendance, selectedPeriodID) {
		if a.Status != AttendanceAbsent {
			continue
		}
		if _, seen := counts[a.StudentID]; !seen {
			order = append(order, a.StudentID)
		}
		counts[a.StudentID]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	top := make([]Absentee, 0, len(order))
	for _, studentID := range order {
		var student Student
		var found bool
		for _, s := range students {
			if s.ID == studentID {
				student, found = s, true
				break
			}
		}
		if !found {
			continue
		}
		var careerCode string
		for _, c := range careers {
			if c.ID == student.CareerID {
				careerCode = c.Code
				break
			}
		}
		count := counts[studentID]
		top = append(top, Absentee{
			StudentID:  studentID,
			Name:       student.FullName(),
			CareerCode: careerCode,
			Count:      count,
			Level:      AbsenceSeverity(count),
		})
		if limit > 0 && len(top) == limit {
			break
		}
	}
	return top
}
