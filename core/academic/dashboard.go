package academic

import "math"

// DashboardStats backs the stats cards of the admin dashboard. All values are
// recomputed from a snapshot on every read; nothing is cached.
type DashboardStats struct {
	PeriodName string `json:"periodName"`

	EnrolledStudents int `json:"enrolledStudents"` // active enrollments in the period
	ActiveStudents   int `json:"activeStudents"`
	ActiveTeachers   int `json:"activeTeachers"`
	TotalTeachers    int `json:"totalTeachers"`
	OnLeaveTeachers  int `json:"onLeaveTeachers"`
	ActiveCareers    int `json:"activeCareers"`
	SubjectCount     int `json:"subjectCount"`

	// AverageGrade is the period mean rounded to the nearest integer
	// (0-100 scale); Approving applies the cut to the rounded value, as the
	// dashboard displays it.
	AverageGrade int  `json:"averageGrade"`
	GradeCount   int  `json:"gradeCount"`
	Approving    bool `json:"approving"`

	AttendanceRate  int `json:"attendanceRate"`
	AttendanceCount int `json:"attendanceCount"`

	ActiveAlerts         int `json:"activeAlerts"`
	Withdrawals          int `json:"withdrawals"`
	TemporaryWithdrawals int `json:"temporaryWithdrawals"`
}

// EnrolledStudentIDs lists the students with an active enrollment in the
// selected period.
func EnrolledStudentIDs(enrollments []Enrollment, selectedPeriodID *string) []string {
	ids := make([]string, 0)
	for _, e := range FilterByPeriod(enrollments, selectedPeriodID) {
		if e.Status == EnrollmentActive {
			ids = append(ids, e.StudentID)
		}
	}
	return ids
}

// ComputeDashboardStats derives the dashboard aggregates from a snapshot,
// scoped to the snapshot's selected period.
func ComputeDashboardStats(s State) DashboardStats {
	var stats DashboardStats

	if s.SelectedPeriodID != nil {
		if p, ok := s.Period(*s.SelectedPeriodID); ok {
			stats.PeriodName = p.Name
		}
	}

	stats.EnrolledStudents = len(EnrolledStudentIDs(s.Enrollments, s.SelectedPeriodID))

	for _, st := range s.Students {
		if st.Status == StudentActive {
			stats.ActiveStudents++
		}
	}
	for _, t := range s.Teachers {
		stats.TotalTeachers++
		switch t.Status {
		case TeacherActive:
			stats.ActiveTeachers++
		case TeacherOnLeave:
			stats.OnLeaveTeachers++
		}
	}
	for _, c := range s.Careers {
		if c.Status == CareerActive {
			stats.ActiveCareers++
		}
	}
	stats.SubjectCount = len(s.Subjects)

	periodGrades := FilterByPeriod(s.Grades, s.SelectedPeriodID)
	stats.GradeCount = len(periodGrades)
	stats.AverageGrade = int(math.Round(GradeAverage(periodGrades)))
	stats.Approving = IsPassing(float64(stats.AverageGrade))

	attendance := SummarizeAttendance(s.Attendance, s.SelectedPeriodID)
	stats.AttendanceRate = attendance.Rate
	stats.AttendanceCount = attendance.Total

	stats.ActiveAlerts = CountActiveAlerts(s.RiskAlerts, s.SelectedPeriodID)

	breakdown := SummarizeWithdrawals(s.Withdrawals, s.SelectedPeriodID)
	stats.Withdrawals = breakdown.Total
	stats.TemporaryWithdrawals = breakdown.Temporary

	return stats
}
