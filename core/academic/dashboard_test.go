package academic

import "testing"

func dashboardState() State {
	return State{
		Periods: []AcademicPeriod{
			{ID: "p1", Name: "Gestión 1/2025", Status: PeriodActive},
			{ID: "p0", Name: "Gestión 2/2024", Status: PeriodClosed},
		},
		Students: []Student{
			{ID: "s1", Status: StudentActive},
			{ID: "s2", Status: StudentActive},
			{ID: "s3", Status: StudentWithdrawn},
			{ID: "s4", Status: StudentSuspended},
		},
		Teachers: []Teacher{
			{ID: "t1", Status: TeacherActive},
			{ID: "t2", Status: TeacherOnLeave},
			{ID: "t3", Status: TeacherInactive},
		},
		Careers: []Career{
			{ID: "c1", Status: CareerActive},
			{ID: "c2", Status: CareerInactive},
		},
		Subjects: []Subject{{ID: "sub1"}, {ID: "sub2"}},
		Enrollments: []Enrollment{
			{StudentID: "s1", PeriodID: "p1", Status: EnrollmentActive},
			{StudentID: "s2", PeriodID: "p1", Status: EnrollmentActive},
			{StudentID: "s3", PeriodID: "p1", Status: EnrollmentWithdrawn},
			{StudentID: "s1", PeriodID: "p0", Status: EnrollmentActive},
		},
		Grades: []Grade{
			{PeriodID: "p1", Grade: 85},
			{PeriodID: "p1", Grade: 60},
			{PeriodID: "p0", Grade: 10},
		},
		Attendance: []Attendance{
			{PeriodID: "p1", Status: AttendancePresent},
			{PeriodID: "p1", Status: AttendancePresent},
			{PeriodID: "p1", Status: AttendancePresent},
			{PeriodID: "p1", Status: AttendanceAbsent},
		},
		RiskAlerts: []StudentRiskAlert{
			{PeriodID: "p1"},
			{PeriodID: "p1", Resolved: true},
		},
		Withdrawals: []Withdrawal{
			{PeriodID: "p1", Type: WithdrawalTemporary},
			{PeriodID: "p1", Type: WithdrawalPermanent},
			{PeriodID: "p0", Type: WithdrawalTemporary},
		},
		SelectedPeriodID: strPtr("p1"),
	}
}

func TestComputeDashboardStats(t *testing.T) {
	got := ComputeDashboardStats(dashboardState())

	if got.PeriodName != "Gestión 1/2025" {
		t.Errorf("PeriodName = %q", got.PeriodName)
	}
	if got.EnrolledStudents != 2 {
		t.Errorf("EnrolledStudents = %d, want 2", got.EnrolledStudents)
	}
	if got.ActiveStudents != 2 {
		t.Errorf("ActiveStudents = %d, want 2", got.ActiveStudents)
	}
	if got.ActiveTeachers != 1 || got.TotalTeachers != 3 || got.OnLeaveTeachers != 1 {
		t.Errorf("teachers = %d/%d (%d on leave)", got.ActiveTeachers, got.TotalTeachers, got.OnLeaveTeachers)
	}
	if got.ActiveCareers != 1 {
		t.Errorf("ActiveCareers = %d, want 1", got.ActiveCareers)
	}
	if got.SubjectCount != 2 {
		t.Errorf("SubjectCount = %d, want 2", got.SubjectCount)
	}
	// (85+60)/2 = 72.5 -> 73, passing
	if got.AverageGrade != 73 || !got.Approving || got.GradeCount != 2 {
		t.Errorf("grades = %d (%d records, approving=%v)", got.AverageGrade, got.GradeCount, got.Approving)
	}
	if got.AttendanceRate != 75 || got.AttendanceCount != 4 {
		t.Errorf("attendance = %d%% of %d", got.AttendanceRate, got.AttendanceCount)
	}
	if got.ActiveAlerts != 1 {
		t.Errorf("ActiveAlerts = %d, want 1", got.ActiveAlerts)
	}
	if got.Withdrawals != 2 || got.TemporaryWithdrawals != 1 {
		t.Errorf("withdrawals = %d (%d temporary)", got.Withdrawals, got.TemporaryWithdrawals)
	}
}

func TestComputeDashboardStatsAllPeriods(t *testing.T) {
	s := dashboardState()
	s.SelectedPeriodID = nil

	got := ComputeDashboardStats(s)
	if got.PeriodName != "" {
		t.Errorf("PeriodName = %q, want empty", got.PeriodName)
	}
	if got.EnrolledStudents != 3 {
		t.Errorf("EnrolledStudents = %d, want 3", got.EnrolledStudents)
	}
	if got.GradeCount != 3 || got.Withdrawals != 3 {
		t.Errorf("GradeCount = %d, Withdrawals = %d", got.GradeCount, got.Withdrawals)
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	got := ComputeDashboardStats(State{})
	if got.AverageGrade != 0 || got.Approving {
		t.Errorf("empty state grades = %d (approving=%v)", got.AverageGrade, got.Approving)
	}
	if got.AttendanceRate != 0 {
		t.Errorf("empty state AttendanceRate = %d", got.AttendanceRate)
	}
}
