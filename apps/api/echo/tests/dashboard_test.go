package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
	"github.com/Lemoonautt/Unigestion-PJ/core/user"

	. "github.com/Lemoonautt/Unigestion-PJ/apps/api/echo"
)

// seedDashboard loads a small but complete period: one enrolled student with
// grades, attendance, an open alert and a withdrawal by a second student.
func seedDashboard(t *testing.T) academic.AcademicPeriod {
	t.Helper()
	ctx := context.Background()
	period, career := seedAcademic(t)

	ana, err := acadSvc.AddStudent(ctx, academic.Student{
		FirstName: "Ana", LastName: "Flores", CareerID: career.ID,
		CurrentSemester: 3, Status: academic.StudentActive,
	})
	if err != nil {
		t.Fatal(err)
	}
	beto, err := acadSvc.AddStudent(ctx, academic.Student{
		FirstName: "Beto", LastName: "Castro", CareerID: career.ID,
		CurrentSemester: 1, Status: academic.StudentActive,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err = acadSvc.AddTeacher(ctx, academic.Teacher{
		FirstName: "Carla", LastName: "Vargas", Status: academic.TeacherActive,
	}); err != nil {
		t.Fatal(err)
	}

	subject, err := acadSvc.AddSubject(ctx, academic.Subject{
		Name: "Física I", Code: "FIS-101", CareerID: career.ID, Semester: 3,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err = acadSvc.AddEnrollment(ctx, academic.Enrollment{
		StudentID: ana.ID, PeriodID: period.ID, SubjectIDs: []string{subject.ID},
		Status: academic.EnrollmentActive,
	}); err != nil {
		t.Fatal(err)
	}

	for _, g := range []float64{80, 90} {
		if _, err = acadSvc.AddGrade(ctx, academic.Grade{
			StudentID: ana.ID, SubjectID: subject.ID, PeriodID: period.ID,
			Type: academic.GradePartial1, Grade: g, MaxGrade: 100, Date: "2025-03-20",
		}); err != nil {
			t.Fatal(err)
		}
	}

	for _, status := range []academic.AttendanceStatus{
		academic.AttendancePresent, academic.AttendancePresent, academic.AttendancePresent, academic.AttendanceAbsent,
	} {
		if _, err = acadSvc.AddAttendance(ctx, academic.Attendance{
			StudentID: ana.ID, SubjectID: subject.ID, PeriodID: period.ID,
			Date: "2025-03-10", Status: status,
		}); err != nil {
			t.Fatal(err)
		}
	}

	if _, err = acadSvc.AddRiskAlert(ctx, academic.StudentRiskAlert{
		StudentID: ana.ID, PeriodID: period.ID,
		Type: academic.AlertGrades, Severity: academic.SeverityCritical, Date: "2025-04-01",
	}); err != nil {
		t.Fatal(err)
	}

	if _, err = acadSvc.AddWithdrawal(ctx, academic.Withdrawal{
		StudentID: beto.ID, PeriodID: period.ID, Date: "2025-04-20",
		Reason: academic.ReasonEconomic, Type: academic.WithdrawalTemporary, RiskLevel: academic.RiskLow,
	}); err != nil {
		t.Fatal(err)
	}

	if err = acadSvc.SetSelectedPeriod(&period.ID); err != nil {
		t.Fatal(err)
	}
	return period
}

func Test_dashboardApi_stats(t *testing.T) {
	app := setup(t)
	period := seedDashboard(t)

	admin := createUser(t, "Admin", "admin1", "admin@universidad.edu", "S3cretPwd!", []string{user.RoleAdmin}, true)
	token := getToken(t, admin)

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/dashboard/stats")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	t.Run("Selected period", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/stats", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var stats academic.DashboardStats
		if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
			t.Fatal(err)
		}
		if stats.PeriodName != period.Name {
			t.Errorf("PeriodName = %q; want %q", stats.PeriodName, period.Name)
		}
		if stats.EnrolledStudents != 1 {
			t.Errorf("EnrolledStudents = %d; want 1", stats.EnrolledStudents)
		}
		if stats.AverageGrade != 85 || !stats.Approving {
			t.Errorf("AverageGrade/Approving = %d/%v; want 85/true", stats.AverageGrade, stats.Approving)
		}
		if stats.AttendanceRate != 75 || stats.AttendanceCount != 4 {
			t.Errorf("AttendanceRate/Count = %d/%d; want 75/4", stats.AttendanceRate, stats.AttendanceCount)
		}
		if stats.ActiveAlerts != 1 || stats.Withdrawals != 1 || stats.TemporaryWithdrawals != 1 {
			t.Errorf("alerts/withdrawals = %d/%d/%d", stats.ActiveAlerts, stats.Withdrawals, stats.TemporaryWithdrawals)
		}
	})

	t.Run("Explicit period overrides", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/stats?period=nope", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var stats academic.DashboardStats
		if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
			t.Fatal(err)
		}
		if stats.PeriodName != "" || stats.GradeCount != 0 {
			t.Errorf("unknown period leaked data: %+v", stats)
		}
	})
}

func Test_dashboardApi_alerts(t *testing.T) {
	app := setup(t)
	seedDashboard(t)

	teacher := createUser(t, "Docente", "teacher1", "teacher@universidad.edu", "S3cretPwd!", []string{user.RoleTeacher}, true)
	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/alerts", getToken(t, teacher))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp DashboardAlertsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Alerts) != 1 || resp.Active != 1 {
		t.Fatalf("alerts/active = %d/%d; want 1/1", len(resp.Alerts), resp.Active)
	}
	if resp.Alerts[0].Severity != academic.SeverityCritical {
		t.Errorf("Severity = %q; want critical", resp.Alerts[0].Severity)
	}
}

func Test_dashboardApi_attendance(t *testing.T) {
	app := setup(t)
	seedDashboard(t)

	teacher := createUser(t, "Docente", "teacher1", "teacher@universidad.edu", "S3cretPwd!", []string{user.RoleTeacher}, true)
	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/attendance?date=2025-03-10", getToken(t, teacher))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp DashboardAttendanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Summary.Total != 4 || resp.Summary.Rate != 75 {
		t.Errorf("Summary = %+v; want Total 4 Rate 75", resp.Summary)
	}
	if resp.ByDate == nil || resp.ByDate.Total != 4 {
		t.Errorf("ByDate = %+v; want Total 4", resp.ByDate)
	}
	if len(resp.TopAbsentees) != 1 || resp.TopAbsentees[0].Name != "Ana Flores" {
		t.Errorf("TopAbsentees = %+v; want Ana Flores", resp.TopAbsentees)
	}
}

func Test_dashboardApi_grades(t *testing.T) {
	app := setup(t)
	seedDashboard(t)

	teacher := createUser(t, "Docente", "teacher1", "teacher@universidad.edu", "S3cretPwd!", []string{user.RoleTeacher}, true)
	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/grades", getToken(t, teacher))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp DashboardGradesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.SubjectAverages) != 1 {
		t.Fatalf("SubjectAverages = %+v; want one entry", resp.SubjectAverages)
	}
	if got := resp.SubjectAverages[0].Average; got != 85 {
		t.Errorf("Average = %v; want 85", got)
	}
	if len(resp.CourseAverages) != 0 {
		t.Errorf("CourseAverages = %+v; want none", resp.CourseAverages)
	}
}

func Test_dashboardApi_withdrawals(t *testing.T) {
	app := setup(t)
	seedDashboard(t)

	admin := createUser(t, "Admin", "admin1", "admin@universidad.edu", "S3cretPwd!", []string{user.RoleAdmin}, true)
	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/withdrawals", getToken(t, admin))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp DashboardWithdrawalsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Breakdown.Total != 1 || resp.Breakdown.Temporary != 1 {
		t.Errorf("Breakdown = %+v; want Total 1 Temporary 1", resp.Breakdown)
	}
	if len(resp.Reasons) != 1 || resp.Reasons[0].Reason != academic.ReasonEconomic {
		t.Errorf("Reasons = %+v; want a single economic entry", resp.Reasons)
	}
	if len(resp.ByCareer) != 1 || resp.ByCareer[0].CareerCode != "SIS" {
		t.Errorf("ByCareer = %+v; want SIS", resp.ByCareer)
	}
	if len(resp.Recent) != 1 {
		t.Errorf("Recent = %+v; want one row", resp.Recent)
	}
}
