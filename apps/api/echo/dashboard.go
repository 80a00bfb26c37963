package echoapi

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
)

type dashboardApi struct {
	svc *academic.Service
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *academic.Service) {
	api := dashboardApi{svc: svc}

	dg := g.Group("/dashboard", jwt)
	dg.GET("/stats", api.stats)
	dg.GET("/alerts", api.alerts)
	dg.GET("/attendance", api.attendance)
	dg.GET("/grades", api.grades)
	dg.GET("/withdrawals", api.withdrawals)
}

// periodScope resolves the period scoping a dashboard read: the `period` query
// param wins when present ("all" disables scoping), otherwise the session's
// selected period applies.
func periodScope(ctx echo.Context, s academic.State) *string {
	if p := ctx.QueryParam("period"); p != "" {
		if p == "all" {
			return nil
		}
		return &p
	}
	return s.SelectedPeriodID
}

func limitParam(ctx echo.Context, fallback int) int {
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			return limit
		}
	}
	return fallback
}

func (api *dashboardApi) stats(ctx echo.Context) error {
	s := api.svc.Snapshot()
	s.SelectedPeriodID = periodScope(ctx, s)
	return ctx.JSON(http.StatusOK, academic.ComputeDashboardStats(s))
}

func (api *dashboardApi) alerts(ctx echo.Context) error {
	s := api.svc.Snapshot()
	scope := periodScope(ctx, s)
	limit := limitParam(ctx, academic.DefaultAlertLimit)

	var alerts []academic.StudentRiskAlert
	if scope != nil {
		alerts = academic.RankRiskAlerts(s.RiskAlerts, *scope, limit)
	} else {
		// no period scoping: rank the unresolved alerts of every period
		alerts = make([]academic.StudentRiskAlert, 0, len(s.RiskAlerts))
		for _, a := range s.RiskAlerts {
			if !a.Resolved {
				alerts = append(alerts, a)
			}
		}
		sort.SliceStable(alerts, func(i, j int) bool {
			return academic.SeverityRank(alerts[i].Severity) < academic.SeverityRank(alerts[j].Severity)
		})
		if limit > 0 && len(alerts) > limit {
			alerts = alerts[:limit]
		}
	}

	return ctx.JSON(http.StatusOK, DashboardAlertsResponse{
		Alerts: alerts,
		Active: academic.CountActiveAlerts(s.RiskAlerts, scope),
	})
}

func (api *dashboardApi) attendance(ctx echo.Context) error {
	s := api.svc.Snapshot()
	scope := periodScope(ctx, s)

	resp := DashboardAttendanceResponse{
		Summary:      academic.SummarizeAttendance(s.Attendance, scope),
		TopAbsentees: academic.TopAbsentees(s.Attendance, s.Students, s.Careers, scope, limitParam(ctx, academic.DefaultAbsenteeLimit)),
	}
	if date := ctx.QueryParam("date"); date != "" {
		byDate := academic.SummarizeAttendanceByDate(s.Attendance, date)
		resp.ByDate = &byDate
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *dashboardApi) grades(ctx echo.Context) error {
	s := api.svc.Snapshot()
	scope := periodScope(ctx, s)

	return ctx.JSON(http.StatusOK, DashboardGradesResponse{
		SubjectAverages: academic.SubjectAverages(s.Grades, s.Subjects, scope),
		CourseAverages:  academic.CourseAverages(s.Grades, s.Courses, limitParam(ctx, academic.DefaultCourseLimit)),
	})
}

func (api *dashboardApi) withdrawals(ctx echo.Context) error {
	s := api.svc.Snapshot()
	scope := periodScope(ctx, s)

	return ctx.JSON(http.StatusOK, DashboardWithdrawalsResponse{
		Reasons:   academic.WithdrawalReasonStats(s.Withdrawals, scope),
		Breakdown: academic.SummarizeWithdrawals(s.Withdrawals, scope),
		ByCareer:  academic.WithdrawalsByCareer(s.Withdrawals, s.Students, s.Careers, scope),
		Recent:    academic.RecentWithdrawals(s.Withdrawals, scope, limitParam(ctx, academic.DefaultRecentWithdrawals)),
	})
}

type (
	DashboardAlertsResponse struct {
		Alerts []academic.StudentRiskAlert `json:"alerts"`
		Active int                         `json:"active"`
	}

	DashboardAttendanceResponse struct {
		Summary      academic.AttendanceSummary  `json:"summary"`
		ByDate       *academic.AttendanceSummary `json:"byDate,omitempty"`
		TopAbsentees []academic.Absentee         `json:"topAbsentees"`
	}

	DashboardGradesResponse struct {
		SubjectAverages []academic.SubjectAverage `json:"subjectAverages"`
		CourseAverages  []academic.CourseAverage  `json:"courseAverages"`
	}

	DashboardWithdrawalsResponse struct {
		Reasons   []academic.ReasonStat        `json:"reasons"`
		Breakdown academic.WithdrawalBreakdown `json:"breakdown"`
		ByCareer  []academic.CareerWithdrawals `json:"byCareer"`
		Recent    []academic.Withdrawal        `json:"recent"`
	}
)
