package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
)

type academicApi struct {
	svc      *academic.Service
	validate *validator.Validate
}

func registerAcademicAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *academic.Service, validate *validator.Validate) {
	api := academicApi{svc: svc, validate: validate}

	ag := g.Group("", jwt)
	staff := staffMiddleware()

	// session state
	ag.PUT("/state/selected-period", api.selectPeriod)
	ag.POST("/state/reload", api.reload, staff)

	// periods & careers; no DELETE: closed periods and retired careers
	// keep their history
	pg := ag.Group("/periods")
	pg.GET("", api.queryPeriods)
	pg.POST("", api.createPeriod, adminMiddleware())
	pg.PATCH("/:id", api.updatePeriod, adminMiddleware())

	cg := ag.Group("/careers")
	cg.GET("", api.queryCareers)
	cg.POST("", api.createCareer, adminMiddleware())
	cg.PATCH("/:id", api.updateCareer, adminMiddleware())

	sg := ag.Group("/students")
	sg.GET("", api.queryStudents)
	sg.POST("", api.createStudent, staff)
	sg.PATCH("/:id", api.updateStudent, staff)
	sg.DELETE("/:id", api.destroyStudent, adminMiddleware())

	eg := ag.Group("/enrollments")
	eg.GET("", api.queryEnrollments)
	eg.POST("", api.createEnrollment, staff)
	eg.PATCH("/:id", api.updateEnrollment, staff)
	eg.DELETE("/:id", api.destroyEnrollment, adminMiddleware())

	tg := ag.Group("/teachers")
	tg.GET("", api.queryTeachers)
	tg.POST("", api.createTeacher, adminMiddleware())
	tg.PATCH("/:id", api.updateTeacher, adminMiddleware())
	tg.DELETE("/:id", api.destroyTeacher, adminMiddleware())

	subg := ag.Group("/subjects")
	subg.GET("", api.querySubjects)
	subg.POST("", api.createSubject, adminMiddleware())
	subg.PATCH("/:id", api.updateSubject, adminMiddleware())
	subg.DELETE("/:id", api.destroySubject, adminMiddleware())

	gg := ag.Group("/grades")
	gg.GET("", api.queryGrades)
	gg.POST("", api.createGrade, staff)
	gg.PATCH("/:id", api.updateGrade, staff)
	gg.DELETE("/:id", api.destroyGrade, staff)

	atg := ag.Group("/attendance")
	atg.GET("", api.queryAttendance)
	atg.POST("", api.createAttendance, staff)
	atg.POST("/bulk", api.bulkCreateAttendance, staff)
	atg.PATCH("/:id", api.updateAttendance, staff)
	atg.DELETE("/:id", api.destroyAttendance, staff)

	wg := ag.Group("/withdrawals")
	wg.GET("", api.queryWithdrawals)
	wg.POST("", api.createWithdrawal, staff)
	wg.POST("/:id/reactivate", api.reactivateWithdrawal, staff)
	wg.PATCH("/:id", api.updateWithdrawal, staff)
	wg.DELETE("/:id", api.destroyWithdrawal, adminMiddleware())

	// risk alerts are resolved, never deleted
	alg := ag.Group("/alerts")
	alg.GET("", api.queryAlerts)
	alg.POST("", api.createAlert, staff)
	alg.POST("/:id/resolve", api.resolveAlert, staff)
	alg.PATCH("/:id", api.updateAlert, staff)

	asg := ag.Group("/assignments")
	asg.GET("", api.queryAssignments)
	asg.POST("", api.createAssignment, staff)
	asg.PATCH("/:id", api.updateAssignment, staff)
	asg.DELETE("/:id", api.destroyAssignment, staff)

	sag := ag.Group("/student-assignments")
	sag.GET("", api.queryStudentAssignments)
	sag.POST("", api.createStudentAssignment, staff)
	sag.PATCH("/:id", api.updateStudentAssignment, staff)
	sag.DELETE("/:id", api.destroyStudentAssignment, staff)

	crg := ag.Group("/courses")
	crg.GET("", api.queryCourses)
	crg.POST("", api.createCourse, staff)
	crg.PATCH("/:id", api.updateCourse, staff)
	crg.DELETE("/:id", api.destroyCourse, staff)
}

// studentScope returns the caller's linked student id when the caller is a
// plain student account. Such callers only see their own records; an account
// with no linked student sees none.
func studentScope(ctx echo.Context) (string, bool) {
	claims, err := getContextClaims(ctx)
	if err != nil || claims.IsAdmin || claims.IsTeacher {
		return "", false
	}
	return claims.StudentID, claims.IsStudent
}

func scopeToStudent[T any](ctx echo.Context, records []T, studentID func(T) string) []T {
	sid, ok := studentScope(ctx)
	if !ok {
		return records
	}
	own := make([]T, 0, len(records))
	for _, r := range records {
		if studentID(r) == sid {
			own = append(own, r)
		}
	}
	return own
}

// Session state

func (api *academicApi) selectPeriod(ctx echo.Context) error {
	var data SelectPeriodRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectPeriodRequest")
	}
	if err := api.svc.SetSelectedPeriod(data.PeriodID); err != nil {
		return errors.Wrap(err, "selecting period")
	}
	return ctx.JSON(http.StatusOK, SelectPeriodRequest{PeriodID: api.svc.SelectedPeriod()})
}

func (api *academicApi) reload(ctx echo.Context) error {
	if err := api.svc.Load(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "reloading records")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Academic periods

func (api *academicApi) queryPeriods(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Periods)
}

func (api *academicApi) createPeriod(ctx echo.Context) error {
	var data academic.AcademicPeriod
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AcademicPeriod")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	period, err := api.svc.AddPeriod(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating period")
	}
	return ctx.JSON(http.StatusCreated, period)
}

func (api *academicApi) updatePeriod(ctx echo.Context) error {
	var data academic.UpdateAcademicPeriod
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAcademicPeriod")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	period, err := api.svc.UpdatePeriod(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating period")
	}
	return ctx.JSON(http.StatusOK, period)
}

// Careers

func (api *academicApi) queryCareers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Careers)
}

func (api *academicApi) createCareer(ctx echo.Context) error {
	var data academic.Career
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Career")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	career, err := api.svc.AddCareer(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating career")
	}
	return ctx.JSON(http.StatusCreated, career)
}

func (api *academicApi) updateCareer(ctx echo.Context) error {
	var data academic.UpdateCareer
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCareer")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	career, err := api.svc.UpdateCareer(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating career")
	}
	return ctx.JSON(http.StatusOK, career)
}

// Students

func (api *academicApi) queryStudents(ctx echo.Context) error {
	students := scopeToStudent(ctx, api.svc.Snapshot().Students, func(s academic.Student) string { return s.ID })
	return ctx.JSON(http.StatusOK, students)
}

func (api *academicApi) createStudent(ctx echo.Context) error {
	var data academic.Student
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Student")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	student, err := api.svc.AddStudent(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, student)
}

func (api *academicApi) updateStudent(ctx echo.Context) error {
	var data academic.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	student, err := api.svc.UpdateStudent(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, student)
}

func (api *academicApi) destroyStudent(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Enrollments

func (api *academicApi) queryEnrollments(ctx echo.Context) error {
	enrollments := scopeToStudent(ctx, api.svc.Snapshot().Enrollments, func(e academic.Enrollment) string { return e.StudentID })
	return ctx.JSON(http.StatusOK, enrollments)
}

func (api *academicApi) createEnrollment(ctx echo.Context) error {
	var data academic.Enrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Enrollment")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	enrollment, err := api.svc.AddEnrollment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating enrollment")
	}
	return ctx.JSON(http.StatusCreated, enrollment)
}

func (api *academicApi) updateEnrollment(ctx echo.Context) error {
	var data academic.UpdateEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEnrollment")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	enrollment, err := api.svc.UpdateEnrollment(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating enrollment")
	}
	return ctx.JSON(http.StatusOK, enrollment)
}

func (api *academicApi) destroyEnrollment(ctx echo.Context) error {
	if err := api.svc.DeleteEnrollment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting enrollment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Teachers

func (api *academicApi) queryTeachers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Teachers)
}

func (api *academicApi) createTeacher(ctx echo.Context) error {
	var data academic.Teacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Teacher")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	teacher, err := api.svc.AddTeacher(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, teacher)
}

func (api *academicApi) updateTeacher(ctx echo.Context) error {
	var data academic.UpdateTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTeacher")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	teacher, err := api.svc.UpdateTeacher(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating teacher")
	}
	return ctx.JSON(http.StatusOK, teacher)
}

func (api *academicApi) destroyTeacher(ctx echo.Context) error {
	if err := api.svc.DeleteTeacher(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Subjects

func (api *academicApi) querySubjects(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Subjects)
}

func (api *academicApi) createSubject(ctx echo.Context) error {
	var data academic.Subject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Subject")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	subject, err := api.svc.AddSubject(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating subject")
	}
	return ctx.JSON(http.StatusCreated, subject)
}

func (api *academicApi) updateSubject(ctx echo.Context) error {
	var data academic.UpdateSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSubject")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	subject, err := api.svc.UpdateSubject(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating subject")
	}
	return ctx.JSON(http.StatusOK, subject)
}

func (api *academicApi) destroySubject(ctx echo.Context) error {
	if err := api.svc.DeleteSubject(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Grades

func (api *academicApi) queryGrades(ctx echo.Context) error {
	grades := scopeToStudent(ctx, api.svc.Snapshot().Grades, func(g academic.Grade) string { return g.StudentID })
	return ctx.JSON(http.StatusOK, grades)
}

func (api *academicApi) createGrade(ctx echo.Context) error {
	var data academic.Grade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Grade")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	grade, err := api.svc.AddGrade(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusCreated, grade)
}

func (api *academicApi) updateGrade(ctx echo.Context) error {
	var data academic.UpdateGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateGrade")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	grade, err := api.svc.UpdateGrade(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating grade")
	}
	return ctx.JSON(http.StatusOK, grade)
}

func (api *academicApi) destroyGrade(ctx echo.Context) error {
	if err := api.svc.DeleteGrade(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Attendance

func (api *academicApi) queryAttendance(ctx echo.Context) error {
	attendance := scopeToStudent(ctx, api.svc.Snapshot().Attendance, func(a academic.Attendance) string { return a.StudentID })
	return ctx.JSON(http.StatusOK, attendance)
}

func (api *academicApi) createAttendance(ctx echo.Context) error {
	var data academic.Attendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Attendance")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	att, err := api.svc.AddAttendance(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating attendance")
	}
	return ctx.JSON(http.StatusCreated, att)
}

// bulkCreateAttendance records a full class session in one call. Records are
// saved one by one; a partial failure still keeps the successful records and
// reports the failed indexes with a 207.
func (api *academicApi) bulkCreateAttendance(ctx echo.Context) error {
	var data BulkAttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BulkAttendanceRequest")
	}
	for _, att := range data.Records {
		if err := api.validate.Struct(&att); err != nil {
			return err
		}
	}

	created, err := api.svc.BulkAddAttendance(ctx.Request().Context(), data.Records)
	if created == nil {
		created = []academic.Attendance{}
	}
	if err != nil {
		var bulkErr *academic.BulkError
		if errors.As(err, &bulkErr) {
			resp := BulkAttendanceResponse{Created: created}
			for _, f := range bulkErr.Failures {
				resp.Errors = append(resp.Errors, BulkErrorItem{Index: f.Index, Error: f.Err.Error()})
			}
			return ctx.JSON(http.StatusMultiStatus, resp)
		}
		return errors.Wrap(err, "bulk creating attendance")
	}
	return ctx.JSON(http.StatusCreated, BulkAttendanceResponse{Created: created})
}

func (api *academicApi) updateAttendance(ctx echo.Context) error {
	var data academic.UpdateAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAttendance")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	att, err := api.svc.UpdateAttendance(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating attendance")
	}
	return ctx.JSON(http.StatusOK, att)
}

func (api *academicApi) destroyAttendance(ctx echo.Context) error {
	if err := api.svc.DeleteAttendance(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting attendance")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Withdrawals

func (api *academicApi) queryWithdrawals(ctx echo.Context) error {
	withdrawals := scopeToStudent(ctx, api.svc.Snapshot().Withdrawals, func(w academic.Withdrawal) string { return w.StudentID })
	return ctx.JSON(http.StatusOK, withdrawals)
}

func (api *academicApi) createWithdrawal(ctx echo.Context) error {
	var data academic.Withdrawal
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Withdrawal")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	wd, err := api.svc.AddWithdrawal(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating withdrawal")
	}
	return ctx.JSON(http.StatusCreated, wd)
}

func (api *academicApi) reactivateWithdrawal(ctx echo.Context) error {
	wd, err := api.svc.ReactivateWithdrawal(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "reactivating withdrawal")
	}
	return ctx.JSON(http.StatusOK, wd)
}

func (api *academicApi) updateWithdrawal(ctx echo.Context) error {
	var data academic.UpdateWithdrawal
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateWithdrawal")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	wd, err := api.svc.UpdateWithdrawal(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating withdrawal")
	}
	return ctx.JSON(http.StatusOK, wd)
}

func (api *academicApi) destroyWithdrawal(ctx echo.Context) error {
	if err := api.svc.DeleteWithdrawal(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting withdrawal")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Risk alerts

func (api *academicApi) queryAlerts(ctx echo.Context) error {
	alerts := scopeToStudent(ctx, api.svc.Snapshot().RiskAlerts, func(a academic.StudentRiskAlert) string { return a.StudentID })
	return ctx.JSON(http.StatusOK, alerts)
}

func (api *academicApi) createAlert(ctx echo.Context) error {
	var data academic.StudentRiskAlert
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentRiskAlert")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	alert, err := api.svc.AddRiskAlert(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating alert")
	}
	return ctx.JSON(http.StatusCreated, alert)
}

func (api *academicApi) resolveAlert(ctx echo.Context) error {
	var data ResolveAlertRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ResolveAlertRequest")
	}
	alert, err := api.svc.ResolveRiskAlert(ctx.Request().Context(), ctx.Param("id"), data.Notes)
	if err != nil {
		return errors.Wrap(err, "resolving alert")
	}
	return ctx.JSON(http.StatusOK, alert)
}

func (api *academicApi) updateAlert(ctx echo.Context) error {
	var data academic.UpdateRiskAlert
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRiskAlert")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	alert, err := api.svc.UpdateRiskAlert(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating alert")
	}
	return ctx.JSON(http.StatusOK, alert)
}

// Assignments

func (api *academicApi) queryAssignments(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Assignments)
}

func (api *academicApi) createAssignment(ctx echo.Context) error {
	var data academic.Assignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Assignment")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	assignment, err := api.svc.AddAssignment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, assignment)
}

func (api *academicApi) updateAssignment(ctx echo.Context) error {
	var data academic.UpdateAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAssignment")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	assignment, err := api.svc.UpdateAssignment(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating assignment")
	}
	return ctx.JSON(http.StatusOK, assignment)
}

func (api *academicApi) destroyAssignment(ctx echo.Context) error {
	if err := api.svc.DeleteAssignment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Student assignments

func (api *academicApi) queryStudentAssignments(ctx echo.Context) error {
	sas := scopeToStudent(ctx, api.svc.Snapshot().StudentAssignments, func(sa academic.StudentAssignment) string { return sa.StudentID })
	return ctx.JSON(http.StatusOK, sas)
}

func (api *academicApi) createStudentAssignment(ctx echo.Context) error {
	var data academic.StudentAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentAssignment")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	sa, err := api.svc.AddStudentAssignment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student assignment")
	}
	return ctx.JSON(http.StatusCreated, sa)
}

func (api *academicApi) updateStudentAssignment(ctx echo.Context) error {
	var data academic.UpdateStudentAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudentAssignment")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	sa, err := api.svc.UpdateStudentAssignment(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating student assignment")
	}
	return ctx.JSON(http.StatusOK, sa)
}

func (api *academicApi) destroyStudentAssignment(ctx echo.Context) error {
	if err := api.svc.DeleteStudentAssignment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Legacy courses

func (api *academicApi) queryCourses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Courses)
}

func (api *academicApi) createCourse(ctx echo.Context) error {
	var data academic.Course
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Course")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	course, err := api.svc.AddCourse(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, course)
}

func (api *academicApi) updateCourse(ctx echo.Context) error {
	var data academic.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	course, err := api.svc.UpdateCourse(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *academicApi) destroyCourse(ctx echo.Context) error {
	if err := api.svc.DeleteCourse(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type (
	SelectPeriodRequest struct {
		// PeriodID selects the session period; null means "all periods".
		PeriodID *string `json:"periodId"`
	}

	BulkAttendanceRequest struct {
		Records []academic.Attendance `json:"records" validate:"required"`
	}

	BulkErrorItem struct {
		Index int    `json:"index"`
		Error string `json:"error"`
	}

	BulkAttendanceResponse struct {
		Created []academic.Attendance `json:"created"`
		Errors  []BulkErrorItem       `json:"errors,omitempty"`
	}

	ResolveAlertRequest struct {
		Notes string `json:"notes"`
	}
)
