package academic

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core"
)

// ErrNotFound is returned when a referenced record does not exist, either in
// the cache or in the backing store.
var ErrNotFound = errors.New("record not found")

// Store is the record-store access contract. Implementations decode the
// store's response into out; Create and Patch return the persisted record so
// callers can mirror exactly what the store holds.
type Store interface {
	List(ctx context.Context, resource string, out interface{}) error
	Get(ctx context.Context, resource, id string, out interface{}) error
	Create(ctx context.Context, resource string, in, out interface{}) error
	Patch(ctx context.Context, resource, id string, in, out interface{}) error
	Delete(ctx context.Context, resource, id string) error
}

// Service owns the in-memory mirror of the record store and every mutation's
// side effects. The cache is only ever updated from store responses: a failed
// write leaves it untouched.
type Service struct {
	conf   *core.Config
	store  Store
	mail   core.EmailService
	logger core.Logger

	mu    sync.RWMutex
	state State
}

func NewService(conf *core.Config, store Store, mail core.EmailService, logger core.Logger) *Service {
	return &Service{conf: conf, store: store, mail: mail, logger: logger}
}

// Load fetches every collection and atomically replaces the cache. On any
// fetch error the cache keeps its previous contents.
func (svc *Service) Load(ctx context.Context) error {
	var next State
	for _, fetch := range []struct {
		resource string
		out      interface{}
	}{
		{ResourceStudents, &next.Students},
		{ResourceTeachers, &next.Teachers},
		{ResourceSubjects, &next.Subjects},
		{ResourceGrades, &next.Grades},
		{ResourceAttendances, &next.Attendance},
		{ResourceAssignments, &next.Assignments},
		{ResourceStudentAssignments, &next.StudentAssignments},
		{ResourceWithdrawals, &next.Withdrawals},
		{ResourceAcademicPeriods, &next.Periods},
		{ResourceCareers, &next.Careers},
		{ResourceEnrollments, &next.Enrollments},
		{ResourceRiskAlerts, &next.RiskAlerts},
		{ResourceCourses, &next.Courses},
	} {
		if err := svc.store.List(ctx, fetch.resource, fetch.out); err != nil {
			return errors.Wrapf(err, "loading %s", fetch.resource)
		}
	}

	svc.mu.Lock()
	next.SelectedPeriodID = svc.state.SelectedPeriodID
	if next.SelectedPeriodID == nil {
		for _, p := range next.Periods {
			if p.Status == PeriodActive {
				id := p.ID
				next.SelectedPeriodID = &id
				break
			}
		}
	}
	svc.state = next
	svc.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cache safe to read without holding the lock.
func (svc *Service) Snapshot() State {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	s := State{
		Students:           append([]Student(nil), svc.state.Students...),
		Teachers:           append([]Teacher(nil), svc.state.Teachers...),
		Subjects:           append([]Subject(nil), svc.state.Subjects...),
		Grades:             append([]Grade(nil), svc.state.Grades...),
		Attendance:         append([]Attendance(nil), svc.state.Attendance...),
		Assignments:        append([]Assignment(nil), svc.state.Assignments...),
		StudentAssignments: append([]StudentAssignment(nil), svc.state.StudentAssignments...),
		Withdrawals:        append([]Withdrawal(nil), svc.state.Withdrawals...),
		Periods:            append([]AcademicPeriod(nil), svc.state.Periods...),
		Careers:            append([]Career(nil), svc.state.Careers...),
		Enrollments:        append([]Enrollment(nil), svc.state.Enrollments...),
		RiskAlerts:         append([]StudentRiskAlert(nil), svc.state.RiskAlerts...),
		Courses:            append([]Course(nil), svc.state.Courses...),
	}
	if svc.state.SelectedPeriodID != nil {
		id := *svc.state.SelectedPeriodID
		s.SelectedPeriodID = &id
	}
	return s
}

// SetSelectedPeriod scopes subsequent dashboard reads; nil means all periods.
func (svc *Service) SetSelectedPeriod(periodID *string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if periodID != nil {
		if _, ok := svc.state.Period(*periodID); !ok {
			return errors.Wrap(ErrNotFound, "period "+*periodID)
		}
		id := *periodID
		svc.state.SelectedPeriodID = &id
		return nil
	}
	svc.state.SelectedPeriodID = nil
	return nil
}

func (svc *Service) SelectedPeriod() *string {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.state.SelectedPeriodID == nil {
		return nil
	}
	id := *svc.state.SelectedPeriodID
	return &id
}

// ---------------------------------------------------------------------------
// Academic periods

func (svc *Service) AddPeriod(ctx context.Context, in AcademicPeriod) (AcademicPeriod, error) {
	var out AcademicPeriod
	if err := svc.store.Create(ctx, ResourceAcademicPeriods, in, &out); err != nil {
		return AcademicPeriod{}, err
	}
	svc.mu.Lock()
	svc.state.Periods = append(svc.state.Periods, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdatePeriod(ctx context.Context, id string, in UpdateAcademicPeriod) (AcademicPeriod, error) {
	var out AcademicPeriod
	if err := svc.store.Patch(ctx, ResourceAcademicPeriods, id, in, &out); err != nil {
		return AcademicPeriod{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Periods, out, func(p AcademicPeriod) string { return p.ID })
	svc.mu.Unlock()
	return out, nil
}

// ---------------------------------------------------------------------------
// Careers

func (svc *Service) AddCareer(ctx context.Context, in Career) (Career, error) {
	var out Career
	if err := svc.store.Create(ctx, ResourceCareers, in, &out); err != nil {
		return Career{}, err
	}
	svc.mu.Lock()
	svc.state.Careers = append(svc.state.Careers, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateCareer(ctx context.Context, id string, in UpdateCareer) (Career, error) {
	var out Career
	if err := svc.store.Patch(ctx, ResourceCareers, id, in, &out); err != nil {
		return Career{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Careers, out, func(c Career) string { return c.ID })
	svc.mu.Unlock()
	return out, nil
}

// ---------------------------------------------------------------------------
// Students

func (svc *Service) AddStudent(ctx context.Context, in Student) (Student, error) {
	in.Nivel = NivelFromSemester(in.CurrentSemester)
	var out Student
	if err := svc.store.Create(ctx, ResourceStudents, in, &out); err != nil {
		return Student{}, err
	}
	svc.mu.Lock()
	svc.state.Students = append(svc.state.Students, out)
	svc.mu.Unlock()
	return out, nil
}

// UpdateStudent keeps Nivel derived: patching the semester recomputes it even
// when the caller did not ask.
func (svc *Service) UpdateStudent(ctx context.Context, id string, in UpdateStudent) (Student, error) {
	if in.CurrentSemester != nil {
		nivel := NivelFromSemester(*in.CurrentSemester)
		in.Nivel = &nivel
	}
	var out Student
	if err := svc.store.Patch(ctx, ResourceStudents, id, in, &out); err != nil {
		return Student{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Students, out, func(s Student) string { return s.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceStudents, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Students = deleteByID(svc.state.Students, id, func(s Student) string { return s.ID })
	svc.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// Enrollments

func (svc *Service) AddEnrollment(ctx context.Context, in Enrollment) (Enrollment, error) {
	var out Enrollment
	if err := svc.store.Create(ctx, ResourceEnrollments, in, &out); err != nil {
		return Enrollment{}, err
	}
	svc.mu.Lock()
	svc.state.Enrollments = append(svc.state.Enrollments, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateEnrollment(ctx context.Context, id string, in UpdateEnrollment) (Enrollment, error) {
	var out Enrollment
	if err := svc.store.Patch(ctx, ResourceEnrollments, id, in, &out); err != nil {
		return Enrollment{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Enrollments, out, func(e Enrollment) string { return e.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteEnrollment(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceEnrollments, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Enrollments = deleteByID(svc.state.Enrollments, id, func(e Enrollment) string { return e.ID })
	svc.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// Teachers

func (svc *Service) AddTeacher(ctx context.Context, in Teacher) (Teacher, error) {
	var out Teacher
	if err := svc.store.Create(ctx, ResourceTeachers, in, &out); err != nil {
		return Teacher{}, err
	}
	svc.mu.Lock()
	svc.state.Teachers = append(svc.state.Teachers, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateTeacher(ctx context.Context, id string, in UpdateTeacher) (Teacher, error) {
	var out Teacher
	if err := svc.store.Patch(ctx, ResourceTeachers, id, in, &out); err != nil {
		return Teacher{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Teachers, out, func(t Teacher) string { return t.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteTeacher(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceTeachers, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Teachers = deleteByID(svc.state.Teachers, id, func(t Teacher) string { return t.ID })
	svc.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// Subjects

func (svc *Service) AddSubject(ctx context.Context, in Subject) (Subject, error) {
	if in.Nivel == 0 {
		in.Nivel = NivelFromSemester(in.Semester)
	}
	var out Subject
	if err := svc.store.Create(ctx, ResourceSubjects, in, &out); err != nil {
		return Subject{}, err
	}
	svc.mu.Lock()
	svc.state.Subjects = append(svc.state.Subjects, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateSubject(ctx context.Context, id string, in UpdateSubject) (Subject, error) {
	if in.Semester != nil && in.Nivel == nil {
		nivel := NivelFromSemester(*in.Semester)
		in.Nivel = &nivel
	}
	var out Subject
	if err := svc.store.Patch(ctx, ResourceSubjects, id, in, &out); err != nil {
		return Subject{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Subjects, out, func(s Subject) string { return s.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteSubject(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceSubjects, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Subjects = deleteByID(svc.state.Subjects, id, func(s Subject) string { return s.ID })
	svc.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// Grades

func (svc *Service) AddGrade(ctx context.Context, in Grade) (Grade, error) {
	var out Grade
	if err := svc.store.Create(ctx, ResourceGrades, in, &out); err != nil {
		return Grade{}, err
	}
	svc.mu.Lock()
	svc.state.Grades = append(svc.state.Grades, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateGrade(ctx context.Context, id string, in UpdateGrade) (Grade, error) {
	var out Grade
	if err := svc.store.Patch(ctx, ResourceGrades, id, in, &out); err != nil {
		return Grade{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Grades, out, func(g Grade) string { return g.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteGrade(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceGrades, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Grades = deleteByID(svc.state.Grades, id, func(g Grade) string { return g.ID })
	svc.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// Attendance

func (svc *Service) AddAttendance(ctx context.Context, in Attendance) (Attendance, error) {
	var out Attendance
	if err := svc.store.Create(ctx, ResourceAttendances, in, &out); err != nil {
		return Attendance{}, err
	}
	svc.mu.Lock()
	svc.state.Attendance = append(svc.state.Attendance, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateAttendance(ctx context.Context, id string, in UpdateAttendance) (Attendance, error) {
	var out Attendance
	if err := svc.store.Patch(ctx, ResourceAttendances, id, in, &out); err != nil {
		return Attendance{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Attendance, out, func(a Attendance) string { return a.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteAttendance(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceAttendances, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Attendance = deleteByID(svc.state.Attendance, id, func(a Attendance) string { return a.ID })
	svc.mu.Unlock()
	return nil
}

// BulkError reports a partially failed bulk write. Records not listed in
// Failures were persisted and cached.
type BulkError struct {
	Failures []BulkFailure
}

type BulkFailure struct {
	Index int
	Err   error
}

func (e *BulkError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d record(s) failed:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, " [%d] %v;", f.Index, f.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// BulkAddAttendance persists each record in order, one create per record.
// Successes are cached as they land; on any failure the created records stay
// persisted and a *BulkError names the failed indexes. Students pushed over
// the critical absence threshold trigger a digest email.
func (svc *Service) BulkAddAttendance(ctx context.Context, records []Attendance) ([]Attendance, error) {
	created := make([]Attendance, 0, len(records))
	var failures []BulkFailure
	for i, rec := range records {
		var out Attendance
		if err := svc.store.Create(ctx, ResourceAttendances, rec, &out); err != nil {
			failures = append(failures, BulkFailure{Index: i, Err: err})
			continue
		}
		created = append(created, out)
	}

	svc.mu.Lock()
	svc.state.Attendance = append(svc.state.Attendance, created...)
	svc.mu.Unlock()

	svc.notifyCriticalAbsences(created)

	if len(failures) > 0 {
		return created, &BulkError{Failures: failures}
	}
	return created, nil
}

// notifyCriticalAbsences emails a digest when any student touched by the batch
// has reached the critical absence count in their period.
func (svc *Service) notifyCriticalAbsences(created []Attendance) {
	if svc.mail == nil {
		return
	}

	// absence counts are per student per period
	touched := make(map[string]bool)
	for _, rec := range created {
		if rec.Status == AttendanceAbsent {
			touched[rec.StudentID+"|"+rec.PeriodID] = true
		}
	}
	if len(touched) == 0 {
		return
	}

	snap := svc.Snapshot()
	counts := make(map[string]int)
	for _, rec := range snap.Attendance {
		key := rec.StudentID + "|" + rec.PeriodID
		if rec.Status == AttendanceAbsent && touched[key] {
			counts[key]++
		}
	}

	var lines []string
	for _, st := range snap.Students {
		for key, n := range counts {
			if strings.HasPrefix(key, st.ID+"|") && n >= CriticalAbsenceThreshold {
				lines = append(lines, fmt.Sprintf("- %s: %d faltas", st.FullName(), n))
				break
			}
		}
	}
	if len(lines) == 0 {
		return
	}

	msg := &core.EmailMessage{
		To:          []mail.Address{svc.conf.FromEmail()},
		Subject:     "Alerta de inasistencia crítica",
		TextContent: "Estudiantes con inasistencia crítica:\n" + strings.Join(lines, "\n"),
	}
	svc.mail.SendMessages(msg)
	if svc.logger != nil {
		svc.logger.Info(fmt.Sprintf("critical absence digest sent for %d student(s)", len(lines)))
	}
}

// ---------------------------------------------------------------------------
// Withdrawals

// AddWithdrawal registers the withdrawal, then flips the student's status:
// temporary withdrawals suspend, every other type marks withdrawn. The
// student's record also gets the withdrawal date and human-readable reason.
func (svc *Service) AddWithdrawal(ctx context.Context, in Withdrawal) (Withdrawal, error) {
	var out Withdrawal
	if err := svc.store.Create(ctx, ResourceWithdrawals, in, &out); err != nil {
		return Withdrawal{}, err
	}
	svc.mu.Lock()
	svc.state.Withdrawals = append(svc.state.Withdrawals, out)
	svc.mu.Unlock()

	status := StudentWithdrawn
	if out.Type == WithdrawalTemporary {
		status = StudentSuspended
	}
	reason := out.Reason.Label()
	patch := UpdateStudent{
		Status:           &status,
		WithdrawalDate:   &out.Date,
		WithdrawalReason: &reason,
	}
	if _, err := svc.UpdateStudent(ctx, out.StudentID, patch); err != nil {
		return out, errors.Wrap(err, "withdrawal saved but student status update failed")
	}
	return out, nil
}

func (svc *Service) UpdateWithdrawal(ctx context.Context, id string, in UpdateWithdrawal) (Withdrawal, error) {
	var out Withdrawal
	if err := svc.store.Patch(ctx, ResourceWithdrawals, id, in, &out); err != nil {
		return Withdrawal{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Withdrawals, out, func(w Withdrawal) string { return w.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteWithdrawal(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceWithdrawals, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Withdrawals = deleteByID(svc.state.Withdrawals, id, func(w Withdrawal) string { return w.ID })
	svc.mu.Unlock()
	return nil
}

// ErrNotTemporary rejects reactivation of withdrawals that were never meant
// to be reversed.
var ErrNotTemporary = errors.New("only temporary withdrawals can be reactivated")

// ReactivateWithdrawal closes out a temporary withdrawal: the return date is
// stamped today and the student goes back to active.
func (svc *Service) ReactivateWithdrawal(ctx context.Context, id string) (Withdrawal, error) {
	svc.mu.RLock()
	w, ok := svc.state.Withdrawal(id)
	svc.mu.RUnlock()
	if !ok {
		return Withdrawal{}, errors.Wrap(ErrNotFound, "withdrawal "+id)
	}
	if w.Type != WithdrawalTemporary {
		return Withdrawal{}, ErrNotTemporary
	}

	today := core.Today()
	out, err := svc.UpdateWithdrawal(ctx, id, UpdateWithdrawal{ReturnDate: &today})
	if err != nil {
		return Withdrawal{}, err
	}

	status := StudentActive
	empty := ""
	patch := UpdateStudent{
		Status:           &status,
		WithdrawalDate:   &empty,
		WithdrawalReason: &empty,
	}
	if _, err := svc.UpdateStudent(ctx, w.StudentID, patch); err != nil {
		return out, errors.Wrap(err, "withdrawal reactivated but student status update failed")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Risk alerts

func (svc *Service) AddRiskAlert(ctx context.Context, in StudentRiskAlert) (StudentRiskAlert, error) {
	var out StudentRiskAlert
	if err := svc.store.Create(ctx, ResourceRiskAlerts, in, &out); err != nil {
		return StudentRiskAlert{}, err
	}
	svc.mu.Lock()
	svc.state.RiskAlerts = append(svc.state.RiskAlerts, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateRiskAlert(ctx context.Context, id string, in UpdateRiskAlert) (StudentRiskAlert, error) {
	var out StudentRiskAlert
	if err := svc.store.Patch(ctx, ResourceRiskAlerts, id, in, &out); err != nil {
		return StudentRiskAlert{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.RiskAlerts, out, func(a StudentRiskAlert) string { return a.ID })
	svc.mu.Unlock()
	return out, nil
}

// ResolveRiskAlert marks the alert resolved as of today with the follow-up
// notes attached.
func (svc *Service) ResolveRiskAlert(ctx context.Context, id, notes string) (StudentRiskAlert, error) {
	resolved := true
	today := core.Today()
	return svc.UpdateRiskAlert(ctx, id, UpdateRiskAlert{
		Resolved:      &resolved,
		ResolvedDate:  &today,
		ResolvedNotes: &notes,
	})
}

// ---------------------------------------------------------------------------
// Assignments

func (svc *Service) AddAssignment(ctx context.Context, in Assignment) (Assignment, error) {
	var out Assignment
	if err := svc.store.Create(ctx, ResourceAssignments, in, &out); err != nil {
		return Assignment{}, err
	}
	svc.mu.Lock()
	svc.state.Assignments = append(svc.state.Assignments, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateAssignment(ctx context.Context, id string, in UpdateAssignment) (Assignment, error) {
	var out Assignment
	if err := svc.store.Patch(ctx, ResourceAssignments, id, in, &out); err != nil {
		return Assignment{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Assignments, out, func(a Assignment) string { return a.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteAssignment(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceAssignments, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Assignments = deleteByID(svc.state.Assignments, id, func(a Assignment) string { return a.ID })
	svc.mu.Unlock()
	return nil
}

func (svc *Service) AddStudentAssignment(ctx context.Context, in StudentAssignment) (StudentAssignment, error) {
	var out StudentAssignment
	if err := svc.store.Create(ctx, ResourceStudentAssignments, in, &out); err != nil {
		return StudentAssignment{}, err
	}
	svc.mu.Lock()
	svc.state.StudentAssignments = append(svc.state.StudentAssignments, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateStudentAssignment(ctx context.Context, id string, in UpdateStudentAssignment) (StudentAssignment, error) {
	var out StudentAssignment
	if err := svc.store.Patch(ctx, ResourceStudentAssignments, id, in, &out); err != nil {
		return StudentAssignment{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.StudentAssignments, out, func(a StudentAssignment) string { return a.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteStudentAssignment(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceStudentAssignments, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.StudentAssignments = deleteByID(svc.state.StudentAssignments, id, func(a StudentAssignment) string { return a.ID })
	svc.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// Legacy courses

func (svc *Service) AddCourse(ctx context.Context, in Course) (Course, error) {
	var out Course
	if err := svc.store.Create(ctx, ResourceCourses, in, &out); err != nil {
		return Course{}, err
	}
	svc.mu.Lock()
	svc.state.Courses = append(svc.state.Courses, out)
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) UpdateCourse(ctx context.Context, id string, in UpdateCourse) (Course, error) {
	var out Course
	if err := svc.store.Patch(ctx, ResourceCourses, id, in, &out); err != nil {
		return Course{}, err
	}
	svc.mu.Lock()
	replaceByID(svc.state.Courses, out, func(c Course) string { return c.ID })
	svc.mu.Unlock()
	return out, nil
}

func (svc *Service) DeleteCourse(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ResourceCourses, id); err != nil {
		return err
	}
	svc.mu.Lock()
	svc.state.Courses = deleteByID(svc.state.Courses, id, func(c Course) string { return c.ID })
	svc.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// cache helpers

func deleteByID[T any](records []T, id string, key func(T) string) []T {
	for i, rec := range records {
		if key(rec) == id {
			return append(records[:i], records[i+1:]...)
		}
	}
	return records
}

func replaceByID[T any](records []T, rec T, key func(T) string) {
	id := key(rec)
	for i := range records {
		if key(records[i]) == id {
			records[i] = rec
			return
		}
	}
}
