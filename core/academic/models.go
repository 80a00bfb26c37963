package academic

import (
	"math"
	"strconv"
)

// Resource names under which the record store keeps each collection.
const (
	ResourceStudents           = "students"
	ResourceTeachers           = "teachers"
	ResourceSubjects           = "subjects"
	ResourceGrades             = "grades"
	ResourceAttendances        = "attendances"
	ResourceAssignments        = "assignments"
	ResourceStudentAssignments = "studentAssignments"
	ResourceWithdrawals        = "withdrawals"
	ResourceAcademicPeriods    = "academicPeriods"
	ResourceCareers            = "careers"
	ResourceEnrollments        = "enrollments"
	ResourceRiskAlerts         = "studentRiskAlerts"
	ResourceCourses            = "courses"
)

// AllResources lists every collection held by the record store.
var AllResources = []string{
	ResourceStudents,
	ResourceTeachers,
	ResourceSubjects,
	ResourceGrades,
	ResourceAttendances,
	ResourceAssignments,
	ResourceStudentAssignments,
	ResourceWithdrawals,
	ResourceAcademicPeriods,
	ResourceCareers,
	ResourceEnrollments,
	ResourceRiskAlerts,
	ResourceCourses,
}

type PeriodStatus string

const (
	PeriodActive   PeriodStatus = "active"
	PeriodClosed   PeriodStatus = "closed"
	PeriodUpcoming PeriodStatus = "upcoming"
)

// AcademicPeriod is a "gestión": a term/semester instance. Most records are
// scoped to exactly one.
type AcademicPeriod struct {
	ID        string       `json:"id"`
	Name      string       `json:"name" validate:"required"`
	Year      int          `json:"year" validate:"required"`
	Semester  int          `json:"semester" validate:"required,oneof=1 2"`
	StartDate string       `json:"startDate" validate:"required"`
	EndDate   string       `json:"endDate" validate:"required"`
	Status    PeriodStatus `json:"status" validate:"required,oneof=active closed upcoming"`
}

type CareerStatus string

const (
	CareerActive   CareerStatus = "active"
	CareerInactive CareerStatus = "inactive"
)

type Career struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Code        string       `json:"code" validate:"required"`
	Faculty     string       `json:"faculty"`
	Duration    int          `json:"duration" validate:"omitempty,gte=1"` // semesters
	Description string       `json:"description"`
	Status      CareerStatus `json:"status" validate:"required,oneof=active inactive"`
}

type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
	StudentWithdrawn StudentStatus = "withdrawn"
	StudentSuspended StudentStatus = "suspended"
)

type Student struct {
	ID               string        `json:"id"`
	FirstName        string        `json:"firstName" validate:"required"`
	LastName         string        `json:"lastName" validate:"required"`
	Email            string        `json:"email" validate:"omitempty,email"`
	Phone            string        `json:"phone"`
	DateOfBirth      string        `json:"dateOfBirth"`
	EnrollmentDate   string        `json:"enrollmentDate"`
	CareerID         string        `json:"careerId" validate:"required"`
	CurrentSemester  int           `json:"currentSemester" validate:"required,gte=1"`
	Nivel            int           `json:"nivel"` // always ceil(currentSemester/2)
	Status           StudentStatus `json:"status" validate:"required,oneof=active inactive graduated withdrawn suspended"`
	Avatar           string        `json:"avatar,omitempty"`
	Address          string        `json:"address"`
	EmergencyContact string        `json:"emergencyContact"`
	EmergencyPhone   string        `json:"emergencyPhone"`
	StudentCode      string        `json:"studentCode"`
	WithdrawalDate   string        `json:"withdrawalDate,omitempty"`
	WithdrawalReason string        `json:"withdrawalReason,omitempty"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// NivelFromSemester derives the year level from a semester number
// (semesters 1-2 = level 1, 3-4 = level 2, ...).
func NivelFromSemester(semester int) int {
	return int(math.Ceil(float64(semester) / 2))
}

var nivelLabels = map[int]string{
	1: "Primer Año",
	2: "Segundo Año",
	3: "Tercer Año",
	4: "Cuarto Año",
	5: "Quinto Año",
	6: "Sexto Año",
}

func NivelLabel(nivel int) string {
	if label, ok := nivelLabels[nivel]; ok {
		return label
	}
	return "Año " + strconv.Itoa(nivel)
}

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentWithdrawn EnrollmentStatus = "withdrawn"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// Enrollment associates a student to a period and the subjects taken in it.
// A student is "enrolled in period P" iff an active Enrollment matches.
type Enrollment struct {
	ID             string           `json:"id"`
	StudentID      string           `json:"studentId" validate:"required"`
	PeriodID       string           `json:"periodId" validate:"required"`
	SubjectIDs     []string         `json:"subjectIds" validate:"required,min=1"`
	EnrollmentDate string           `json:"enrollmentDate"`
	Status         EnrollmentStatus `json:"status" validate:"required,oneof=active withdrawn completed"`
}

type TeacherStatus string

const (
	TeacherActive   TeacherStatus = "active"
	TeacherInactive TeacherStatus = "inactive"
	TeacherOnLeave  TeacherStatus = "on_leave"
)

type Teacher struct {
	ID             string        `json:"id"`
	FirstName      string        `json:"firstName" validate:"required"`
	LastName       string        `json:"lastName" validate:"required"`
	Email          string        `json:"email" validate:"omitempty,email"`
	Phone          string        `json:"phone"`
	DateOfBirth    string        `json:"dateOfBirth"`
	HireDate       string        `json:"hireDate"`
	Specialization string        `json:"specialization"`
	Status         TeacherStatus `json:"status" validate:"required,oneof=active inactive on_leave"`
	Address        string        `json:"address"`
	Degree         string        `json:"degree"`
	AcademicRank   string        `json:"academicRank" validate:"omitempty,oneof=Auxiliar Titular Asociado Emérito"`
	Salary         float64       `json:"salary,omitempty"`
}

func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

type Subject struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" validate:"required"`
	Code          string   `json:"code" validate:"required"`
	Description   string   `json:"description"`
	TeacherID     string   `json:"teacherId"`
	CareerID      string   `json:"careerId" validate:"required"`
	Semester      int      `json:"semester" validate:"required,gte=1"`
	Nivel         int      `json:"nivel"`
	Credits       int      `json:"credits" validate:"omitempty,gte=1"`
	Schedule      string   `json:"schedule"`
	Classroom     string   `json:"classroom"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Attendance records one (student, subject, date) taking event. Duplicates
// are possible and tolerated; no uniqueness enforced by this layer.
type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId" validate:"required"`
	SubjectID string           `json:"subjectId" validate:"required"`
	PeriodID  string           `json:"periodId" validate:"required"`
	Date      string           `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	Notes     string           `json:"notes,omitempty"`
}

type GradeType string

const (
	GradePartial1 GradeType = "partial1"
	GradePartial2 GradeType = "partial2"
	GradePartial3 GradeType = "partial3"
	GradeFinal    GradeType = "final"
	GradeRecovery GradeType = "recovery"
	GradePractice GradeType = "practice"
)

// Grade is scored on a 0-100 scale. Legacy Course-keyed grades (0-10 scale)
// carry CourseID instead of SubjectID; the two scales coexist and are never
// normalized.
type Grade struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId" validate:"required"`
	SubjectID string    `json:"subjectId,omitempty"`
	CourseID  string    `json:"courseId,omitempty"`
	PeriodID  string    `json:"periodId" validate:"required"`
	Type      GradeType `json:"type" validate:"required,oneof=partial1 partial2 partial3 final recovery practice"`
	Grade     float64   `json:"grade" validate:"gte=0"`
	MaxGrade  float64   `json:"maxGrade" validate:"required,gt=0"`
	Weight    float64   `json:"weight" validate:"gte=0"`
	Date      string    `json:"date"`
	Comments  string    `json:"comments,omitempty"`
}

type WithdrawalReason string

const (
	ReasonEconomic            WithdrawalReason = "economic"
	ReasonAcademicPerformance WithdrawalReason = "academic_performance"
	ReasonHealth              WithdrawalReason = "health"
	ReasonWork                WithdrawalReason = "work"
	ReasonFamily              WithdrawalReason = "family"
	ReasonRelocation          WithdrawalReason = "relocation"
	ReasonLackOfInterest      WithdrawalReason = "lack_of_interest"
	ReasonScheduleConflict    WithdrawalReason = "schedule_conflict"
	ReasonOther               WithdrawalReason = "other"
)

// WithdrawalReasons is the fixed, exhaustive set of causes.
var WithdrawalReasons = []WithdrawalReason{
	ReasonEconomic,
	ReasonAcademicPerformance,
	ReasonHealth,
	ReasonWork,
	ReasonFamily,
	ReasonRelocation,
	ReasonLackOfInterest,
	ReasonScheduleConflict,
	ReasonOther,
}

var withdrawalReasonLabels = map[WithdrawalReason]string{
	ReasonEconomic:            "Problemas económicos",
	ReasonAcademicPerformance: "Bajo rendimiento académico",
	ReasonHealth:              "Problemas de salud",
	ReasonWork:                "Incompatibilidad laboral",
	ReasonFamily:              "Problemas familiares",
	ReasonRelocation:          "Cambio de residencia",
	ReasonLackOfInterest:      "Pérdida de interés en la carrera",
	ReasonScheduleConflict:    "Conflicto de horarios",
	ReasonOther:               "Otros motivos",
}

func (r WithdrawalReason) Label() string {
	if label, ok := withdrawalReasonLabels[r]; ok {
		return label
	}
	return string(r)
}

type WithdrawalType string

const (
	WithdrawalTemporary WithdrawalType = "temporary"
	WithdrawalPermanent WithdrawalType = "permanent"
	WithdrawalTransfer  WithdrawalType = "transfer"
	WithdrawalAcademic  WithdrawalType = "academic"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Withdrawal is a "baja": a student pausing or ending studies.
type Withdrawal struct {
	ID            string           `json:"id"`
	StudentID     string           `json:"studentId" validate:"required"`
	PeriodID      string           `json:"periodId" validate:"required"`
	Date          string           `json:"date" validate:"required"`
	Reason        WithdrawalReason `json:"reason" validate:"required,oneof=economic academic_performance health work family relocation lack_of_interest schedule_conflict other"`
	Type          WithdrawalType   `json:"type" validate:"required,oneof=temporary permanent transfer academic"`
	SubjectIDs    []string         `json:"subjectIds,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	ReturnDate    string           `json:"returnDate,omitempty"`
	FollowUpNotes string           `json:"followUpNotes,omitempty"`
	RiskLevel     RiskLevel        `json:"riskLevel" validate:"required,oneof=low medium high"`
}

type AlertType string

const (
	AlertAttendance  AlertType = "attendance"
	AlertGrades      AlertType = "grades"
	AlertBehavior    AlertType = "behavior"
	AlertDropoutRisk AlertType = "dropout_risk"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

type StudentRiskAlert struct {
	ID            string        `json:"id"`
	StudentID     string        `json:"studentId" validate:"required"`
	PeriodID      string        `json:"periodId" validate:"required"`
	Type          AlertType     `json:"type" validate:"required,oneof=attendance grades behavior dropout_risk"`
	Severity      AlertSeverity `json:"severity" validate:"required,oneof=low medium high critical"`
	Description   string        `json:"description"`
	Date          string        `json:"date"`
	Resolved      bool          `json:"resolved"`
	ResolvedDate  string        `json:"resolvedDate,omitempty"`
	ResolvedNotes string        `json:"resolvedNotes,omitempty"`
}

type AssignmentType string

const (
	AssignmentHomework     AssignmentType = "homework"
	AssignmentProject      AssignmentType = "project"
	AssignmentExam         AssignmentType = "exam"
	AssignmentQuiz         AssignmentType = "quiz"
	AssignmentPresentation AssignmentType = "presentation"
	AssignmentLab          AssignmentType = "lab"
)

type AssignmentStatus string

const (
	AssignmentActive AssignmentStatus = "active"
	AssignmentClosed AssignmentStatus = "closed"
)

type Assignment struct {
	ID          string           `json:"id"`
	SubjectID   string           `json:"subjectId" validate:"required"`
	PeriodID    string           `json:"periodId" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	DueDate     string           `json:"dueDate"`
	MaxScore    float64          `json:"maxScore" validate:"omitempty,gt=0"`
	Type        AssignmentType   `json:"type" validate:"required,oneof=homework project exam quiz presentation lab"`
	Status      AssignmentStatus `json:"status" validate:"required,oneof=active closed"`
}

type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
	SubmissionLate      SubmissionStatus = "late"
	SubmissionMissing   SubmissionStatus = "missing"
)

type StudentAssignment struct {
	ID            string           `json:"id"`
	AssignmentID  string           `json:"assignmentId" validate:"required"`
	StudentID     string           `json:"studentId" validate:"required"`
	SubmittedDate string           `json:"submittedDate,omitempty"`
	Score         float64          `json:"score,omitempty"`
	Status        SubmissionStatus `json:"status" validate:"required,oneof=pending submitted graded late missing"`
	Feedback      string           `json:"feedback,omitempty"`
}

// Course is the legacy catalog shape kept for compatibility; its grade chart
// runs on a 0-10 scale.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
	Teacher     string `json:"teacher"`
	Credits     int    `json:"credits" validate:"omitempty,gte=1"`
	Schedule    string `json:"schedule"`
	Capacity    int    `json:"capacity" validate:"omitempty,gte=0"`
	Enrolled    int    `json:"enrolled" validate:"omitempty,gte=0"`
}

// Period implementations let period-scoped collections share FilterByPeriod.

func (e Enrollment) Period() string       { return e.PeriodID }
func (a Attendance) Period() string       { return a.PeriodID }
func (g Grade) Period() string            { return g.PeriodID }
func (w Withdrawal) Period() string       { return w.PeriodID }
func (a StudentRiskAlert) Period() string { return a.PeriodID }
func (a Assignment) Period() string       { return a.PeriodID }
