package academic

// Partial-update requests. Every field is a pointer so the JSON encoder only
// carries what the caller actually set; the record store merges field-wise.

type UpdateAcademicPeriod struct {
	Name      *string       `json:"name,omitempty"`
	Year      *int          `json:"year,omitempty"`
	Semester  *int          `json:"semester,omitempty" validate:"omitempty,oneof=1 2"`
	StartDate *string       `json:"startDate,omitempty"`
	EndDate   *string       `json:"endDate,omitempty"`
	Status    *PeriodStatus `json:"status,omitempty" validate:"omitempty,oneof=active closed upcoming"`
}

type UpdateCareer struct {
	Name        *string       `json:"name,omitempty"`
	Code        *string       `json:"code,omitempty"`
	Faculty     *string       `json:"faculty,omitempty"`
	Duration    *int          `json:"duration,omitempty" validate:"omitempty,gte=1"`
	Description *string       `json:"description,omitempty"`
	Status      *CareerStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type UpdateStudent struct {
	FirstName        *string        `json:"firstName,omitempty"`
	LastName         *string        `json:"lastName,omitempty"`
	Email            *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string        `json:"phone,omitempty"`
	DateOfBirth      *string        `json:"dateOfBirth,omitempty"`
	EnrollmentDate   *string        `json:"enrollmentDate,omitempty"`
	CareerID         *string        `json:"careerId,omitempty"`
	CurrentSemester  *int           `json:"currentSemester,omitempty" validate:"omitempty,gte=1"`
	Nivel            *int           `json:"nivel,omitempty"`
	Status           *StudentStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive graduated withdrawn suspended"`
	Avatar           *string        `json:"avatar,omitempty"`
	Address          *string        `json:"address,omitempty"`
	EmergencyContact *string        `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string        `json:"emergencyPhone,omitempty"`
	StudentCode      *string        `json:"studentCode,omitempty"`
	WithdrawalDate   *string        `json:"withdrawalDate,omitempty"`
	WithdrawalReason *string        `json:"withdrawalReason,omitempty"`
}

type UpdateEnrollment struct {
	StudentID      *string           `json:"studentId,omitempty"`
	PeriodID       *string           `json:"periodId,omitempty"`
	SubjectIDs     []string          `json:"subjectIds,omitempty"`
	EnrollmentDate *string           `json:"enrollmentDate,omitempty"`
	Status         *EnrollmentStatus `json:"status,omitempty" validate:"omitempty,oneof=active withdrawn completed"`
}

type UpdateTeacher struct {
	FirstName      *string        `json:"firstName,omitempty"`
	LastName       *string        `json:"lastName,omitempty"`
	Email          *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string        `json:"phone,omitempty"`
	DateOfBirth    *string        `json:"dateOfBirth,omitempty"`
	HireDate       *string        `json:"hireDate,omitempty"`
	Specialization *string        `json:"specialization,omitempty"`
	Status         *TeacherStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`
	Address        *string        `json:"address,omitempty"`
	Degree         *string        `json:"degree,omitempty"`
	AcademicRank   *string        `json:"academicRank,omitempty" validate:"omitempty,oneof=Auxiliar Titular Asociado Emérito"`
	Salary         *float64       `json:"salary,omitempty"`
}

type UpdateSubject struct {
	Name          *string  `json:"name,omitempty"`
	Code          *string  `json:"code,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TeacherID     *string  `json:"teacherId,omitempty"`
	CareerID      *string  `json:"careerId,omitempty"`
	Semester      *int     `json:"semester,omitempty" validate:"omitempty,gte=1"`
	Nivel         *int     `json:"nivel,omitempty"`
	Credits       *int     `json:"credits,omitempty" validate:"omitempty,gte=1"`
	Schedule      *string  `json:"schedule,omitempty"`
	Classroom     *string  `json:"classroom,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

type UpdateAttendance struct {
	StudentID *string           `json:"studentId,omitempty"`
	SubjectID *string           `json:"subjectId,omitempty"`
	PeriodID  *string           `json:"periodId,omitempty"`
	Date      *string           `json:"date,omitempty"`
	Status    *AttendanceStatus `json:"status,omitempty" validate:"omitempty,oneof=present absent late excused"`
	Notes     *string           `json:"notes,omitempty"`
}

type UpdateGrade struct {
	StudentID *string    `json:"studentId,omitempty"`
	SubjectID *string    `json:"subjectId,omitempty"`
	CourseID  *string    `json:"courseId,omitempty"`
	PeriodID  *string    `json:"periodId,omitempty"`
	Type      *GradeType `json:"type,omitempty" validate:"omitempty,oneof=partial1 partial2 partial3 final recovery practice"`
	Grade     *float64   `json:"grade,omitempty" validate:"omitempty,gte=0"`
	MaxGrade  *float64   `json:"maxGrade,omitempty" validate:"omitempty,gt=0"`
	Weight    *float64   `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Date      *string    `json:"date,omitempty"`
	Comments  *string    `json:"comments,omitempty"`
}

type UpdateWithdrawal struct {
	Date          *string           `json:"date,omitempty"`
	Reason        *WithdrawalReason `json:"reason,omitempty" validate:"omitempty,oneof=economic academic_performance health work family relocation lack_of_interest schedule_conflict other"`
	Type          *WithdrawalType   `json:"type,omitempty" validate:"omitempty,oneof=temporary permanent transfer academic"`
	SubjectIDs    []string          `json:"subjectIds,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	ReturnDate    *string           `json:"returnDate,omitempty"`
	FollowUpNotes *string           `json:"followUpNotes,omitempty"`
	RiskLevel     *RiskLevel        `json:"riskLevel,omitempty" validate:"omitempty,oneof=low medium high"`
}

type UpdateRiskAlert struct {
	Type          *AlertType     `json:"type,omitempty" validate:"omitempty,oneof=attendance grades behavior dropout_risk"`
	Severity      *AlertSeverity `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Description   *string        `json:"description,omitempty"`
	Date          *string        `json:"date,omitempty"`
	Resolved      *bool          `json:"resolved,omitempty"`
	ResolvedDate  *string        `json:"resolvedDate,omitempty"`
	ResolvedNotes *string        `json:"resolvedNotes,omitempty"`
}

type UpdateAssignment struct {
	SubjectID   *string           `json:"subjectId,omitempty"`
	PeriodID    *string           `json:"periodId,omitempty"`
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	DueDate     *string           `json:"dueDate,omitempty"`
	MaxScore    *float64          `json:"maxScore,omitempty" validate:"omitempty,gt=0"`
	Type        *AssignmentType   `json:"type,omitempty" validate:"omitempty,oneof=homework project exam quiz presentation lab"`
	Status      *AssignmentStatus `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
}

type UpdateStudentAssignment struct {
	SubmittedDate *string           `json:"submittedDate,omitempty"`
	Score         *float64          `json:"score,omitempty"`
	Status        *SubmissionStatus `json:"status,omitempty" validate:"omitempty,oneof=pending submitted graded late missing"`
	Feedback      *string           `json:"feedback,omitempty"`
}

type UpdateCourse struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
	Teacher     *string `json:"teacher,omitempty"`
	Credits     *int    `json:"credits,omitempty" validate:"omitempty,gte=1"`
	Schedule    *string `json:"schedule,omitempty"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Enrolled    *int    `json:"enrolled,omitempty" validate:"omitempty,gte=0"`
}
