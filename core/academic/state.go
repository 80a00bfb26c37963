package academic

// State is a point-in-time snapshot of every collection mirrored from the
// record store, plus the session's selected period. Snapshots are plain
// values: aggregation functions read them, never mutate them.
type State struct {
	Students           []Student
	Teachers           []Teacher
	Subjects           []Subject
	Grades             []Grade
	Attendance         []Attendance
	Assignments        []Assignment
	StudentAssignments []StudentAssignment
	Withdrawals        []Withdrawal
	Periods            []AcademicPeriod
	Careers            []Career
	Enrollments        []Enrollment
	RiskAlerts         []StudentRiskAlert
	Courses            []Course

	// SelectedPeriodID scopes most views; nil means "all periods".
	SelectedPeriodID *string
}

// UnknownLabel is the sentinel rendered when a display join cannot resolve a
// referenced record. Ranked/grouped aggregates skip unresolved references
// instead; see each function's doc.
const UnknownLabel = "Desconocido"

func (s State) Student(id string) (Student, bool) {
	for _, st := range s.Students {
		if st.ID == id {
			return st, true
		}
	}
	return Student{}, false
}

func (s State) Career(id string) (Career, bool) {
	for _, c := range s.Careers {
		if c.ID == id {
			return c, true
		}
	}
	return Career{}, false
}

func (s State) Subject(id string) (Subject, bool) {
	for _, sub := range s.Subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return Subject{}, false
}

func (s State) Period(id string) (AcademicPeriod, bool) {
	for _, p := range s.Periods {
		if p.ID == id {
			return p, true
		}
	}
	return AcademicPeriod{}, false
}

func (s State) Withdrawal(id string) (Withdrawal, bool) {
	for _, w := range s.Withdrawals {
		if w.ID == id {
			return w, true
		}
	}
	return Withdrawal{}, false
}

func (s State) RiskAlert(id string) (StudentRiskAlert, bool) {
	for _, a := range s.RiskAlerts {
		if a.ID == id {
			return a, true
		}
	}
	return StudentRiskAlert{}, false
}

// StudentName resolves a student id to a display name, falling back to
// UnknownLabel (the attendance-summary rendering policy).
func (s State) StudentName(id string) string {
	if st, ok := s.Student(id); ok {
		return st.FullName()
	}
	return UnknownLabel
}

// SubjectName resolves a subject id to its name, falling back to UnknownLabel.
func (s State) SubjectName(id string) string {
	if sub, ok := s.Subject(id); ok {
		return sub.Name
	}
	return UnknownLabel
}
