package main

import (
	"context"
	"fmt"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
)

// seed loads a demo dataset into the record store. Records carry fixed ids so
// reseeding an empty store is reproducible.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	push := func(resource string, docs ...interface{}) error {
		for _, doc := range docs {
			if err := cli.store.Create(ctx, resource, doc, nil); err != nil {
				return fmt.Errorf("seeding %s: %w", resource, err)
			}
		}
		logger.Printf("seeded %d %s", len(docs), resource)
		return nil
	}

	if err := push(academic.ResourceAcademicPeriods,
		academic.AcademicPeriod{ID: "per-2024-2", Name: "Gestión 2/2024", Year: 2024, Semester: 2, StartDate: "2024-08-05", EndDate: "2024-12-13", Status: academic.PeriodClosed},
		academic.AcademicPeriod{ID: "per-2025-1", Name: "Gestión 1/2025", Year: 2025, Semester: 1, StartDate: "2025-02-03", EndDate: "2025-06-27", Status: academic.PeriodActive},
		academic.AcademicPeriod{ID: "per-2025-2", Name: "Gestión 2/2025", Year: 2025, Semester: 2, StartDate: "2025-08-04", EndDate: "2025-12-12", Status: academic.PeriodUpcoming},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceCareers,
		academic.Career{ID: "car-sis", Name: "Ingeniería de Sistemas", Code: "SIS", Faculty: "Facultad de Ingeniería", Duration: 10, Status: academic.CareerActive},
		academic.Career{ID: "car-ind", Name: "Ingeniería Industrial", Code: "IND", Faculty: "Facultad de Ingeniería", Duration: 10, Status: academic.CareerActive},
		academic.Career{ID: "car-adm", Name: "Administración de Empresas", Code: "ADM", Faculty: "Facultad de Ciencias Económicas", Duration: 8, Status: academic.CareerActive},
		academic.Career{ID: "car-der", Name: "Derecho", Code: "DER", Faculty: "Facultad de Ciencias Jurídicas", Duration: 10, Status: academic.CareerInactive},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceStudents,
		academic.Student{ID: "std-1", FirstName: "María", LastName: "Pérez", Email: "maria.perez@universidad.edu", CareerID: "car-sis", CurrentSemester: 5, Nivel: 3, Status: academic.StudentActive, StudentCode: "SIS-2022-014"},
		academic.Student{ID: "std-2", FirstName: "Luis", LastName: "Mamani", Email: "luis.mamani@universidad.edu", CareerID: "car-sis", CurrentSemester: 3, Nivel: 2, Status: academic.StudentActive, StudentCode: "SIS-2023-031"},
		academic.Student{ID: "std-3", FirstName: "Ana", LastName: "Flores", Email: "ana.flores@universidad.edu", CareerID: "car-ind", CurrentSemester: 7, Nivel: 4, Status: academic.StudentActive, StudentCode: "IND-2021-007"},
		academic.Student{ID: "std-4", FirstName: "Jorge", LastName: "Rojas", Email: "jorge.rojas@universidad.edu", CareerID: "car-adm", CurrentSemester: 1, Nivel: 1, Status: academic.StudentActive, StudentCode: "ADM-2025-102"},
		academic.Student{ID: "std-5", FirstName: "Sofía", LastName: "Quispe", Email: "sofia.quispe@universidad.edu", CareerID: "car-ind", CurrentSemester: 4, Nivel: 2, Status: academic.StudentSuspended, WithdrawalDate: "2025-04-02", WithdrawalReason: "Problemas de salud", StudentCode: "IND-2022-055"},
		academic.Student{ID: "std-6", FirstName: "Beto", LastName: "Castro", Email: "beto.castro@universidad.edu", CareerID: "car-adm", CurrentSemester: 2, Nivel: 1, Status: academic.StudentWithdrawn, WithdrawalDate: "2025-03-18", WithdrawalReason: "Problemas económicos", StudentCode: "ADM-2024-080"},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceTeachers,
		academic.Teacher{ID: "tch-1", FirstName: "Carla", LastName: "Vargas", Email: "carla.vargas@universidad.edu", Specialization: "Matemáticas", Status: academic.TeacherActive, AcademicRank: "Titular"},
		academic.Teacher{ID: "tch-2", FirstName: "Raúl", LastName: "Gutiérrez", Email: "raul.gutierrez@universidad.edu", Specialization: "Programación", Status: academic.TeacherActive, AcademicRank: "Asociado"},
		academic.Teacher{ID: "tch-3", FirstName: "Elena", LastName: "Suárez", Email: "elena.suarez@universidad.edu", Specialization: "Economía", Status: academic.TeacherOnLeave, AcademicRank: "Auxiliar"},
		academic.Teacher{ID: "tch-4", FirstName: "Pedro", LastName: "Arce", Email: "pedro.arce@universidad.edu", Specialization: "Derecho Civil", Status: academic.TeacherInactive},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceSubjects,
		academic.Subject{ID: "sub-1", Name: "Cálculo I", Code: "MAT-101", TeacherID: "tch-1", CareerID: "car-sis", Semester: 1, Nivel: 1, Credits: 5},
		academic.Subject{ID: "sub-2", Name: "Programación II", Code: "SIS-202", TeacherID: "tch-2", CareerID: "car-sis", Semester: 3, Nivel: 2, Credits: 6, Prerequisites: []string{"SIS-101"}},
		academic.Subject{ID: "sub-3", Name: "Bases de Datos", Code: "SIS-305", TeacherID: "tch-2", CareerID: "car-sis", Semester: 5, Nivel: 3, Credits: 6},
		academic.Subject{ID: "sub-4", Name: "Investigación Operativa", Code: "IND-401", TeacherID: "tch-1", CareerID: "car-ind", Semester: 7, Nivel: 4, Credits: 5},
		academic.Subject{ID: "sub-5", Name: "Microeconomía", Code: "ADM-102", TeacherID: "tch-3", CareerID: "car-adm", Semester: 1, Nivel: 1, Credits: 4},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceEnrollments,
		academic.Enrollment{ID: "enr-1", StudentID: "std-1", PeriodID: "per-2025-1", SubjectIDs: []string{"sub-3"}, EnrollmentDate: "2025-02-03", Status: academic.EnrollmentActive},
		academic.Enrollment{ID: "enr-2", StudentID: "std-2", PeriodID: "per-2025-1", SubjectIDs: []string{"sub-2"}, EnrollmentDate: "2025-02-04", Status: academic.EnrollmentActive},
		academic.Enrollment{ID: "enr-3", StudentID: "std-3", PeriodID: "per-2025-1", SubjectIDs: []string{"sub-4"}, EnrollmentDate: "2025-02-03", Status: academic.EnrollmentActive},
		academic.Enrollment{ID: "enr-4", StudentID: "std-4", PeriodID: "per-2025-1", SubjectIDs: []string{"sub-5"}, EnrollmentDate: "2025-02-10", Status: academic.EnrollmentActive},
		academic.Enrollment{ID: "enr-5", StudentID: "std-1", PeriodID: "per-2024-2", SubjectIDs: []string{"sub-2"}, EnrollmentDate: "2024-08-05", Status: academic.EnrollmentCompleted},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceGrades,
		academic.Grade{ID: "grd-1", StudentID: "std-1", SubjectID: "sub-3", PeriodID: "per-2025-1", Type: academic.GradePartial1, Grade: 85, MaxGrade: 100, Weight: 0.3, Date: "2025-03-21"},
		academic.Grade{ID: "grd-2", StudentID: "std-1", SubjectID: "sub-3", PeriodID: "per-2025-1", Type: academic.GradePartial2, Grade: 78, MaxGrade: 100, Weight: 0.3, Date: "2025-05-09"},
		academic.Grade{ID: "grd-3", StudentID: "std-2", SubjectID: "sub-2", PeriodID: "per-2025-1", Type: academic.GradePartial1, Grade: 62, MaxGrade: 100, Weight: 0.3, Date: "2025-03-22"},
		academic.Grade{ID: "grd-4", StudentID: "std-3", SubjectID: "sub-4", PeriodID: "per-2025-1", Type: academic.GradePartial1, Grade: 91, MaxGrade: 100, Weight: 0.3, Date: "2025-03-20"},
		academic.Grade{ID: "grd-5", StudentID: "std-4", SubjectID: "sub-5", PeriodID: "per-2025-1", Type: academic.GradePartial1, Grade: 55, MaxGrade: 100, Weight: 0.3, Date: "2025-03-25"},
		academic.Grade{ID: "grd-6", StudentID: "std-1", CourseID: "crs-1", PeriodID: "per-2024-2", Type: academic.GradeFinal, Grade: 8.2, MaxGrade: 10, Weight: 1, Date: "2024-12-02"},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceAttendances,
		academic.Attendance{ID: "att-1", StudentID: "std-1", SubjectID: "sub-3", PeriodID: "per-2025-1", Date: "2025-03-10", Status: academic.AttendancePresent},
		academic.Attendance{ID: "att-2", StudentID: "std-1", SubjectID: "sub-3", PeriodID: "per-2025-1", Date: "2025-03-11", Status: academic.AttendancePresent},
		academic.Attendance{ID: "att-3", StudentID: "std-2", SubjectID: "sub-2", PeriodID: "per-2025-1", Date: "2025-03-10", Status: academic.AttendanceAbsent},
		academic.Attendance{ID: "att-4", StudentID: "std-2", SubjectID: "sub-2", PeriodID: "per-2025-1", Date: "2025-03-11", Status: academic.AttendanceAbsent},
		academic.Attendance{ID: "att-5", StudentID: "std-2", SubjectID: "sub-2", PeriodID: "per-2025-1", Date: "2025-03-12", Status: academic.AttendanceAbsent},
		academic.Attendance{ID: "att-6", StudentID: "std-3", SubjectID: "sub-4", PeriodID: "per-2025-1", Date: "2025-03-10", Status: academic.AttendanceLate},
		academic.Attendance{ID: "att-7", StudentID: "std-4", SubjectID: "sub-5", PeriodID: "per-2025-1", Date: "2025-03-10", Status: academic.AttendancePresent},
		academic.Attendance{ID: "att-8", StudentID: "std-4", SubjectID: "sub-5", PeriodID: "per-2025-1", Date: "2025-03-11", Status: academic.AttendanceExcused},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceWithdrawals,
		academic.Withdrawal{ID: "wdr-1", StudentID: "std-5", PeriodID: "per-2025-1", Date: "2025-04-02", Reason: academic.ReasonHealth, Type: academic.WithdrawalTemporary, RiskLevel: academic.RiskMedium, Notes: "Baja médica con reincorporación prevista"},
		academic.Withdrawal{ID: "wdr-2", StudentID: "std-6", PeriodID: "per-2025-1", Date: "2025-03-18", Reason: academic.ReasonEconomic, Type: academic.WithdrawalPermanent, RiskLevel: academic.RiskHigh},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceRiskAlerts,
		academic.StudentRiskAlert{ID: "alr-1", StudentID: "std-2", PeriodID: "per-2025-1", Type: academic.AlertAttendance, Severity: academic.SeverityCritical, Description: "3 faltas consecutivas en Programación II", Date: "2025-03-13"},
		academic.StudentRiskAlert{ID: "alr-2", StudentID: "std-4", PeriodID: "per-2025-1", Type: academic.AlertGrades, Severity: academic.SeverityHigh, Description: "Primer parcial reprobado", Date: "2025-03-26"},
		academic.StudentRiskAlert{ID: "alr-3", StudentID: "std-1", PeriodID: "per-2024-2", Type: academic.AlertBehavior, Severity: academic.SeverityLow, Description: "Retrasos reiterados", Date: "2024-10-02", Resolved: true, ResolvedDate: "2024-10-20", ResolvedNotes: "Conversación con el estudiante"},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceAssignments,
		academic.Assignment{ID: "asg-1", SubjectID: "sub-3", PeriodID: "per-2025-1", Title: "Modelo entidad-relación", DueDate: "2025-04-11", MaxScore: 100, Type: academic.AssignmentProject, Status: academic.AssignmentActive},
		academic.Assignment{ID: "asg-2", SubjectID: "sub-2", PeriodID: "per-2025-1", Title: "Práctica de punteros", DueDate: "2025-03-28", MaxScore: 50, Type: academic.AssignmentHomework, Status: academic.AssignmentClosed},
	); err != nil {
		return err
	}

	if err := push(academic.ResourceStudentAssignments,
		academic.StudentAssignment{ID: "sas-1", AssignmentID: "asg-1", StudentID: "std-1", Status: academic.SubmissionPending},
		academic.StudentAssignment{ID: "sas-2", AssignmentID: "asg-2", StudentID: "std-2", SubmittedDate: "2025-03-27", Score: 42, Status: academic.SubmissionGraded, Feedback: "Buen manejo de memoria"},
	); err != nil {
		return err
	}

	return push(academic.ResourceCourses,
		academic.Course{ID: "crs-1", Name: "Redes de Computadoras", Code: "LEG-301", Teacher: "Raúl Gutiérrez", Credits: 5},
		academic.Course{ID: "crs-2", Name: "Contabilidad General", Code: "LEG-110", Teacher: "Elena Suárez", Credits: 4},
	)
}
