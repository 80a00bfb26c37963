package academic

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core"
)

// fakeStore mimics the record store: ids are assigned on create and patches
// merge field-wise, the same way the devstore behaves.
type fakeStore struct {
	mu   sync.Mutex
	seq  int
	data map[string][]map[string]interface{}

	// createErr, when set, decides per call whether Create fails
	createErr func(resource string, call int) error
	calls     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]map[string]interface{})}
}

func (fs *fakeStore) seed(t *testing.T, resource string, records ...interface{}) {
	t.Helper()
	for _, rec := range records {
		var doc map[string]interface{}
		raw, err := json.Marshal(rec)
		if err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			t.Fatal(err)
		}
		fs.data[resource] = append(fs.data[resource], doc)
	}
}

func (fs *fakeStore) List(_ context.Context, resource string, out interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	docs := fs.data[resource]
	if docs == nil {
		docs = []map[string]interface{}{}
	}
	return roundTrip(docs, out)
}

func (fs *fakeStore) Get(_ context.Context, resource, id string, out interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, doc := range fs.data[resource] {
		if doc["id"] == id {
			return roundTrip(doc, out)
		}
	}
	return errors.Wrapf(ErrNotFound, "%s/%s", resource, id)
}

func (fs *fakeStore) Create(_ context.Context, resource string, in, out interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.calls++
	if fs.createErr != nil {
		if err := fs.createErr(resource, fs.calls); err != nil {
			return err
		}
	}
	var doc map[string]interface{}
	if err := roundTrip(in, &doc); err != nil {
		return err
	}
	if id, _ := doc["id"].(string); id == "" {
		fs.seq++
		doc["id"] = fmt.Sprintf("%s-%d", resource, fs.seq)
	}
	fs.data[resource] = append(fs.data[resource], doc)
	return roundTrip(doc, out)
}

func (fs *fakeStore) Patch(_ context.Context, resource, id string, in, out interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, doc := range fs.data[resource] {
		if doc["id"] != id {
			continue
		}
		var patch map[string]interface{}
		if err := roundTrip(in, &patch); err != nil {
			return err
		}
		for k, v := range patch {
			doc[k] = v
		}
		return roundTrip(doc, out)
	}
	return errors.Wrapf(ErrNotFound, "%s/%s", resource, id)
}

func (fs *fakeStore) Delete(_ context.Context, resource, id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i, doc := range fs.data[resource] {
		if doc["id"] == id {
			fs.data[resource] = append(fs.data[resource][:i], fs.data[resource][i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "%s/%s", resource, id)
}

func roundTrip(in, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

type mailRecorder struct {
	messages []*core.EmailMessage
}

func (m *mailRecorder) SendMessages(messages ...*core.EmailMessage) {
	m.messages = append(m.messages, messages...)
}

type nopLogger struct{}

func (nopLogger) Debug(string)                 {}
func (nopLogger) Info(string)                  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newTestService(fs *fakeStore, mail core.EmailService) *Service {
	conf := &core.Config{AppName: "Unigestion", DefaultFromEmail: "admin@universidad.edu"}
	return NewService(conf, fs, mail, nopLogger{})
}

func TestServiceLoad(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.seed(t, ResourceAcademicPeriods,
		AcademicPeriod{ID: "p0", Name: "Gestión 2/2024", Status: PeriodClosed},
		AcademicPeriod{ID: "p1", Name: "Gestión 1/2025", Status: PeriodActive},
	)
	fs.seed(t, ResourceStudents, Student{ID: "s1", FirstName: "Ana", LastName: "Rojas", Status: StudentActive})
	fs.seed(t, ResourceGrades, Grade{ID: "g1", StudentID: "s1", PeriodID: "p1", Grade: 80})

	svc := newTestService(fs, nil)
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	snap := svc.Snapshot()
	if len(snap.Periods) != 2 || len(snap.Students) != 1 || len(snap.Grades) != 1 {
		t.Errorf("Snapshot() = %d periods, %d students, %d grades", len(snap.Periods), len(snap.Students), len(snap.Grades))
	}
	// the active period becomes the selection
	if snap.SelectedPeriodID == nil || *snap.SelectedPeriodID != "p1" {
		t.Errorf("SelectedPeriodID = %v, want p1", snap.SelectedPeriodID)
	}
}

func TestServiceSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.seed(t, ResourceStudents, Student{ID: "s1", FirstName: "Ana", LastName: "Rojas"})

	svc := newTestService(fs, nil)
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}

	snap := svc.Snapshot()
	snap.Students[0].FirstName = "Hacked"

	if svc.Snapshot().Students[0].FirstName != "Ana" {
		t.Error("mutating a snapshot leaked into the cache")
	}
}

func TestServiceSetSelectedPeriod(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.seed(t, ResourceAcademicPeriods, AcademicPeriod{ID: "p1", Status: PeriodActive})

	svc := newTestService(fs, nil)
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}

	if err := svc.SetSelectedPeriod(strPtr("nope")); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetSelectedPeriod(nope) error = %v, want ErrNotFound", err)
	}
	if err := svc.SetSelectedPeriod(nil); err != nil {
		t.Errorf("SetSelectedPeriod(nil) failed: %v", err)
	}
	if svc.SelectedPeriod() != nil {
		t.Error("SelectedPeriod() != nil after clearing")
	}
}

func TestServiceAddStudent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore(), nil)

	out, err := svc.AddStudent(ctx, Student{FirstName: "Ana", LastName: "Rojas", CareerID: "c1", CurrentSemester: 7, Status: StudentActive})
	if err != nil {
		t.Fatalf("AddStudent() failed: %v", err)
	}
	if out.ID == "" {
		t.Error("AddStudent() returned no id")
	}
	if out.Nivel != 4 {
		t.Errorf("Nivel = %d, want 4", out.Nivel)
	}

	// the cache mirrors what the store returned
	snap := svc.Snapshot()
	if len(snap.Students) != 1 || snap.Students[0].ID != out.ID {
		t.Errorf("cache = %+v", snap.Students)
	}
}

func TestServiceUpdateStudentRecomputesNivel(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore(), nil)

	st, err := svc.AddStudent(ctx, Student{FirstName: "Ana", LastName: "Rojas", CareerID: "c1", CurrentSemester: 1, Status: StudentActive})
	if err != nil {
		t.Fatal(err)
	}

	semester := 5
	out, err := svc.UpdateStudent(ctx, st.ID, UpdateStudent{CurrentSemester: &semester})
	if err != nil {
		t.Fatalf("UpdateStudent() failed: %v", err)
	}
	if out.Nivel != 3 {
		t.Errorf("Nivel = %d, want 3", out.Nivel)
	}
	if got := svc.Snapshot().Students[0]; got.Nivel != 3 || got.CurrentSemester != 5 {
		t.Errorf("cached student = %+v", got)
	}
}

func TestServiceFailedCreateLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.createErr = func(string, int) error { return errors.New("store down") }
	svc := newTestService(fs, nil)

	if _, err := svc.AddGrade(ctx, Grade{StudentID: "s1", PeriodID: "p1", Grade: 80}); err == nil {
		t.Fatal("AddGrade() succeeded, want error")
	}
	if n := len(svc.Snapshot().Grades); n != 0 {
		t.Errorf("cache holds %d grades after a failed create", n)
	}
}

func TestServiceAddWithdrawal(t *testing.T) {
	tests := []struct {
		name       string
		typ        WithdrawalType
		wantStatus StudentStatus
	}{
		{"temporary suspends", WithdrawalTemporary, StudentSuspended},
		{"permanent withdraws", WithdrawalPermanent, StudentWithdrawn},
		{"transfer withdraws", WithdrawalTransfer, StudentWithdrawn},
		{"academic withdraws", WithdrawalAcademic, StudentWithdrawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			fs := newFakeStore()
			fs.seed(t, ResourceStudents, Student{ID: "s1", FirstName: "Ana", LastName: "Rojas", Status: StudentActive})
			svc := newTestService(fs, nil)
			if err := svc.Load(ctx); err != nil {
				t.Fatal(err)
			}

			w, err := svc.AddWithdrawal(ctx, Withdrawal{
				StudentID: "s1", PeriodID: "p1", Date: "2025-06-01",
				Reason: ReasonEconomic, Type: tt.typ, RiskLevel: RiskMedium,
			})
			if err != nil {
				t.Fatalf("AddWithdrawal() failed: %v", err)
			}
			if w.ID == "" {
				t.Error("AddWithdrawal() returned no id")
			}

			st, ok := svc.Snapshot().Student("s1")
			if !ok {
				t.Fatal("student vanished")
			}
			if st.Status != tt.wantStatus {
				t.Errorf("student status = %q, want %q", st.Status, tt.wantStatus)
			}
			if st.WithdrawalDate != "2025-06-01" {
				t.Errorf("WithdrawalDate = %q", st.WithdrawalDate)
			}
			if st.WithdrawalReason != "Problemas económicos" {
				t.Errorf("WithdrawalReason = %q", st.WithdrawalReason)
			}
		})
	}
}

func TestServiceReactivateWithdrawal(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.seed(t, ResourceStudents, Student{ID: "s1", FirstName: "Ana", LastName: "Rojas", Status: StudentActive})
	svc := newTestService(fs, nil)
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}

	w, err := svc.AddWithdrawal(ctx, Withdrawal{
		StudentID: "s1", PeriodID: "p1", Date: "2025-06-01",
		Reason: ReasonHealth, Type: WithdrawalTemporary, RiskLevel: RiskLow,
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := svc.ReactivateWithdrawal(ctx, w.ID)
	if err != nil {
		t.Fatalf("ReactivateWithdrawal() failed: %v", err)
	}
	if out.ReturnDate != core.Today() {
		t.Errorf("ReturnDate = %q, want today", out.ReturnDate)
	}

	st, _ := svc.Snapshot().Student("s1")
	if st.Status != StudentActive {
		t.Errorf("student status = %q, want active", st.Status)
	}
	if st.WithdrawalDate != "" || st.WithdrawalReason != "" {
		t.Errorf("withdrawal fields not cleared: %q / %q", st.WithdrawalDate, st.WithdrawalReason)
	}
}

func TestServiceReactivateWithdrawalRejectsPermanent(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.seed(t, ResourceStudents, Student{ID: "s1", FirstName: "Ana", LastName: "Rojas", Status: StudentActive})
	svc := newTestService(fs, nil)
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}

	w, err := svc.AddWithdrawal(ctx, Withdrawal{
		StudentID: "s1", PeriodID: "p1", Date: "2025-06-01",
		Reason: ReasonWork, Type: WithdrawalPermanent, RiskLevel: RiskLow,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ReactivateWithdrawal(ctx, w.ID); !errors.Is(err, ErrNotTemporary) {
		t.Errorf("ReactivateWithdrawal() error = %v, want ErrNotTemporary", err)
	}
	if _, err := svc.ReactivateWithdrawal(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReactivateWithdrawal(nope) error = %v, want ErrNotFound", err)
	}
}

func TestServiceResolveRiskAlert(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore(), nil)

	a, err := svc.AddRiskAlert(ctx, StudentRiskAlert{StudentID: "s1", PeriodID: "p1", Type: AlertGrades, Severity: SeverityHigh})
	if err != nil {
		t.Fatal(err)
	}

	out, err := svc.ResolveRiskAlert(ctx, a.ID, "tutoría asignada")
	if err != nil {
		t.Fatalf("ResolveRiskAlert() failed: %v", err)
	}
	if !out.Resolved || out.ResolvedDate != core.Today() || out.ResolvedNotes != "tutoría asignada" {
		t.Errorf("ResolveRiskAlert() = %+v", out)
	}

	cached, _ := svc.Snapshot().RiskAlert(a.ID)
	if !cached.Resolved {
		t.Error("cache not updated")
	}
}

func TestServiceBulkAddAttendance(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.createErr = func(resource string, call int) error {
		if call == 2 {
			return errors.New("store hiccup")
		}
		return nil
	}
	svc := newTestService(fs, nil)

	records := []Attendance{
		{StudentID: "s1", SubjectID: "sub1", PeriodID: "p1", Date: "2025-03-10", Status: AttendancePresent},
		{StudentID: "s2", SubjectID: "sub1", PeriodID: "p1", Date: "2025-03-10", Status: AttendanceAbsent},
		{StudentID: "s3", SubjectID: "sub1", PeriodID: "p1", Date: "2025-03-10", Status: AttendanceLate},
	}

	created, err := svc.BulkAddAttendance(ctx, records)
	if err == nil {
		t.Fatal("BulkAddAttendance() succeeded, want partial failure")
	}
	var bulkErr *BulkError
	if !errors.As(err, &bulkErr) {
		t.Fatalf("error type = %T", err)
	}
	if len(bulkErr.Failures) != 1 || bulkErr.Failures[0].Index != 1 {
		t.Errorf("Failures = %+v", bulkErr.Failures)
	}

	// the two persisted records are cached; the failed one is not
	if len(created) != 2 {
		t.Errorf("created %d records, want 2", len(created))
	}
	if n := len(svc.Snapshot().Attendance); n != 2 {
		t.Errorf("cache holds %d records, want 2", n)
	}
}

func TestServiceBulkAddAttendanceDigest(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	for i := 0; i < CriticalAbsenceThreshold-1; i++ {
		fs.seed(t, ResourceAttendances, Attendance{
			ID: fmt.Sprintf("a%d", i), StudentID: "s1", SubjectID: "sub1",
			PeriodID: "p1", Date: fmt.Sprintf("2025-03-%02d", i+1), Status: AttendanceAbsent,
		})
	}
	fs.seed(t, ResourceStudents, Student{ID: "s1", FirstName: "Ana", LastName: "Rojas", Status: StudentActive})

	mail := &mailRecorder{}
	svc := newTestService(fs, mail)
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}

	// the fifth absence crosses the critical threshold
	if _, err := svc.BulkAddAttendance(ctx, []Attendance{
		{StudentID: "s1", SubjectID: "sub1", PeriodID: "p1", Date: "2025-03-10", Status: AttendanceAbsent},
	}); err != nil {
		t.Fatalf("BulkAddAttendance() failed: %v", err)
	}

	if len(mail.messages) != 1 {
		t.Fatalf("got %d digest emails, want 1", len(mail.messages))
	}
	if msg := mail.messages[0]; msg.Subject != "Alerta de inasistencia crítica" || msg.TextContent == "" {
		t.Errorf("digest = %+v", msg)
	}
}

func TestServiceDeleteRemovesFromCache(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore(), nil)

	g, err := svc.AddGrade(ctx, Grade{StudentID: "s1", PeriodID: "p1", Grade: 80})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteGrade(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGrade() failed: %v", err)
	}
	if n := len(svc.Snapshot().Grades); n != 0 {
		t.Errorf("cache holds %d grades after delete", n)
	}
	if err := svc.DeleteGrade(ctx, g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteGrade(gone) error = %v, want ErrNotFound", err)
	}
}
