package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
	"github.com/Lemoonautt/Unigestion-PJ/core/user"
	"github.com/Lemoonautt/Unigestion-PJ/storage/inmem"
)

var usrRepo user.Repository

func setup(t *testing.T) *commandLine {
	t.Helper()
	logger = log.New(io.Discard, "", 0)
	usrRepo = inmem.NewUserRepository()
	return &commandLine{
		usrRepo: usrRepo,
		store:   inmem.NewStore(),
	}
}

func createUser(t *testing.T, uname, email, pwd string) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr := user.User{Name: uname, Username: uname, Email: email, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("SetPassword() failed, %v", err)
	}
	usr, err := usrRepo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed, %v", err)
	}
	return usr
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	extra   interface{}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd   string
		admin bool
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "username but no email", args: []string{"adduser", "-username", "awe"}, wantErr: errHelp},
		{name: "username and email but no password", args: []string{"adduser", "-username", "awe", "-email", "awe@test.bo"}, wantErr: errHelp},
		{name: "create user", args: []string{"adduser", "-username", "awe", "-email", "awe@test.bo"}, extra: extra{pwd: "mdr"}},
		{name: "create admin", args: []string{"adduser", "-username", "Boss", "-email", "boss@test.bo", "-admin"}, extra: extra{pwd: "mdr", admin: true}},
		{name: "update existing user", args: []string{"adduser", "-username", "awe", "-email", "awe@test.bo"}, extra: extra{pwd: "lol"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			extra := tt.extra.(extra)
			usr, err := usrRepo.GetUserByUsername("awe")
			if extra.admin {
				usr, err = usrRepo.GetUserByUsername("boss")
			}
			if err != nil {
				t.Fatalf("GetUserByUsername() failed, %v", err)
			}
			if !usr.IsActive {
				t.Error("expected user to be active")
			}
			if err := usr.CheckPassword(extra.pwd); err != nil {
				t.Errorf("CheckPassword() failed, %v", err)
			}
			if extra.admin && len(usr.Roles) != len(user.AllRoles) {
				t.Errorf("expected all roles, got %v", usr.Roles)
			}
		})
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	usr := createUser(t, "awe", "awe@test.bo", "mdr")

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"resetpassword", "-username", "lol"}, wantErr: errHelp},
		{name: "user not found", args: []string{"resetpassword", "-username", "lol"}, extra: extra{pwd: "lol"}, wantErr: user.ErrNotFound},
		{name: "reset with username", args: []string{"resetpassword", "-username", usr.Username}, extra: extra{pwd: "lol"}},
		{name: "reset with email", args: []string{"resetpassword", "-username", usr.Email}, extra: extra{pwd: "lmao"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				refreshedUsr, err := usrRepo.GetUserByID(usr.ID)
				if err != nil {
					t.Fatalf("GetUserByID() failed, %v", err)
				}
				if bytes.Equal(refreshedUsr.PasswordHash, usr.PasswordHash) {
					t.Error("failed to update new password")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run() failed, %v", err)
	}

	ctx := context.Background()
	counts := map[string]int{
		academic.ResourceAcademicPeriods:    3,
		academic.ResourceCareers:            4,
		academic.ResourceStudents:           6,
		academic.ResourceTeachers:           4,
		academic.ResourceSubjects:           5,
		academic.ResourceEnrollments:        5,
		academic.ResourceGrades:             6,
		academic.ResourceAttendances:        8,
		academic.ResourceWithdrawals:        2,
		academic.ResourceRiskAlerts:         3,
		academic.ResourceAssignments:        2,
		academic.ResourceStudentAssignments: 2,
		academic.ResourceCourses:            2,
	}
	for resource, want := range counts {
		var docs []map[string]interface{}
		if err := cli.store.List(ctx, resource, &docs); err != nil {
			t.Fatalf("List(%s) failed, %v", resource, err)
		}
		if len(docs) != want {
			t.Errorf("List(%s) = %d records, want %d", resource, len(docs), want)
		}
	}

	var std academic.Student
	if err := cli.store.Get(ctx, academic.ResourceStudents, "std-1", &std); err != nil {
		t.Fatalf("Get(students, std-1) failed, %v", err)
	}
	if std.FirstName != "María" {
		t.Errorf("Get(students, std-1).FirstName = %s, want María", std.FirstName)
	}
}
