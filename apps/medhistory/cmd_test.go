package main

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/medhistory/medhistory/core/session"
	"github.com/medhistory/medhistory/sandbox"
	apisvc "github.com/medhistory/medhistory/services/api"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()

	store := sandbox.NewStore()
	if err := sandbox.Seed(store); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	ts := httptest.NewServer(sandbox.NewServer(&sandbox.Options{
		DisableReqLogs: true,
		Store:          store,
		Logger:         nopLogger{},
	}))
	t.Cleanup(ts.Close)

	sess, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("session.Open() failed: %v", err)
	}

	out := new(bytes.Buffer)
	cli := &commandLine{
		api: apisvc.NewClient(&apisvc.Options{
			BaseURL: ts.URL,
			Session: sess,
			Logger:  nopLogger{},
		}),
		session: sess,
		out:     out,
	}
	return cli, out
}

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func run(t *testing.T, cli *commandLine, args ...string) {
	t.Helper()
	if err := cli.run(append([]string{"medhistory"}, args...)); err != nil {
		t.Fatalf("cli.run(%v) failed: %v", args, err)
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_help(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "login without email", args: []string{"login"}, wantErr: errHelp},
		{name: "whoami logged out", args: []string{"whoami"}, wantErr: errNotLoggedIn},
		{name: "grade without id", args: []string{"grade"}, wantErr: errHelp},
		{name: "inbox unknown status", args: []string{"inbox", "-status", "bogus"}, wantErr: errHelp},
		{name: "mydocs unknown status", args: []string{"mydocs", "-status", "bogus"}, wantErr: errHelp},
		{name: "adduser without flags", args: []string{"adduser"}, wantErr: errHelp},
		{name: "deluser without id", args: []string{"deluser"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"medhistory"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_loginLogout(t *testing.T) {
	cli, out := setup(t)

	mockPassword(t, "nope")
	if err := cli.run([]string{"medhistory", "login", "-email", "student@medhistory.local"}); err == nil {
		t.Error("login with a bad password should fail")
	}
	if cli.session.IsAuthenticated() {
		t.Error("session authenticated after failed login")
	}

	mockPassword(t, "S@ndb0x-Stud3nt")
	run(t, cli, "login", "-email", "student@medhistory.local")
	if !cli.session.IsAuthenticated() {
		t.Fatal("session not authenticated after login")
	}
	if !strings.Contains(out.String(), "logged in as Estudiante Demo") {
		t.Errorf("unexpected login output: %q", out.String())
	}

	out.Reset()
	run(t, cli, "whoami")
	if !strings.Contains(out.String(), "student@medhistory.local") {
		t.Errorf("unexpected whoami output: %q", out.String())
	}

	run(t, cli, "logout")
	if cli.session.IsAuthenticated() {
		t.Error("session still authenticated after logout")
	}
	if err := cli.run([]string{"medhistory", "whoami"}); err != errNotLoggedIn {
		t.Errorf("whoami after logout: err = %v, want errNotLoggedIn", err)
	}
}

func Test_commandLine_consultationFlow(t *testing.T) {
	cli, out := setup(t)

	// student submits
	mockPassword(t, "S@ndb0x-Stud3nt")
	run(t, cli, "login", "-email", "student@medhistory.local")

	out.Reset()
	run(t, cli, "doctors")
	if !strings.Contains(out.String(), "doctor@medhistory.local") {
		t.Fatalf("doctors output missing seeded doctor: %q", out.String())
	}

	out.Reset()
	run(t, cli, "submit",
		"-doctor", "2",
		"-patient", "Juan Perez",
		"-symptoms", "persistent cough",
		"-diagnosis", "bronchitis",
		"-treatment", "rest and fluids",
	)
	if !strings.Contains(out.String(), "consultation submitted:") {
		t.Fatalf("unexpected submit output: %q", out.String())
	}
	docID := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(out.String()), "consultation submitted:"))

	out.Reset()
	run(t, cli, "mydocs")
	if !strings.Contains(out.String(), "Juan Perez") || !strings.Contains(out.String(), "pending: 1") {
		t.Errorf("unexpected mydocs output: %q", out.String())
	}

	// doctor grades
	mockPassword(t, "S@ndb0x-D0ct0r")
	run(t, cli, "login", "-email", "doctor@medhistory.local")

	out.Reset()
	run(t, cli, "inbox", "-status", "pending")
	if !strings.Contains(out.String(), docID) || !strings.Contains(out.String(), "Alta") {
		t.Errorf("unexpected inbox output: %q", out.String())
	}

	run(t, cli, "grade", "-id", docID, "-grade", "4", "-feedback", "solid workup")

	out.Reset()
	run(t, cli, "inbox", "-status", "evaluated")
	if !strings.Contains(out.String(), docID) || !strings.Contains(out.String(), "evaluated: 1") {
		t.Errorf("unexpected inbox output after grading: %q", out.String())
	}

	// student sees the grade and the notification
	mockPassword(t, "S@ndb0x-Stud3nt")
	run(t, cli, "login", "-email", "student@medhistory.local")

	out.Reset()
	run(t, cli, "mydocs")
	if !strings.Contains(out.String(), "4.0") {
		t.Errorf("mydocs missing average grade: %q", out.String())
	}

	out.Reset()
	run(t, cli, "notifications")
	if !strings.Contains(out.String(), "1 unread") {
		t.Errorf("unexpected notifications output: %q", out.String())
	}
}

func Test_commandLine_userAdmin(t *testing.T) {
	cli, out := setup(t)

	mockPassword(t, "S@ndb0x-Adm1n")
	run(t, cli, "login", "-email", "admin@medhistory.local")

	mockPassword(t, "C0mpl3x&Secret")
	out.Reset()
	run(t, cli, "adduser", "-name", "Nueva Doctora", "-email", "nueva@medhistory.local", "-role", "doctor")
	if !strings.Contains(out.String(), "user created:") {
		t.Fatalf("unexpected adduser output: %q", out.String())
	}

	out.Reset()
	run(t, cli, "users")
	if !strings.Contains(out.String(), "nueva@medhistory.local") {
		t.Errorf("users output missing created account: %q", out.String())
	}

	// the created account got ID 4 (3 seeded before it)
	run(t, cli, "deluser", "-id", strconv.Itoa(4))
	out.Reset()
	run(t, cli, "users")
	if strings.Contains(out.String(), "nueva@medhistory.local") {
		t.Errorf("users output still lists deleted account: %q", out.String())
	}
}
