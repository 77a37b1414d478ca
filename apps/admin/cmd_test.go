package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/dashboard"
	emailsvc "github.com/academia/dashboard/services/email"
	inmemdb "github.com/academia/dashboard/storage/inmem"
	testutil "github.com/academia/dashboard/tests"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func setup(t *testing.T) (*commandLine, *inmemdb.DB, testutil.Dataset, *emailsvc.ConsoleService, *bytes.Buffer) {
	db := inmemdb.Open(fixedNow)
	d := testutil.Seed(t, db)

	validate, translator := core.NewValidator()
	academic.InitValidators(validate, translator)

	mailSvc := emailsvc.NewConsoleServiceMock(&core.Config{AppName: "Gestión Académica"})
	out := new(bytes.Buffer)
	cli := &commandLine{
		app: dashboard.New(dashboard.Deps{
			Academic: db,
			Reports:  db,
			Exporter: db,
			Validate: validate,
			Log:      nopLogger{},
			Now:      fixedNow,
		}),
		mailSvc: mailSvc,
		out:     out,
		now:     fixedNow,
	}
	return cli, db, d, mailSvc, out
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrStr)
			default:
				require.NoError(t, err)
			}
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_reports(t *testing.T) {
	cli, _, _, _, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: "Usage:"},
		{name: "reports", args: []string{"reports"}, wantOut: "Física (FIS101)"},
		{name: "reports cached", args: []string{"reports"}, wantOut: "cache: true"},
		{name: "summary", args: []string{"summary"}, wantOut: "3.33"},
	})
}

func Test_commandLine_delete(t *testing.T) {
	cli, db, d, _, out := setup(t)

	var answer string
	terminal := true
	origIsTerminal, origReadLine := isTerminalFunc, readLineFunc
	defer func() { isTerminalFunc, readLineFunc = origIsTerminal, origReadLine }()
	isTerminalFunc = func(int) bool { return terminal }
	readLineFunc = func() (string, error) { return answer + "\n", nil }

	luis := strconv.Itoa(d.Luis.ID)
	runCLITests(t, cli, out, []cliTest{
		{name: "no args", args: []string{"delete"}, wantErr: errHelp},
		{name: "no id", args: []string{"delete", "-kind", "student"}, wantErr: errHelp},
		{name: "unknown kind", args: []string{"delete", "-kind", "teacher", "-id", "1"}, wantErrStr: `"teacher": unknown kind`},
		{name: "answer no", args: []string{"delete", "-kind", "student", "-id", luis}, wantErr: academic.ErrNotConfirmed, wantOut: "¿Eliminar este estudiante? [s/N]:"},
	})

	_, err := db.GetStudent(context.Background(), d.Luis.ID)
	require.NoError(t, err, "an unconfirmed delete keeps the student")

	answer = "s"
	runCLITests(t, cli, out, []cliTest{
		{name: "answer yes", args: []string{"delete", "-kind", "student", "-id", luis}, wantOut: academic.MsgStudentDeleted},
		{name: "already deleted", args: []string{"delete", "-kind", "student", "-id", luis}, wantErr: academic.ErrNotFound},
	})

	terminal = false
	runCLITests(t, cli, out, []cliTest{
		{name: "no terminal", args: []string{"delete", "-kind", "activity", "-id", strconv.Itoa(d.Lab.ID)}, wantErr: academic.ErrNotConfirmed},
		{name: "no terminal with -yes", args: []string{"delete", "-kind", "activity", "-id", strconv.Itoa(d.Lab.ID), "-yes"}, wantOut: academic.MsgActivityDeleted},
		{name: "course", args: []string{"delete", "-kind", "course", "-id", strconv.Itoa(d.Archived.ID), "-yes"}, wantOut: academic.MsgCourseDeleted},
	})
}

func Test_commandLine_digest(t *testing.T) {
	cli, _, _, mailSvc, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "no recipients", args: []string{"digest"}, wantErr: errHelp},
		{name: "bad address", args: []string{"digest", "-to", "lol"}, wantErrStr: "mail:"},
		{name: "send", args: []string{"digest", "-to", "Dirección <direccion@academia.test>, rectoria@academia.test"}, wantOut: "digest sent to 2 recipient(s)"},
		{name: "no attachment", args: []string{"digest", "-attach=false", "-to", "rectoria@academia.test"}, wantOut: "digest sent to 1 recipient(s)"},
	})

	sent := mailSvc.Sent()
	require.Len(t, sent, 2)
	assert.Len(t, sent[0].To, 2)
	assert.Equal(t, "Resumen académico 15/03/2024 09:30", sent[0].Subject)
	assert.Contains(t, sent[0].TextContent, "1. Ana (Física) 4.5")

	require.Len(t, sent[0].Attachments, 1)
	at := sent[0].Attachments[0]
	assert.Equal(t, "reporte_reporte_completo_20240315_093000.csv", at.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", at.ContentType)
	assert.NotZero(t, at.Content.Len())

	assert.False(t, sent[1].HasAttachments())
}

func Test_commandLine_export(t *testing.T) {
	cli, _, _, _, out := setup(t)
	dir := t.TempDir()

	runCLITests(t, cli, out, []cliTest{
		{name: "default kind", args: []string{"export", "-dir", dir}, wantOut: "reporte_estudiantes_20240315_093000.csv"},
		{name: "courses", args: []string{"export", "-tipo", "cursos", "-dir", dir}, wantOut: "reporte_cursos_20240315_093000.csv"},
	})

	body, err := os.ReadFile(filepath.Join(dir, "reporte_cursos_20240315_093000.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "FIS101")
}
