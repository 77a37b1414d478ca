package emailsvc

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/report"
)

var testConf = &core.Config{
	AppName: "Gestión Académica",
	Mail: core.MailConfig{
		DefaultFromEmail: mail.Address{Name: "Gestión Académica", Address: "noreply@academia.test"},
		SendgridApiKey:   "SG.test",
	},
}

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Fatal(string, ...interface{}) {}
func (l *recordingLogger) Error(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func digestMessage(to ...mail.Address) *core.EmailMessage {
	b := report.Bundle{
		Enrollment:  []report.EnrollmentCount{{Course: "Física", Count: 2}},
		Outcomes:    []report.OutcomeCount{{Outcome: report.OutcomesApproved, Count: 1}},
		CourseStats: []report.CourseStats{{ID: 1, Name: "Física", Code: "FIS101", Students: 2, Average: academic.NewScore(3.5)}},
		TopStudents: []report.TopStudent{{Student: "Ana <b>", Course: "Física", Average: academic.NewScore(4.5)}},
	}
	s := report.NewSummaryView(report.Summary{ActiveCourses: null.IntFrom(1), TotalStudents: null.IntFrom(2)})
	return report.NewDigest(b, s, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)).Message(to...)
}

func TestConsoleService_SendMessages(t *testing.T) {
	svc := NewConsoleServiceMock(testConf)

	svc.SendMessages(
		digestMessage(mail.Address{Name: "Dirección", Address: "direccion@academia.test"}),
		digestMessage(), // no recipients: skipped
	)

	sent := svc.Sent()
	require.Len(t, sent, 1)
	msg := sent[0]
	assert.Equal(t, "Resumen académico 15/03/2024 09:30", msg.Subject)
	assert.Contains(t, msg.TextContent, "Cursos activos:    1")
	assert.Contains(t, msg.TextContent, "1. Ana <b> (Física) 4.5")
	assert.Contains(t, msg.TextContent, "Física (FIS101) - 2 estudiantes - 3.50")
	assert.Contains(t, msg.HTMLContent, "Ana &lt;b&gt;")
	assert.NotContains(t, msg.HTMLContent, "Ana <b>")
}

func TestConsoleService_Format(t *testing.T) {
	svc := NewConsoleServiceMock(testConf)
	msg := core.EmailMessage{
		To:          []mail.Address{{Address: "a@academia.test"}},
		Subject:     "Hola",
		TextContent: "texto",
	}
	require.NoError(t, msg.Attach(bytesReader("a,b\n1,2\n"), "reporte.csv", "text/csv"))

	body, err := svc.format(msg)
	require.NoError(t, err)
	assert.Contains(t, body, "Subject: [Gestión Académica] Hola")
	assert.Contains(t, body, "multipart/mixed")
	assert.Contains(t, body, "filename=reporte.csv")
	assert.Contains(t, body, "texto")
}

func TestSendgridService_SendMessages(t *testing.T) {
	var (
		mu       sync.Mutex
		payloads []map[string]interface{}
		auth     []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var p map[string]interface{}
		_ = json.Unmarshal(body, &p)

		mu.Lock()
		payloads = append(payloads, p)
		auth = append(auth, r.Header.Get("Authorization"))
		mu.Unlock()

		if r.URL.Path != endpoint {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	logger := &recordingLogger{}
	svc := NewSendgridService(testConf, logger)
	svc.host = srv.URL

	svc.SendMessages(digestMessage(mail.Address{Name: "Dirección", Address: "direccion@academia.test"}))

	require.Len(t, payloads, 1)
	assert.Empty(t, logger.errors)
	assert.Equal(t, []string{"Bearer SG.test"}, auth)

	from := payloads[0]["from"].(map[string]interface{})
	assert.Equal(t, "noreply@academia.test", from["email"])
	pers := payloads[0]["personalizations"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "[Gestión Académica] Resumen académico 15/03/2024 09:30", pers["subject"])
	assert.Len(t, payloads[0]["content"], 2)
}

func TestSendgridService_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"errors":[{"message":"invalid key"}]}`)
	}))
	defer srv.Close()

	logger := &recordingLogger{}
	svc := NewSendgridService(testConf, logger)
	svc.host = srv.URL

	svc.SendMessages(digestMessage(mail.Address{Address: "direccion@academia.test"}))

	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0], "status: 401")
}

func bytesReader(s string) io.Reader { return strings.NewReader(s) }
