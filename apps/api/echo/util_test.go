package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/classroom"
	"github.com/trezcool/edumind/core/session"
	emailsvc "github.com/trezcool/edumind/services/email"
	logsvc "github.com/trezcool/edumind/services/logger"
	inmemdb "github.com/trezcool/edumind/storage/database/inmem"
)

var (
	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errInvalidToken = httpErr{Error: "invalid or expired jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
	errClosed       = httpErr{Error: "session not found"}
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

type testApp struct {
	server   *Server
	conf     *core.Config
	clock    clockwork.FakeClock
	sessions *session.Service
	mailSvc  *emailsvc.ConsoleServiceMock
}

func newTestApp(t *testing.T, configure ...func(conf *core.Config)) *testApp {
	t.Helper()
	conf := core.NewTestConfig()
	conf.ClassroomEmail = "Grade 11-A <grade11a@school.test>"
	for _, fn := range configure {
		fn(conf)
	}

	logger := logsvc.NewTestLogger(conf)
	clock := clockwork.NewFakeClock()
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	sessions := session.NewService(conf, clock, inmemdb.NewSessionRepository(inmemdb.Open()), mailSvc, logger)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	classroom.InitValidators(validate, translator)

	server := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		SessionSvc: sessions,
		Validate:   validate,
		Translator: translator,
	})
	return &testApp{server: server, conf: conf, clock: clock, sessions: sessions, mailSvc: mailSvc}
}

func (app *testApp) do(method, path, token string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(method, path, token, data...)
	app.server.ServeHTTP(rec, req)
	return rec
}

// openSession opens a session for role and returns its token and the session itself.
func (app *testApp) openSession(t *testing.T, role string) (string, *session.Session) {
	t.Helper()
	rec := app.do(http.MethodPost, "/v1/sessions", "", marchallObj(t, OpenSessionRequest{Role: role}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("openSession(%s) code = %d; body %s", role, rec.Code, rec.Body.String())
	}
	var res OpenSessionResponse
	unmarshal(t, rec, &res)
	sess, err := app.sessions.Get(res.Session.ID)
	if err != nil {
		t.Fatalf("openSession(%s): %v", role, err)
	}
	return res.Token, sess
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func wait(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the workflow")
	}
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("unmarshal(%s): %v", rec.Body.String(), err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if _, ok := j1.([]interface{}); ok {
		return assert.ElementsMatch(t, j1, j2), nil
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app *testApp, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt.method, tt.path, tt.token, tt.body))
		})
	}
}
