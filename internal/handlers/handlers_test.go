package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storedash-be/config"
	"storedash-be/internal/middleware"
	"storedash-be/internal/models"
	"storedash-be/internal/processor"
	"storedash-be/internal/services"
	"storedash-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret",
		JWTAccessExpiration:  time.Minute,
		JWTRefreshExpiration: time.Hour,
		FrontendURL:          "http://localhost:3000",
		MaxUploadBytes:       1 << 20,
		UploadTimeout:        time.Minute,
		SuperadminEmail:      "owner@store.com",
	}
}

// ========== fakes ==========

type memUsers struct {
	byID map[string]*models.User
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{byID: map[string]*models.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.byID[u.ID.Hex()] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	m.byID[u.ID.Hex()] = u
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.byID {
		if u.Email == models.NormalizeEmail(email) {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memUsers) List(context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memUsers) UpdateRole(_ context.Context, id, role string) error {
	m.byID[id].Role = role
	return nil
}

func (m *memUsers) UpdateRefreshToken(_ context.Context, id, token string) error {
	m.byID[id].RefreshToken = token
	return nil
}

func (m *memUsers) AddFCMToken(_ context.Context, id, token string) error {
	m.byID[id].FCMTokens = append(m.byID[id].FCMTokens, token)
	return nil
}

func (m *memUsers) RemoveFCMTokens(context.Context, string, []string) error { return nil }

type fakeDashboard struct {
	lb         *models.Leaderboards
	view       *models.PersonView
	rows       []models.CallSheetRow
	matches    []models.PersonMatch
	err        error
	lastPeriod string
	lastName   string
	lastLimit  int
}

func (f *fakeDashboard) GetLeaderboards(_ context.Context, period string) (*models.Leaderboards, error) {
	f.lastPeriod = period
	return f.lb, f.err
}

func (f *fakeDashboard) GetPersonDetails(_ context.Context, name, period string) (*models.PersonView, error) {
	f.lastName, f.lastPeriod = name, period
	return f.view, f.err
}

func (f *fakeDashboard) GetCallSheets(_ context.Context, name, period string) ([]models.CallSheetRow, error) {
	f.lastName, f.lastPeriod = name, period
	return f.rows, f.err
}

func (f *fakeDashboard) SearchPeople(_ context.Context, _, period string, limit int) ([]models.PersonMatch, error) {
	f.lastPeriod, f.lastLimit = period, limit
	return f.matches, f.err
}

type fakeUploader struct {
	err     error
	got     services.UploadRequest
	gotWB   *processor.Workbook
	status  models.UploadStatus
	resetBy string
	files   []*models.UploadedFile
}

func (f *fakeUploader) Preview(_, filename string, wb *processor.Workbook) (*models.UploadPreview, error) {
	f.gotWB = wb
	if f.err != nil {
		return nil, f.err
	}
	return &models.UploadPreview{Filename: filename, SuggestedMapping: processor.SuggestMapping(wb)}, nil
}

func (f *fakeUploader) Process(_ context.Context, req services.UploadRequest) (*models.UploadResult, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.UploadResult{FileID: "f1", Period: "2025-03", SalesCount: 2}, nil
}

func (f *fakeUploader) Status() models.UploadStatus { return f.status }

func (f *fakeUploader) Reset(role string) error {
	f.resetBy = role
	f.status = models.UploadStatus{}
	return nil
}

func (f *fakeUploader) GetUpload(_ context.Context, _, fileID string) (*models.UploadedFile, error) {
	for _, file := range f.files {
		if file.ID.Hex() == fileID {
			return file, nil
		}
	}
	return nil, services.ErrUploadNotFound
}

type fakeChat struct {
	sender *models.User
	req    models.PostChatMessageRequest
}

func (f *fakeChat) PostMessage(_ context.Context, sender *models.User, req models.PostChatMessageRequest) (*models.ChatMessage, error) {
	f.sender, f.req = sender, req
	return &models.ChatMessage{SenderUID: sender.ID.Hex(), Text: req.Text, Channel: req.Channel}, nil
}

// ========== harness ==========

type testServer struct {
	cfg       *config.Config
	router    *gin.Engine
	users     *memUsers
	dashboard *fakeDashboard
	uploader  *fakeUploader
	chat      *fakeChat
}

func newTestServer(users ...*models.User) *testServer {
	s := &testServer{
		cfg:       testConfig(),
		users:     newMemUsers(users...),
		dashboard: &fakeDashboard{},
		uploader:  &fakeUploader{},
		chat:      &fakeChat{},
	}
	s.router = gin.New()
	s.router.Use(middleware.RequestID())
	RegisterRoutes(s.router, s.cfg, Handlers{
		Auth:      NewAuthHandler(s.cfg, s.users),
		Dashboard: NewDashboardHandler(s.dashboard),
		Upload:    NewUploadHandler(s.cfg, s.uploader),
		Users:     NewUserHandler(services.NewUserService(s.users, s.cfg.SuperadminEmail)),
		Chat:      NewChatHandler(s.chat, s.users),
	})
	return s
}

func (s *testServer) tokenFor(t *testing.T, u *models.User) string {
	t.Helper()
	tok, err := utils.GenerateAccessToken(utils.TokenSubject{
		UserID:     u.ID.Hex(),
		Email:      u.Email,
		Role:       u.Role,
		LinkedName: u.LinkedName,
	}, s.cfg.JWTSecret, time.Minute)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, path, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
