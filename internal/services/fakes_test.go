package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"storedash-be/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memPerformanceStore keeps records in memory and records the order of writes.
type memPerformanceStore struct {
	mu      sync.Mutex
	sales   []models.SalesRecord
	bdc     []models.BdcRecord
	details []models.PersonDetail
	calls   []models.CallSheetRow
	writes  []string
	failOn  string
	readErr error
}

func (m *memPerformanceStore) record(op string) error {
	m.writes = append(m.writes, op)
	if m.failOn == op {
		return errors.New("write rejected")
	}
	return nil
}

func (m *memPerformanceStore) SaveSales(_ context.Context, _, period string, records []models.SalesRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("sales"); err != nil {
		return err
	}
	for _, r := range records {
		r.Period = period
		m.sales = append(m.sales, r)
	}
	return nil
}

func (m *memPerformanceStore) SaveBDC(_ context.Context, _, period string, records []models.BdcRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("bdc"); err != nil {
		return err
	}
	for _, r := range records {
		r.Period = period
		m.bdc = append(m.bdc, r)
	}
	return nil
}

func (m *memPerformanceStore) SavePersonDetail(_ context.Context, _, period string, detail models.PersonDetail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("details:" + detail.Name); err != nil {
		return err
	}
	detail.Period = period
	m.details = append(m.details, detail)
	return nil
}

func (m *memPerformanceStore) SaveCallSheets(_ context.Context, _, period, assignedTo string, rows []models.CallSheetRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("calls:" + assignedTo); err != nil {
		return err
	}
	for _, r := range rows {
		r.Period = period
		r.AssignedTo = assignedTo
		m.calls = append(m.calls, r)
	}
	return nil
}

func (m *memPerformanceStore) GetLeaderboards(_ context.Context, period string) (*models.Leaderboards, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	lb := &models.Leaderboards{Sales: []models.SalesRecord{}, BDC: []models.BdcRecord{}, Period: period}
	for _, r := range m.sales {
		if r.Period == period {
			lb.Sales = append(lb.Sales, r)
		}
	}
	for _, r := range m.bdc {
		if r.Period == period {
			lb.BDC = append(lb.BDC, r)
		}
	}
	sort.SliceStable(lb.Sales, func(i, j int) bool { return lb.Sales[i].Sales > lb.Sales[j].Sales })
	sort.SliceStable(lb.BDC, func(i, j int) bool { return lb.BDC[i].Shows > lb.BDC[j].Shows })
	return lb, nil
}

func (m *memPerformanceStore) GetPersonDetail(_ context.Context, name, period string) (*models.PersonDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.details) - 1; i >= 0; i-- {
		d := m.details[i]
		if d.Period == period && models.NameKey(d.Name) == models.NameKey(name) {
			return &d, nil
		}
	}
	return nil, nil
}

func (m *memPerformanceStore) GetCallSheets(_ context.Context, name, period string) ([]models.CallSheetRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []models.CallSheetRow{}
	for _, r := range m.calls {
		if r.Period == period && models.NameKey(r.AssignedTo) == models.NameKey(name) {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

type memUploadStore struct {
	mu       sync.Mutex
	files    []*models.UploadedFile
	statuses map[string]string
}

func newMemUploadStore() *memUploadStore {
	return &memUploadStore{statuses: map[string]string{}}
}

func (m *memUploadStore) Create(_ context.Context, file *models.UploadedFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	file.ID = primitive.NewObjectID()
	file.ProcessingStatus = models.UploadStatusProcessing
	m.files = append(m.files, file)
	m.statuses[file.ID.Hex()] = file.ProcessingStatus
	return nil
}

func (m *memUploadStore) UpdateStatus(_ context.Context, fileID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.statuses[fileID]; !ok {
		return mongo.ErrNoDocuments
	}
	m.statuses[fileID] = status
	return nil
}

func (m *memUploadStore) FindByID(_ context.Context, fileID string) (*models.UploadedFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := primitive.ObjectIDFromHex(fileID); err != nil {
		return nil, err
	}
	for _, f := range m.files {
		if f.ID.Hex() == fileID {
			file := *f
			file.ProcessingStatus = m.statuses[fileID]
			return &file, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeSnapshotStore struct {
	person    *models.Snapshot
	dashboard *models.Snapshot
	err       error
	lookups   []string
}

func (f *fakeSnapshotStore) GetPersonSnapshot(_ context.Context, name string) (*models.Snapshot, error) {
	f.lookups = append(f.lookups, models.NameKey(name))
	return f.person, f.err
}

func (f *fakeSnapshotStore) GetDashboardSnapshot(_ context.Context) (*models.Snapshot, error) {
	f.lookups = append(f.lookups, "leaderboards")
	return f.dashboard, f.err
}

type memUserStore struct {
	mu     sync.Mutex
	users  map[string]*models.User
	pruned map[string][]string
}

func newMemUserStore(users ...*models.User) *memUserStore {
	m := &memUserStore{users: map[string]*models.User{}, pruned: map[string][]string{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.users[u.ID.Hex()] = u
	}
	return m
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = primitive.NewObjectID()
	user.Email = models.NormalizeEmail(user.Email)
	user.CreatedAt = time.Now()
	m.users[user.ID.Hex()] = user
	return nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == models.NormalizeEmail(email) {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memUserStore) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *memUserStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) UpdateRole(_ context.Context, userID, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID].Role = role
	return nil
}

func (m *memUserStore) UpdateRefreshToken(_ context.Context, userID, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID].RefreshToken = refreshToken
	return nil
}

func (m *memUserStore) AddFCMToken(_ context.Context, userID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[userID]
	for _, t := range u.FCMTokens {
		if t == token {
			return nil
		}
	}
	u.FCMTokens = append(u.FCMTokens, token)
	return nil
}

func (m *memUserStore) RemoveFCMTokens(_ context.Context, userID string, tokens []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruned[userID] = append(m.pruned[userID], tokens...)
	drop := map[string]bool{}
	for _, t := range tokens {
		drop[t] = true
	}
	u := m.users[userID]
	kept := u.FCMTokens[:0]
	for _, t := range u.FCMTokens {
		if !drop[t] {
			kept = append(kept, t)
		}
	}
	u.FCMTokens = kept
	return nil
}

type memChatStore struct {
	messages []*models.ChatMessage
}

func (m *memChatStore) Create(_ context.Context, msg *models.ChatMessage) error {
	msg.ID = primitive.NewObjectID()
	m.messages = append(m.messages, msg)
	return nil
}

type sentPush struct {
	token string
	n     models.PushNotification
}

type fakePusher struct {
	sent    []sentPush
	invalid map[string]bool
}

func (f *fakePusher) Send(_ context.Context, token string, n models.PushNotification) error {
	if f.invalid[token] {
		return ErrInvalidToken
	}
	f.sent = append(f.sent, sentPush{token: token, n: n})
	return nil
}
