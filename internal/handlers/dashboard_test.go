package handlers

import (
	"errors"
	"net/http"
	"testing"

	"storedash-be/internal/models"
	"storedash-be/internal/processor"
	"storedash-be/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboards(t *testing.T) {
	manager := &models.User{Email: "m@store.com", Role: models.RoleManager}
	s := newTestServer(manager)
	token := s.tokenFor(t, manager)
	s.dashboard.lb = &models.Leaderboards{
		Sales:  []models.SalesRecord{{Name: "Bob Jones", Sales: 20}},
		BDC:    []models.BdcRecord{},
		Period: "2025-02",
		Source: models.SourceLive,
	}

	t.Run("explicit period", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodGet, "/api/leaderboards?period=2025-02", nil), token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2025-02", s.dashboard.lastPeriod)
		lb := decode[models.Leaderboards](t, w)
		assert.Equal(t, "Bob Jones", lb.Sales[0].Name)
		assert.Equal(t, models.SourceLive, lb.Source)
	})

	t.Run("defaults to current period", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodGet, "/api/leaderboards", nil), token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, processor.CurrentPeriod(), s.dashboard.lastPeriod)
	})

	t.Run("bad period", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodGet, "/api/leaderboards?period=2025-13", nil), token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodGet, "/api/leaderboards", nil), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPersonDetailsAccess(t *testing.T) {
	rep := &models.User{Email: "rep@store.com", Role: models.RoleUser, LinkedName: "Bob Jones"}
	unlinked := &models.User{Email: "new@store.com", Role: models.RoleUser}
	manager := &models.User{Email: "m@store.com", Role: models.RoleManager}
	s := newTestServer(rep, unlinked, manager)
	s.dashboard.view = &models.PersonView{Block: models.PersonBlock{Name: "Bob Jones", CallsMTD: 300}, Source: models.SourceSnapshot}

	tests := []struct {
		name string
		user *models.User
		path string
		want int
	}{
		{"own details", rep, "/api/people/bob%20jones/details", http.StatusOK},
		{"someone else", rep, "/api/people/Alice%20Smith/details", http.StatusForbidden},
		{"no linked name", unlinked, "/api/people/Bob%20Jones/details", http.StatusForbidden},
		{"manager sees all", manager, "/api/people/Alice%20Smith/details", http.StatusOK},
		{"call sheets checked too", rep, "/api/people/Alice%20Smith/call-sheets", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(jsonRequest(t, http.MethodGet, tt.path, nil), s.tokenFor(t, tt.user))
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}

	w := s.do(jsonRequest(t, http.MethodGet, "/api/people/bob%20jones/details?period=2025-03", nil), s.tokenFor(t, rep))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob jones", s.dashboard.lastName)
	view := decode[models.PersonView](t, w)
	assert.Equal(t, 300, view.Block.CallsMTD)
	assert.Equal(t, models.SourceSnapshot, view.Source)
}

func TestPersonDetailsNotFound(t *testing.T) {
	admin := &models.User{Email: "a@store.com", Role: models.RoleAdmin}
	s := newTestServer(admin)
	s.dashboard.err = services.ErrPersonNotFound

	w := s.do(jsonRequest(t, http.MethodGet, "/api/people/Nobody/details", nil), s.tokenFor(t, admin))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Person details not found", decode[models.ErrorResponse](t, w).Message)
}

func TestCallSheets(t *testing.T) {
	admin := &models.User{Email: "a@store.com", Role: models.RoleAdmin}
	s := newTestServer(admin)
	s.dashboard.rows = []models.CallSheetRow{}

	w := s.do(jsonRequest(t, http.MethodGet, "/api/people/Bob%20Jones/call-sheets", nil), s.tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	s.dashboard.err = errors.New("select rejected")
	w = s.do(jsonRequest(t, http.MethodGet, "/api/people/Bob%20Jones/call-sheets", nil), s.tokenFor(t, admin))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "select rejected")
}

func TestSearchPeople(t *testing.T) {
	rep := &models.User{Email: "rep@store.com", Role: models.RoleUser}
	s := newTestServer(rep)
	token := s.tokenFor(t, rep)
	s.dashboard.matches = []models.PersonMatch{{Name: "Bob Jones", Type: models.PersonTypeSales, Score: 10}}

	w := s.do(jsonRequest(t, http.MethodGet, "/api/people/search?q=bob", nil), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, s.dashboard.lastLimit)
	assert.Len(t, decode[[]models.PersonMatch](t, w), 1)

	w = s.do(jsonRequest(t, http.MethodGet, "/api/people/search?q=bob&limit=0", nil), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
