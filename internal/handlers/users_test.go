package handlers

import (
	"net/http"
	"testing"

	"storedash-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserManagement(t *testing.T) {
	admin := &models.User{Email: "admin@store.com", Role: models.RoleAdmin}
	owner := &models.User{Email: "owner@store.com", Role: models.RoleManager}
	rep := &models.User{Email: "rep@store.com", Role: models.RoleUser}
	s := newTestServer(admin, owner, rep)
	adminToken := s.tokenFor(t, admin)

	t.Run("non-admin cannot list", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodGet, "/api/users", nil), s.tokenFor(t, rep))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodGet, "/api/users", nil), adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]models.User](t, w), 3)
	})

	t.Run("create", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodPost, "/api/users", models.CreateUserRequest{
			Email:      "new@store.com",
			Password:   "secret1",
			Role:       models.RoleManager,
			LinkedName: "Cara Lee",
		}), adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[models.User](t, w)
		assert.Equal(t, models.RoleManager, created.Role)
		assert.NotContains(t, w.Body.String(), "secret1")
	})

	t.Run("create duplicate", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodPost, "/api/users", models.CreateUserRequest{Email: "rep@store.com", Password: "secret1"}), adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("create superadmin refused", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodPost, "/api/users", models.CreateUserRequest{Email: "x@store.com", Password: "secret1", Role: models.RoleSuperadmin}), adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("create bad role", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodPost, "/api/users", map[string]string{"email": "y@store.com", "password": "secret1", "role": "owner"}), adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete protected", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodDelete, "/api/users/"+admin.ID.Hex(), nil), adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		w = s.do(jsonRequest(t, http.MethodDelete, "/api/users/"+owner.ID.Hex(), nil), adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete unknown", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodDelete, "/api/users/not-an-id", nil), adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := s.do(jsonRequest(t, http.MethodDelete, "/api/users/"+rep.ID.Hex(), nil), adminToken)
		assert.Equal(t, http.StatusNoContent, w.Code)
		_, exists := s.users.byID[rep.ID.Hex()]
		assert.False(t, exists)
	})
}

func TestRegisterPushToken(t *testing.T) {
	rep := &models.User{Email: "rep@store.com", Role: models.RoleUser}
	s := newTestServer(rep)

	w := s.do(jsonRequest(t, http.MethodPost, "/api/me/push-tokens", map[string]string{}), s.tokenFor(t, rep))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(jsonRequest(t, http.MethodPost, "/api/me/push-tokens", models.RegisterPushTokenRequest{Token: "tok-1"}), s.tokenFor(t, rep))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"tok-1"}, rep.FCMTokens)
}

func TestPostChatMessage(t *testing.T) {
	rep := &models.User{Email: "rep@store.com", Name: "jane doe", Role: models.RoleUser}
	s := newTestServer(rep)

	w := s.do(jsonRequest(t, http.MethodPost, "/api/chat/messages", map[string]string{}), s.tokenFor(t, rep))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(jsonRequest(t, http.MethodPost, "/api/chat/messages", models.PostChatMessageRequest{
		Text:     "nice work @bob",
		Mentions: []string{"bob-id"},
	}), s.tokenFor(t, rep))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, rep, s.chat.sender)
	assert.Equal(t, "general", s.chat.req.Channel)
	assert.Equal(t, []string{"bob-id"}, s.chat.req.Mentions)
}
