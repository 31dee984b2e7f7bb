package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirado/doctors-portal-api/internal/models"
	"github.com/mirado/doctors-portal-api/internal/utils"
)

func TestUpsertUserMintsToken(t *testing.T) {
	f := newFakeStore()
	r := newTestRouter(f)

	body := bytes.NewReader([]byte(`{"name":"Paula"}`))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/p@x.com", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "p@x.com", claims.Email)

	user, ok := f.users["p@x.com"]
	require.True(t, ok)
	require.Equal(t, "Paula", user.Name)
}

func TestUpsertUserUpdatesExisting(t *testing.T) {
	f := newFakeStore()
	f.users["p@x.com"] = models.User{Email: "p@x.com", Name: "Paula", Role: "admin"}
	r := newTestRouter(f)

	body := bytes.NewReader([]byte(`{"name":"Paula B","phone":"555-1234"}`))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/p@x.com", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	user := f.users["p@x.com"]
	require.Equal(t, "Paula B", user.Name)
	require.Equal(t, "555-1234", user.Phone)
	// The profile upsert never touches the role.
	require.Equal(t, "admin", user.Role)
}

func TestListUsers(t *testing.T) {
	f := newFakeStore()
	f.users["a@x.com"] = models.User{Email: "a@x.com"}
	f.users["b@x.com"] = models.User{Email: "b@x.com"}
	r := newTestRouter(f)

	token, err := utils.GenerateToken("a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
}

func TestListUsersRequiresToken(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckAdmin(t *testing.T) {
	f := newFakeStore()
	f.users["boss@x.com"] = models.User{Email: "boss@x.com", Role: "admin"}
	f.users["p@x.com"] = models.User{Email: "p@x.com"}
	r := newTestRouter(f)

	for _, tc := range []struct {
		email string
		admin bool
	}{
		{"boss@x.com", true},
		{"p@x.com", false},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/"+tc.email, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Admin bool `json:"admin"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, tc.admin, resp.Admin)
	}
}

func TestCheckAdminUnknownUserFails(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/nobody@x.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func grantAdmin(t *testing.T, r http.Handler, requesterToken, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/admin/"+target, nil)
	req.Header.Set("Authorization", "Bearer "+requesterToken)
	r.ServeHTTP(w, req)
	return w
}

func TestGrantAdminByAdmin(t *testing.T) {
	f := newFakeStore()
	f.users["boss@x.com"] = models.User{Email: "boss@x.com", Role: "admin"}
	f.users["p@x.com"] = models.User{Email: "p@x.com"}
	r := newTestRouter(f)

	token, err := utils.GenerateToken("boss@x.com")
	require.NoError(t, err)

	w := grantAdmin(t, r, token, "p@x.com")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		MatchedCount int64 `json:"MatchedCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.MatchedCount)
	require.Equal(t, "admin", f.users["p@x.com"].Role)
}

func TestGrantAdminByNonAdminForbidden(t *testing.T) {
	f := newFakeStore()
	f.users["pleb@x.com"] = models.User{Email: "pleb@x.com"}
	f.users["p@x.com"] = models.User{Email: "p@x.com"}
	r := newTestRouter(f)

	token, err := utils.GenerateToken("pleb@x.com")
	require.NoError(t, err)

	w := grantAdmin(t, r, token, "p@x.com")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Empty(t, f.users["p@x.com"].Role)
}

func TestGrantAdminMissingTargetMatchesNothing(t *testing.T) {
	f := newFakeStore()
	f.users["boss@x.com"] = models.User{Email: "boss@x.com", Role: "admin"}
	r := newTestRouter(f)

	token, err := utils.GenerateToken("boss@x.com")
	require.NoError(t, err)

	w := grantAdmin(t, r, token, "ghost@x.com")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		MatchedCount int64 `json:"MatchedCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(0), resp.MatchedCount)
	// No upsert happened.
	_, exists := f.users["ghost@x.com"]
	require.False(t, exists)
}

func TestGrantAdminRequiresToken(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/admin/p@x.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
