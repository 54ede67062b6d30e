package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	storeControllers "github.com/junaidrashid-git/orbit-aether/controllers/store"
	"github.com/junaidrashid-git/orbit-aether/config"
	"github.com/junaidrashid-git/orbit-aether/database"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testConfig(authRequired bool) *config.Config {
	return &config.Config{
		Env: "test",
		JWT: config.JWTConfig{Secret: "test-secret", TTL: time.Hour},
		Orbit: config.OrbitConfig{
			AuthRequired:    authRequired,
			DefaultPassword: "password",
		},
	}
}

func setupOrbit(t *testing.T, authRequired bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenOrbit(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateOrbit(db))
	_, err = database.SeedOrbitAdmin(db, "Admin", "admin@orbit.local", "letmein")
	require.NoError(t, err)

	return NewOrbitRouter(db, testConfig(authRequired), zap.NewNop()), db
}

func setupAether(t *testing.T) (*gin.Engine, *gorm.DB, *storeControllers.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenOrbit(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateAether(db))
	_, err = database.SeedCatalog(db)
	require.NoError(t, err)

	hub := storeControllers.NewHub(zap.NewNop())
	return NewAetherRouter(db, testConfig(false), hub, zap.NewNop()), db, hub
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
