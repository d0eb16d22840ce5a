package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bill-printing-app/config"
	"github.com/yeremiapane/bill-printing-app/database"
	"github.com/yeremiapane/bill-printing-app/kds"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/router"
	"github.com/yeremiapane/bill-printing-app/services"
	"github.com/yeremiapane/bill-printing-app/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminEmail    = "admin@bistro.test"
	adminPassword = "s3cret-pass"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	Router *gin.Engine
	DB     *gorm.DB
	Hub    *kds.Hub
	Config *config.Config
}

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedAdmin(db, adminEmail, adminPassword))
	return db
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupTestDB(t)
	cfg := &config.Config{
		JWTSecret:      "controller-test-secret",
		CORSOrigins:    []string{"*"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		RestaurantName: "Test Bistro",
	}
	hub := kds.NewHub()
	orders := services.NewOrderService(database.NewCatalogStore(db), database.NewOrderStore(db), services.Publishers{hub})

	return &testApp{
		Router: router.SetupRouter(router.Deps{Config: cfg, DB: db, Orders: orders, Hub: hub}),
		DB:     db,
		Hub:    hub,
		Config: cfg,
	}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

// adminToken signs a token for the seeded admin account.
func (a *testApp) adminToken(t *testing.T) string {
	t.Helper()
	var admin models.User
	require.NoError(t, a.DB.Where("email = ?", adminEmail).First(&admin).Error)
	token, err := utils.GenerateToken([]byte(a.Config.JWTSecret), admin.ID, admin.Role)
	require.NoError(t, err)
	return token
}

func (a *testApp) seedMenuItem(t *testing.T, name string, price, gst float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Name: name, Category: "Mains", Price: price, IsAvailable: true, GSTRate: gst}
	require.NoError(t, a.DB.Create(&item).Error)
	return item
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}
	return env
}

type createdOrder struct {
	ID     string        `json:"id"`
	Totals models.Totals `json:"totals"`
}

func (a *testApp) createOrder(t *testing.T, body interface{}) createdOrder {
	t.Helper()
	w := a.do(t, http.MethodPost, "/orders", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out createdOrder
	decodeEnvelope(t, w, &out)
	return out
}

// rebuild wires a fresh router over the same database after a config change.
func rebuild(t *testing.T, a *testApp) *testApp {
	t.Helper()
	orders := services.NewOrderService(database.NewCatalogStore(a.DB), database.NewOrderStore(a.DB), services.Publishers{a.Hub})
	a.Router = router.SetupRouter(router.Deps{Config: a.Config, DB: a.DB, Orders: orders, Hub: a.Hub})
	return a
}
