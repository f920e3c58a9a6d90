package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"trailer-rental-api/config"
	"trailer-rental-api/models"
	"trailer-rental-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer builds a router over a fresh database for one test.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// signup registers a user over HTTP and returns its token and id.
func signup(t *testing.T, r *gin.Engine, first, email string) (token, id string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users/signup", "", gin.H{
		"first_name": first,
		"last_name":  "Tester",
		"email":      email,
		"password":   "hunter22",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	return data["token"].(string), user["id"].(string)
}

// promoteToAdmin flips a user's role directly in the store; the token
// stays valid because role is resolved per request, not from claims.
func promoteToAdmin(t *testing.T, id string) {
	t.Helper()
	if err := config.DB.Model(&models.User{}).Where("id = ?", id).
		Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("promote user %s: %v", id, err)
	}
}

func createTrailer(t *testing.T, r *gin.Engine, token, name string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/trailers", token, gin.H{
		"name": name,
		"size": "6x4",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create trailer %s: status %d, body %s", name, w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}

func createReservation(t *testing.T, r *gin.Engine, token, trailerID, start, end string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/reservations", token, gin.H{
		"trailer_id": trailerID,
		"start_date": start,
		"end_date":   end,
		"total_cost": 150,
	})
	if w.Code != http.StatusCreated {
		return "", w
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["id"].(string), w
}
