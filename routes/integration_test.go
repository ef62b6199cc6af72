package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nwfth/forms-go/config"
	"github.com/nwfth/forms-go/db"
	"github.com/nwfth/forms-go/internal/testutils"
	"github.com/nwfth/forms-go/middleware"
	"github.com/nwfth/forms-go/models"
	"github.com/nwfth/forms-go/response"
	"github.com/nwfth/forms-go/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	config.JwtSecret = "integration-test-secret"
	middleware.Init()
	db.InitWithGormDB(gormDB)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router)

	code := m.Run()
	os.Exit(code)
}

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, expectStatus, w.Code, "unexpected status for %s %s: %s", method, path, w.Body.String())
	return w
}

func registerAndLogin(t *testing.T, email, name string) string {
	doRequest(t, "POST", "/api/register", "", map[string]string{
		"email":    email,
		"password": "secret123",
		"name":     name,
	}, http.StatusCreated)

	resp := doRequest(t, "POST", "/api/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	}, http.StatusOK)

	var result response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func createForm(t *testing.T, token string, body map[string]interface{}) uint {
	resp := doRequest(t, "POST", "/api/forms", token, body, http.StatusCreated)

	var result response.CreateFormResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotZero(t, result.InsertedID)
	return result.InsertedID
}

func TestHealthz(t *testing.T) {
	doRequest(t, "GET", "/healthz", "", nil, http.StatusOK)
}

func TestFormsRequireAuth(t *testing.T) {
	doRequest(t, "GET", "/api/forms", "", nil, http.StatusUnauthorized)
	doRequest(t, "GET", "/api/forms", "not-a-valid-token", nil, http.StatusForbidden)
}

func TestCreateAndFetchForm(t *testing.T) {
	token := registerAndLogin(t, "creator@example.com", "Creator User")

	id := createForm(t, token, map[string]interface{}{
		"form_type":  string(models.FormTypePurchaseRequest),
		"owner_name": "Creator User",
		"department": "Purchasing",
		"details": map[string]interface{}{
			"purchaseItems": []map[string]interface{}{
				{"description": "Pump seal", "quantity": 2, "cost": 10},
			},
		},
	})

	resp := doRequest(t, "GET", "/api/forms/"+itoa(id), token, nil, http.StatusOK)

	var form models.Form
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &form))
	require.Equal(t, id, form.ID)
	require.Equal(t, string(models.FormTypePurchaseRequest), form.FormType)
	require.Equal(t, models.FormStatusDraft, form.Status)
	require.NotNil(t, form.Details["purchaseItems"])
}

func TestFormIDStableAcrossUpdates(t *testing.T) {
	token := registerAndLogin(t, "stable@example.com", "Stable User")

	id := createForm(t, token, map[string]interface{}{
		"form_type":  string(models.FormTypeTravelRequest),
		"owner_name": "Stable User",
	})

	doRequest(t, "PUT", "/api/forms/"+itoa(id), token, map[string]interface{}{
		"owner_name": "Stable User",
		"department": "Logistics",
		"details":    map[string]interface{}{"destination": "Bangkok"},
	}, http.StatusOK)

	resp := doRequest(t, "GET", "/api/forms/"+itoa(id), token, nil, http.StatusOK)
	var form models.Form
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &form))
	require.Equal(t, id, form.ID)
	require.Equal(t, "Logistics", form.Department)
}

func TestDeleteOnlyDrafts(t *testing.T) {
	token := registerAndLogin(t, "deleter@example.com", "Deleter User")

	draftID := createForm(t, token, map[string]interface{}{
		"form_type":  string(models.FormTypeMinorCapital),
		"owner_name": "Deleter User",
	})
	submittedID := createForm(t, token, map[string]interface{}{
		"form_type":  string(models.FormTypeMinorCapital),
		"owner_name": "Deleter User",
		"status":     string(models.FormStatusWaiting),
	})

	doRequest(t, "DELETE", "/api/forms/"+itoa(draftID), token, nil, http.StatusOK)
	doRequest(t, "GET", "/api/forms/"+itoa(draftID), token, nil, http.StatusNotFound)

	doRequest(t, "DELETE", "/api/forms/"+itoa(submittedID), token, nil, http.StatusBadRequest)
	doRequest(t, "GET", "/api/forms/"+itoa(submittedID), token, nil, http.StatusOK)
}

func TestStatusLifecycle(t *testing.T) {
	token := registerAndLogin(t, "approver@example.com", "Approver User")

	id := createForm(t, token, map[string]interface{}{
		"form_type":  string(models.FormTypeMajorCapital),
		"owner_name": "Approver User",
	})

	// Draft cannot be approved directly.
	doRequest(t, "PUT", "/api/forms/"+itoa(id)+"/status", token,
		map[string]string{"status": string(models.FormStatusApproved)}, http.StatusConflict)

	doRequest(t, "PUT", "/api/forms/"+itoa(id)+"/status", token,
		map[string]string{"status": string(models.FormStatusWaiting)}, http.StatusOK)
	doRequest(t, "PUT", "/api/forms/"+itoa(id)+"/status", token,
		map[string]string{"status": string(models.FormStatusApproved)}, http.StatusOK)

	// Approved is terminal.
	doRequest(t, "PUT", "/api/forms/"+itoa(id)+"/status", token,
		map[string]string{"status": string(models.FormStatusDraft)}, http.StatusConflict)
}

func TestMyFormsFiltersByOwner(t *testing.T) {
	tokenA := registerAndLogin(t, "owner-a@example.com", "Owner A")
	tokenB := registerAndLogin(t, "owner-b@example.com", "Owner B")

	createForm(t, tokenA, map[string]interface{}{
		"form_type":  string(models.FormTypePurchaseRequest),
		"owner_name": "Owner A",
	})
	createForm(t, tokenB, map[string]interface{}{
		"form_type":  string(models.FormTypePurchaseRequest),
		"owner_name": "Owner B",
	})

	resp := doRequest(t, "GET", "/api/forms/my-forms", tokenA, nil, http.StatusOK)
	var forms []models.Form
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &forms))
	require.NotEmpty(t, forms)
	for _, form := range forms {
		require.Equal(t, "Owner A", form.OwnerName)
	}
}

func TestSummaryRequiresAdmin(t *testing.T) {
	token := registerAndLogin(t, "plain@example.com", "Plain User")
	doRequest(t, "GET", "/api/forms/summary", token, nil, http.StatusForbidden)
}

func TestDownloadPDF(t *testing.T) {
	token := registerAndLogin(t, "printer@example.com", "Printer User")

	id := createForm(t, token, map[string]interface{}{
		"form_type":  string(models.FormTypePurchaseRequest),
		"owner_name": "Printer User",
		"details": map[string]interface{}{
			"grandTotal": 1234.5,
		},
	})

	resp := doRequest(t, "GET", "/api/forms/"+itoa(id)+"/pdf", token, nil, http.StatusOK)
	require.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	require.Contains(t, resp.Header().Get("Content-Disposition"), "Purchase_Request_"+itoa(id)+".pdf")
	require.True(t, bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	registerAndLogin(t, "dup@example.com", "Dup User")
	doRequest(t, "POST", "/api/register", "", map[string]string{
		"email":    "dup@example.com",
		"password": "other",
		"name":     "Dup Again",
	}, http.StatusConflict)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
