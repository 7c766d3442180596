package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/internal/middleware"
	"fintrack/internal/validator"
)

const (
	testUserID  = "0190a5b2-7c3e-7a1b-8c9d-000000000001"
	testOtherID = "0190a5b2-7c3e-7a1b-8c9d-000000000002"
	testAcctID  = "0190a5b2-7c3e-7a1b-8c9d-00000000000a"
	testCatID   = "0190a5b2-7c3e-7a1b-8c9d-00000000000c"
	testItemID  = "0190a5b2-7c3e-7a1b-8c9d-0000000000ff"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

type auditCall struct {
	UserID, Action, ResourceType, ResourceID string
}

type mockAuditService struct {
	calls []auditCall
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.calls = append(m.calls, auditCall{UserID: userID, Action: action, ResourceType: resourceType, ResourceID: resourceID})
}

func (m *mockAuditService) assertLogged(t *testing.T, action string) {
	t.Helper()
	for _, c := range m.calls {
		if c.Action == action {
			return
		}
	}
	t.Errorf("expected audit action %q, got %+v", action, m.calls)
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
