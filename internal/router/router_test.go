package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/salestrack/sales-api/internal/auth"
	"github.com/salestrack/sales-api/internal/config"
	"github.com/salestrack/sales-api/internal/user"
	"github.com/salestrack/sales-api/internal/utils/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testAPI struct {
	t       *testing.T
	db      *gorm.DB
	tokens  *auth.Tokens
	handler http.Handler
}

func newAPI(t *testing.T, devRoutes bool) *testAPI {
	return newAPIWithLog(t, devRoutes, io.Discard)
}

func newAPIWithLog(t *testing.T, devRoutes bool, w io.Writer) *testAPI {
	database, err := db.OpenInMemory()
	require.NoError(t, err, "Failed to create test database")
	cfg := &config.Config{CORSOrigins: []string{"http://localhost:5173"}, EnableDevRoutes: devRoutes}
	tokens := auth.NewTokens("test-secret", time.Hour)
	return &testAPI{
		t:       t,
		db:      database,
		tokens:  tokens,
		handler: New(database, cfg, tokens, zerolog.New(w)),
	}
}

func (a *testAPI) do(method, path, body, token string) (int, map[string]interface{}) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func (a *testAPI) adminToken() string {
	tok, err := a.tokens.Generate(1, true)
	require.NoError(a.t, err)
	return tok
}

func salesBody(client, email, buildingName, officeName string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"client_name":      client,
		"contact":          "+27 " + client,
		"client_email":     email,
		"job":              "CTO",
		"deal_info":        "fibre upgrade",
		"meetingDate":      "2024-05-10",
		"meetingLocation":  "HQ",
		"meetingType":      "In person",
		"meetingRemarks":   "",
		"meetingStatus":    "Scheduled",
		"is_connected":     true,
		"isp_name":         "Vumatel",
		"connection_type":  "Fibre",
		"product":          "100Mbps",
		"net_price":        "899.00",
		"deal_status":      "Pending",
		"building_name":    buildingName,
		"is_fibre_setup":   "true",
		"ease_of_access":   3,
		"more_info_access": "reception",
		"number_offices":   "10",
		"office_name":      officeName,
		"office_floor":     2,
		"number_staff":     "15",
		"industry":         "Finance",
		"more_offices":     "",
	})
	return string(b)
}

func list(out map[string]interface{}, key string) []interface{} {
	v, _ := out[key].([]interface{})
	return v
}

func TestSalesScenario_CreateReuseAndList(t *testing.T) {
	api := newAPI(t, false)

	code, out := api.do(http.MethodPost, "/salesdetails", salesBody("Acme", "a@acme.com", "Tower A", "Suite 100"), "")
	require.Equal(t, http.StatusCreated, code, out)
	assert.Equal(t, true, out["success"])
	firstBuilding := out["ids"].(map[string]interface{})["building_id"]

	code, out = api.do(http.MethodGet, "/clients", "", "")
	require.Equal(t, http.StatusOK, code)
	clients := list(out, "clients")
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].(map[string]interface{})["client_name"])

	code, out = api.do(http.MethodPost, "/salesdetails", salesBody("Globex", "g@globex.com", "Tower A", "Suite 200"), "")
	require.Equal(t, http.StatusCreated, code, out)
	assert.Equal(t, firstBuilding, out["ids"].(map[string]interface{})["building_id"])

	_, out = api.do(http.MethodGet, "/locations/buildings", "", "")
	assert.Len(t, list(out, "buildings"), 1)

	_, out = api.do(http.MethodGet, "/locations/offices", "", "")
	offices := list(out, "offices")
	require.Len(t, offices, 2)
	for _, o := range offices {
		assert.Equal(t, firstBuilding, o.(map[string]interface{})["building_id"])
	}
}

func TestSalesScenario_DuplicateEmail(t *testing.T) {
	api := newAPI(t, false)
	code, _ := api.do(http.MethodPost, "/salesdetails", salesBody("Acme", "a@acme.com", "Tower A", "Suite 100"), "")
	require.Equal(t, http.StatusCreated, code)

	code, out := api.do(http.MethodPost, "/salesdetails", salesBody("Other", "a@acme.com", "Tower B", "Suite 1"), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "client already exists", out["message"])

	_, out = api.do(http.MethodGet, "/locations/buildings", "", "")
	assert.Len(t, list(out, "buildings"), 1)
}

func TestSalesScenario_MissingPayload(t *testing.T) {
	api := newAPI(t, false)
	code, out := api.do(http.MethodPost, "/salesdetails", "{}", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No data provided", out["message"])

	code, out = api.do(http.MethodPost, "/salesdetails", `{"client_name":"Acme"}`, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out["message"], "contact")
}

func TestSalesScenario_BadTypedField(t *testing.T) {
	api := newAPI(t, false)
	body := salesBody("Acme", "a@acme.com", "Tower A", "Suite 100")

	cases := map[string]struct{ from, to, msg string }{
		"staff text":   {`"number_staff":"15"`, `"number_staff":"abc"`, `field "number_staff" must be an integer`},
		"floor huge":   {`"office_floor":2`, `"office_floor":1e30`, `field "office_floor" must be an integer`},
		"price text":   {`"net_price":"899.00"`, `"net_price":"x"`, `field "net_price" must be a number`},
		"flag unknown": {`"is_connected":true`, `"is_connected":"maybe"`, `field "is_connected" must be a boolean`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			bad := strings.Replace(body, tc.from, tc.to, 1)
			require.NotEqual(t, body, bad)
			code, out := api.do(http.MethodPost, "/salesdetails", bad, "")
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tc.msg, out["message"])
		})
	}
}

func TestDeleteClientScenario(t *testing.T) {
	api := newAPI(t, false)
	code, _ := api.do(http.MethodPost, "/salesdetails", salesBody("Acme", "a@acme.com", "Tower A", "Suite 100"), "")
	require.Equal(t, http.StatusCreated, code)
	code, _ = api.do(http.MethodPost, "/client/1/meetings",
		`{"meeting_date":"2024-06-01","meeting_location":"Zoom","meeting_status":"Scheduled"}`, "")
	require.Equal(t, http.StatusCreated, code)

	code, out := api.do(http.MethodDelete, "/client/1", "", "")
	require.Equal(t, http.StatusOK, code, out)
	deleted := out["deleted"].(map[string]interface{})
	assert.EqualValues(t, 2, deleted["meetings"])
	assert.EqualValues(t, 1, deleted["buildings"])
	assert.EqualValues(t, 1, deleted["offices"])

	for path, key := range map[string]string{
		"/meetings":            "meetings",
		"/offices":             "offices",
		"/locations/buildings": "buildings",
		"/internet":            "internet",
	} {
		code, out := api.do(http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, list(out, key), path)
	}

	code, _ = api.do(http.MethodDelete, "/client/1", "", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOfficeAliases(t *testing.T) {
	api := newAPI(t, false)
	code, _ := api.do(http.MethodPost, "/location",
		`{"building_name":"Tower A","is_fibre_setup":false,"ease_of_access":1,"more_info_access":"","number_of_offices":4,"office_name":"Suite 1","office_floor":1,"more_offices":""}`, "")
	require.Equal(t, http.StatusCreated, code)

	code, out := api.do(http.MethodPut, "/locations/office/1", `{"staff_number":12}`, "")
	require.Equal(t, http.StatusOK, code, out)
	code, out = api.do(http.MethodGet, "/office/1", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 12, out["office"].(map[string]interface{})["staff_number"])

	code, _ = api.do(http.MethodDelete, "/locations/office/1", "", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = api.do(http.MethodDelete, "/office/1", "", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGenericUpdate(t *testing.T) {
	api := newAPI(t, false)
	code, _ := api.do(http.MethodPost, "/salesdetails", salesBody("Acme", "a@acme.com", "Tower A", "Suite 100"), "")
	require.Equal(t, http.StatusCreated, code)

	code, out := api.do(http.MethodPut, "/update", `{"category":"client","client_id":1,"field":"job_title","value":"CEO"}`, "")
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, "CEO", out["updated"].(map[string]interface{})["job_title"])

	code, out = api.do(http.MethodPut, "/update", `{"meeting_id":"1","meeting_status":"Done","client_id":1}`, "")
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, "meeting", out["category"])

	code, out = api.do(http.MethodPut, "/update", `{"category":"client","client_id":1,"field":"client_id","value":9}`, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No valid fields provided for update", out["message"])

	code, _ = api.do(http.MethodPut, "/update", `{"category":"internet","internet_id":99,"deal_status":"Closed"}`, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.do(http.MethodPut, "/update", `{"category":"invoice","invoice_id":1}`, "")
	assert.Equal(t, http.StatusBadRequest, code)

	_, out = api.do(http.MethodGet, "/client/1", "", "")
	assert.Equal(t, "CEO", out["client"].(map[string]interface{})["job_title"])
}

func TestReports(t *testing.T) {
	api := newAPI(t, false)

	code, out := api.do(http.MethodGet, "/sales", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, list(out, "sales"))
	assert.EqualValues(t, 0, out["total_clients"])

	code, out = api.do(http.MethodGet, "/summary", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]interface{}{
		"total_clients": 0.0, "scheduled_meetings": 0.0, "pending_deals": 0.0,
	}, out["summary"])

	code, _ = api.do(http.MethodPost, "/salesdetails", salesBody("Acme", "a@acme.com", "Tower A", "Suite 100"), "")
	require.Equal(t, http.StatusCreated, code)

	_, out = api.do(http.MethodGet, "/summary", "", "")
	summary := out["summary"].(map[string]interface{})
	assert.EqualValues(t, 1, summary["total_clients"])
	assert.EqualValues(t, 1, summary["scheduled_meetings"])
	assert.EqualValues(t, 1, summary["pending_deals"])

	code, out = api.do(http.MethodGet, "/sales/1", "", "")
	require.Equal(t, http.StatusOK, code)
	data := out["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total_meetings"])
	assert.EqualValues(t, 1, data["total_buildings"])
	assert.EqualValues(t, 1, data["total_offices"])
	assert.EqualValues(t, 1, data["total_internet_records"])
	b := data["buildings"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, b["owned"])

	code, _ = api.do(http.MethodGet, "/sales/42", "", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLoginAndAdminRoutes(t *testing.T) {
	api := newAPI(t, false)
	_, err := user.NewStore().Register(api.db, "admin", "admin@example.com", "s3cret", true)
	require.NoError(t, err)

	code, out := api.do(http.MethodPost, "/login", `{"user_name":"admin","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, code)
	token := out["token"].(string)

	code, _ = api.do(http.MethodPost, "/", `{"user_name":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = api.do(http.MethodPost, "/login", `{"user_name":"ghost","password":"s3cret"}`, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = api.do(http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, out = api.do(http.MethodPost, "/users", `{"user_name":"bia","user_email":"bia@example.com","password":"x","is_admin":false}`, token)
	require.Equal(t, http.StatusCreated, code, out)

	userToken, err := api.tokens.Generate(2, false)
	require.NoError(t, err)
	code, _ = api.do(http.MethodGet, "/users", "", userToken)
	assert.Equal(t, http.StatusForbidden, code)

	code, out = api.do(http.MethodGet, "/users", "", token)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, list(out, "users"), 2)
}

func TestClearAllData_Guarded(t *testing.T) {
	api := newAPI(t, false)
	code, _ := api.do(http.MethodDelete, "/clear-all-data", "", api.adminToken())
	assert.Equal(t, http.StatusNotFound, code)

	api = newAPI(t, true)
	code, _ = api.do(http.MethodPost, "/salesdetails", salesBody("Acme", "a@acme.com", "Tower A", "Suite 100"), "")
	require.Equal(t, http.StatusCreated, code)

	code, _ = api.do(http.MethodDelete, "/clear-all-data", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, out := api.do(http.MethodDelete, "/clear-all-data", "", api.adminToken())
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, out["deleted"].(map[string]interface{})["clients"])

	_, out = api.do(http.MethodGet, "/clients", "", "")
	assert.Empty(t, list(out, "clients"))
}

func TestAdminActionsAreAttributed(t *testing.T) {
	var buf bytes.Buffer
	api := newAPIWithLog(t, true, &buf)

	code, out := api.do(http.MethodPost, "/users", `{"user_name":"bia","user_email":"bia@example.com","password":"x"}`, api.adminToken())
	require.Equal(t, http.StatusCreated, code, out)
	assert.Contains(t, buf.String(), `"created_by":1`)

	code, _ = api.do(http.MethodDelete, "/clear-all-data", "", api.adminToken())
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, buf.String(), `"cleared_by":1`)
}

func TestRequestIDHeader(t *testing.T) {
	api := newAPI(t, false)
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
