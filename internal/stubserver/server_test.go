package stubserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.Handler, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, ScanPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return rec.Code, out
}

func TestScanResponses(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"missing device", `{"rfidId":"04A2B3C4"}`, http.StatusBadRequest, "RFID ID and device ID are required"},
		{"blank device is looked up", `{"rfidId":"04A2B3C4","deviceId":"   "}`, http.StatusNotFound, "RFID device not found"},
		{"blank card is looked up", `{"rfidId":"  ","deviceId":"gate-1"}`, http.StatusNotFound, "Student not found with this RFID"},
		{"malformed", `{"rfidId":`, http.StatusBadRequest, "Invalid request body"},
		{"unknown device", `{"rfidId":"04A2B3C4","deviceId":"nope"}`, http.StatusNotFound, "RFID device not found"},
		{"unknown card", `{"rfidId":"FFFF","deviceId":"gate-1"}`, http.StatusNotFound, "Student not found with this RFID"},
		{
			"inactive",
			`{"rfidId":"0411AA22","deviceId":"gate-1"}`,
			http.StatusForbidden,
			"Your student account is inactive. Please contact your administrator.",
		},
		{
			"no class",
			`{"rfidId":"04FFEE00","deviceId":"gate-1"}`,
			http.StatusForbidden,
			"You are not assigned to any class. Please contact your administrator.",
		},
		{
			"device without class",
			`{"rfidId":"04A2B3C4","deviceId":"spare"}`,
			http.StatusBadRequest,
			"This device is not assigned to any class",
		},
		{
			"wrong class",
			`{"rfidId":"04D5E6F7","deviceId":"gate-1"}`,
			http.StatusForbidden,
			"You can only mark attendance for your assigned class",
		},
	}

	h := New(DemoRoster()).Handler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := post(t, h, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, out["message"])
		})
	}
}

func TestScanRecordsOncePerDay(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	srv := New(DemoRoster(), WithClock(func() time.Time { return now }))
	h := srv.Handler()

	body := `{"rfidId":"04A2B3C4","deviceId":"gate-1"}`

	status, out := post(t, h, body)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Attendance recorded successfully", out["message"])
	assert.Equal(t, "present", out["status"])

	status, out = post(t, h, body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Attendance already recorded", out["message"])

	require.Len(t, srv.Records(), 1)

	now = now.Add(24 * time.Hour)
	status, _ = post(t, h, body)
	assert.Equal(t, http.StatusCreated, status)
	assert.Len(t, srv.Records(), 2)
}

func TestListAttendance(t *testing.T) {
	srv := New(DemoRoster())
	h := srv.Handler()

	post(t, h, `{"rfidId":"04A2B3C4","deviceId":"gate-1"}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/attendance", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var records []Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "S001", records[0].StudentID)
	assert.NotEmpty(t, records[0].ID)
}

func TestScanRouteRejectsGet(t *testing.T) {
	h := New(DemoRoster()).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ScanPath, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	content := `{"devices":[{"deviceId":"d1","class":"c"}],"students":[{"rfidId":"r1","studentId":"s1","class":"c","active":true}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, r.Devices, 1)
	require.Len(t, r.Students, 1)
	assert.True(t, r.Students[0].Active)

	_, err = LoadRoster(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
