// Package stubserver is an in-memory stand-in for the attendance backend's
// scan route, for trying the client without the real service.
package stubserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// ScanPath is the route the scan client posts to.
const ScanPath = "/api/rfid-scans/scan"

const dayLayout = "2006-01-02"

// Record is one attendance entry.
type Record struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Class       string    `json:"class"`
	DeviceID    string    `json:"rfidDevice"`
	Date        string    `json:"date"`
	CheckinTime time.Time `json:"checkinTime"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
}

type scanRequest struct {
	RFIDID   string `json:"rfidId"`
	DeviceID string `json:"deviceId"`
}

// Server answers scan requests against a fixed roster.
type Server struct {
	devices  map[string]Device
	students map[string]Student
	now      func() time.Time
	log      zerolog.Logger

	mu      sync.Mutex
	records map[string]Record
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// New builds a server for the given roster.
func New(r Roster, opts ...Option) *Server {
	s := &Server{
		devices:  make(map[string]Device, len(r.Devices)),
		students: make(map[string]Student, len(r.Students)),
		records:  make(map[string]Record),
		now:      time.Now,
		log:      zerolog.Nop(),
	}

	for _, d := range r.Devices {
		s.devices[d.DeviceID] = d
	}

	for _, st := range r.Students {
		s.students[st.RFIDID] = st
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the routed, CORS-enabled HTTP handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(ScanPath, s.handleScan).Methods(http.MethodPost)
	router.HandleFunc("/api/attendance", s.handleList).Methods(http.MethodGet)

	return cors.Default().Handler(router)
}

// Records returns a copy of all recorded attendance entries.
func (s *Server) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}

	return out
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Records())
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log := s.log.With().Str("rfid_id", req.RFIDID).Str("device_id", req.DeviceID).Logger()

	if req.RFIDID == "" || req.DeviceID == "" {
		writeMessage(w, http.StatusBadRequest, "RFID ID and device ID are required")
		return
	}

	device, ok := s.devices[req.DeviceID]
	if !ok {
		log.Info().Msg("unknown device")
		writeMessage(w, http.StatusNotFound, "RFID device not found")
		return
	}

	student, ok := s.students[req.RFIDID]
	if !ok {
		log.Info().Msg("unknown card")
		writeMessage(w, http.StatusNotFound, "Student not found with this RFID")
		return
	}

	details := map[string]string{"studentId": student.StudentID, "name": student.Name}

	switch {
	case !student.Active:
		writeJSON(w, http.StatusForbidden, map[string]any{
			"message": "Your student account is inactive. Please contact your administrator.",
			"details": details,
		})
		return
	case student.Class == "":
		writeJSON(w, http.StatusForbidden, map[string]any{
			"message": "You are not assigned to any class. Please contact your administrator.",
			"details": details,
		})
		return
	case device.Class == "":
		writeMessage(w, http.StatusBadRequest, "This device is not assigned to any class")
		return
	case student.Class != device.Class:
		writeJSON(w, http.StatusForbidden, map[string]any{
			"message": "You can only mark attendance for your assigned class",
			"details": map[string]string{
				"studentName":    student.Name,
				"studentId":      student.StudentID,
				"studentClass":   student.Class,
				"deviceClass":    device.Class,
				"deviceLocation": device.Location,
			},
		})
		return
	}

	now := s.now()
	rec, created := s.record(student, device, now)

	if !created {
		log.Info().Str("record_id", rec.ID).Msg("attendance already recorded")
		writeJSON(w, http.StatusOK, map[string]any{
			"message":          "Attendance already recorded",
			"attendanceRecord": rec,
		})
		return
	}

	log.Info().Str("record_id", rec.ID).Msg("attendance recorded")
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":          "Attendance recorded successfully",
		"attendanceRecord": rec,
		"student":          map[string]string{"name": student.Name, "studentId": student.StudentID},
		"class":            map[string]string{"name": device.Class},
		"status":           rec.Status,
		"time":             now,
	})
}

func (s *Server) record(student Student, device Device, now time.Time) (Record, bool) {
	day := now.Format(dayLayout)
	key := student.StudentID + "|" + device.Class + "|" + day

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[key]; ok {
		return rec, false
	}

	rec := Record{
		ID:          uuid.NewString(),
		StudentID:   student.StudentID,
		StudentName: student.Name,
		Class:       device.Class,
		DeviceID:    device.DeviceID,
		Date:        day,
		CheckinTime: now,
		Status:      "present",
		Notes:       "Recorded by RFID scan",
	}
	s.records[key] = rec

	return rec, true
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
