// Package apitest runs an in-process HRIS backend for tests. The router
// mirrors the production stack (chi, CORS, request logging, JWT auth) so the
// client code under test exercises the same transport it meets in
// production.
package apitest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/task"
)

const testSecret = "apitest-secret-key"

type failure struct {
	status  int
	message string
}

// Server is a fake HRIS backend with in-memory state, per-route request
// counters and failure injection.
type Server struct {
	HTTP      *httptest.Server
	tokenAuth *jwtauth.JWTAuth

	mu        sync.Mutex
	Employees []employee.Employee
	Tasks     []task.Task
	Entries   []attendance.Entry
	today     map[string]*attendance.Entry
	counters  map[string]int
	failures  map[string]failure

	// BareArrays makes the list endpoints respond with a bare JSON array
	// instead of the {data: [...]} envelope.
	BareArrays bool
}

func NewServer() *Server {
	s := &Server{
		tokenAuth: jwtauth.New("HS256", []byte(testSecret), nil),
		today:     make(map[string]*attendance.Entry),
		counters:  make(map[string]int),
		failures:  make(map[string]failure),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level: slog.LevelDebug,
	}))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.tokenAuth))
		r.Use(jwtauth.Authenticator(s.tokenAuth))

		r.Post("/attendance/check-in", s.handleCheckIn)
		r.Post("/attendance/check-out", s.handleCheckOut)
		r.Get("/attendance/today/{employeeID}", s.handleToday)
		r.Get("/attendance", s.handleListAttendance)
		r.Get("/employees", s.handleListEmployees)
		r.Get("/employees/me", s.handleMyProfile)
		r.Get("/projects/tasks/company", s.handleListTasks)
	})

	s.HTTP = httptest.NewServer(r)
	return s
}

func (s *Server) Close() {
	s.HTTP.Close()
}

// BaseURL is the API root the client should be pointed at.
func (s *Server) BaseURL() string {
	return s.HTTP.URL + "/api/v1"
}

// Token mints a signed access token with the claim layout the real backend
// uses.
func (s *Server) Token(userID, employeeID, companyID string) string {
	_, tokenString, _ := s.tokenAuth.Encode(map[string]interface{}{
		"user_id":     userID,
		"employee_id": employeeID,
		"company_id":  companyID,
		"type":        "access",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	return tokenString
}

// SetToday installs (or clears, with nil) today's entry for an employee.
func (s *Server) SetToday(employeeID string, entry *attendance.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry == nil {
		delete(s.today, employeeID)
		return
	}
	s.today[employeeID] = entry
}

// Count returns how many requests hit the given route, keyed as
// "METHOD /path".
func (s *Server) Count(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[route]
}

// Fail makes every subsequent request to the route answer with the given
// status and message until cleared.
func (s *Server) Fail(route string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, message: message}
}

func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
}

// enter counts the hit and reports any injected failure.
func (s *Server) enter(route string) (failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[route]++
	f, ok := s.failures[route]
	return f, ok
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.enter("POST /attendance/check-in"); ok {
		failWith(w, f.status, f.message)
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.EmployeeID == "" {
		badRequest(w, "employeeId is required")
		return
	}

	now := time.Now().UTC()
	entry := attendance.Entry{
		ID:               uuid.NewString(),
		EmployeeID:       req.EmployeeID,
		Date:             now.Format("2006-01-02"),
		CheckInTime:      &now,
		Status:           attendance.StatusPresent,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
	}
	if req.Location != "" {
		entry.Location = &req.Location
	}
	if req.Notes != "" {
		entry.Notes = &req.Notes
	}

	s.mu.Lock()
	s.today[req.EmployeeID] = &entry
	s.Entries = append(s.Entries, entry)
	s.mu.Unlock()

	created(w, entry)
}

func (s *Server) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.enter("POST /attendance/check-out"); ok {
		failWith(w, f.status, f.message)
		return
	}

	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.today {
		if entry.ID == req.AttendanceID {
			now := time.Now().UTC()
			entry.CheckOutTime = &now
			entry.CheckOutLatitude = req.Latitude
			entry.CheckOutLongitude = req.Longitude
			if req.Notes != "" {
				entry.Notes = &req.Notes
			}
			if entry.CheckInTime != nil {
				hours := now.Sub(*entry.CheckInTime).Hours()
				entry.WorkHours = &hours
			}
			updated := *entry
			success(w, updated)
			return
		}
	}
	notFound(w, "attendance entry not found")
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.enter("GET /attendance/today"); ok {
		failWith(w, f.status, f.message)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	s.mu.Lock()
	entry := s.today[employeeID]
	s.mu.Unlock()

	if entry == nil {
		success(w, nil)
		return
	}
	success(w, *entry)
}

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.enter("GET /attendance"); ok {
		failWith(w, f.status, f.message)
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	status := r.URL.Query().Get("status")

	s.mu.Lock()
	var out []attendance.Entry
	for _, entry := range s.Entries {
		if employeeID != "" && entry.EmployeeID != employeeID {
			continue
		}
		if status != "" && string(entry.Status) != status {
			continue
		}
		out = append(out, entry)
	}
	s.mu.Unlock()

	s.writeList(w, out)
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.enter("GET /employees"); ok {
		failWith(w, f.status, f.message)
		return
	}

	s.mu.Lock()
	out := make([]employee.Employee, len(s.Employees))
	copy(out, s.Employees)
	s.mu.Unlock()

	s.writeList(w, out)
}

func (s *Server) handleMyProfile(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.enter("GET /employees/me"); ok {
		failWith(w, f.status, f.message)
		return
	}

	_, claims, _ := jwtauth.FromContext(r.Context())
	employeeID, _ := claims["employee_id"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.Employees {
		if rec.ID == employeeID {
			success(w, rec)
			return
		}
	}
	notFound(w, "employee not found")
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.enter("GET /projects/tasks/company"); ok {
		failWith(w, f.status, f.message)
		return
	}

	if r.URL.Query().Get("companyId") == "" {
		badRequest(w, "companyId is required")
		return
	}

	s.mu.Lock()
	out := make([]task.Task, len(s.Tasks))
	copy(out, s.Tasks)
	s.mu.Unlock()

	s.writeList(w, out)
}

func (s *Server) writeList(w http.ResponseWriter, list any) {
	if s.BareArrays {
		writeJSON(w, http.StatusOK, list)
		return
	}
	success(w, list)
}
