package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/api"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/apitest"
)

func newClient(t *testing.T, srv *apitest.Server, employeeID string) *api.Client {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	token := srv.Token("user-1", employeeID, "company-1")
	return api.New(context.Background(), srv.BaseURL(), token, logger)
}

func TestClient_CheckInAndCheckOut(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	client := newClient(t, srv, "emp-1")
	ctx := context.Background()

	lat, lon := -6.2, 106.8
	entry, err := client.CheckIn(ctx, attendance.CheckInRequest{
		EmployeeID: "emp-1",
		Location:   "Office",
		Latitude:   &lat,
		Longitude:  &lon,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "emp-1", entry.EmployeeID)
	require.NotNil(t, entry.CheckInTime)
	assert.Nil(t, entry.CheckOutTime)

	out, err := client.CheckOut(ctx, attendance.CheckOutRequest{AttendanceID: entry.ID})
	require.NoError(t, err)
	assert.Equal(t, entry.ID, out.ID)
	assert.NotNil(t, out.CheckOutTime)
}

func TestClient_TodayAttendance(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	client := newClient(t, srv, "emp-1")
	ctx := context.Background()

	// The backend answers null when no entry exists yet.
	entry, err := client.TodayAttendance(ctx, "emp-1")
	require.NoError(t, err)
	assert.Nil(t, entry)

	srv.SetToday("emp-1", &attendance.Entry{ID: "att-1", EmployeeID: "emp-1", Date: "2026-08-30"})
	entry, err = client.TodayAttendance(ctx, "emp-1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "att-1", entry.ID)
}

func TestClient_TodayAttendanceNotFoundStatus(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	client := newClient(t, srv, "emp-1")

	// A 404 means the same thing as an explicit null.
	srv.Fail("GET /attendance/today", http.StatusNotFound, "attendance entry not found")
	entry, err := client.TodayAttendance(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestClient_ListEmployees_EnvelopeAndBareArray(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	srv.Employees = []employee.Employee{
		{ID: "emp-1", FullName: "Jane Doe", Email: "jane@x.com"},
		{ID: "emp-2", FullName: "John Smith", Email: "john@x.com"},
	}
	client := newClient(t, srv, "emp-1")
	ctx := context.Background()

	got, err := client.ListEmployees(ctx, employee.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Same endpoint, bare array payload.
	srv.BareArrays = true
	got, err = client.ListEmployees(ctx, employee.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClient_MyProfile(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	srv.Employees = []employee.Employee{{ID: "emp-1", FullName: "Jane Doe"}}

	client := newClient(t, srv, "emp-1")
	profile, err := client.MyProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
}

func TestClient_Unauthorized(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client := api.New(context.Background(), srv.BaseURL(), "not-a-token", logger)

	_, err := client.MyProfile(context.Background())
	assert.ErrorIs(t, err, api.ErrSessionExpired)
}

func TestClient_BackendErrorMessageSurfaces(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	client := newClient(t, srv, "emp-1")

	srv.Fail("GET /employees", http.StatusInternalServerError, "database down")
	_, err := client.ListEmployees(context.Background(), employee.ListFilter{})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "database down", apiErr.Message)
	assert.Equal(t, "database down", apiErr.Error())
}

func TestClient_ListCompanyTasks_RequiresCompanyID(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	client := newClient(t, srv, "emp-1")

	_, err := client.ListCompanyTasks(context.Background(), "")
	require.Error(t, err)
	assert.Zero(t, srv.Count("GET /projects/tasks/company"))
}
