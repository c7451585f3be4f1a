package attendance_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/api"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/apitest"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/geo"
	"github.com/cmlabs-hris/hris-console-go/internal/service/attendance"
)

func newFixture(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	token := srv.Token("user-1", "emp-1", "company-1")
	client := api.New(context.Background(), srv.BaseURL(), token, logger)
	return srv, client
}

func officeLocator() geo.Locator {
	return geo.NewStaticLocator(geo.Point{Latitude: -6.2, Longitude: 106.8})
}

func TestSession_FullDayCycle(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")
	ctx := context.Background()

	require.NoError(t, sess.Refresh(ctx))
	assert.Equal(t, domain.NotStarted, sess.State())

	entry, err := sess.CheckIn(ctx, "Office", "")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedIn, sess.State())
	require.NotNil(t, entry.CheckInTime)
	require.NotNil(t, entry.CheckInLatitude)
	assert.Equal(t, -6.2, *entry.CheckInLatitude)

	out, err := sess.CheckOut(ctx, "done for today")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedOut, sess.State())
	assert.NotNil(t, out.CheckOutTime)
	assert.NotNil(t, out.WorkHours)

	assert.Equal(t, 1, srv.Count("POST /attendance/check-in"))
	assert.Equal(t, 1, srv.Count("POST /attendance/check-out"))
}

func TestSession_CheckInTwice(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")
	ctx := context.Background()

	_, err := sess.CheckIn(ctx, "Office", "")
	require.NoError(t, err)

	_, err = sess.CheckIn(ctx, "Office", "")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	// The precondition fails before any network request.
	assert.Equal(t, 1, srv.Count("POST /attendance/check-in"))
}

func TestSession_CheckOutWithoutCheckIn(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")

	_, err := sess.CheckOut(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Zero(t, srv.Count("POST /attendance/check-out"))
}

func TestSession_CheckOutTwice(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")
	ctx := context.Background()

	_, err := sess.CheckIn(ctx, "Office", "")
	require.NoError(t, err)
	_, err = sess.CheckOut(ctx, "")
	require.NoError(t, err)

	_, err = sess.CheckOut(ctx, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut)
	assert.Equal(t, 1, srv.Count("POST /attendance/check-out"))
}

func TestSession_MissingEmployeeRecord(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "")

	_, err := sess.CheckIn(context.Background(), "Office", "")
	assert.ErrorIs(t, err, domain.ErrMissingEmployeeRecord)
	assert.Zero(t, srv.Count("POST /attendance/check-in"))

	assert.ErrorIs(t, sess.Refresh(context.Background()), domain.ErrMissingEmployeeRecord)
}

func TestSession_LocationUnavailableAbortsTransition(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, geo.Unavailable(), "emp-1")

	_, err := sess.CheckIn(context.Background(), "Office", "")
	assert.ErrorIs(t, err, geo.ErrLocationUnavailable)
	assert.Equal(t, domain.NotStarted, sess.State())
	assert.Zero(t, srv.Count("POST /attendance/check-in"))
}

type denyingLocator struct{}

func (denyingLocator) Locate(context.Context) (geo.Point, error) {
	return geo.Point{}, geo.ErrPermissionDenied
}

func TestSession_PermissionDeniedAbortsTransition(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, denyingLocator{}, "emp-1")

	_, err := sess.CheckIn(context.Background(), "Office", "")
	assert.ErrorIs(t, err, geo.ErrPermissionDenied)
	assert.Equal(t, domain.NotStarted, sess.State())
	assert.Zero(t, srv.Count("POST /attendance/check-in"))
}

func TestSession_NetworkFailureLeavesStateUnchanged(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")
	ctx := context.Background()

	srv.Fail("POST /attendance/check-in", http.StatusInternalServerError, "database down")
	_, err := sess.CheckIn(ctx, "Office", "")
	require.Error(t, err)
	assert.Equal(t, domain.NotStarted, sess.State())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "database down", apiErr.Message)

	// Retry succeeds once the backend recovers; no duplicate entry appears.
	srv.ClearFailures()
	_, err = sess.CheckIn(ctx, "Office", "")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedIn, sess.State())
	assert.Len(t, srv.Entries, 1)
}

// blockingAPI wraps a stub whose CheckIn parks until released, pinning the
// session in its processing window.
type blockingAPI struct {
	started  chan struct{}
	release  chan struct{}
	mu       sync.Mutex
	checkIns int
}

func newBlockingAPI() *blockingAPI {
	return &blockingAPI{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingAPI) CheckIn(ctx context.Context, req domain.CheckInRequest) (domain.Entry, error) {
	b.mu.Lock()
	b.checkIns++
	first := b.checkIns == 1
	b.mu.Unlock()

	if first {
		close(b.started)
		<-b.release
	}
	now := time.Now()
	return domain.Entry{ID: "att-1", EmployeeID: req.EmployeeID, CheckInTime: &now}, nil
}

func (b *blockingAPI) CheckOut(ctx context.Context, req domain.CheckOutRequest) (domain.Entry, error) {
	return domain.Entry{}, nil
}

func (b *blockingAPI) TodayAttendance(ctx context.Context, employeeID string) (*domain.Entry, error) {
	return nil, nil
}

func (b *blockingAPI) ListAttendance(ctx context.Context, filter domain.HistoryFilter) ([]domain.Entry, error) {
	return nil, nil
}

func TestSession_RejectsConcurrentTransition(t *testing.T) {
	stub := newBlockingAPI()
	sess := attendance.NewSession(stub, officeLocator(), "emp-1")
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := sess.CheckIn(ctx, "Office", "")
		done <- err
	}()

	<-stub.started
	assert.True(t, sess.IsProcessing())

	_, err := sess.CheckIn(ctx, "Office", "")
	assert.ErrorIs(t, err, domain.ErrOperationInProgress)
	_, err = sess.CheckOut(ctx, "")
	assert.ErrorIs(t, err, domain.ErrOperationInProgress)

	close(stub.release)
	require.NoError(t, <-done)
	assert.False(t, sess.IsProcessing())
	assert.Equal(t, domain.CheckedIn, sess.State())

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Equal(t, 1, stub.checkIns)
}

func TestSession_RefreshResetsOnNewDay(t *testing.T) {
	srv, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")
	ctx := context.Background()

	_, err := sess.CheckIn(ctx, "Office", "")
	require.NoError(t, err)
	require.Equal(t, domain.CheckedIn, sess.State())

	// The backend clearing today's entry (a new calendar day) resets the
	// cycle on the next refresh.
	srv.SetToday("emp-1", nil)
	require.NoError(t, sess.Refresh(ctx))
	assert.Equal(t, domain.NotStarted, sess.State())
}

func TestSession_History(t *testing.T) {
	_, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")
	ctx := context.Background()

	_, err := sess.CheckIn(ctx, "Office", "")
	require.NoError(t, err)

	entries, err := sess.History(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "emp-1", entries[0].EmployeeID)
}

func TestSession_HistoryRejectsBadFilter(t *testing.T) {
	_, client := newFixture(t)
	sess := attendance.NewSession(client, officeLocator(), "emp-1")

	_, err := sess.History(context.Background(), domain.HistoryFilter{StartDate: "30-08-2026"})
	assert.Error(t, err)
}
