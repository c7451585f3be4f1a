package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-console-go/internal/service/attendance"
)

func sampleEntries() []domain.Entry {
	t1 := time.Date(2026, 8, 28, 8, 55, 0, 0, time.UTC)
	t2 := time.Date(2026, 8, 28, 9, 40, 0, 0, time.UTC)
	return []domain.Entry{
		{ID: "1", EmployeeID: "emp-1", EmployeeName: "Jane Doe", Date: "2026-08-28", CheckInTime: &t1, Status: domain.StatusPresent},
		{ID: "2", EmployeeID: "emp-2", EmployeeName: "John Smith", Date: "2026-08-28", CheckInTime: &t2, Status: domain.StatusLate},
		{ID: "3", EmployeeID: "emp-3", EmployeeName: "Ann Lee", Date: "2026-08-27", Status: domain.StatusAbsent},
	}
}

func TestListService_FullFlow(t *testing.T) {
	srv, client := newFixture(t)
	svc := attendance.NewListService(client)

	// Seed via the check-in endpoint so the list endpoint has data.
	sess := attendance.NewSession(client, officeLocator(), "emp-1")
	_, err := sess.CheckIn(context.Background(), "Office", "")
	require.NoError(t, err)

	result, err := svc.List(context.Background(), domain.HistoryFilter{}, listquery.Criteria{}, listquery.SortSpec{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Aggregates.Total)
	assert.Equal(t, 1, srv.Count("GET /attendance"))
}

func TestListService_RejectsBadFilter(t *testing.T) {
	_, client := newFixture(t)
	svc := attendance.NewListService(client)

	_, err := svc.List(context.Background(), domain.HistoryFilter{Status: "bogus"}, listquery.Criteria{}, listquery.SortSpec{})
	assert.Error(t, err)
}

func TestListService_QueryFiltersByStatus(t *testing.T) {
	_, client := newFixture(t)
	svc := attendance.NewListService(client)

	result := svc.Query(sampleEntries(), listquery.Criteria{"status": "late"}, listquery.SortSpec{})
	require.Len(t, result.View, 1)
	assert.Equal(t, "2", result.View[0].ID)
}

func TestListService_QueryRates(t *testing.T) {
	_, client := newFixture(t)
	svc := attendance.NewListService(client)

	result := svc.Query(sampleEntries(), listquery.Criteria{}, listquery.SortSpec{})
	assert.Equal(t, 3, result.Aggregates.Total)
	assert.InDelta(t, 1.0/3.0, result.Aggregates.Rate("present"), 1e-9)
	assert.InDelta(t, 1.0/3.0, result.Aggregates.Rate("late"), 1e-9)
}

func TestListService_QuerySearchByName(t *testing.T) {
	_, client := newFixture(t)
	svc := attendance.NewListService(client)

	result := svc.Query(sampleEntries(), listquery.Criteria{listquery.SearchKey: "jane"}, listquery.SortSpec{})
	require.Len(t, result.View, 1)
	assert.Equal(t, "Jane Doe", result.View[0].EmployeeName)
}

func TestListService_QuerySortByDateDescending(t *testing.T) {
	_, client := newFixture(t)
	svc := attendance.NewListService(client)

	result := svc.Query(sampleEntries(), listquery.Criteria{}, listquery.SortSpec{Field: "date", Direction: listquery.Descending})
	require.Len(t, result.View, 3)
	assert.Equal(t, "2026-08-28", result.View[0].Date)
	assert.Equal(t, "2026-08-27", result.View[2].Date)
}

func TestListService_QuerySortByCheckInTimeWithMissingValues(t *testing.T) {
	_, client := newFixture(t)
	svc := attendance.NewListService(client)

	result := svc.Query(sampleEntries(), listquery.Criteria{}, listquery.SortSpec{Field: "check_in_time", Direction: listquery.Ascending})
	require.Len(t, result.View, 3)
	// Entries without a check-in time sort first.
	assert.Equal(t, "3", result.View[0].ID)
	assert.Equal(t, "1", result.View[1].ID)
	assert.Equal(t, "2", result.View[2].ID)
}
