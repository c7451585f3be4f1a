package employee_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/api"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/apitest"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-console-go/internal/service/employee"
)

func newDirectory(t *testing.T, records []domain.Employee) (*apitest.Server, *employee.Directory) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	srv.Employees = records

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	token := srv.Token("user-1", "emp-1", "company-1")
	client := api.New(context.Background(), srv.BaseURL(), token, logger)
	return srv, employee.NewDirectory(client)
}

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "emp-1", EmployeeCode: "E001", FullName: "Jane Doe", Email: "jane.doe@x.com", Department: "engineering", EmploymentStatus: domain.EmploymentStatusActive, BaseSalary: money("1200.50")},
		{ID: "emp-2", EmployeeCode: "E002", FullName: "John Smith", Email: "john@x.com", Department: "sales", EmploymentStatus: domain.EmploymentStatusActive, BaseSalary: money("900.00")},
		{ID: "emp-3", EmployeeCode: "E003", FullName: "Ann Lee", Email: "ann@x.com", Department: "engineering", EmploymentStatus: domain.EmploymentStatusResigned},
	}
}

func TestDirectory_List(t *testing.T) {
	srv, dir := newDirectory(t, sampleEmployees())

	result, err := dir.List(context.Background(), domain.ListFilter{}, listquery.Criteria{"department": "engineering"}, listquery.SortSpec{Field: "full_name", Direction: listquery.Ascending})
	require.NoError(t, err)

	require.Len(t, result.View, 2)
	assert.Equal(t, "Ann Lee", result.View[0].FullName)
	assert.Equal(t, "Jane Doe", result.View[1].FullName)
	assert.Equal(t, 1, srv.Count("GET /employees"))

	// Aggregates are computed over the filtered view.
	assert.Equal(t, 2, result.Aggregates.Total)
	assert.InDelta(t, 0.5, result.Aggregates.Rate("active"), 1e-9)
}

func TestDirectory_ListRejectsBadFilter(t *testing.T) {
	_, dir := newDirectory(t, nil)

	_, err := dir.List(context.Background(), domain.ListFilter{Status: "bogus"}, listquery.Criteria{}, listquery.SortSpec{})
	assert.Error(t, err)
}

func TestDirectory_QuerySearchMatchesNameAndEmail(t *testing.T) {
	_, dir := newDirectory(t, nil)
	records := sampleEmployees()

	result := dir.Query(records, listquery.Criteria{listquery.SearchKey: "jane"}, listquery.SortSpec{})
	require.Len(t, result.View, 1)
	assert.Equal(t, "emp-1", result.View[0].ID)

	result = dir.Query(records, listquery.Criteria{listquery.SearchKey: "@x.com"}, listquery.SortSpec{})
	assert.Len(t, result.View, 3)
}

func TestDirectory_QuerySortBySalary(t *testing.T) {
	_, dir := newDirectory(t, nil)

	result := dir.Query(sampleEmployees(), listquery.Criteria{}, listquery.SortSpec{Field: "base_salary", Direction: listquery.Descending})
	require.Len(t, result.View, 3)
	assert.Equal(t, "emp-1", result.View[0].ID)
	// The record without a salary sorts last.
	assert.Equal(t, "emp-3", result.View[2].ID)
}

func TestDirectory_Profile(t *testing.T) {
	_, dir := newDirectory(t, sampleEmployees())

	profile, err := dir.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
}

func TestDirectory_PruneSelection(t *testing.T) {
	_, dir := newDirectory(t, nil)
	sel := listquery.Selection{"emp-1": {}, "emp-gone": {}}

	sel = dir.PruneSelection(sel, sampleEmployees())
	assert.ElementsMatch(t, []string{"emp-1"}, sel.IDs())
}

func TestTotalBaseSalary(t *testing.T) {
	total := employee.TotalBaseSalary(sampleEmployees())
	assert.True(t, total.Equal(decimal.RequireFromString("2100.50")), "got %s", total)

	assert.True(t, employee.TotalBaseSalary(nil).IsZero())
}
