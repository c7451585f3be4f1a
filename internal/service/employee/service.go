// Package employee backs the employee directory screen.
package employee

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
)

// API is the slice of the backend client the directory needs.
type API interface {
	ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error)
	MyProfile(ctx context.Context) (employee.Employee, error)
}

// Directory loads the employee collection and derives list views from it.
type Directory struct {
	api    API
	schema listquery.Schema[employee.Employee]
}

func NewDirectory(api API) *Directory {
	return &Directory{api: api, schema: employee.Schema()}
}

// List fetches employees and derives the view for the given criteria and
// sort.
func (d *Directory) List(ctx context.Context, filter employee.ListFilter, criteria listquery.Criteria, sort listquery.SortSpec) (listquery.Result[employee.Employee], error) {
	if err := filter.Validate(); err != nil {
		return listquery.Result[employee.Employee]{}, err
	}
	records, err := d.api.ListEmployees(ctx, filter)
	if err != nil {
		return listquery.Result[employee.Employee]{}, err
	}
	return listquery.Query(records, d.schema, criteria, sort), nil
}

// Query reruns the client-side pipeline over an already-fetched collection.
func (d *Directory) Query(records []employee.Employee, criteria listquery.Criteria, sort listquery.SortSpec) listquery.Result[employee.Employee] {
	return listquery.Query(records, d.schema, criteria, sort)
}

// Profile fetches the authenticated employee's own record.
func (d *Directory) Profile(ctx context.Context) (employee.Employee, error) {
	return d.api.MyProfile(ctx)
}

// PruneSelection drops selected ids no longer present in the collection.
func (d *Directory) PruneSelection(sel listquery.Selection, records []employee.Employee) listquery.Selection {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	return sel.Prune(ids)
}

// TotalBaseSalary sums the base salary of a view, for the payroll summary
// row. Records without a salary count as zero.
func TotalBaseSalary(records []employee.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		if rec.BaseSalary != nil {
			total = total.Add(*rec.BaseSalary)
		}
	}
	return total
}
