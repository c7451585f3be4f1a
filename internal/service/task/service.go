// Package task backs the company task board screen.
package task

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/task"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
)

// API is the slice of the backend client the board needs.
type API interface {
	ListCompanyTasks(ctx context.Context, companyID string) ([]task.Task, error)
}

// Board loads the company's task collection and derives board views.
type Board struct {
	api       API
	companyID string
	schema    listquery.Schema[task.Task]
}

func NewBoard(api API, companyID string) *Board {
	return &Board{api: api, companyID: companyID, schema: task.Schema()}
}

// List fetches the company tasks and derives the view for the given criteria
// and sort.
func (b *Board) List(ctx context.Context, criteria listquery.Criteria, sort listquery.SortSpec) (listquery.Result[task.Task], error) {
	records, err := b.api.ListCompanyTasks(ctx, b.companyID)
	if err != nil {
		return listquery.Result[task.Task]{}, err
	}
	return listquery.Query(records, b.schema, criteria, sort), nil
}

// Query reruns the client-side pipeline over an already-fetched collection.
func (b *Board) Query(records []task.Task, criteria listquery.Criteria, sort listquery.SortSpec) listquery.Result[task.Task] {
	return listquery.Query(records, b.schema, criteria, sort)
}

// CompletionRate is the share of done tasks in a view, in [0, 1].
func CompletionRate(agg listquery.Aggregates) float64 {
	return agg.Rate(string(task.StatusDone))
}
