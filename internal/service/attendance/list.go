package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
)

// ListService backs the admin attendance screen: one server-side fetch, then
// client-side filtering, sorting and aggregates through the list engine.
type ListService struct {
	api    API
	schema listquery.Schema[attendance.Entry]
}

func NewListService(api API) *ListService {
	return &ListService{api: api, schema: attendance.Schema()}
}

// List fetches entries matching the server filter and derives the view for
// the given criteria and sort.
func (l *ListService) List(ctx context.Context, filter attendance.HistoryFilter, criteria listquery.Criteria, sort listquery.SortSpec) (listquery.Result[attendance.Entry], error) {
	if err := filter.Validate(); err != nil {
		return listquery.Result[attendance.Entry]{}, err
	}
	entries, err := l.api.ListAttendance(ctx, filter)
	if err != nil {
		return listquery.Result[attendance.Entry]{}, err
	}
	return listquery.Query(entries, l.schema, criteria, sort), nil
}

// Query reruns the client-side pipeline over an already-fetched collection,
// the hot path when only the criteria changed.
func (l *ListService) Query(entries []attendance.Entry, criteria listquery.Criteria, sort listquery.SortSpec) listquery.Result[attendance.Entry] {
	return listquery.Query(entries, l.schema, criteria, sort)
}
