package attendance

import (
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
)

// Schema wires Entry into the list engine. The attendance screen filters on
// status and employee, searches by name, and sorts on the date and clock
// columns.
func Schema() listquery.Schema[Entry] {
	return listquery.Schema[Entry]{
		ID: func(e Entry) string { return e.ID },
		Fields: map[string]func(Entry) (string, bool){
			"status": func(e Entry) (string, bool) {
				return string(e.Status), e.Status != ""
			},
			"employee": func(e Entry) (string, bool) {
				return e.EmployeeID, e.EmployeeID != ""
			},
			"date": func(e Entry) (string, bool) {
				return e.Date, e.Date != ""
			},
		},
		Search: []func(Entry) string{
			func(e Entry) string { return e.EmployeeName },
			func(e Entry) string { return e.EmployeeID },
		},
		Sort: map[string]func(Entry) any{
			"date":          func(e Entry) any { return e.Date },
			"employee_name": func(e Entry) any { return e.EmployeeName },
			"status":        func(e Entry) any { return string(e.Status) },
			"check_in_time": func(e Entry) any {
				if e.CheckInTime == nil {
					return nil
				}
				return *e.CheckInTime
			},
			"check_out_time": func(e Entry) any {
				if e.CheckOutTime == nil {
					return nil
				}
				return *e.CheckOutTime
			},
		},
		Status: func(e Entry) string { return string(e.Status) },
	}
}
