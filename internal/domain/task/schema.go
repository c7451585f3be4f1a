package task

import (
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
)

// Schema wires Task into the list engine. Search covers title, description
// and assignee name, matching the board's search box.
func Schema() listquery.Schema[Task] {
	return listquery.Schema[Task]{
		ID: func(t Task) string { return t.ID },
		Fields: map[string]func(Task) (string, bool){
			"status": func(t Task) (string, bool) {
				return string(t.Status), t.Status != ""
			},
			"priority": func(t Task) (string, bool) {
				return string(t.Priority), t.Priority != ""
			},
			"assignee": func(t Task) (string, bool) {
				return t.AssigneeID, t.AssigneeID != ""
			},
			"project": func(t Task) (string, bool) {
				return t.ProjectID, t.ProjectID != ""
			},
		},
		Search: []func(Task) string{
			func(t Task) string { return t.Title },
			func(t Task) string { return t.Description },
			func(t Task) string { return t.AssigneeName },
		},
		Sort: map[string]func(Task) any{
			"title":    func(t Task) any { return t.Title },
			"status":   func(t Task) any { return string(t.Status) },
			"priority": func(t Task) any { return string(t.Priority) },
			"assignee": func(t Task) any { return t.AssigneeName },
			"due_date": func(t Task) any {
				if t.DueDate == nil {
					return nil
				}
				return *t.DueDate
			},
		},
		Status: func(t Task) string { return string(t.Status) },
	}
}
