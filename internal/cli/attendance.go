package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
	attendanceService "github.com/cmlabs-hris/hris-console-go/internal/service/attendance"
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Attendance records",
}

var (
	attendanceFrom     string
	attendanceTo       string
	attendanceStatus   string
	attendanceEmployee string
	attendanceSearch   string
	attendanceSortBy   string
	attendanceDesc     bool
	attendanceExport   string
)

var attendanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendance entries with filters and rates",
	Args:  cobra.NoArgs,
	RunE:  runAttendanceList,
}

func init() {
	attendanceListCmd.Flags().StringVar(&attendanceFrom, "from", "", "start date (YYYY-MM-DD)")
	attendanceListCmd.Flags().StringVar(&attendanceTo, "to", "", "end date (YYYY-MM-DD)")
	attendanceListCmd.Flags().StringVar(&attendanceStatus, "status", "", "filter by status")
	attendanceListCmd.Flags().StringVar(&attendanceEmployee, "employee", "", "filter by employee id")
	attendanceListCmd.Flags().StringVar(&attendanceSearch, "search", "", "search employee name or id")
	attendanceListCmd.Flags().StringVar(&attendanceSortBy, "sort", "date", "sort field")
	attendanceListCmd.Flags().BoolVar(&attendanceDesc, "desc", true, "sort descending")
	attendanceListCmd.Flags().StringVar(&attendanceExport, "export", "", "write the view to an .xlsx file")
	attendanceCmd.AddCommand(attendanceListCmd)
}

func runAttendanceList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := setup(ctx)
	if err != nil {
		return err
	}

	list := attendanceService.NewListService(app.client)

	filter := domain.HistoryFilter{
		EmployeeID: attendanceEmployee,
		StartDate:  attendanceFrom,
		EndDate:    attendanceTo,
		Status:     attendanceStatus,
	}
	criteria := listquery.Criteria{
		"status":   attendanceStatus,
		"employee": attendanceEmployee,
		"search":   attendanceSearch,
	}

	result, err := list.List(ctx, filter, criteria, sortSpec(attendanceSortBy, attendanceDesc))
	if err != nil {
		return friendlyError(err)
	}

	rows := make([][]string, 0, len(result.View))
	for _, e := range result.View {
		rows = append(rows, []string{
			e.Date, e.EmployeeName, clockString(e.CheckInTime), clockString(e.CheckOutTime), string(e.Status),
		})
	}
	printTable([]string{"DATE", "EMPLOYEE", "IN", "OUT", "STATUS"}, rows)
	printAggregates(result.Aggregates)
	fmt.Printf("Present rate: %.0f%%, late rate: %.0f%%\n",
		result.Aggregates.Rate(string(domain.StatusPresent))*100,
		result.Aggregates.Rate(string(domain.StatusLate))*100)

	if attendanceExport != "" {
		if err := export.WriteFile(attendanceExport, result.View, attendanceColumns(), "Attendance"); err != nil {
			return err
		}
		fmt.Printf("Exported %d rows to %s\n", len(result.View), attendanceExport)
	}
	return nil
}

func attendanceColumns() []export.Column[domain.Entry] {
	return []export.Column[domain.Entry]{
		{Header: "Date", Value: func(e domain.Entry) any { return e.Date }},
		{Header: "Employee", Value: func(e domain.Entry) any { return e.EmployeeName }},
		{Header: "Check-in", Value: func(e domain.Entry) any { return clockString(e.CheckInTime) }},
		{Header: "Check-out", Value: func(e domain.Entry) any { return clockString(e.CheckOutTime) }},
		{Header: "Status", Value: func(e domain.Entry) any { return string(e.Status) }},
		{Header: "Work hours", Value: func(e domain.Entry) any {
			if e.WorkHours == nil {
				return ""
			}
			return *e.WorkHours
		}},
	}
}
