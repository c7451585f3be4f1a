package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
	employeeService "github.com/cmlabs-hris/hris-console-go/internal/service/employee"
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Employee directory",
}

var (
	employeesDepartment string
	employeesStatus     string
	employeesType       string
	employeesBranch     string
	employeesSearch     string
	employeesSortBy     string
	employeesDesc       bool
	employeesExport     string
)

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees with filters and aggregates",
	Args:  cobra.NoArgs,
	RunE:  runEmployeesList,
}

func init() {
	employeesListCmd.Flags().StringVar(&employeesDepartment, "department", "", "filter by department")
	employeesListCmd.Flags().StringVar(&employeesStatus, "status", "", "filter by employment status")
	employeesListCmd.Flags().StringVar(&employeesType, "type", "", "filter by employment type")
	employeesListCmd.Flags().StringVar(&employeesBranch, "branch", "", "filter by branch")
	employeesListCmd.Flags().StringVar(&employeesSearch, "search", "", "search name, email or code")
	employeesListCmd.Flags().StringVar(&employeesSortBy, "sort", "full_name", "sort field")
	employeesListCmd.Flags().BoolVar(&employeesDesc, "desc", false, "sort descending")
	employeesListCmd.Flags().StringVar(&employeesExport, "export", "", "write the view to an .xlsx file")
	employeesCmd.AddCommand(employeesListCmd)
}

func runEmployeesList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := setup(ctx)
	if err != nil {
		return err
	}

	directory := employeeService.NewDirectory(app.client)

	filter := employee.ListFilter{
		Department:     employeesDepartment,
		EmploymentType: employeesType,
		Status:         employeesStatus,
		Branch:         employeesBranch,
		Search:         employeesSearch,
		SortBy:         employeesSortBy,
	}
	criteria := listquery.Criteria{
		"department":      employeesDepartment,
		"status":          employeesStatus,
		"employment_type": employeesType,
		"branch":          employeesBranch,
		"search":          employeesSearch,
	}

	result, err := directory.List(ctx, filter, criteria, sortSpec(employeesSortBy, employeesDesc))
	if err != nil {
		return friendlyError(err)
	}

	rows := make([][]string, 0, len(result.View))
	for _, e := range result.View {
		rows = append(rows, []string{
			e.EmployeeCode, e.FullName, e.Email, e.Department, e.Position, string(e.EmploymentStatus),
		})
	}
	printTable([]string{"CODE", "NAME", "EMAIL", "DEPARTMENT", "POSITION", "STATUS"}, rows)
	printAggregates(result.Aggregates)
	fmt.Printf("Base salary total: %s\n", employeeService.TotalBaseSalary(result.View).StringFixed(2))

	if employeesExport != "" {
		if err := export.WriteFile(employeesExport, result.View, employeeColumns(), "Employees"); err != nil {
			return err
		}
		fmt.Printf("Exported %d rows to %s\n", len(result.View), employeesExport)
	}
	return nil
}

func employeeColumns() []export.Column[employee.Employee] {
	return []export.Column[employee.Employee]{
		{Header: "Code", Value: func(e employee.Employee) any { return e.EmployeeCode }},
		{Header: "Name", Value: func(e employee.Employee) any { return e.FullName }},
		{Header: "Email", Value: func(e employee.Employee) any { return e.Email }},
		{Header: "Department", Value: func(e employee.Employee) any { return e.Department }},
		{Header: "Position", Value: func(e employee.Employee) any { return e.Position }},
		{Header: "Type", Value: func(e employee.Employee) any { return string(e.EmploymentType) }},
		{Header: "Status", Value: func(e employee.Employee) any { return string(e.EmploymentStatus) }},
		{Header: "Base salary", Value: func(e employee.Employee) any {
			if e.BaseSalary == nil {
				return ""
			}
			return e.BaseSalary.InexactFloat64()
		}},
	}
}
