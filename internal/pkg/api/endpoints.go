package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/task"
)

// CheckIn calls POST /attendance/check-in and returns the created entry.
func (c *Client) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Entry, error) {
	raw, err := c.post(ctx, "/attendance/check-in", req)
	if err != nil {
		return attendance.Entry{}, err
	}
	entry, ok, err := DecodeObject[attendance.Entry](raw)
	if err != nil || !ok {
		return attendance.Entry{}, fmt.Errorf("decoding check-in response: %w", errOrMissing(err))
	}
	return entry, nil
}

// CheckOut calls POST /attendance/check-out and returns the updated entry.
func (c *Client) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Entry, error) {
	raw, err := c.post(ctx, "/attendance/check-out", req)
	if err != nil {
		return attendance.Entry{}, err
	}
	entry, ok, err := DecodeObject[attendance.Entry](raw)
	if err != nil || !ok {
		return attendance.Entry{}, fmt.Errorf("decoding check-out response: %w", errOrMissing(err))
	}
	return entry, nil
}

// TodayAttendance calls GET /attendance/today/:employeeId. A nil entry with
// a nil error means no entry exists for today; the backend reports that
// either as an explicit null or as a 404.
func (c *Client) TodayAttendance(ctx context.Context, employeeID string) (*attendance.Entry, error) {
	raw, err := c.get(ctx, "/attendance/today/"+url.PathEscape(employeeID), nil)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	entry, ok, err := DecodeObject[attendance.Entry](raw)
	if err != nil {
		return nil, fmt.Errorf("decoding today attendance: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// ListAttendance calls GET /attendance with the given filter.
func (c *Client) ListAttendance(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Entry, error) {
	query := url.Values{}
	if filter.EmployeeID != "" {
		query.Set("employeeId", filter.EmployeeID)
	}
	if filter.StartDate != "" {
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("endDate", filter.EndDate)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	raw, err := c.get(ctx, "/attendance", query)
	if err != nil {
		return nil, err
	}
	return DecodeList[attendance.Entry](raw), nil
}

// ListEmployees calls GET /employees with the given filter.
func (c *Client) ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	query := url.Values{}
	if filter.Department != "" {
		query.Set("department", filter.Department)
	}
	if filter.EmploymentType != "" {
		query.Set("employmentType", filter.EmploymentType)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Branch != "" {
		query.Set("branch", filter.Branch)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	raw, err := c.get(ctx, "/employees", query)
	if err != nil {
		return nil, err
	}
	return DecodeList[employee.Employee](raw), nil
}

// MyProfile calls GET /employees/me for the authenticated employee.
func (c *Client) MyProfile(ctx context.Context) (employee.Employee, error) {
	raw, err := c.get(ctx, "/employees/me", nil)
	if err != nil {
		return employee.Employee{}, err
	}
	profile, ok, err := DecodeObject[employee.Employee](raw)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("decoding profile: %w", err)
	}
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return profile, nil
}

// ListCompanyTasks calls GET /projects/tasks/company?companyId=.
func (c *Client) ListCompanyTasks(ctx context.Context, companyID string) ([]task.Task, error) {
	if companyID == "" {
		return nil, task.ErrMissingCompanyID
	}
	query := url.Values{}
	query.Set("companyId", companyID)

	raw, err := c.get(ctx, "/projects/tasks/company", query)
	if err != nil {
		return nil, err
	}
	return DecodeList[task.Task](raw), nil
}

func errOrMissing(err error) error {
	if err != nil {
		return err
	}
	return errors.New("empty payload")
}
