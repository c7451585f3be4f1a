package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/api"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/geo"
	attendanceService "github.com/cmlabs-hris/hris-console-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hris-console-go/internal/service/employee"
)

var (
	checkinLocation string
	checkinNotes    string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Check in for today",
	Args:  cobra.NoArgs,
	RunE:  runCheckin,
}

func init() {
	checkinCmd.Flags().StringVar(&checkinLocation, "location", "office", "free-text location label")
	checkinCmd.Flags().StringVar(&checkinNotes, "notes", "", "optional notes")
}

func runCheckin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := setup(ctx)
	if err != nil {
		return err
	}

	sess, err := app.attendanceSession(ctx)
	if err != nil {
		return friendlyError(err)
	}

	entry, err := sess.CheckIn(ctx, checkinLocation, checkinNotes)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Checked in at %s", entry.CheckInTime.Local().Format("15:04:05"))
	if entry.Location != nil {
		fmt.Printf(" (%s)", *entry.Location)
	}
	fmt.Println()
	return nil
}

// attendanceSession builds the per-day session for the signed-in employee.
// When the token carries no employee id the profile is fetched once; failing
// that, transitions report ErrMissingEmployeeRecord instead of crashing.
func (a *app) attendanceSession(ctx context.Context) (*attendanceService.Session, error) {
	employeeID := a.sess.EmployeeID
	if employeeID == "" {
		directory := employeeService.NewDirectory(a.client)
		profile, err := directory.Profile(ctx)
		if err == nil {
			employeeID = profile.ID
		}
	}

	sess := attendanceService.NewSession(a.client, a.locator, employeeID)
	if employeeID != "" {
		if err := sess.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// friendlyError maps the error taxonomy to actionable messages; backend
// errors already carry the backend's own text.
func friendlyError(err error) error {
	switch {
	case errors.Is(err, geo.ErrPermissionDenied):
		return fmt.Errorf("location permission denied: enable location access and try again")
	case errors.Is(err, geo.ErrLocationUnavailable):
		return fmt.Errorf("no location capability is available: configure HRIS_LOCATION_PROVIDER")
	case errors.Is(err, api.ErrSessionExpired):
		return fmt.Errorf("your session has expired: sign in again and update HRIS_ACCESS_TOKEN")
	case errors.Is(err, domain.ErrMissingEmployeeRecord):
		return fmt.Errorf("no employee profile is linked to this account yet")
	default:
		return err
	}
}
