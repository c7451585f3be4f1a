package geo

import "context"

// StaticLocator returns a fixed position taken from configuration.
type StaticLocator struct {
	Point Point
	set   bool
}

// NewStaticLocator builds a locator for a fixed position.
func NewStaticLocator(p Point) *StaticLocator {
	return &StaticLocator{Point: p, set: true}
}

// Unavailable is a locator with no position configured. Every Locate call
// fails with ErrLocationUnavailable.
func Unavailable() *StaticLocator {
	return &StaticLocator{}
}

func (s *StaticLocator) Locate(ctx context.Context) (Point, error) {
	if err := ctx.Err(); err != nil {
		return Point{}, err
	}
	if !s.set {
		return Point{}, ErrLocationUnavailable
	}
	if err := s.Point.Validate(); err != nil {
		return Point{}, err
	}
	return s.Point, nil
}
