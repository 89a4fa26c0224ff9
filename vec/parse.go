package vec

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a vector from a "x, y, z" string. Unlike the arithmetic
// functions it can fail: anything that is not three numbers is an error,
// never a silent NaN.
func Parse(s string) (Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}

	var v Vec3

	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}

		v[i] = float32(f)
	}

	return v, nil
}

// String formats the components to 2 decimal places.
func (a Vec3) String() string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", a[0], a[1], a[2])
}
