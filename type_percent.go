package lansky

import (
	"fmt"
	"math"
)

// Percent is a ratio times 100, like a profit margin of 35.8%.
type Percent float64

// Equal compares margins to a ten-thousandth of a point.
func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < 1e-4 }

func (p Percent) String() string { return fmt.Sprintf("%.1f%%", float64(p)) }
