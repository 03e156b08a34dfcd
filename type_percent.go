package bondplan

import (
	"fmt"
	"math"
)

// Percent is a rate or share expressed in percent points: Percent(3.5) is
// 3.5%. Interest rates, yields and allocation shares all use it.
type Percent float64

// Equal compares two percents within a 1e-4 point tolerance, enough for
// rates computed through float arithmetic.
func (p Percent) Equal(q Percent) bool {
	return math.Abs(float64(p-q)) < 0.0001
}

func (p Percent) String() string { return fmt.Sprintf("%.2f%%", p) }

// SignedString carries an explicit sign. Anything displaying as zero is
// shown as "-".
func (p Percent) SignedString() string {
	s := fmt.Sprintf("%+.2f%%", p)
	if s == "+0.00%" || s == "-0.00%" {
		return "-"
	}
	return s
}
