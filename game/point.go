package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Point is a cell on a rectangular grid, X is the column and Y the row.
type Point struct {
	X, Y int
}

func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ParsePoint reads a point written as "x,y" (spaces allowed around both numbers).
func ParsePoint(text string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return Point{}, errors.Errorf("point %q: expected two comma separated numbers", text)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, errors.Wrapf(err, "point %q: bad x", text)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, errors.Wrapf(err, "point %q: bad y", text)
	}
	return Point{X: x, Y: y}, nil
}
