package dataset

import "fmt"

// Shape is the arrangement of keys in a dataset.
type Shape string

const (
	Random       Shape = "random"
	Reversed     Shape = "reversed"
	AlmostSorted Shape = "almost_sorted"
)

// Shapes lists every shape in the order datasets are generated and run.
var Shapes = []Shape{Random, Reversed, AlmostSorted}

// FileName returns the conventional file name for a dataset of this shape.
func (s Shape) FileName() string {
	switch s {
	case Random:
		return "random_strings.txt"
	case Reversed:
		return "reverse_sorted_strings.txt"
	case AlmostSorted:
		return "almost_sorted_strings.txt"
	}
	return string(s) + "_strings.txt"
}

// ParseShape converts a name to a Shape.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q (want one of random, reversed, almost_sorted)", name)
}
