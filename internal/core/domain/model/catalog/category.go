package catalog

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Category groups menu items for display and filtering.
type Category string

const (
	Appetizer  Category = "Appetizer"
	MainCourse Category = "Main Course"
	Dessert    Category = "Dessert"
	Beverage   Category = "Beverage"
)

// Categories lists every valid category in menu order.
func Categories() []Category {
	return []Category{Appetizer, MainCourse, Dessert, Beverage}
}

// ParseCategory accepts the exact category names.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Category) Validate() error {
	for _, known := range Categories() {
		if c == known {
			return nil
		}
	}
	names := make([]string, 0, len(Categories()))
	for _, known := range Categories() {
		names = append(names, string(known))
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q must be one of: %s", string(c), strings.Join(names, ", ")),
	)
}

func (c Category) String() string {
	return string(c)
}
