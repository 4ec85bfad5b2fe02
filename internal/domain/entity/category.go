package entity

import "github.com/pkg/errors"

// Category classifies a wardrobe item or outfit piece.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
	CategoryOuterwear Category = "outerwear"
	CategoryDress     Category = "dress"
	CategoryBag       Category = "bag"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryTop,
		CategoryBottom,
		CategoryShoes,
		CategoryAccessory,
		CategoryOuterwear,
		CategoryDress,
		CategoryBag,
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryShoes, CategoryAccessory,
		CategoryOuterwear, CategoryDress, CategoryBag:
		return true
	default:
		return false
	}
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", errors.Errorf("unknown category %q", s)
	}

	return c, nil
}

// UnmarshalText rejects categories outside the known set. An empty value
// decodes to the zero Category, meaning "unset".
func (c *Category) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = ""

		return nil
	}

	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
