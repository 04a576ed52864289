package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500

	// DefaultImageURL is used when an item is saved without an image.
	DefaultImageURL = "https://via.placeholder.com/300x200?text=No+Image"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not built by NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Details carries the editable attributes of a menu item.
type Details struct {
	Name            string
	Description     string
	Category        Category
	Price           decimal.Decimal
	Ingredients     []string
	Available       bool
	PreparationTime int
	ImageURL        string
}

// Item is a purchasable menu entry.
//
// Item follows these invariants:
//   - Name is 1..100 characters after trimming, description at most 500
//   - Category is one of the fixed categories
//   - Price is non-negative and kept at two decimals
//   - Preparation time (minutes) is non-negative
//   - Image URL is an absolute http(s) URL; empty input falls back to DefaultImageURL
type Item struct {
	id              kernel.UUID
	name            string
	description     string
	category        Category
	price           kernel.Money
	ingredients     []string
	available       bool
	preparationTime int
	imageURL        string
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewItem creates a catalog item stamped with now.
func NewItem(id kernel.UUID, details Details, now time.Time) (*Item, error) {
	return RestoreItem(id, details, now, now)
}

// RestoreItem rebuilds an item from persisted state, re-checking every invariant.
func RestoreItem(id kernel.UUID, details Details, createdAt, updatedAt time.Time) (*Item, error) {
	item := &Item{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.apply(details),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate reports whether the item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID          { return i.id }
func (i *Item) Name() string             { return i.name }
func (i *Item) Description() string      { return i.description }
func (i *Item) Category() Category       { return i.category }
func (i *Item) Price() kernel.Money      { return i.price }
func (i *Item) IsAvailable() bool        { return i.available }
func (i *Item) PreparationTime() int     { return i.preparationTime }
func (i *Item) ImageURL() string         { return i.imageURL }
func (i *Item) CreatedAt() time.Time     { return i.createdAt }
func (i *Item) UpdatedAt() time.Time     { return i.updatedAt }
func (i *Item) Ingredients() []string    { return append([]string(nil), i.ingredients...) }
func (i *Item) Details() Details         { return i.details() }
func (i *Item) IsEqual(other *Item) bool { return other != nil && i.id.IsEqual(other.id) }

// Update replaces all editable attributes. On failure the item is left unchanged.
func (i *Item) Update(details Details, now time.Time) error {
	candidate := *i
	if err := candidate.apply(details); err != nil {
		return err
	}
	candidate.updatedAt = now
	*i = candidate
	return nil
}

// ToggleAvailability flips the availability flag.
func (i *Item) ToggleAvailability(now time.Time) {
	i.available = !i.available
	i.updatedAt = now
}

func (i *Item) details() Details {
	return Details{
		Name:            i.name,
		Description:     i.description,
		Category:        i.category,
		Price:           i.price.Amount(),
		Ingredients:     i.Ingredients(),
		Available:       i.available,
		PreparationTime: i.preparationTime,
		ImageURL:        i.imageURL,
	}
}

func (i *Item) apply(d Details) error {
	i.available = d.Available
	return errors.Join(
		i.setName(d.Name),
		i.setDescription(d.Description),
		i.setCategory(d.Category),
		i.setPrice(d.Price),
		i.setIngredients(d.Ingredients),
		i.setPreparationTime(d.PreparationTime),
		i.setImageURL(d.ImageURL),
	)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := len([]rune(name)); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	i.name = name
	return nil
}

func (i *Item) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if n := len([]rune(description)); n > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, MaxDescriptionLength)
	}
	i.description = description
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return err
	}
	i.price = money
	return nil
}

func (i *Item) setIngredients(ingredients []string) error {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			cleaned = append(cleaned, ing)
		}
	}
	i.ingredients = cleaned
	return nil
}

func (i *Item) setPreparationTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparationTime",
			fmt.Errorf("%d is negative", minutes),
		)
	}
	i.preparationTime = minutes
	return nil
}

func (i *Item) setImageURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		i.imageURL = DefaultImageURL
		return nil
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", fmt.Errorf("%q is not an http(s) URL", raw))
	}
	i.imageURL = raw
	return nil
}
