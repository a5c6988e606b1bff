package entity

import (
	"strings"
	"unicode/utf8"
)

// Category is a bare id/name aggregate with no timestamps.
type Category struct {
	id   int64
	name string
}

type CategoryProps struct {
	Name string
}

func NewCategory(props CategoryProps) (*Category, error) {
	if err := validateCategoryName(props.Name); err != nil {
		return nil, err
	}
	return &Category{id: newID(), name: props.Name}, nil
}

type CategoryRecord struct {
	ID   int64
	Name string
}

func RestoreCategory(rec CategoryRecord) *Category {
	return &Category{id: rec.ID, name: rec.Name}
}

func (c *Category) ID() int64    { return c.id }
func (c *Category) Name() string { return c.name }

func (c *Category) Record() CategoryRecord {
	return CategoryRecord{ID: c.id, Name: c.name}
}

func (c *Category) UpdateDetails(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newCategoryError("Name is required")
	}
	if utf8.RuneCountInString(name) < 3 {
		return newCategoryError("Name must be at least 3 characters long")
	}
	if utf8.RuneCountInString(name) > 50 {
		return newCategoryError("Name must be less than 50 characters long")
	}
	return nil
}
