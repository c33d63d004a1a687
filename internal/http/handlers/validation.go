package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateProduct checks a create/update payload before any backend call is
// made; an invalid payload never leaves the admin API.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, ProductValidationError{Field: "Description", Description: "Description is required"})
	}
	if strings.TrimSpace(p.Image) == "" {
		errs = append(errs, ProductValidationError{Field: "Image", Description: "Image URL is required"})
	}
	if strings.TrimSpace(p.OptionsTitle) == "" {
		errs = append(errs, ProductValidationError{Field: "OptionsTitle", Description: "Options title is required"})
	}
	if strings.TrimSpace(p.MenuID) == "" {
		errs = append(errs, ProductValidationError{Field: "MenuID", Description: "Category is required"})
	}
	if len(p.Options) == 0 {
		errs = append(errs, ProductValidationError{Field: "Options", Description: "At least one size option is required"})
	}
	for _, opt := range p.Options {
		if strings.TrimSpace(opt.Size) == "" {
			errs = append(errs, ProductValidationError{Field: "Options", Description: "Option size is required"})
			break
		}
	}
	for _, opt := range p.Options {
		if opt.Price <= 0 {
			errs = append(errs, ProductValidationError{Field: "Options", Description: "Option price must be greater than zero"})
			break
		}
	}
	return errs
}
