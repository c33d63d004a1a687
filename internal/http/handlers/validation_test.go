package handlers

import (
	"testing"

	"github.com/tastykitchen/admin-api/internal/models"
)

func validRequest() ProductRequest {
	return ProductRequest{
		Name:         "Pizza Margherita",
		Description:  "Tomato, mozzarella, basil",
		Image:        "https://img.example/margherita.png",
		OptionsTitle: "Size",
		MenuID:       "cat-pizza",
		Options:      []models.PriceOption{{Size: "30cm", Price: 9.5}},
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ProductRequest)
		wantField string
	}{
		{"missing name", func(p *ProductRequest) { p.Name = "  " }, "Name"},
		{"missing description", func(p *ProductRequest) { p.Description = "" }, "Description"},
		{"missing image", func(p *ProductRequest) { p.Image = "" }, "Image"},
		{"missing options title", func(p *ProductRequest) { p.OptionsTitle = "" }, "OptionsTitle"},
		{"missing category", func(p *ProductRequest) { p.MenuID = "" }, "MenuID"},
		{"no options", func(p *ProductRequest) { p.Options = nil }, "Options"},
		{"blank option size", func(p *ProductRequest) { p.Options[0].Size = "" }, "Options"},
		{"zero option price", func(p *ProductRequest) { p.Options[0].Price = 0 }, "Options"},
		{"negative option price", func(p *ProductRequest) { p.Options[0].Price = -1 }, "Options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			errs := validateProduct(req)
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error on field %q, got %+v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateProductValid(t *testing.T) {
	if errs := validateProduct(validRequest()); len(errs) != 0 {
		t.Errorf("expected no errors, got %+v", errs)
	}
}
