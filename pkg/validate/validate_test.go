package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/mangamart/pkg/validate"
)

type productInput struct {
	Name  string  `json:"name"  validate:"required,min=2,max=50"`
	Price string  `json:"price" validate:"required,numeric"`
	Site  string  `json:"site"  validate:"nullable,url"`
	Kind  string  `json:"kind"  validate:"required,in=manga,figure,poster"`
	Score float64 `json:"score" validate:"between=0,100"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:  "One Piece Vol. 1",
		Price: "9.99",
		Site:  "", // nullable — allowed to be empty
		Kind:  "manga",
		Score: 85.5,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "price", "kind"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestNumericRule(t *testing.T) {
	type in struct {
		Price string `json:"price" validate:"required,numeric"`
	}
	if errs := validate.Struct(in{Price: "abc"}); !validate.HasErrors(errs) {
		t.Error("expected non-numeric price to fail")
	}
	if errs := validate.Struct(in{Price: "-5.25"}); validate.HasErrors(errs) {
		t.Errorf("expected numeric price to pass, got: %v", errs)
	}
}

func TestLengthBounds(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Name: "a"}); !validate.HasErrors(errs) {
		t.Error("expected too-short name to fail")
	}
	if errs := validate.Struct(in{Name: "abcdef"}); !validate.HasErrors(errs) {
		t.Error("expected too-long name to fail")
	}
	if errs := validate.Struct(in{Name: "abc"}); validate.HasErrors(errs) {
		t.Errorf("expected name to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Kind string `json:"kind" validate:"required,in=manga,figure,poster"`
	}
	if errs := validate.Struct(in{Kind: "sticker"}); !validate.HasErrors(errs) {
		t.Error("expected out-of-set kind to fail")
	}
	if errs := validate.Struct(in{Kind: "figure"}); validate.HasErrors(errs) {
		t.Errorf("expected kind to pass, got: %v", errs)
	}
}

func TestURLRule(t *testing.T) {
	type in struct {
		Site string `json:"site" validate:"nullable,url"`
	}
	if errs := validate.Struct(in{Site: "not a url"}); !validate.HasErrors(errs) {
		t.Error("expected malformed url to fail")
	}
	if errs := validate.Struct(in{Site: "https://mangamart.dev"}); validate.HasErrors(errs) {
		t.Errorf("expected url to pass, got: %v", errs)
	}
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Score float64 `json:"score" validate:"between=0,100"`
	}
	if errs := validate.Struct(in{Score: 150}); !validate.HasErrors(errs) {
		t.Error("expected out-of-range score to fail")
	}
	if errs := validate.Struct(in{Score: 99.9}); validate.HasErrors(errs) {
		t.Errorf("expected score to pass, got: %v", errs)
	}
}
