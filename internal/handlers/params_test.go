package handlers

import (
	"bytes"
	"errors"
	"math"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"immoBack/internal/models"
)

func TestParseFloatFieldCoercion(t *testing.T) {
	if v, err := parseFloatField("price", ""); err != nil || v != 0 {
		t.Fatalf("blank value should coerce to 0, got %v / %v", v, err)
	}
	if v, err := parseFloatField("price", "420000.50"); err != nil || v != 420000.50 {
		t.Fatalf("unexpected parse result: %v / %v", v, err)
	}

	_, err := parseFloatField("price", "abc")
	var verr models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("non-numeric input must be a ValidationError, got %v", err)
	}

	if _, err := parseFloatField("price", "-5"); err == nil {
		t.Fatal("negative price must be rejected")
	}
	if _, err := parseFloatField("price", "NaN"); err == nil {
		t.Fatal("NaN must never reach the stored record")
	}
}

func TestParseIntFieldCoercion(t *testing.T) {
	if v, err := parseIntField("rooms", "4"); err != nil || v != 4 {
		t.Fatalf("unexpected parse result: %v / %v", v, err)
	}
	if _, err := parseIntField("rooms", "4.5"); err == nil {
		t.Fatal("fractional rooms must be rejected")
	}
	if _, err := parseIntField("rooms", "-1"); err == nil {
		t.Fatal("negative rooms must be rejected")
	}
}

func TestParseAreaRange(t *testing.T) {
	r, err := parseAreaRange("", "")
	if err != nil || r != nil {
		t.Fatalf("no bounds should mean no filter, got %#v / %v", r, err)
	}

	r, err = parseAreaRange("100", "")
	if err != nil || r == nil || r.Min != 100 || r.Max != math.MaxFloat64 {
		t.Fatalf("min-only range wrong: %#v / %v", r, err)
	}

	r, err = parseAreaRange("", "200")
	if err != nil || r == nil || r.Min != 0 || r.Max != 200 {
		t.Fatalf("max-only range wrong: %#v / %v", r, err)
	}

	if _, err := parseAreaRange("low", "200"); err == nil {
		t.Fatal("non-numeric bound must be rejected")
	}
}

func TestPropertyFormFromRequest(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("title", "Einfamilienhaus")
	writer.WriteField("price", "420000")
	writer.WriteField("location_city", "Graz")
	writer.WriteField("location_address", "Hauptstrasse 12")
	writer.WriteField("property_type", "Haus")
	writer.WriteField("rooms", "5")
	writer.WriteField("ground_area", "640")
	writer.WriteField("house_area", "180")
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/properties", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1024); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}

	form, err := propertyFormFromRequest(req)
	if err != nil {
		t.Fatalf("propertyFormFromRequest failed: %v", err)
	}
	if form.Title != "Einfamilienhaus" || form.Price != 420000 || form.Rooms != 5 {
		t.Fatalf("unexpected form: %#v", form)
	}
	if form.GroundArea != 640 || form.HouseArea != 180 {
		t.Fatalf("area fields not coerced: %#v", form)
	}
}

func TestPropertyFormRejectsNonNumericPrice(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("title", "Einfamilienhaus")
	writer.WriteField("property_type", "Haus")
	writer.WriteField("price", "teuer")
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/properties", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1024); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}

	if _, err := propertyFormFromRequest(req); err == nil {
		t.Fatal("expected a validation error for non-numeric price")
	}
}
