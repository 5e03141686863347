package usecase

import (
	"context"
	"errors"
	"testing"

	"resort-booking/internal/dto/request"

	"github.com/google/uuid"
)

func floatPtr(v float64) *float64 { return &v }

func resortRequest(title, location string, rating float64) *request.ResortRequest {
	return &request.ResortRequest{
		Title:            title,
		Location:         location,
		Price:            floatPtr(1250000),
		Rating:           floatPtr(rating),
		ShortDescription: "Beachfront resort",
		MapLink:          "https://www.google.com/maps/embed?pb=abc",
		ImgSrc:           "/uploads/cover.jpg",
		Photos:           []string{"/uploads/p1.jpg"},
	}
}

func TestCreateResort(t *testing.T) {
	service, _, resorts := newTestService()

	detail, err := service.Resort.CreateResort(context.Background(),
		resortRequest("Coral Bay", "Pangandaran", 4.5))
	if err != nil {
		t.Fatalf("CreateResort() error = %v", err)
	}

	stored := resorts.resorts[uuid.MustParse(detail.ID)]
	if stored == nil {
		t.Fatal("resort was not persisted")
	}

	// Omitted list fields are stored empty, never nil
	if stored.Amenities == nil || stored.Description == nil || stored.NearbyAttractions == nil {
		t.Error("list fields must default to empty slices")
	}
}

func TestCreateResortValidation(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *request.ResortRequest)
	}{
		{"rating above five", func(r *request.ResortRequest) { r.Rating = floatPtr(5.1) }},
		{"negative price", func(r *request.ResortRequest) { r.Price = floatPtr(-1) }},
		{"missing price", func(r *request.ResortRequest) { r.Price = nil }},
		{"plain map link", func(r *request.ResortRequest) { r.MapLink = "https://goo.gl/maps/x" }},
		{"missing title", func(r *request.ResortRequest) { r.Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := resortRequest("Coral Bay", "Pangandaran", 4.5)
			tt.mutate(req)

			if _, err := service.Resort.CreateResort(ctx, req); !errors.Is(err, ErrValidation) {
				t.Errorf("CreateResort() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUpdateResortKeepsImages(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	created, err := service.Resort.CreateResort(ctx, resortRequest("Coral Bay", "Pangandaran", 4.5))
	if err != nil {
		t.Fatalf("CreateResort() error = %v", err)
	}

	// Update without any new uploads
	update := resortRequest("Coral Bay Renamed", "Pangandaran", 4.7)
	update.ImgSrc = ""
	update.Photos = nil

	detail, err := service.Resort.UpdateResort(ctx, created.ID, update)
	if err != nil {
		t.Fatalf("UpdateResort() error = %v", err)
	}

	if detail.Title != "Coral Bay Renamed" {
		t.Errorf("title = %q, want %q", detail.Title, "Coral Bay Renamed")
	}
	if detail.ImgSrc != "/uploads/cover.jpg" {
		t.Errorf("cover image was dropped: %q", detail.ImgSrc)
	}
	if len(detail.Photos) != 1 {
		t.Errorf("photos were dropped: %v", detail.Photos)
	}

	// New uploads replace the stored ones
	replace := resortRequest("Coral Bay Renamed", "Pangandaran", 4.7)
	replace.ImgSrc = "/uploads/new-cover.jpg"
	replace.Photos = []string{"/uploads/new1.jpg", "/uploads/new2.jpg"}

	detail, err = service.Resort.UpdateResort(ctx, created.ID, replace)
	if err != nil {
		t.Fatalf("UpdateResort() error = %v", err)
	}
	if detail.ImgSrc != "/uploads/new-cover.jpg" || len(detail.Photos) != 2 {
		t.Errorf("images were not replaced: %q %v", detail.ImgSrc, detail.Photos)
	}
}

func TestGetResortByID(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Resort.GetResortByID(ctx, "not-a-uuid"); !errors.Is(err, ErrValidation) {
		t.Errorf("malformed ID error = %v, want ErrValidation", err)
	}

	if _, err := service.Resort.GetResortByID(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ID error = %v, want ErrNotFound", err)
	}

	created, err := service.Resort.CreateResort(ctx, resortRequest("Coral Bay", "Pangandaran", 4.5))
	if err != nil {
		t.Fatalf("CreateResort() error = %v", err)
	}

	detail, err := service.Resort.GetResortByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetResortByID() error = %v", err)
	}
	if detail.Title != "Coral Bay" {
		t.Errorf("title = %q, want %q", detail.Title, "Coral Bay")
	}
}

func TestSearchResorts(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	seed := []struct {
		title, location string
	}{
		{"Coral Bay", "Pangandaran"},
		{"Mountain View", "Bandung"},
		{"Bandung Hills", "Lembang"},
	}
	for _, s := range seed {
		if _, err := service.Resort.CreateResort(ctx, resortRequest(s.title, s.location, 4.0)); err != nil {
			t.Fatalf("CreateResort(%s) error = %v", s.title, err)
		}
	}

	// Destination matches title or location
	results, err := service.Resort.SearchResorts(ctx, "bandung", "")
	if err != nil {
		t.Fatalf("SearchResorts() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("destination search returned %d results, want 2", len(results))
	}

	// Title matches title only
	results, err = service.Resort.SearchResorts(ctx, "", "bandung")
	if err != nil {
		t.Fatalf("SearchResorts() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("title search returned %d results, want 1", len(results))
	}

	// No filters returns everything
	results, err = service.Resort.SearchResorts(ctx, "", "")
	if err != nil {
		t.Fatalf("SearchResorts() error = %v", err)
	}
	if len(results) != 3 {
		t.Errorf("unfiltered search returned %d results, want 3", len(results))
	}
}

func TestDeleteResort(t *testing.T) {
	service, _, resorts := newTestService()
	ctx := context.Background()

	if err := service.Resort.DeleteResort(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ID error = %v, want ErrNotFound", err)
	}

	created, err := service.Resort.CreateResort(ctx, resortRequest("Coral Bay", "Pangandaran", 4.5))
	if err != nil {
		t.Fatalf("CreateResort() error = %v", err)
	}

	if err := service.Resort.DeleteResort(ctx, created.ID); err != nil {
		t.Fatalf("DeleteResort() error = %v", err)
	}
	if len(resorts.resorts) != 0 {
		t.Error("resort was not removed")
	}
}
