package usecase

import (
	"context"
	"testing"
)

func TestGetStats(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	registerTestUser(t, service, "admin@example.com", "0811111111", true)
	registerTestUser(t, service, "a@example.com", "0822222222", false)
	registerTestUser(t, service, "b@example.com", "0833333333", false)

	for _, seed := range []struct {
		title  string
		rating float64
	}{
		{"Coral Bay", 4.5},
		{"Mountain View", 3.8},
	} {
		if _, err := service.Resort.CreateResort(ctx, resortRequest(seed.title, "Pangandaran", seed.rating)); err != nil {
			t.Fatalf("CreateResort(%s) error = %v", seed.title, err)
		}
	}

	stats, err := service.Dashboard.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	// Admin accounts are not customers
	if stats.TotalUsers != 2 {
		t.Errorf("total users = %d, want 2", stats.TotalUsers)
	}
	if stats.TotalResorts != 2 {
		t.Errorf("total resorts = %d, want 2", stats.TotalResorts)
	}
	// (4.5 + 3.8) / 2 = 4.15, rounded to one decimal
	if stats.AverageRating != 4.2 {
		t.Errorf("average rating = %v, want 4.2", stats.AverageRating)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	service, _, _ := newTestService()

	stats, err := service.Dashboard.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if stats.TotalUsers != 0 || stats.TotalResorts != 0 || stats.AverageRating != 0 {
		t.Errorf("empty store stats = %+v, want zeros", stats)
	}
}

func TestGetPopularResorts(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	ratings := []float64{3.1, 4.9, 2.5, 4.2, 4.7, 3.8, 5.0}
	for i, rating := range ratings {
		req := resortRequest("Resort", "Pangandaran", rating)
		req.Title = req.Title + string(rune('A'+i))
		if _, err := service.Resort.CreateResort(ctx, req); err != nil {
			t.Fatalf("CreateResort() error = %v", err)
		}
	}

	popular, err := service.Dashboard.GetPopularResorts(ctx)
	if err != nil {
		t.Fatalf("GetPopularResorts() error = %v", err)
	}

	if len(popular) != 5 {
		t.Fatalf("popular count = %d, want 5", len(popular))
	}

	for i := 1; i < len(popular); i++ {
		if popular[i].Rating > popular[i-1].Rating {
			t.Errorf("popular resorts not sorted by rating: %v before %v",
				popular[i-1].Rating, popular[i].Rating)
		}
	}
	if popular[0].Rating != 5.0 {
		t.Errorf("top rating = %v, want 5.0", popular[0].Rating)
	}
}
