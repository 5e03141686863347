package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testJWTSecret = "test-secret"
	testAdminKey  = "test-admin-key"
)

func testConfig() *utils.Config {
	hash, _ := bcrypt.GenerateFromPassword([]byte(testAdminKey), bcrypt.MinCost)

	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:           testJWTSecret,
			UserExpiryHours:  168,
			AdminExpiryHours: 24,
		},
		Auth: utils.AuthConfig{
			AdminKeyHash:       string(hash),
			ResetExpiryMinutes: 30,
		},
	}
}

func newTestRepository() (*repository.Repository, *fakeUserRepo, *fakeResortRepo) {
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	resorts := &fakeResortRepo{resorts: map[uuid.UUID]*entity.Resort{}}

	return &repository.Repository{User: users, Resort: resorts}, users, resorts
}

func newTestService() (*Service, *fakeUserRepo, *fakeResortRepo) {
	repo, users, resorts := newTestRepository()
	return NewService(repo, testConfig(), zap.NewNop()), users, resorts
}

// ==================== FAKE USER REPOSITORY ====================

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User

	// createErr simulates a store failure on the next insert
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByResetTokenHash(_ context.Context, tokenHash string) (*entity.User, error) {
	for _, user := range f.users {
		if user.ResetTokenHash != nil && *user.ResetTokenHash == tokenHash {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	all := f.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role entity.UserRole) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if user, ok := f.users[id]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	if user, ok := f.users[id]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

func (f *fakeUserRepo) SetResetToken(_ context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	if user, ok := f.users[id]; ok {
		user.ResetTokenHash = &tokenHash
		user.ResetTokenExpiresAt = &expiresAt
	}
	return nil
}

func (f *fakeUserRepo) ResetPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if user, ok := f.users[id]; ok {
		user.PasswordHash = passwordHash
		user.ResetTokenHash = nil
		user.ResetTokenExpiresAt = nil
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

// sorted returns newest first, matching the repository ORDER BY
func (f *fakeUserRepo) sorted() []*entity.User {
	all := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

// ==================== FAKE RESORT REPOSITORY ====================

type fakeResortRepo struct {
	resorts map[uuid.UUID]*entity.Resort
}

func (f *fakeResortRepo) Create(_ context.Context, resort *entity.Resort) error {
	f.resorts[resort.ID] = resort
	return nil
}

func (f *fakeResortRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Resort, error) {
	return f.resorts[id], nil
}

func (f *fakeResortRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Resort, error) {
	all := f.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeResortRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.resorts)), nil
}

func (f *fakeResortRepo) Search(_ context.Context, destination, title string) ([]*entity.Resort, error) {
	var matched []*entity.Resort
	for _, resort := range f.sorted() {
		switch {
		case destination != "":
			if containsFold(resort.Title, destination) || containsFold(resort.Location, destination) {
				matched = append(matched, resort)
			}
		case title != "":
			if containsFold(resort.Title, title) {
				matched = append(matched, resort)
			}
		default:
			matched = append(matched, resort)
		}
	}
	return matched, nil
}

func (f *fakeResortRepo) FindPopular(_ context.Context, limit int) ([]*entity.Resort, error) {
	all := f.sorted()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Rating > all[j].Rating
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeResortRepo) AverageRating(_ context.Context) (float64, error) {
	if len(f.resorts) == 0 {
		return 0, nil
	}
	var sum float64
	for _, resort := range f.resorts {
		sum += resort.Rating
	}
	return sum / float64(len(f.resorts)), nil
}

func (f *fakeResortRepo) Update(_ context.Context, resort *entity.Resort) error {
	f.resorts[resort.ID] = resort
	return nil
}

func (f *fakeResortRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.resorts, id)
	return nil
}

// sorted returns newest first, matching the repository ORDER BY
func (f *fakeResortRepo) sorted() []*entity.Resort {
	all := make([]*entity.Resort, 0, len(f.resorts))
	for _, resort := range f.resorts {
		all = append(all, resort)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
