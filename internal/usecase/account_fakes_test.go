package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"medical-office-api/config"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/service"
	"medical-office-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	rows   map[int]entity.User
	nextID int
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{rows: map[int]entity.User{}, nextID: 1}
	for _, u := range users {
		r.rows[u.ID] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.rows[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range r.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) FindPending(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	all, _ := r.FindAll(ctx, db)
	var out []entity.User
	for _, u := range all {
		if !u.IsApproved {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Approve(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	u, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	u.IsApproved = true
	r.rows[id] = u
	return 1, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	var pending int64
	for _, u := range r.rows {
		if !u.IsApproved {
			pending++
		}
	}
	return int64(len(r.rows)), pending, nil
}

type fakeAdminRepo struct {
	rows   map[int]entity.Admin
	nextID int
	locks  int
}

func newFakeAdminRepo(admins ...entity.Admin) *fakeAdminRepo {
	r := &fakeAdminRepo{rows: map[int]entity.Admin{}, nextID: 1}
	for _, a := range admins {
		r.rows[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *fakeAdminRepo) Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	admin.ID = r.nextID
	admin.CreatedAt = time.Now()
	r.nextID++
	r.rows[admin.ID] = *admin
	return nil
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Admin, error) {
	for _, a := range r.rows {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Admin, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAdminRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admin, error) {
	var out []entity.Admin
	for _, a := range r.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAdminRepo) Update(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	r.rows[admin.ID] = *admin
	return nil
}

func (r *fakeAdminRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeAdminRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeAdminRepo) LockTable(ctx context.Context, db *gorm.DB) error {
	r.locks++
	return nil
}

func newTestTokenStore(t *testing.T) (*service.TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return service.NewTokenStore(client, newTestLogger()), mr
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
}
