package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/domain/user"
)

// PostgresUserRepo implements user.Repo. The default getters omit
// password_hash at the query level; only the *WithHash variants read it.
type PostgresUserRepo struct {
	db *gorm.DB
}

func NewPostgresUserRepo(db *gorm.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (p *PostgresUserRepo) Create(ctx context.Context, u user.User) (uuid.UUID, error) {
	res := p.db.WithContext(ctx).Create(&u)
	if err := res.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, customErrors.ErrAlreadyExists
		}
		return uuid.Nil, customErrors.WrapInternal(err, "CreateUser")
	}
	return u.ID, nil
}

func (p *PostgresUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	res := p.db.WithContext(ctx).Omit("password_hash").Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return user.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return user.User{}, customErrors.WrapInternal(err, "GetUserByID")
	}

	return u, nil
}

func (p *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	res := p.db.WithContext(ctx).Omit("password_hash").Where("email = ?", email).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return user.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return user.User{}, customErrors.WrapInternal(err, "GetUserByEmail")
	}

	return u, nil
}

func (p *PostgresUserRepo) GetByIDWithHash(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return user.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return user.User{}, customErrors.WrapInternal(err, "GetUserByIDWithHash")
	}

	return u, nil
}

func (p *PostgresUserRepo) GetByEmailWithHash(ctx context.Context, email string) (user.User, error) {
	var u user.User
	res := p.db.WithContext(ctx).Where("email = ?", email).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return user.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return user.User{}, customErrors.WrapInternal(err, "GetUserByEmailWithHash")
	}

	return u, nil
}

func (p *PostgresUserRepo) Update(ctx context.Context, u user.User) error {
	res := p.db.WithContext(ctx).Save(&u)
	if err := res.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customErrors.ErrAlreadyExists
		}
		return customErrors.WrapInternal(err, "UpdateUser")
	}

	return nil
}

func (p *PostgresUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := p.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateLastLogin")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}
