package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"kucukaslan/timeapp/config"
	"kucukaslan/timeapp/domain"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

const (
	pgUniqueViolation = "23505"
	siteCounterID     = 1
	connectTimeout    = 5 * time.Second
)

var postgres = &Postgres{}

var _ domain.UserStore = &Postgres{}

// User represents the users table
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Email        string    `bun:"email,type:text,unique,notnull"`
	PasswordHash string    `bun:"password_hash,type:text,notnull"`
	CreatedAt    time.Time `bun:"created_at,type:timestamptz,nullzero,default:now()"`
}

// SiteCounter represents the single-row site_counters table
type SiteCounter struct {
	bun.BaseModel `bun:"table:site_counters"`

	ID        int       `bun:"id,pk,default:1"`
	Total     int64     `bun:"total,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,type:timestamptz,nullzero,default:now()"`
}

// Postgres is the optional PostgreSQL store. It connects lazily: a failed or
// missing connection is retried by Ready.
type Postgres struct {
	// connectMu serializes connection attempts so readers of mu never wait on the network
	connectMu sync.Mutex
	mu        sync.RWMutex
	dsn       string
	db        *bun.DB
}

// InitPostgres configures the PostgreSQL store and attempts a first connection.
// An empty DSN leaves PostgreSQL disabled and is not an error.
func InitPostgres(ctx context.Context, cfg *config.PostgresConfig) error {
	postgres.mu.Lock()
	postgres.dsn = cfg.DSN
	postgres.mu.Unlock()

	if cfg.DSN == "" {
		log.Println("PG_DSN not set, accounts are unavailable")
		return nil
	}
	return postgres.Ready(ctx)
}

// ClosePostgres closes the PostgreSQL connection
func ClosePostgres() error {
	postgres.mu.Lock()
	defer postgres.mu.Unlock()

	if postgres.db != nil {
		if err := postgres.db.Close(); err != nil {
			return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
		}
		postgres.db = nil
		log.Println("PostgreSQL connection closed")
	}
	return nil
}

// GetPostgres returns the PostgreSQL store instance
func GetPostgres() *Postgres {
	return postgres
}

func (p *Postgres) Connected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.db != nil
}

// Ready returns nil when a connection is established, connecting first if needed
func (p *Postgres) Ready(ctx context.Context) error {
	if p.Connected() {
		return nil
	}

	p.connectMu.Lock()
	defer p.connectMu.Unlock()
	if p.Connected() {
		return nil
	}

	p.mu.RLock()
	dsn := p.dsn
	p.mu.RUnlock()
	if dsn == "" {
		return domain.ErrStoreUnavailable
	}

	db, err := connectPostgres(ctx, dsn)
	if err != nil {
		log.Printf("PG connect/init failed: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	p.mu.Lock()
	p.db = db
	p.mu.Unlock()
	log.Println("PG connected and schema ensured")
	return nil
}

func connectPostgres(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, err
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the users and site_counters tables if they don't exist
// and seeds the site counter row
func EnsureSchema(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewCreateTable().
		Model((*User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("users table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*SiteCounter)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("site_counters table: %w", err)
	}

	if _, err := seedCounterQuery(db).Exec(ctx); err != nil {
		return fmt.Errorf("site_counters seed: %w", err)
	}
	return nil
}

func seedCounterQuery(db bun.IDB) *bun.InsertQuery {
	return db.NewInsert().
		Model(&SiteCounter{ID: siteCounterID}).
		On("CONFLICT (id) DO NOTHING")
}

func (p *Postgres) conn() (*bun.DB, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return p.db, nil
}

// CreateUser inserts a user with a lower-cased email and returns its id
func (p *Postgres) CreateUser(ctx context.Context, email, passwordHash string) (int64, error) {
	db, err := p.conn()
	if err != nil {
		return 0, err
	}

	user := &User{
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
	}
	if _, err = insertUserQuery(db, user).Exec(ctx); err != nil {
		return 0, insertUserError(err)
	}
	return user.ID, nil
}

func insertUserQuery(db bun.IDB, user *User) *bun.InsertQuery {
	return db.NewInsert().
		Model(user).
		Returning("id")
}

// insertUserError maps a unique violation on users.email to ErrEmailTaken
func insertUserError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrEmailTaken
	}
	return fmt.Errorf("failed to insert user: %w", err)
}

// GetUserByEmail looks a user up case-insensitively
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	var user User
	err = userByEmailQuery(db, &user, email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &domain.User{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}, nil
}

// emails are stored lower-cased, so only the argument needs folding
func userByEmailQuery(db bun.IDB, user *User, email string) *bun.SelectQuery {
	return db.NewSelect().
		Model(user).
		Where("email = LOWER(?)", email).
		Limit(1)
}

func (p *Postgres) IncrementSiteCounter(ctx context.Context) error {
	db, err := p.conn()
	if err != nil {
		return err
	}

	if _, err = incrementQuery(db).Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment site counter: %w", err)
	}
	return nil
}

func incrementQuery(db bun.IDB) *bun.UpdateQuery {
	return db.NewUpdate().
		Model((*SiteCounter)(nil)).
		Set("total = total + 1").
		Set("updated_at = now()").
		Where("id = ?", siteCounterID)
}

func (p *Postgres) GetSiteCounter(ctx context.Context) (int64, error) {
	db, err := p.conn()
	if err != nil {
		return 0, err
	}

	var total int64
	if err = siteCounterQuery(db).Scan(ctx, &total); err != nil {
		return 0, fmt.Errorf("failed to read site counter: %w", err)
	}
	return total, nil
}

func siteCounterQuery(db bun.IDB) *bun.SelectQuery {
	return db.NewSelect().
		Model((*SiteCounter)(nil)).
		Column("total").
		Where("id = ?", siteCounterID)
}

// HealthCheck verifies that the PostgreSQL connection is alive
func (p *Postgres) HealthCheck(ctx context.Context) error {
	db, err := p.conn()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}
