package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// GormDB owns the connection pool shared by every request.
type GormDB struct {
	db *gorm.DB
}

func NewGormDB(dsn string, opts Options) (*GormDB, error) {
	logLevel := opts.LogLevel
	if logLevel == 0 {
		logLevel = logger.Warn
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return &GormDB{}, fmt.Errorf("get sql db conn: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return NewFromGorm(gdb), nil
}

// NewFromGorm wraps an already opened gorm handle.
func NewFromGorm(gdb *gorm.DB) *GormDB {
	return &GormDB{
		db: gdb,
	}
}

func (f *GormDB) GetBy(ctx context.Context, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

func (f *GormDB) UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.db.WithContext(ctx).Model(model).Where(query, value).Updates(updates)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("updating record by %q: %w", column, ErrDuplicateKey)
		}
		return fmt.Errorf("updating record by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormDB) DeleteBy(ctx context.Context, model any, column string, value any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.db.WithContext(ctx).Where(query, value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting record by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
