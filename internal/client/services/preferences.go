package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
	"github.com/dmitrijs2005/llmpid-console/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/dbx"
)

const (
	keyLastUsername = "last_username"
	keyPageLimit    = "page_limit"
	keySort         = "sort"
)

// Preferences are the console settings kept between runs.
type Preferences struct {
	LastUsername string
	PageLimit    int
	Sort         models.Sort
}

// DefaultPreferences is what a fresh database yields.
func DefaultPreferences() Preferences {
	return Preferences{PageLimit: models.DefaultLimit, Sort: models.DefaultSort}
}

// Query returns the first history page with the saved paging settings.
func (p Preferences) Query() models.ListQuery {
	return models.ListQuery{Page: 1, Limit: p.PageLimit, Sort: p.Sort}.Normalize()
}

type PreferencesService interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
	RememberUsername(ctx context.Context, username string) error
	Reset(ctx context.Context) error
}

type preferencesService struct {
	db *sql.DB
}

// NewPreferencesService stores preferences in the local database db.
func NewPreferencesService(db *sql.DB) PreferencesService {
	return &preferencesService{db: db}
}

func (s *preferencesService) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Load returns saved preferences with defaults for whatever is missing or
// unreadable.
func (s *preferencesService) Load(ctx context.Context) (Preferences, error) {
	p := DefaultPreferences()
	r := s.repo(s.db)

	get := func(key string) (string, bool, error) {
		v, err := r.Get(ctx, key)
		if errors.Is(err, common.ErrNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return string(v), true, nil
	}

	if v, ok, err := get(keyLastUsername); err != nil {
		return p, fmt.Errorf("load preferences: %w", err)
	} else if ok {
		p.LastUsername = v
	}

	if v, ok, err := get(keyPageLimit); err != nil {
		return p, fmt.Errorf("load preferences: %w", err)
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil {
			p.PageLimit = n
		}
	}

	if v, ok, err := get(keySort); err != nil {
		return p, fmt.Errorf("load preferences: %w", err)
	} else if ok {
		p.Sort = models.ParseSortParam(v)
	}

	p.PageLimit = p.Query().Limit
	return p, nil
}

// Save writes all preferences in one transaction.
func (s *preferencesService) Save(ctx context.Context, p Preferences) error {
	q := p.Query()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if p.LastUsername != "" {
			if err := r.Set(ctx, keyLastUsername, []byte(p.LastUsername)); err != nil {
				return err
			}
		}
		if err := r.Set(ctx, keyPageLimit, []byte(strconv.Itoa(q.Limit))); err != nil {
			return err
		}
		return r.Set(ctx, keySort, []byte(q.Sort.Param()))
	})
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

func (s *preferencesService) RememberUsername(ctx context.Context, username string) error {
	if username == "" {
		return nil
	}
	if err := s.repo(s.db).Set(ctx, keyLastUsername, []byte(username)); err != nil {
		return fmt.Errorf("remember username: %w", err)
	}
	return nil
}

// Reset forgets everything, including the last username.
func (s *preferencesService) Reset(ctx context.Context) error {
	if err := s.repo(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("reset preferences: %w", err)
	}
	return nil
}
