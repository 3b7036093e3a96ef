package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
)

const (
	pkColumn        = "pk"
	idColumn        = "id"
	updatedAtColumn = "updated_at"
)

// Options carries the collaborators every repository needs
type Options struct {
	TimeProvider coreport.TimeProvider
	IDGenerator  coreport.IDGenerator
	Logger       coreport.Logger
	QueryTimeout time.Duration
}

// documentRef is the part of a stored row an upsert needs to decide between
// update and insert
type documentRef struct {
	PK        uint64
	UpdatedAt int64
}

// collection implements find, upsert and delete for one model type. Fields
// are addressed by their JSON names and translated to columns through the
// model's json tags.
type collection[M any] struct {
	db         *gorm.DB
	entity     string
	columns    map[string]string
	duplicate  error
	opts       Options
	classifier *ErrorClassifier
}

func newCollection[M any](db *gorm.DB, entityName string, duplicate error, opts Options) *collection[M] {
	return &collection[M]{
		db:         db,
		entity:     entityName,
		columns:    jsonColumns(db, new(M)),
		duplicate:  duplicate,
		opts:       opts,
		classifier: NewErrorClassifier(),
	}
}

// jsonColumns maps each json-tagged field of model to its column name
func jsonColumns(db *gorm.DB, model any) map[string]string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		panic(fmt.Sprintf("repository: cannot parse model %T: %v", model, err))
	}

	columns := make(map[string]string, len(stmt.Schema.Fields))
	for _, field := range stmt.Schema.Fields {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" || field.DBName == "" {
			continue
		}
		columns[name] = field.DBName
	}
	return columns
}

// column resolves a JSON field name to its column
func (c *collection[M]) column(name string) (string, error) {
	col, ok := c.columns[name]
	if !ok {
		return "", fmt.Errorf("%w: %s has no field %q", errs.ErrInternalServer, c.entity, name)
	}
	return col, nil
}

// withTimeout bounds ctx by the configured query timeout
func (c *collection[M]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return c.opts.TimeProvider.WithTimeout(ctx, c.opts.QueryTimeout)
}

// handleDatabaseError standardizes database error handling
func (c *collection[M]) handleDatabaseError(operation string, err error, key string) error {
	mapped := c.classifier.ToDomain(err, c.duplicate)
	if errors.Is(mapped, errs.ErrNotFound) {
		return mapped
	}

	fields := map[string]any{
		"entity": c.entity,
		"key":    key,
		"error":  err.Error(),
	}
	switch c.classifier.Classify(err) {
	case DuplicateKeyError:
		c.opts.Logger.Warn(fmt.Sprintf("Unique violation when %s", operation), fields)
	case TimeoutError:
		fields["timeout_ms"] = c.opts.QueryTimeout.Milliseconds()
		c.opts.Logger.Warn(fmt.Sprintf("Database timed out when %s", operation), fields)
	default:
		c.opts.Logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

func (c *collection[M]) keyCondition(key persistence.Key) (clause.Expression, error) {
	col, err := c.column(key.Field)
	if err != nil {
		return nil, err
	}
	return clause.Eq{Column: clause.Column{Name: col}, Value: key.Value}, nil
}

// find returns the rows matching q
func (c *collection[M]) find(ctx context.Context, q persistence.Query) ([]M, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tx := c.db.WithContext(ctx).Model(new(M))

	filterKeys := make([]string, 0, len(q.Filter))
	for k := range q.Filter {
		filterKeys = append(filterKeys, k)
	}
	sort.Strings(filterKeys)
	for _, k := range filterKeys {
		col, err := c.column(k)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: col}, Value: q.Filter[k]})
	}

	if q.Sort != nil {
		col, err := c.column(q.Sort.Field)
		if err != nil {
			return nil, err
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: q.Sort.Descending}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: pkColumn}, Desc: q.Sort.Descending})
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []M
	if err := tx.Find(&rows).Error; err != nil {
		return nil, c.handleDatabaseError("finding records", err, "")
	}
	return rows, nil
}

// first returns the row matching key
func (c *collection[M]) first(ctx context.Context, key persistence.Key) (*M, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cond, err := c.keyCondition(key)
	if err != nil {
		return nil, err
	}

	var row M
	if err := c.db.WithContext(ctx).Where(cond).Take(&row).Error; err != nil {
		return nil, c.handleDatabaseError("finding record", err, key.Value)
	}
	return &row, nil
}

// upsert updates the row matching key with patch or inserts a new row with
// the key, the patch and column defaults. The updated_at stamp is the
// current time, or one past the previous stamp if the clock has not moved
// beyond it.
func (c *collection[M]) upsert(ctx context.Context, key persistence.Key, patch entity.Patch) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cond, err := c.keyCondition(key)
	if err != nil {
		return err
	}
	keyCol, _ := c.column(key.Field)

	values := make(map[string]any, len(patch)+3)
	for name, value := range patch {
		col, err := c.column(name)
		if err != nil {
			return err
		}
		values[col] = value
	}

	now := c.opts.TimeProvider.Now().UnixMilli()

	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ref documentRef
		lookup := tx.Model(new(M)).Select(pkColumn, updatedAtColumn).Where(cond).Take(&ref)

		switch {
		case lookup.Error == nil:
			stamp := now
			if stamp <= ref.UpdatedAt {
				stamp = ref.UpdatedAt + 1
			}
			values[updatedAtColumn] = stamp
			return tx.Model(new(M)).Where(clause.Eq{Column: clause.Column{Name: pkColumn}, Value: ref.PK}).Updates(values).Error

		case errors.Is(lookup.Error, gorm.ErrRecordNotFound):
			values[keyCol] = key.Value
			if id, ok := values[idColumn].(string); !ok || id == "" {
				values[idColumn] = c.opts.IDGenerator.NewID()
			}
			values[updatedAtColumn] = now
			return tx.Model(new(M)).Create(values).Error

		default:
			return lookup.Error
		}
	})
	if err != nil {
		return c.handleDatabaseError("upserting record", err, key.Value)
	}

	c.opts.Logger.Debug("Record upserted", map[string]any{
		"entity": c.entity,
		"key":    key.Field,
		"value":  key.Value,
		"fields": len(patch),
	})
	return nil
}

// remove deletes every row matching key and returns how many were removed
func (c *collection[M]) remove(ctx context.Context, key persistence.Key) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cond, err := c.keyCondition(key)
	if err != nil {
		return 0, err
	}

	result := c.db.WithContext(ctx).Where(cond).Delete(new(M))
	if result.Error != nil {
		return 0, c.handleDatabaseError("deleting records", result.Error, key.Value)
	}
	return result.RowsAffected, nil
}

// create inserts row as-is
func (c *collection[M]) create(ctx context.Context, row *M) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.db.WithContext(ctx).Create(row).Error; err != nil {
		return c.handleDatabaseError("creating record", err, "")
	}
	return nil
}
