package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"event-management/internal/logger"
)

// Store wraps the bun handle together with the buffer of staged
// mutations shared by every repository of one unit of work. Like a DB
// context, a Store is scoped to a single logical unit of work and is
// not safe for concurrent units.
type Store struct {
	Bun    *bun.DB
	Logger *logger.Logger

	staged []stagedOp
}

// stagedOp applies one buffered mutation inside the commit transaction
// and reports how many rows it touched.
type stagedOp func(ctx context.Context, tx bun.Tx) (int64, error)

func NewStore(bunDB *bun.DB, log *logger.Logger) *Store {
	return &Store{Bun: bunDB, Logger: log}
}

func (s *Store) stage(op stagedOp) {
	s.staged = append(s.staged, op)
}

// Pending reports how many mutations are waiting for a commit.
func (s *Store) Pending() int {
	return len(s.staged)
}

// CommitResult carries the outcome of a flush: the total affected row
// count and the underlying cause when the transaction failed.
type CommitResult struct {
	RowsAffected int64
	Err          error
}

// OK mirrors the classic boolean contract: true iff the commit went
// through and touched at least one row.
func (r CommitResult) OK() bool {
	return r.Err == nil && r.RowsAffected > 0
}

// Commit applies every staged mutation in one transaction. The buffer
// is drained on success so a unit of work cannot be applied twice; on
// failure it is kept intact for the caller to retry or discard.
func (s *Store) Commit(ctx context.Context) CommitResult {
	if len(s.staged) == 0 {
		return CommitResult{}
	}

	var rows int64
	err := s.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, op := range s.staged {
			n, err := op(ctx, tx)
			if err != nil {
				return err
			}
			rows += n
		}
		return nil
	})
	if err != nil {
		return CommitResult{Err: err}
	}

	s.staged = s.staged[:0]
	return CommitResult{RowsAffected: rows}
}

// Discard drops all staged mutations without applying them.
func (s *Store) Discard() {
	s.staged = s.staged[:0]
}

func (s *Store) logError(category, msg string) {
	if s.Logger != nil {
		s.Logger.Error(category, msg)
	}
}

// Query describes an optional filter, ordering and set of relations to
// eagerly load. The parts are always applied in the same sequence:
// filter, then includes, then ordering.
type Query struct {
	Filter  func(*bun.SelectQuery) *bun.SelectQuery
	OrderBy func(*bun.SelectQuery) *bun.SelectQuery
	Include []string
}

// Repository is the reusable CRUD surface over one bun-mapped entity
// type. Reads go straight to the store; mutations are staged on the
// shared Store and become durable only on SaveChanges.
type Repository[T any] struct {
	store *Store
	pk    string
}

// NewRepository binds a repository to its store and the entity's
// primary key column.
func NewRepository[T any](store *Store, pkColumn string) *Repository[T] {
	return &Repository[T]{store: store, pk: pkColumn}
}

// Store exposes the shared unit of work, mostly for specialized
// repositories layering their own queries on top.
func (r *Repository[T]) Store() *Store {
	return r.store
}

// GetAll returns every entity of the type in store-native order.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	err := r.store.Bun.NewSelect().Model(&out).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get runs a composed query. All parts of q are optional; a zero Query
// behaves like GetAll.
func (r *Repository[T]) Get(ctx context.Context, q Query) ([]T, error) {
	var out []T
	sel := r.store.Bun.NewSelect().Model(&out)
	if q.Filter != nil {
		sel = q.Filter(sel)
	}
	for _, rel := range q.Include {
		sel = sel.Relation(rel)
	}
	if q.OrderBy != nil {
		sel = q.OrderBy(sel)
	}
	if err := sel.Scan(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID looks an entity up by its key. Absence is not an error: the
// result is (nil, nil) when no row has that key.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	entity := new(T)
	err := r.store.Bun.NewSelect().
		Model(entity).
		Where("? = ?", bun.Ident(r.pk), id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// Add stages the entity for insertion and hands it back. The
// store-assigned key lands on the entity once the insert commits.
func (r *Repository[T]) Add(entity *T) *T {
	r.store.stage(func(ctx context.Context, tx bun.Tx) (int64, error) {
		res, err := tx.NewInsert().Model(entity).Exec(ctx)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
	return entity
}

// Update stages a full overwrite of the row identified by the entity's
// key. There is no field-level diffing: the entity must carry the
// complete desired state.
func (r *Repository[T]) Update(entity *T) *T {
	r.store.stage(func(ctx context.Context, tx bun.Tx) (int64, error) {
		res, err := tx.NewUpdate().Model(entity).WherePK().Exec(ctx)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
	return entity
}

// Delete stages removal of the given entity.
func (r *Repository[T]) Delete(entity *T) {
	r.store.stage(func(ctx context.Context, tx bun.Tx) (int64, error) {
		res, err := tx.NewDelete().Model(entity).WherePK().Exec(ctx)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
}

// DeleteByID stages removal of the entity with the given key. An
// unknown id is a no-op: nothing is staged, so it cannot influence the
// outcome of other staged work.
func (r *Repository[T]) DeleteByID(ctx context.Context, id int64) error {
	found, err := r.store.Bun.NewSelect().
		Model((*T)(nil)).
		Where("? = ?", bun.Ident(r.pk), id).
		Exists(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	r.store.stage(func(ctx context.Context, tx bun.Tx) (int64, error) {
		res, err := tx.NewDelete().
			Model((*T)(nil)).
			Where("? = ?", bun.Ident(r.pk), id).
			Exec(ctx)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
	return nil
}

// Exists reports whether at least one entity matches the filter. The
// store evaluates this with EXISTS, so no rows are materialized.
func (r *Repository[T]) Exists(ctx context.Context, filter func(*bun.SelectQuery) *bun.SelectQuery) (bool, error) {
	sel := r.store.Bun.NewSelect().Model((*T)(nil))
	if filter != nil {
		sel = filter(sel)
	}
	return sel.Exists(ctx)
}

// SaveChanges commits all staged mutations of the unit of work and
// reports whether anything was written. The underlying cause of a
// failed commit is logged rather than discarded; callers that need it
// can use Store().Commit directly.
func (r *Repository[T]) SaveChanges(ctx context.Context) bool {
	res := r.store.Commit(ctx)
	if res.Err != nil {
		r.store.logError("DATABASE", fmt.Sprintf("commit failed: %v", res.Err))
	}
	return res.OK()
}
