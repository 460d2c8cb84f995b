package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db     bun.IDB
	logger *slog.Logger
}

// NewRepository creates a new round repository.
func NewRepository(db bun.IDB, logger *slog.Logger) Repository {
	return &Impl{db: db, logger: logger}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateRound inserts the round header and its holes. Callers that need
// both writes to be atomic pass a transaction.
func (r *Impl) CreateRound(ctx context.Context, db bun.IDB, round rounddomain.Round) error {
	db = r.resolveDB(db)

	m, err := toModel(round)
	if err != nil {
		return fmt.Errorf("failed to map round: %w", err)
	}

	if _, err := db.NewInsert().Model(m).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}
	if len(m.Holes) == 0 {
		return nil
	}
	if _, err := db.NewInsert().Model(&m.Holes).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert round holes: %w", err)
	}
	return nil
}

// GetRound retrieves a round with its holes.
func (r *Impl) GetRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) (rounddomain.Round, error) {
	db = r.resolveDB(db)
	m := new(Round)
	err := selectRounds(db, m).
		Where("r.id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rounddomain.Round{}, ErrNotFound
		}
		return rounddomain.Round{}, fmt.Errorf("failed to get round: %w", err)
	}
	return r.fromModel(ctx, m), nil
}

// ListClubRounds returns every round of a club, newest first.
func (r *Impl) ListClubRounds(ctx context.Context, db bun.IDB, clubID string) ([]rounddomain.Round, error) {
	var models []*Round
	err := selectRounds(r.resolveDB(db), &models).
		Where("r.club_id = ?", clubID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list club rounds: %w", err)
	}
	return r.fromModels(ctx, models), nil
}

// ListPlayerRounds returns a member's rounds, newest first.
func (r *Impl) ListPlayerRounds(ctx context.Context, db bun.IDB, clubID, playerID string, limit int) ([]rounddomain.Round, error) {
	var models []*Round
	q := selectRounds(r.resolveDB(db), &models).
		Where("r.club_id = ?", clubID).
		Where("r.player_id = ?", playerID)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list player rounds: %w", err)
	}
	return r.fromModels(ctx, models), nil
}

// ListCourseRounds returns the club's rounds on one course, newest first.
// The key is matched case-insensitively.
func (r *Impl) ListCourseRounds(ctx context.Context, db bun.IDB, clubID, courseKey string) ([]rounddomain.Round, error) {
	var models []*Round
	err := selectRounds(r.resolveDB(db), &models).
		Where("r.club_id = ?", clubID).
		Where("lower(r.course_key) = ?", rounddomain.NormalizeCourseName(courseKey)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list course rounds: %w", err)
	}
	return r.fromModels(ctx, models), nil
}

// ListClubIDs returns every club with at least one round.
func (r *Impl) ListClubIDs(ctx context.Context, db bun.IDB) ([]string, error) {
	var ids []string
	err := r.resolveDB(db).NewSelect().
		Model((*Round)(nil)).
		ColumnExpr("DISTINCT r.club_id").
		OrderExpr("r.club_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list club ids: %w", err)
	}
	return ids, nil
}

// selectRounds starts a round query into model that loads holes in hole
// order and returns rounds newest first. Ties on the date keep insertion
// order.
func selectRounds(db bun.IDB, model any) *bun.SelectQuery {
	return db.NewSelect().
		Model(model).
		Relation("Holes", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("rh.number ASC")
		}).
		OrderExpr("r.played_on DESC, r.created_at ASC")
}

func (r *Impl) fromModels(ctx context.Context, models []*Round) []rounddomain.Round {
	out := make([]rounddomain.Round, 0, len(models))
	for _, m := range models {
		out = append(out, r.fromModel(ctx, m))
	}
	return out
}

// fromModel maps m and logs holes whose shot detail had to be dropped.
func (r *Impl) fromModel(ctx context.Context, m *Round) rounddomain.Round {
	round, err := m.toDomain()
	if err != nil {
		r.logger.WarnContext(ctx, "Dropped unreadable shot detail",
			attr.RoundID("round_id", m.ID),
			attr.ClubID(m.ClubID),
			attr.Error(err),
		)
	}
	return round
}
