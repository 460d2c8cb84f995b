package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds and round_holes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS rounds (
					id UUID PRIMARY KEY,
					club_id VARCHAR(64) NOT NULL,
					player_id VARCHAR(64) NOT NULL,
					course_id VARCHAR(64),
					course_name TEXT,
					course_key TEXT NOT NULL,
					played_on TIMESTAMPTZ NOT NULL,
					tee VARCHAR(32),
					hole_count INT NOT NULL,
					total_score INT NOT NULL,
					total_par INT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_rounds_club_played_on ON rounds(club_id, played_on DESC);
				CREATE INDEX IF NOT EXISTS idx_rounds_club_player ON rounds(club_id, player_id);
				CREATE INDEX IF NOT EXISTS idx_rounds_club_course ON rounds(club_id, lower(course_key));
			`); err != nil {
				return fmt.Errorf("failed to create rounds table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS round_holes (
					round_id UUID NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
					number INT NOT NULL CHECK (number BETWEEN 1 AND 18),
					par INT NOT NULL CHECK (par BETWEEN 3 AND 6),
					yardage INT,
					strokes INT NOT NULL,
					putts INT NOT NULL,
					fairway VARCHAR(8) NOT NULL,
					ob_count INT NOT NULL DEFAULT 0,
					bunker_count INT NOT NULL DEFAULT 0,
					penalty_count INT NOT NULL DEFAULT 0,
					pin VARCHAR(16),
					shots JSONB,
					PRIMARY KEY (round_id, number)
				);
			`); err != nil {
				return fmt.Errorf("failed to create round_holes table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping rounds and round_holes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS round_holes;`); err != nil {
				return fmt.Errorf("failed to drop round_holes table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS rounds;`); err != nil {
				return fmt.Errorf("failed to drop rounds table: %w", err)
			}
			return nil
		})
	})
}
