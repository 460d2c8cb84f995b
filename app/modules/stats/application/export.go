package statsservice

import (
	"context"
	"fmt"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/xuri/excelize/v2"
)

const (
	membersSheet  = "Members"
	rankingsSheet = "Rankings"
)

// ExportWorkbook writes the club's member stats and every rankable
// leaderboard to an xlsx workbook.
func (s *StatsService) ExportWorkbook(ctx context.Context, clubID string) ([]byte, error) {
	stats, err := unwrap(s.MemberStats(ctx, clubID))
	if err != nil {
		return nil, err
	}
	return buildWorkbook(stats)
}

func buildWorkbook(stats []statsdomain.MemberStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", membersSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := writeMembers(f, stats); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(rankingsSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writeRankings(f, stats); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}

// writeMembers lays out one row per member and one column per metric.
// Metrics a member has no value for stay blank.
func writeMembers(f *excelize.File, stats []statsdomain.MemberStats) error {
	metrics := statsdomain.Metrics()
	if err := setCell(f, membersSheet, 1, 1, "Player"); err != nil {
		return err
	}
	for i, m := range metrics {
		if err := setCell(f, membersSheet, i+2, 1, m.Label); err != nil {
			return err
		}
	}
	for r, ms := range stats {
		row := r + 2
		if err := setCell(f, membersSheet, 1, row, ms.PlayerID); err != nil {
			return err
		}
		for i, m := range metrics {
			v, ok := m.Value(ms)
			if !ok {
				continue
			}
			if err := setCell(f, membersSheet, i+2, row, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRankings(f *excelize.File, stats []statsdomain.MemberStats) error {
	for i, h := range []string{"Metric", "Position", "Player", "Value", "Display"} {
		if err := setCell(f, rankingsSheet, i+1, 1, h); err != nil {
			return err
		}
	}
	row := 2
	for _, m := range statsdomain.RankableMetrics() {
		rows, err := statsdomain.Rank(stats, m.Key)
		if err != nil {
			return fmt.Errorf("failed to rank %s: %w", m.Key, err)
		}
		for _, rr := range rows {
			for col, v := range []any{m.Label, rr.Position, rr.PlayerID, rr.Value, rr.Display} {
				if err := setCell(f, rankingsSheet, col+1, row, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}
