package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/slabworks/cardscan/internal/repository"
	"github.com/slabworks/cardscan/internal/vision"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	batches repository.BatchRepository
	uploads repository.UploadRepository
	pairs   repository.PairRepository
	logger  *slog.Logger
}

func NewService(batches repository.BatchRepository, uploads repository.UploadRepository, pairs repository.PairRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{batches: batches, uploads: uploads, pairs: pairs, logger: logger}
}

// ExportBatchXLSX returns an XLSX workbook (as bytes) with one row per active
// pair in the batch: the paired filenames, pairing metadata, and whatever card
// fields extraction has filled in so far.
func (s *Service) ExportBatchXLSX(ctx context.Context, batchID, ownerID uuid.UUID) ([]byte, error) {
	start := time.Now()

	if _, err := s.batches.Get(ctx, batchID, ownerID); err != nil {
		return nil, err
	}
	pairs, err := s.pairs.ListActiveByBatch(ctx, batchID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query pairs: %w", err)
	}
	ups, err := s.uploads.ListByBatch(ctx, batchID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query uploads: %w", err)
	}
	filenames := make(map[uuid.UUID]string, len(ups))
	for _, u := range ups {
		filenames[u.ID] = u.Filename
	}

	f := excelize.NewFile()
	const sheet = "Cards"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Front File", "Back File", "Method", "Confidence"}
	headers = append(headers, titleCase(vision.CardFieldNames)...)
	headers = append(headers, "Provider", "Extracted At")
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range pairs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, filenames[p.FrontUploadID])
		if p.BackUploadID != nil {
			write(2, filenames[*p.BackUploadID])
		} else {
			write(2, "")
		}
		write(3, string(p.Method))
		write(4, fmt.Sprintf("%.2f", p.Confidence))

		col := 5
		for _, name := range vision.CardFieldNames {
			if p.Extraction != nil {
				write(col, p.Extraction.Fields[name])
			} else {
				write(col, "")
			}
			col++
		}
		if p.Extraction != nil {
			write(col, p.Extraction.Provider)
			write(col+1, p.Extraction.ExtractedAt.UTC().Format("2006-01-02 15:04:05"))
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 32) // filenames
	_ = f.SetColWidth(sheet, "C", "D", 12) // pairing metadata
	_ = f.SetColWidth(sheet, "E", "E", 28) // card name

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"batch_id", batchID.String(),
		"rows", len(pairs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// titleCase makes header labels out of snake_case field names.
func titleCase(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		words := []byte(n)
		up := true
		for j, c := range words {
			switch {
			case c == '_':
				words[j] = ' '
				up = true
			case up && c >= 'a' && c <= 'z':
				words[j] = c - 'a' + 'A'
				up = false
			default:
				up = false
			}
		}
		out[i] = string(words)
	}
	return out
}
