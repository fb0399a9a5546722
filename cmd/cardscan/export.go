package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slabworks/cardscan/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <batch-id>",
	Short: "Export a batch's extraction results to an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("owner", "", "owner id (UUID, required)")
	exportCmd.Flags().StringP("out", "o", "cards.xlsx", "output file path")
	_ = exportCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	batchID, ownerID, err := parseIDOwner(cmd, args[0])
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	svc := export.NewService(a.batches, a.uploads, a.pairs, a.logger)
	xlsx, err := svc.ExportBatchXLSX(ctx, batchID, ownerID)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, xlsx, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(xlsx))
	return nil
}
