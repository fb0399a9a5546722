package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/slabworks/cardscan/internal/pairing"
)

var statusCmd = &cobra.Command{
	Use:   "status <batch-id>",
	Short: "Show a batch's pairing status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().String("owner", "", "owner id (UUID, required)")
	_ = statusCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	batchID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("batch id must be a UUID: %w", err)
	}
	owner, _ := cmd.Flags().GetString("owner")
	ownerID, err := uuid.Parse(owner)
	if err != nil {
		return fmt.Errorf("owner id must be a UUID: %w", err)
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	session := pairing.NewSession(a.batches, a.uploads, a.pairs, a.logger)
	st, err := session.GetStatus(ctx, batchID, ownerID)
	if err != nil {
		return err
	}

	fmt.Printf("batch %s: %s\n", batchID, st.BatchStatus)
	fmt.Printf("  uploads: %d  paired: %d  orphaned: %d  pairs: %d\n",
		st.TotalUploads, st.PairedCount, st.OrphanCount, len(st.Pairs))
	for _, p := range st.Pairs {
		extracted := ""
		if p.Extraction != nil {
			extracted = fmt.Sprintf("  [%s: %s]", p.Extraction.Provider, p.Extraction.Fields["name"])
		}
		fmt.Printf("  pair %s  %s/%.2f%s\n", p.ID, p.Method, p.Confidence, extracted)
	}
	for _, o := range st.Orphans {
		reason := ""
		if o.OrphanReason != nil {
			reason = *o.OrphanReason
		}
		fmt.Printf("  orphan %s (%s): %s\n", o.ID, o.Filename, reason)
	}
	return nil
}
