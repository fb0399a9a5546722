package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/slabworks/cardscan/internal/pairing"
)

var pairCmd = &cobra.Command{
	Use:   "pair <batch-id>",
	Short: "Run automatic pairing over a batch",
	Long: `Run the pairing engine over the batch's uploads, grouping them into
front/back card pairs. Running it again replaces the previous automatic
result; manual pairs made afterwards survive until the next run.`,
	Args: cobra.ExactArgs(1),
	RunE: runPair,
}

func init() {
	pairCmd.Flags().String("owner", "", "owner id (UUID, required)")
	_ = pairCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(pairCmd)
}

func runPair(cmd *cobra.Command, args []string) error {
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
	res, err := session.RunAutoPairing(ctx, batchID, ownerID)
	if err != nil {
		return err
	}

	fmt.Printf("batch %s: %s\n", batchID, res.BatchStatus)
	for _, p := range res.PairsCreated {
		back := "-"
		if p.BackUploadID != nil {
			back = p.BackUploadID.String()
		}
		fmt.Printf("  pair %s  front=%s back=%s confidence=%.2f\n", p.ID, p.FrontUploadID, back, p.Confidence)
	}
	for _, o := range res.OrphanedUploads {
		reason := ""
		if o.OrphanReason != nil {
			reason = *o.OrphanReason
		}
		fmt.Printf("  orphan %s (%s): %s\n", o.ID, o.Filename, reason)
	}
	return nil
}
