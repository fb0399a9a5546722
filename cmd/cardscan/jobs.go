package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/slabworks/cardscan/internal/jobs"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue <batch-id>",
	Short: "Queue an extraction job for a paired batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnqueue,
}

var jobCmd = &cobra.Command{
	Use:   "job <job-id>",
	Short: "Show a job's status and event trail",
	Args:  cobra.ExactArgs(1),
	RunE:  runJob,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <job-id>",
	Short: "Cancel a job that is still queued",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

func init() {
	for _, c := range []*cobra.Command{enqueueCmd, jobCmd, cancelCmd} {
		c.Flags().String("owner", "", "owner id (UUID, required)")
		_ = c.MarkFlagRequired("owner")
		rootCmd.AddCommand(c)
	}
}

func jobsService(a *app) *jobs.Service {
	return jobs.NewService(a.batches, a.pairs, a.jobs, a.events, a.logger)
}

func parseIDOwner(cmd *cobra.Command, arg string) (uuid.UUID, uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("id must be a UUID: %w", err)
	}
	owner, _ := cmd.Flags().GetString("owner")
	ownerID, err := uuid.Parse(owner)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("owner id must be a UUID: %w", err)
	}
	return id, ownerID, nil
}

func runEnqueue(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	batchID, ownerID, err := parseIDOwner(cmd, args[0])
	if err != nil {
		return err
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	job, deduped, err := jobsService(a).EnqueueExtraction(ctx, batchID, ownerID)
	if err != nil {
		return err
	}
	if deduped {
		fmt.Printf("job %s already in flight (%s)\n", job.ID, job.Status)
	} else {
		fmt.Printf("job %s queued\n", job.ID)
	}
	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	jobID, ownerID, err := parseIDOwner(cmd, args[0])
	if err != nil {
		return err
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	st, err := jobsService(a).GetJobStatus(ctx, jobID, ownerID)
	if err != nil {
		return err
	}

	fmt.Printf("job %s: %s (batch %s)\n", st.Job.ID, st.Job.Status, st.Job.BatchID)
	if st.Job.ErrorMessage != nil {
		fmt.Printf("  error: %s\n", *st.Job.ErrorMessage)
	}
	if res := st.Job.DecodeResult(); res != nil {
		fmt.Printf("  pairs: %d/%d succeeded\n", res.PairsSucceeded, res.PairsTotal)
	}
	for _, e := range st.Events {
		fmt.Printf("  %3d  %-14s %s\n", e.Seq, e.Kind, e.Detail)
	}
	return nil
}

func runCancel(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	jobID, ownerID, err := parseIDOwner(cmd, args[0])
	if err != nil {
		return err
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := jobsService(a).CancelJob(ctx, jobID, ownerID); err != nil {
		return err
	}
	fmt.Printf("job %s cancelled\n", jobID)
	return nil
}
