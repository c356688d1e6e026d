package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

func newPlanCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect and manage the negotiation plan",
	}
	cmd.AddCommand(
		newPlanShowCommand(opts),
		newPlanResetCommand(opts),
		newPlanExampleCommand(opts),
		newPlanStepCommand(opts),
		newPlanBufferCommand(opts),
	)
	return cmd
}

func newPlanShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the plan and its completion status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if opts.remote() {
				env, err := opts.client().GetPlan(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, env)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{
				"data":       env.store.Get(),
				"completion": env.store.Completion(),
			})
		},
	}
}

func newPlanResetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the plan with the defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if opts.remote() {
				plan, err := opts.client().Reset(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, plan)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			env.store.ResetData(ctx)
			return printJSON(cmd, env.store.Get())
		},
	}
}

func newPlanExampleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "example <male|female>",
		Short: "Load a fixed example dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if opts.remote() {
				plan, err := opts.client().LoadExample(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, plan)
			}
			variant, err := negotiation.ParseExampleVariant(args[0])
			if err != nil {
				return err
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			if err := env.store.LoadExample(ctx, variant); err != nil {
				return err
			}
			return printJSON(cmd, env.store.Get())
		},
	}
}

func newPlanStepCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "step <1-8>",
		Short: "Set the active wizard step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := strconv.Atoi(args[0])
			if err != nil {
				return apperrors.Newf(apperrors.ErrCodeValidation, "step %q is not a number", args[0])
			}
			if step < negotiation.StepGoals || step > negotiation.StepReview {
				return apperrors.Newf(apperrors.ErrCodeValidation, "step %d is out of range [1, 8]", step)
			}
			ctx := cmd.Context()
			if opts.remote() {
				return opts.client().SetStep(ctx, step)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			env.store.SetCurrentStep(ctx, step)
			return printJSON(cmd, env.store.Get().Metadata)
		},
	}
}

func newPlanBufferCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "buffer <value>",
		Short: "Set the bottom-line safety buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buffer, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return apperrors.Newf(apperrors.ErrCodeValidation, "buffer %q is not a number", args[0])
			}
			ctx := cmd.Context()
			if opts.remote() {
				return opts.client().SetBuffer(ctx, buffer)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			env.store.SetBottomLineBuffer(ctx, buffer)
			return printJSON(cmd, map[string]float64{"bottomLineBuffer": buffer})
		},
	}
}
