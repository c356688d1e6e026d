package cli

import (
	"github.com/spf13/cobra"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/pkg/client"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

type batnaFlags struct {
	name        string
	description string
	gain        float64
	cost        float64
	risk        float64
	switchCost  float64
}

func (f *batnaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "option name")
	cmd.Flags().StringVar(&f.description, "desc", "", "description")
	cmd.Flags().Float64Var(&f.gain, "gain", 0, "expected gain")
	cmd.Flags().Float64Var(&f.cost, "cost", 0, "direct cost")
	cmd.Flags().Float64Var(&f.risk, "risk", 0, "risk penalty")
	cmd.Flags().Float64Var(&f.switchCost, "switch", 0, "switching cost")
}

func newBatnaCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batna",
		Short: "Manage alternatives and the negotiation floor",
	}
	cmd.AddCommand(
		newBatnaAddCommand(opts),
		newBatnaUpdateCommand(opts),
		newBatnaRemoveCommand(opts),
		newBatnaRecalcCommand(opts),
	)
	return cmd
}

func newBatnaAddCommand(opts *rootOptions) *cobra.Command {
	flags := &batnaFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an alternative; its net value is derived",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.name == "" {
				return apperrors.New(apperrors.ErrCodeValidation, "--name is required")
			}
			ctx := cmd.Context()
			if opts.remote() {
				option, err := opts.client().CreateBatnaOption(ctx, client.BatnaOptionCreate{
					Name: flags.name, Description: flags.description,
					Gain: flags.gain, DirectCost: flags.cost,
					RiskPenalty: flags.risk, SwitchCost: flags.switchCost,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, option)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			created := env.store.AddBatnaOption(ctx, planning.BatnaOptionInput{
				Name: flags.name, Description: flags.description,
				Gain: flags.gain, DirectCost: flags.cost,
				RiskPenalty: flags.risk, SwitchCost: flags.switchCost,
			})
			return printJSON(cmd, created)
		},
	}
	flags.register(cmd)
	return cmd
}

func newBatnaUpdateCommand(opts *rootOptions) *cobra.Command {
	flags := &batnaFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an alternative; only changed flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()

			if opts.remote() {
				in := client.BatnaOptionUpdate{}
				if cmd.Flags().Changed("name") {
					in.Name = &flags.name
				}
				if cmd.Flags().Changed("desc") {
					in.Description = &flags.description
				}
				if cmd.Flags().Changed("gain") {
					in.Gain = &flags.gain
				}
				if cmd.Flags().Changed("cost") {
					in.DirectCost = &flags.cost
				}
				if cmd.Flags().Changed("risk") {
					in.RiskPenalty = &flags.risk
				}
				if cmd.Flags().Changed("switch") {
					in.SwitchCost = &flags.switchCost
				}
				option, err := opts.client().UpdateBatnaOption(ctx, id, in)
				if err != nil {
					return err
				}
				return printJSON(cmd, option)
			}

			in := planning.BatnaOptionUpdateInput{}
			if cmd.Flags().Changed("name") {
				in.Name = &flags.name
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &flags.description
			}
			if cmd.Flags().Changed("gain") {
				in.Gain = &flags.gain
			}
			if cmd.Flags().Changed("cost") {
				in.DirectCost = &flags.cost
			}
			if cmd.Flags().Changed("risk") {
				in.RiskPenalty = &flags.risk
			}
			if cmd.Flags().Changed("switch") {
				in.SwitchCost = &flags.switchCost
			}

			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			if !env.store.UpdateBatnaOption(ctx, id, in) {
				return apperrors.Newf(apperrors.ErrCodePlanBatnaNotFound, "batna option %s not found", id)
			}
			return printJSON(cmd, env.store.Get().BatnaOptionByID(id))
		},
	}
	flags.register(cmd)
	return cmd
}

func newBatnaRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an alternative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()
			if opts.remote() {
				return opts.client().DeleteBatnaOption(ctx, id)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			if !env.store.RemoveBatnaOption(ctx, id) {
				return apperrors.Newf(apperrors.ErrCodePlanBatnaNotFound, "batna option %s not found", id)
			}
			return nil
		},
	}
}

func newBatnaRecalcCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recalc",
		Short: "Reselect the best alternative and print the floor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if opts.remote() {
				result, err := opts.client().RecalculateBatna(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			best := env.store.CalculateBestBatna(ctx)
			buffer := env.store.Get().BottomLineBuffer
			return printJSON(cmd, map[string]any{
				"best":   best,
				"floor":  negotiation.ComputeFloor(best, buffer),
				"buffer": buffer,
			})
		},
	}
}
