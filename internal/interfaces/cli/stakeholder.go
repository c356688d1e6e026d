package cli

import (
	"github.com/spf13/cobra"

	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/pkg/client"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

type stakeholderFlags struct {
	name       string
	role       string
	influence  int
	support    int
	painPoints []string
	interests  []string
}

func (f *stakeholderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "stakeholder name")
	cmd.Flags().StringVar(&f.role, "role", "", "role in the negotiation")
	cmd.Flags().IntVar(&f.influence, "influence", 5, "influence (1-10)")
	cmd.Flags().IntVar(&f.support, "support", 5, "support (1-10)")
	cmd.Flags().StringSliceVar(&f.painPoints, "pain", nil, "pain points (repeatable)")
	cmd.Flags().StringSliceVar(&f.interests, "interest", nil, "interests (repeatable)")
}

func newStakeholderCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakeholder",
		Short: "Manage stakeholders",
	}
	cmd.AddCommand(
		newStakeholderAddCommand(opts),
		newStakeholderUpdateCommand(opts),
		newStakeholderRemoveCommand(opts),
	)
	return cmd
}

func newStakeholderAddCommand(opts *rootOptions) *cobra.Command {
	flags := &stakeholderFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a stakeholder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.name == "" {
				return apperrors.New(apperrors.ErrCodeValidation, "--name is required")
			}
			ctx := cmd.Context()
			if opts.remote() {
				st, err := opts.client().CreateStakeholder(ctx, client.StakeholderCreate{
					Name: flags.name, Role: flags.role,
					Influence: flags.influence, Support: flags.support,
					PainPoints: flags.painPoints, Interests: flags.interests,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, st)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			created := env.store.AddStakeholder(ctx, planning.StakeholderInput{
				Name: flags.name, Role: flags.role,
				Influence: flags.influence, Support: flags.support,
				PainPoints: flags.painPoints, Interests: flags.interests,
			})
			return printJSON(cmd, created)
		},
	}
	flags.register(cmd)
	return cmd
}

func newStakeholderUpdateCommand(opts *rootOptions) *cobra.Command {
	flags := &stakeholderFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a stakeholder; only changed flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()

			if opts.remote() {
				in := client.StakeholderUpdate{}
				if cmd.Flags().Changed("name") {
					in.Name = &flags.name
				}
				if cmd.Flags().Changed("role") {
					in.Role = &flags.role
				}
				if cmd.Flags().Changed("influence") {
					in.Influence = &flags.influence
				}
				if cmd.Flags().Changed("support") {
					in.Support = &flags.support
				}
				if cmd.Flags().Changed("pain") {
					in.PainPoints = &flags.painPoints
				}
				if cmd.Flags().Changed("interest") {
					in.Interests = &flags.interests
				}
				st, err := opts.client().UpdateStakeholder(ctx, id, in)
				if err != nil {
					return err
				}
				return printJSON(cmd, st)
			}

			in := planning.StakeholderUpdateInput{}
			if cmd.Flags().Changed("name") {
				in.Name = &flags.name
			}
			if cmd.Flags().Changed("role") {
				in.Role = &flags.role
			}
			if cmd.Flags().Changed("influence") {
				in.Influence = &flags.influence
			}
			if cmd.Flags().Changed("support") {
				in.Support = &flags.support
			}
			if cmd.Flags().Changed("pain") {
				in.PainPoints = &flags.painPoints
			}
			if cmd.Flags().Changed("interest") {
				in.Interests = &flags.interests
			}

			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			if !env.store.UpdateStakeholder(ctx, id, in) {
				return apperrors.Newf(apperrors.ErrCodePlanStakeholderNotFound, "stakeholder %s not found", id)
			}
			return printJSON(cmd, env.store.Get().StakeholderByID(id))
		},
	}
	flags.register(cmd)
	return cmd
}

func newStakeholderRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a stakeholder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()
			if opts.remote() {
				return opts.client().DeleteStakeholder(ctx, id)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			if !env.store.RemoveStakeholder(ctx, id) {
				return apperrors.Newf(apperrors.ErrCodePlanStakeholderNotFound, "stakeholder %s not found", id)
			}
			return nil
		},
	}
}
