package cli

import (
	"github.com/spf13/cobra"

	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/pkg/client"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

type issueFlags struct {
	name        string
	importance  int
	ideal       float64
	acceptable  float64
	bottom      float64
	unit        string
	description string
}

func (f *issueFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "issue name")
	cmd.Flags().IntVar(&f.importance, "importance", 5, "importance (1-10)")
	cmd.Flags().Float64Var(&f.ideal, "ideal", 0, "ideal value")
	cmd.Flags().Float64Var(&f.acceptable, "acceptable", 0, "acceptable value")
	cmd.Flags().Float64Var(&f.bottom, "bottom", 0, "bottom-line value")
	cmd.Flags().StringVar(&f.unit, "unit", "", "value unit")
	cmd.Flags().StringVar(&f.description, "desc", "", "description")
}

func newIssueCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage negotiation issues",
	}
	cmd.AddCommand(
		newIssueAddCommand(opts),
		newIssueUpdateCommand(opts),
		newIssueRemoveCommand(opts),
	)
	return cmd
}

func newIssueAddCommand(opts *rootOptions) *cobra.Command {
	flags := &issueFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an issue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.name == "" {
				return apperrors.New(apperrors.ErrCodeValidation, "--name is required")
			}
			ctx := cmd.Context()
			if opts.remote() {
				issue, err := opts.client().CreateIssue(ctx, client.IssueCreate{
					Name: flags.name, Importance: flags.importance,
					IdealValue: flags.ideal, AcceptableValue: flags.acceptable,
					BottomLine: flags.bottom, Unit: flags.unit, Description: flags.description,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, issue)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			created := env.store.AddIssue(ctx, planning.IssueInput{
				Name: flags.name, Importance: flags.importance,
				IdealValue: flags.ideal, AcceptableValue: flags.acceptable,
				BottomLine: flags.bottom, Unit: flags.unit, Description: flags.description,
			})
			return printJSON(cmd, created)
		},
	}
	flags.register(cmd)
	return cmd
}

func newIssueUpdateCommand(opts *rootOptions) *cobra.Command {
	flags := &issueFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an issue; only changed flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()

			if opts.remote() {
				in := client.IssueUpdate{}
				if cmd.Flags().Changed("name") {
					in.Name = &flags.name
				}
				if cmd.Flags().Changed("importance") {
					in.Importance = &flags.importance
				}
				if cmd.Flags().Changed("ideal") {
					in.IdealValue = &flags.ideal
				}
				if cmd.Flags().Changed("acceptable") {
					in.AcceptableValue = &flags.acceptable
				}
				if cmd.Flags().Changed("bottom") {
					in.BottomLine = &flags.bottom
				}
				if cmd.Flags().Changed("unit") {
					in.Unit = &flags.unit
				}
				if cmd.Flags().Changed("desc") {
					in.Description = &flags.description
				}
				issue, err := opts.client().UpdateIssue(ctx, id, in)
				if err != nil {
					return err
				}
				return printJSON(cmd, issue)
			}

			in := planning.IssueUpdateInput{}
			if cmd.Flags().Changed("name") {
				in.Name = &flags.name
			}
			if cmd.Flags().Changed("importance") {
				in.Importance = &flags.importance
			}
			if cmd.Flags().Changed("ideal") {
				in.IdealValue = &flags.ideal
			}
			if cmd.Flags().Changed("acceptable") {
				in.AcceptableValue = &flags.acceptable
			}
			if cmd.Flags().Changed("bottom") {
				in.BottomLine = &flags.bottom
			}
			if cmd.Flags().Changed("unit") {
				in.Unit = &flags.unit
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &flags.description
			}

			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			if !env.store.UpdateIssue(ctx, id, in) {
				return apperrors.Newf(apperrors.ErrCodePlanIssueNotFound, "issue %s not found", id)
			}
			return printJSON(cmd, env.store.Get().IssueByID(id))
		},
	}
	flags.register(cmd)
	return cmd
}

func newIssueRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()
			if opts.remote() {
				return opts.client().DeleteIssue(ctx, id)
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			if !env.store.RemoveIssue(ctx, id) {
				return apperrors.Newf(apperrors.ErrCodePlanIssueNotFound, "issue %s not found", id)
			}
			return nil
		},
	}
}
