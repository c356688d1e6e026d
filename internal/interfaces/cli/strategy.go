package cli

import (
	"github.com/spf13/cobra"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/pkg/client"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

func newStrategyCommand(opts *rootOptions) *cobra.Command {
	var (
		approach     string
		concession   string
		timeStrategy string
	)

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Set the negotiation strategy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if approach != "" {
				switch negotiation.Approach(approach) {
				case negotiation.ApproachCollaborative, negotiation.ApproachCompetitive, negotiation.ApproachAccommodating:
				default:
					return apperrors.Newf(apperrors.ErrCodeValidation, "approach %q is invalid; expected collaborative|competitive|accommodating", approach)
				}
			}
			if concession != "" {
				switch negotiation.ConcessionPattern(concession) {
				case negotiation.ConcessionLinear, negotiation.ConcessionExponential, negotiation.ConcessionStep:
				default:
					return apperrors.Newf(apperrors.ErrCodeValidation, "concession %q is invalid; expected linear|exponential|step", concession)
				}
			}

			ctx := cmd.Context()
			if opts.remote() {
				in := client.StrategyUpdate{}
				if cmd.Flags().Changed("approach") {
					in.Approach = &approach
				}
				if cmd.Flags().Changed("concession") {
					in.ConcessionPattern = &concession
				}
				if cmd.Flags().Changed("time") {
					in.TimeStrategy = &timeStrategy
				}
				result, err := opts.client().UpdateStrategy(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			}

			in := planning.StrategyInput{}
			if cmd.Flags().Changed("approach") {
				a := negotiation.Approach(approach)
				in.Approach = &a
			}
			if cmd.Flags().Changed("concession") {
				p := negotiation.ConcessionPattern(concession)
				in.ConcessionPattern = &p
			}
			if cmd.Flags().Changed("time") {
				in.TimeStrategy = &timeStrategy
			}

			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			env.store.UpdateStrategy(ctx, in)
			return printJSON(cmd, env.store.Get().Strategy)
		},
	}

	cmd.Flags().StringVar(&approach, "approach", "", "collaborative|competitive|accommodating")
	cmd.Flags().StringVar(&concession, "concession", "", "linear|exponential|step")
	cmd.Flags().StringVar(&timeStrategy, "time", "", "time strategy notes")
	return cmd
}

func newAnchorCommand(opts *rootOptions) *cobra.Command {
	var (
		anchorType    string
		offers        map[string]string
		justification []string
	)

	cmd := &cobra.Command{
		Use:   "anchor",
		Short: "Set the opening-offer anchor plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if anchorType != "" {
				switch negotiation.AnchorType(anchorType) {
				case negotiation.AnchorAggressive, negotiation.AnchorModerate, negotiation.AnchorConservative:
				default:
					return apperrors.Newf(apperrors.ErrCodeValidation, "type %q is invalid; expected aggressive|moderate|conservative", anchorType)
				}
			}

			var firstOffer map[string]float64
			if cmd.Flags().Changed("offer") {
				firstOffer = make(map[string]float64, len(offers))
				for issueID, raw := range offers {
					value, err := parseFloat(raw)
					if err != nil {
						return apperrors.Newf(apperrors.ErrCodeValidation, "offer for issue %s: %q is not a number", issueID, raw)
					}
					firstOffer[issueID] = value
				}
			}

			ctx := cmd.Context()
			if opts.remote() {
				in := client.AnchorUpdate{}
				if cmd.Flags().Changed("type") {
					in.Type = &anchorType
				}
				if firstOffer != nil {
					in.FirstOffer = &firstOffer
				}
				if cmd.Flags().Changed("justify") {
					in.Justification = &justification
				}
				result, err := opts.client().UpdateAnchor(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			}

			in := planning.AnchorInput{}
			if cmd.Flags().Changed("type") {
				at := negotiation.AnchorType(anchorType)
				in.Type = &at
			}
			if firstOffer != nil {
				in.FirstOffer = &firstOffer
			}
			if cmd.Flags().Changed("justify") {
				in.Justification = &justification
			}

			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			env.store.UpdateAnchorStrategy(ctx, in)
			return printJSON(cmd, env.store.Get().AnchorStrategy)
		},
	}

	cmd.Flags().StringVar(&anchorType, "type", "", "aggressive|moderate|conservative")
	cmd.Flags().StringToStringVar(&offers, "offer", nil, "first offer per issue id, e.g. --offer 1=15")
	cmd.Flags().StringSliceVar(&justification, "justify", nil, "justification lines (repeatable)")
	return cmd
}
