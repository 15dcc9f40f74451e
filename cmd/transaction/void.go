package transaction

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type voidFlags struct {
	Yes bool
}

type voidRunner struct {
	svc   *service.Service
	flags *voidFlags
}

func NewVoidCmd(svc *service.Service) *cobra.Command {
	flags := &voidFlags{}

	cmd := &cobra.Command{
		Use:   "void <transaction-id>...",
		Short: "Void one or more transactions",
		Long: `Mark transactions as voided. Voided transactions stay in the ledger
but are excluded from balances, budgets and default listings.
Each ID is voided on its own; a failing ID does not stop the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &voidRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *voidRunner) Run(args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		confirmed, err := r.confirm(ids)
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Void cancelled")
			return nil
		}
	}

	res := r.svc.Transaction.VoidMany(ids)
	views.RenderBatchResult("Voided", res)
	if res.Failed() > 0 {
		return errors.New("some transactions could not be voided")
	}
	return nil
}

func (r *voidRunner) confirm(ids []int64) (bool, error) {
	var preview []*model.Transaction
	for _, id := range ids {
		tx, err := r.svc.Transaction.GetTransaction(id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				continue
			}
			return false, err
		}
		preview = append(preview, tx)
	}

	if len(preview) > 0 {
		names, err := accountNames(r.svc)
		if err != nil {
			return false, err
		}
		if err := views.RenderVoidPreview(preview, names); err != nil {
			return false, err
		}
	}

	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "Do you want to void these transactions?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
		return false, err
	}
	return confirmation, nil
}
