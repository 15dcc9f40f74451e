package transaction

import (
	"fmt"
	"strconv"

	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/hance08/cashflow/internal/utils"
)

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid transaction ID: %s", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func accountNames(svc *service.Service) (views.AccountNames, error) {
	accounts, err := svc.Account.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return views.NewAccountNames(accounts), nil
}

func resolveAccountID(svc *service.Service, ref string) (int64, error) {
	acc, err := svc.Account.ResolveAccount(ref)
	if err != nil {
		return 0, err
	}
	return acc.ID, nil
}

func balanceGetter(svc *service.Service) func(int64) (string, error) {
	return func(id int64) (string, error) {
		balance, err := svc.Balance.AccountBalance(id)
		if err != nil {
			return "", err
		}
		return utils.FormatAmount(balance), nil
	}
}

// optionalText returns nil for an unset flag so blank and absent stay apart.
func optionalText(value string, set bool) *string {
	if !set {
		return nil
	}
	return &value
}
