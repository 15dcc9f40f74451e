package views

import (
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui"
	"github.com/pterm/pterm"
)

// RenderBatchResult prints the success count and one line per failed item.
func RenderBatchResult(action string, res service.BatchResult) {
	unchanged := res.Succeeded - res.Changed
	pterm.Success.Printf("%s %d transaction(s)\n", action, res.Changed)
	if unchanged > 0 {
		pterm.Info.Printf("%d transaction(s) already up to date\n", unchanged)
	}
	for _, msg := range res.Messages() {
		pterm.Error.Println(msg)
	}
	ui.Separator()
}
