package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"tern/common"
	"tern/eval"
	"tern/lower"
	"tern/report"
)

var (
	bannerStyle = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)
	promptStyle = pterm.NewStyle(pterm.FgLightGreen, pterm.Bold)
)

// execReplCommand runs the interactive loop.  Lowered state accumulates
// across lines; evaluation only runs on lines that analyzed cleanly.
func execReplCommand() {
	bannerStyle.Printf("tern v%s\n", common.TernVersion)
	pterm.Println("type :quit to exit")

	scope := lower.NewScope()
	evaluator := eval.NewEvaluator()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		promptStyle.Print("> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" {
			break
		}

		unit := AnalyzeReplLine(line, scope)
		scope = unit.Scope()

		if !unit.Clean() {
			unit.Report()
			continue
		}

		value, err := evaluator.Eval(&unit.Lower.Program)
		if err != nil {
			report.ReportStdError(err)
			continue
		}

		if value.Kind != eval.ValueUnit {
			fmt.Println(value)
		}
	}
}
