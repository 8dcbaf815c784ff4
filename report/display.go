package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoColorFG    = successColorFG
	infoStyleBG    = successStyleBG
)

// displayDiagnostic prints a rendered diagnostic: the styled header line
// followed by the plain source snippet.
func displayDiagnostic(lines []string) {
	errorStyleBG.Print("Error")
	errorColorFG.Println(" " + lines[0])

	for _, line := range lines[1:] {
		fmt.Println(line)
	}

	fmt.Println()
}

func displayWarning(msg string) {
	warnStyleBG.Print("Warning")
	warnColorFG.Println(" " + msg)
}

func displayStdError(err error) {
	errorStyleBG.Print("Error")
	errorColorFG.Println(" " + err.Error())
}

func displayFatal(msg string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + msg)
}

func displayInfoMessage(tag, msg string) {
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + msg)
}
