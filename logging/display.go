package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the console.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

func (ce *ConfigError) display() {
	PrintErrorMessage(ce.Kind+" Error", errors.New(ce.Message))
}

func (km *KernelMessage) display() {
	km.displayBanner()
	fmt.Println(km.Message)

	if km.Position != nil {
		km.displayCodeSelection()
	}
}

// displayBanner displays the banner above a kernel diagnostic.
func (km *KernelMessage) displayBanner() {
	fmt.Print("\n\n-- ")
	kindStr := kernelKindNames[km.Kind]
	kindLen := len(kindStr)
	if km.isError() {
		ErrorStyleBG.Print(kindStr + " Error")
		kindLen += 7
	} else {
		WarnStyleBG.Print(kindStr + " Warning")
		kindLen += 9
	}

	fmt.Print(" ")

	fileName := ""
	if km.Context != nil {
		fileName = filepath.Base(km.Context.FilePath)
	}
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 0 {
		dashCount = 0
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// displayCodeSelection displays the offending source text with line numbers
// and a run of carets under the selected span.
func (km *KernelMessage) displayCodeSelection() {
	fmt.Println()

	if km.Context == nil {
		return
	}

	f, err := os.Open(km.Context.FilePath)
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanLines)
	lines := make([]string, km.Position.EndLn-km.Position.StartLn+1)
	for lineNumber := 1; sc.Scan(); lineNumber++ {
		if lineNumber >= km.Position.StartLn && lineNumber <= km.Position.EndLn {
			lines[lineNumber-km.Position.StartLn] = sc.Text()
		}
	}

	minWhitespace := -1
	for _, line := range lines {
		leadingWhitespace := 0
		for _, c := range line {
			if c == ' ' {
				leadingWhitespace++
			} else if c == '\t' {
				leadingWhitespace += 4
			} else {
				break
			}
		}

		if minWhitespace == -1 || minWhitespace > leadingWhitespace {
			minWhitespace = leadingWhitespace
		}
	}
	if minWhitespace < 0 {
		minWhitespace = 0
	}

	maxLineNumberWidth := len(strconv.Itoa(km.Position.EndLn)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(maxLineNumberWidth) + "v"

	for i, line := range lines {
		InfoColorFG.Print(fmt.Sprintf(lineNumberFmtStr, i+km.Position.StartLn))
		fmt.Print("|  ")
		trimmed := strings.ReplaceAll(line, "\t", "    ")
		if minWhitespace <= len(trimmed) {
			trimmed = trimmed[minWhitespace:]
		}
		fmt.Println(trimmed)

		fmt.Print(strings.Repeat(" ", maxLineNumberWidth), "|  ")
		if i == 0 {
			fmt.Print(strings.Repeat(" ", km.Position.StartCol-minWhitespace))

			if i == len(lines)-1 {
				ErrorColorFG.Print(strings.Repeat("^", km.Position.EndCol-km.Position.StartCol))
				fmt.Println()
			} else {
				ErrorColorFG.Println(strings.Repeat("^", len(line)-km.Position.StartCol-minWhitespace))
			}
		} else if i == len(lines)-1 {
			ErrorColorFG.Println(strings.Repeat("^", km.Position.EndCol-minWhitespace))
		} else {
			ErrorColorFG.Println(strings.Repeat("^", len(line)-minWhitespace))
		}
	}

	fmt.Println()
}

const fatalErrorPostlude = `
This is a bug in holcore itself, not in the theory being checked.`

func displayFatalError(msg string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Fatal Error ")
	ErrorColorFG.Println(msg)
	InfoColorFG.Println(fatalErrorPostlude)
}

// -----------------------------------------------------------------------------

// phaseSpinner tracks the currently running phase of a `check`/`whnf` command.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Evaluating")

// displayBeginPhase displays the beginning of a command phase (loading,
// checking, evaluating).
func displayBeginPhase(phase string) {
	if logger.LogLevel < LogLevelVerbose {
		return
	}
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of the currently running phase, if any.
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// DisplayBeginPhase and DisplayEndPhase are the exported forms used by cmd.
func DisplayBeginPhase(phase string) { displayBeginPhase(phase) }
func DisplayEndPhase(success bool)   { displayEndPhase(success) }

// DisplaySummary reports the outcome of a command: how many checks passed,
// failed, and how many warnings were emitted.
func DisplaySummary(passed, failed, warnings int) {
	fmt.Print("\n")

	if failed == 0 {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")
	SuccessColorFG.Print(passed)
	fmt.Print(" passed, ")

	if failed == 0 {
		SuccessColorFG.Print(0)
	} else {
		ErrorColorFG.Print(failed)
	}
	fmt.Print(" failed, ")

	if warnings == 0 {
		SuccessColorFG.Print(0)
	} else {
		WarnColorFG.Print(warnings)
	}
	fmt.Println(" warnings)")
}
