package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"tern/common"
	"tern/depm"
	"tern/eval"
	"tern/report"
)

// Execute is the main entry point for the `tern` CLI utility.
func Execute() {
	cli := olive.NewCLI("tern", "tern is a tool for managing tern projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "analyze source code without running it", true)
	checkCmd.AddPrimaryArg("path", "the path to a source file or project directory", true)

	runCmd := cli.AddSubcommand("run", "analyze and evaluate source code", true)
	runCmd.AddPrimaryArg("path", "the path to a source file or project directory", true)

	cli.AddSubcommand("repl", "start an interactive session", false)
	cli.AddSubcommand("version", "print the tern version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	report.InitReporter(logLevelFromName(result.Arguments["loglevel"].(string)))

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		path, _ := subResult.PrimaryArg()
		execCheckCommand(path)
	case "run":
		path, _ := subResult.PrimaryArg()
		execRunCommand(path)
	case "repl":
		execReplCommand()
	case "version":
		report.DisplayInfoMessage("Tern Version", common.TernVersion)
	}
}

func logLevelFromName(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarning
	}

	return report.LogLevelVerbose
}

// execCheckCommand analyzes the input and reports its diagnostics.
func execCheckCommand(path string) {
	unit := loadAndAnalyze(path)

	unit.Report()
	if !report.ShouldProceed() {
		os.Exit(1)
	}

	report.DisplayInfoMessage("Check", "no errors found")
}

// execRunCommand analyzes the input and, if it is clean, evaluates it.
func execRunCommand(path string) {
	unit := loadAndAnalyze(path)

	unit.Report()
	if !report.ShouldProceed() {
		os.Exit(1)
	}

	value, err := eval.NewEvaluator().Eval(&unit.Lower.Program)
	if err != nil {
		report.ReportStdError(err)
		os.Exit(1)
	}

	if value.Kind != eval.ValueUnit {
		fmt.Println(value)
	}
}

// loadAndAnalyze resolves the primary path argument to a source file and
// runs the pipeline over its contents.  A directory is treated as a
// project root and resolved through its manifest.
func loadAndAnalyze(path string) *AnalyzedUnit {
	absPath, err := filepath.Abs(path)
	if err != nil {
		report.ReportFatal(fmt.Sprintf("error calculating absolute path: %s", err.Error()))
	}

	srcPath := absPath
	if finfo, err := os.Stat(absPath); err != nil {
		report.ReportFatal(fmt.Sprintf("unable to access `%s`: %s", path, err.Error()))
	} else if finfo.IsDir() {
		proj, err := depm.LoadProject(absPath)
		if err != nil {
			report.ReportFatal(err.Error())
		}

		srcPath = proj.Entry
	} else if !strings.HasSuffix(srcPath, common.SrcFileExtension) {
		report.ReportFatal(fmt.Sprintf("`%s` is not a `%s` source file", path, common.SrcFileExtension))
	}

	text, err := os.ReadFile(srcPath)
	if err != nil {
		report.ReportFatal(fmt.Sprintf("unable to read `%s`: %s", srcPath, err.Error()))
	}

	return AnalyzeSourceFile(string(text))
}
