package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"holcore/common"
	"holcore/config"
	"holcore/kernel"
	"holcore/loader"
	"holcore/logging"
	"holcore/surface"
	"holcore/term"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `holcore` application.
func Execute() {
	cli := olive.NewCLI("holcore", "holcore checks and reduces theories in a dependently-typed rewrite calculus", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the kernel log level", false, []string{"silent", "error", "warning", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "load a project and evaluate its #check directives", true)
	checkCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	whnfCmd := cli.AddSubcommand("whnf", "reduce a symbol to weak-head normal form", true)
	whnfCmd.AddPrimaryArg("project-path", "the path to the project directory", true)
	whnfCmd.AddStringArg("symbol", "s", "the name of the symbol to reduce", true)

	bundleCmd := cli.AddSubcommand("bundle", "check every theory named in a holcore.yaml workspace manifest", true)
	bundleCmd.AddPrimaryArg("bundle-path", "the path to the directory containing holcore.yaml", true)

	cli.AddSubcommand("version", "print the holcore version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "whnf":
		execWhnfCommand(subResult, result.Arguments["loglevel"].(string))
	case "bundle":
		execBundleCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		logging.PrintInfoMessage("holcore Version", common.HolcoreVersion)
	}
}

// execCheckCommand loads every source a project lists and evaluates its
// accumulated #check/#check-fail directives.
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	projectRelPath, _ := result.PrimaryArg()
	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	logging.Initialize(loglevel)

	kctx, _, checks, ok := loadProject(projectPath)
	if !ok {
		return
	}

	passed, failed := runChecks(kctx, checks)
	warnings := logging.FlushWarnings()
	logging.DisplaySummary(passed, failed, warnings)
}

// runChecks evaluates every collected #check/#check-fail directive against
// an already-loaded Context, reporting a KindConversionMismatch for each one
// that didn't come out the way its directive expected.
func runChecks(kctx *kernel.Context, checks []loader.CheckResult) (passed, failed int) {
	logging.DisplayBeginPhase("Checking")
	for _, c := range checks {
		if kctx.EqModulo(c.Left, c.Right) == c.ExpectOK {
			passed++
			continue
		}

		failed++
		if c.ExpectOK {
			logging.LogKernelError(c.Ctx, fmt.Sprintf(
				"expected `%s` == `%s`, but they are not convertible",
				term.Render(c.Left), term.Render(c.Right),
			), logging.KindConversionMismatch, nil)
		} else {
			logging.LogKernelError(c.Ctx, fmt.Sprintf(
				"expected `%s` != `%s`, but they are convertible",
				term.Render(c.Left), term.Render(c.Right),
			), logging.KindConversionMismatch, nil)
		}
	}
	logging.DisplayEndPhase(failed == 0)
	return passed, failed
}

// execWhnfCommand loads a project and prints one symbol's weak-head normal
// form.
func execWhnfCommand(result *olive.ArgParseResult, loglevel string) {
	projectRelPath, _ := result.PrimaryArg()
	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	symbolName, ok := result.Arguments["symbol"].(string)
	if !ok || symbolName == "" {
		logging.PrintErrorMessage("CLI Usage Error", errors.New("missing --symbol"))
		return
	}

	logging.Initialize(loglevel)

	kctx, proj, _, loaded := loadProject(projectPath)
	if !loaded || !logging.ShouldProceed() {
		return
	}

	sym, err := kctx.Resolve(proj.Name, symbolName)
	if err != nil {
		logging.PrintErrorMessage("Resolve Error", err)
		return
	}

	reduced := kctx.Whnf(&term.Symb{Sym: sym})
	logging.PrintInfoMessage("whnf", term.Render(reduced))
}

// execBundleCommand checks every theory named in a holcore.yaml workspace
// manifest, one fresh kernel.Context per theory (bundle entries do not share
// a Signature with each other), and reports a combined summary.
func execBundleCommand(result *olive.ArgParseResult, loglevel string) {
	bundleRelPath, _ := result.PrimaryArg()
	bundlePath, err := filepath.Abs(bundleRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	logging.Initialize(loglevel)

	bundle, err := config.LoadBundle(bundlePath)
	if err != nil {
		logging.PrintErrorMessage("Bundle Load Error", err)
		return
	}

	totalPassed, totalFailed := 0, 0
	for _, entry := range bundle.Entries {
		logging.PrintInfoMessage("Theory", entry.Name)

		kctx, _, checks, ok := loadProject(entry.ProjectPath)
		if !ok {
			totalFailed++
			continue
		}

		passed, failed := runChecks(kctx, checks)
		totalPassed += passed
		totalFailed += failed
	}

	warnings := logging.FlushWarnings()
	logging.DisplaySummary(totalPassed, totalFailed, warnings)
}

// loadProject reads a project's holcore-mod.toml, parses and loads every
// source it lists in order into one fresh kernel.Context, and returns the
// #check/#check-fail directives collected along the way. ok is false only
// if the project itself failed to load (config or I/O error); a caller
// still needs logging.ShouldProceed() to know whether loading hit kernel
// errors along the way.
func loadProject(projectPath string) (*kernel.Context, *config.Project, []loader.CheckResult, bool) {
	proj, err := config.Load(projectPath)
	if err != nil {
		logging.PrintErrorMessage("Project Load Error", err)
		return nil, nil, nil, false
	}

	logging.ApplyDebugOverrides(proj.DebugOverrides)

	kctx := kernel.New()
	logging.DisplayBeginPhase("Loading")

	var checks []loader.CheckResult
	for _, srcPath := range proj.SourcePaths() {
		f, err := os.Open(srcPath)
		if err != nil {
			logging.DisplayEndPhase(false)
			logging.PrintErrorMessage("Source Error", err)
			return nil, nil, nil, false
		}

		fileCtx := &logging.Context{FilePath: srcPath}
		lex := surface.NewLexer(f, fileCtx)
		parser := surface.NewParser(lex, fileCtx)
		file := parser.ParseFile()
		f.Close()

		ld := loader.New(kctx.Sig, proj.Name, fileCtx)
		ld.LoadFile(file)
		checks = append(checks, ld.ResolveChecks()...)
	}

	logging.DisplayEndPhase(logging.ShouldProceed())
	return kctx, proj, checks, true
}
