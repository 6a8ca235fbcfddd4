package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"physc/common"
	"physc/driver"
	"physc/report"

	"github.com/ComedicChimera/olive"
	"github.com/google/uuid"
)

// Execute runs the main `physc` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("physc", "physc is a tool for checking and compiling physics documents", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "check a document and report diagnostics", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the document to check", true)
	checkCmd.AddStringArg("manifest", "m", "the path to a unit manifest", false)

	renderCmd := cli.AddSubcommand("render", "compile a document and print its category", true)
	renderCmd.AddPrimaryArg("file-path", "the path to the document to compile", true)
	renderCmd.AddStringArg("manifest", "m", "the path to a unit manifest", false)

	cli.AddSubcommand("version", "print the physc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCompileCommand(subResult, result.Arguments["loglevel"].(string), false)
	case "render":
		execCompileCommand(subResult, result.Arguments["loglevel"].(string), true)
	case "version":
		report.PrintInfoMessage("Physc Version", common.PhyscVersion)
	}
}

// execCompileCommand executes the check and render subcommands and handles
// all errors.  If render is true, the compiled category is printed.
func execCompileCommand(result *olive.ArgParseResult, loglevel string, render bool) {
	// extract CLI data
	fileRelPath, _ := result.PrimaryArg()

	filePath, err := filepath.Abs(fileRelPath)
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return
	}

	sourceBytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		report.PrintErrorMessage("File Error", err)
		return
	}
	source := string(sourceBytes)

	c := driver.NewCompiler()

	// fold in the unit manifest if one was given
	if manArgVal, ok := result.Arguments["manifest"]; ok {
		if err := c.LoadManifest(manArgVal.(string)); err != nil {
			report.PrintErrorMessage("Manifest Error", err)
			return
		}
	}

	if loglevel == "verbose" {
		report.DisplayCompileHeader(common.PhyscVersion, uuid.NewString())
	}

	rendered, diags := c.CompileAndRender(source)

	if loglevel != "silent" {
		fileName := filepath.Base(filePath)
		for _, d := range diags {
			report.DisplayDiagnostic(fileName, source, d)
		}
	}

	if loglevel == "verbose" {
		report.DisplayCompileFinished(len(diags) == 0, len(diags))
	}

	if len(diags) > 0 {
		os.Exit(1)
	}

	if render {
		fmt.Print(rendered)
	}
}
