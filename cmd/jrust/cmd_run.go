package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/jrustlang/jrust/internal/i18n"
)

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	release := fs.Bool("release", true, i18n.T(i18n.MsgBuildOptRelease))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgBuildOptVerbose))
	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgRunDescription))
		fs.PrintDefaults()
	}
	fs.Parse(args)

	generatedDir, err := buildProject(*release, *verbose, fs.Arg(0))
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	profile := "debug"
	if *release {
		profile = "release"
	}
	executable := filepath.Join(generatedDir, "target", profile, binaryName)
	if runtime.GOOS == "windows" {
		executable += ".exe"
	}

	printInfo(i18n.T(i18n.MsgRunning, binaryName))
	cmd := exec.Command(executable)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		printError(i18n.T(i18n.ErrRunError, err))
		os.Exit(1)
	}
}
