package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/repr"

	"github.com/jrustlang/jrust/internal/i18n"
	"github.com/jrustlang/jrust/internal/transpiler"
)

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	dumpAst := fs.Bool("ast", false, i18n.T(i18n.MsgCheckOptAst))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgBuildOptVerbose))
	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgCheckUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgCheckDescription))
		fs.PrintDefaults()
	}
	fs.Parse(args)

	count, err := checkProject(fs.Args(), *dumpAst, *verbose)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
	printInfo(i18n.T(i18n.MsgCheckOk, count))
}

// checkProject 对给定文件(或整个项目的 src/)做词法和语法检查
func checkProject(paths []string, dumpAst, verbose bool) (int, error) {
	// 没有指定文件时检查整个项目
	if len(paths) == 0 {
		root, _, err := projectRoot()
		if err != nil {
			return 0, err
		}
		srcDir := filepath.Join(root, "src")
		sources, err := collectSourceFiles(srcDir)
		if err != nil {
			return 0, err
		}
		if len(sources) == 0 {
			return 0, errors.New(i18n.T(i18n.ErrNoSourceFiles, srcDir))
		}
		for _, rel := range sources {
			paths = append(paths, filepath.Join(srcDir, rel))
		}
	}

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return 0, errors.New(i18n.T(i18n.ErrCannotReadFile, path, err))
		}
		program, err := transpiler.Check(string(source))
		if err != nil {
			return 0, errors.New(i18n.T(i18n.ErrTranspileError, path, err))
		}
		if verbose {
			printInfo(path)
		}
		if dumpAst {
			fmt.Println(path + ":")
			repr.Println(program, repr.Indent("  "), repr.OmitEmpty(true))
		}
	}

	return len(paths), nil
}
