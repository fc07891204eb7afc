package main

import (
	"errors"
	"flag"
	"fmt"
	iofs "io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jrustlang/jrust/internal/config"
	"github.com/jrustlang/jrust/internal/i18n"
	"github.com/jrustlang/jrust/internal/transpiler"
)

const binaryName = "jrust_app"

func buildCmd(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	release := fs.Bool("release", true, i18n.T(i18n.MsgBuildOptRelease))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgBuildOptVerbose))
	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgBuildUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgBuildDescription))
		fs.PrintDefaults()
	}
	fs.Parse(args)

	dir, err := buildProject(*release, *verbose, fs.Arg(0))
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
	printInfo(i18n.T(i18n.MsgBuildCompleted, dir))
}

// buildProject 转译项目并用 cargo 编译, 返回 generated 目录
//
// entryPath 非空时只转译这一个文件作为入口, 否则转译整个 src/
func buildProject(release, verbose bool, entryPath string) (string, error) {
	root, cfg, err := projectRoot()
	if err != nil {
		return "", err
	}

	generatedDir := filepath.Join(root, "generated")
	var count int
	if entryPath != "" {
		count, err = transpileEntryFile(entryPath, generatedDir, verbose)
	} else {
		count, err = transpileProject(root, generatedDir, verbose)
	}
	if err != nil {
		return "", err
	}
	printInfo(i18n.T(i18n.MsgTranspileSuccess, count))

	cargoPath, err := generateCargoToml(cfg, generatedDir)
	if err != nil {
		return "", err
	}
	printInfo(i18n.T(i18n.MsgGeneratedCargo, cargoPath))

	if _, err := exec.LookPath("cargo"); err != nil {
		return "", errors.New(i18n.T(i18n.ErrCargoNotFound))
	}

	printInfo(i18n.T(i18n.MsgCompiling, binaryName))
	cargoArgs := []string{"build"}
	if release {
		cargoArgs = append(cargoArgs, "--release")
	}
	cmd := exec.Command("cargo", cargoArgs...)
	cmd.Dir = generatedDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.New(i18n.T(i18n.ErrCargoBuildFailed, err))
	}

	return generatedDir, nil
}

// projectRoot 从当前目录向上查找 jrust.toml
func projectRoot() (string, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, errors.New(i18n.T(i18n.ErrCannotGetCwd, err))
	}
	cfg, root, err := config.FindAndLoad(cwd)
	if err != nil {
		return "", nil, errors.New(i18n.T(i18n.ErrCannotLoadConfig, err))
	}
	if cfg == nil {
		return "", nil, errors.New(i18n.T(i18n.ErrNotAProject))
	}
	return root, cfg, nil
}

// transpileEntryFile 只转译一个指定的入口文件到 generated/main.rs
func transpileEntryFile(entryPath, generatedDir string, verbose bool) (int, error) {
	source, err := os.ReadFile(entryPath)
	if err != nil {
		return 0, errors.New(i18n.T(i18n.ErrCannotReadFile, entryPath, err))
	}

	code, err := transpiler.Transpile(string(source), transpiler.EntryUnit)
	if err != nil {
		return 0, errors.New(i18n.T(i18n.ErrTranspileError, entryPath, err))
	}

	outPath := filepath.Join(generatedDir, "main.rs")
	if err := writeGenerated(outPath, code); err != nil {
		return 0, err
	}
	if verbose {
		printInfo(i18n.T(i18n.MsgTranspiling, entryPath, outPath))
	}
	return 1, nil
}

// transpileProject 把 src/ 下的所有 .jr 文件转译到 generated/
//
// src/index.jr 是入口, 输出为 generated/main.rs; 其余文件按目录
// 结构输出为依赖模块, 并在 main.rs 里补上 mod 声明.
func transpileProject(root, generatedDir string, verbose bool) (int, error) {
	srcDir := filepath.Join(root, "src")
	entryPath := filepath.Join(srcDir, "index.jr")
	if _, err := os.Stat(entryPath); err != nil {
		return 0, errors.New(i18n.T(i18n.ErrNoEntryFile, entryPath))
	}

	sources, err := collectSourceFiles(srcDir)
	if err != nil {
		return 0, err
	}
	if len(sources) == 0 {
		return 0, errors.New(i18n.T(i18n.ErrNoSourceFiles, srcDir))
	}

	// 收集各级目录下的模块名, "" 代表 src 根目录
	modules := map[string][]string{}

	for _, rel := range sources {
		if rel == "index.jr" {
			continue
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		name := strings.TrimSuffix(parts[len(parts)-1], ".jr")
		dir := strings.Join(parts[:len(parts)-1], "/")
		modules[dir] = appendUnique(modules[dir], name)
		for i := 0; i < len(parts)-1; i++ {
			parent := strings.Join(parts[:i], "/")
			modules[parent] = appendUnique(modules[parent], parts[i])
		}
	}

	for _, rel := range sources {
		inPath := filepath.Join(srcDir, rel)
		source, err := os.ReadFile(inPath)
		if err != nil {
			return 0, errors.New(i18n.T(i18n.ErrCannotReadFile, inPath, err))
		}

		mode := transpiler.DependentModule
		outRel := strings.TrimSuffix(rel, ".jr") + ".rs"
		if rel == "index.jr" {
			mode = transpiler.EntryUnit
			outRel = "main.rs"
		}

		code, err := transpiler.Transpile(string(source), mode)
		if err != nil {
			return 0, errors.New(i18n.T(i18n.ErrTranspileError, inPath, err))
		}

		if rel == "index.jr" && len(modules[""]) > 0 {
			code = modDeclarations(modules[""], "mod") + "\n" + code
		}

		outPath := filepath.Join(generatedDir, outRel)
		if err := writeGenerated(outPath, code); err != nil {
			return 0, err
		}
		if verbose {
			printInfo(i18n.T(i18n.MsgTranspiling, inPath, outPath))
		}
	}

	// 子目录需要 mod.rs 声明其中的模块
	for dir, names := range modules {
		if dir == "" {
			continue
		}
		modPath := filepath.Join(generatedDir, filepath.FromSlash(dir), "mod.rs")
		if err := writeGenerated(modPath, modDeclarations(names, "pub mod")); err != nil {
			return 0, err
		}
	}

	return len(sources), nil
}

// collectSourceFiles 返回 srcDir 下所有 .jr 文件的相对路径
func collectSourceFiles(srcDir string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(srcDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".jr") {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, errors.New(i18n.T(i18n.ErrCannotReadFile, srcDir, err))
	}
	sort.Strings(sources)
	return sources, nil
}

func modDeclarations(names []string, keyword string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	var builder strings.Builder
	for _, name := range sorted {
		builder.WriteString(keyword)
		builder.WriteString(" ")
		builder.WriteString(name)
		builder.WriteString(";\n")
	}
	return builder.String()
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

func writeGenerated(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New(i18n.T(i18n.ErrCannotCreateDir, dir, err))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.New(i18n.T(i18n.ErrCannotWriteFile, path, err))
	}
	return nil
}

// generateCargoToml 在 generated 目录下生成 Cargo.toml
func generateCargoToml(cfg *config.Config, generatedDir string) (string, error) {
	cargoToml := fmt.Sprintf(`[package]
name = "%s"
version = "%s"
edition = "%s"
authors = %s

[[bin]]
name = "%s"
path = "main.rs"
`, binaryName, cfg.Package.Version, cfg.Package.Edition,
		fmt.Sprintf("%q", cfg.Package.Authors), binaryName)

	path := filepath.Join(generatedDir, "Cargo.toml")
	if err := writeGenerated(path, cargoToml); err != nil {
		return "", err
	}
	return path, nil
}
