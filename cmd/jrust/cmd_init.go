package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrustlang/jrust/internal/config"
	"github.com/jrustlang/jrust/internal/i18n"
)

// 新项目的示例入口文件
const indexTemplate = `let name: string = "jRust";
print("Welcome to ");
print(name);

let numbers: number[] = [10, 20, 30, 40, 50];

let first: number = numbers[0];
print("First element: ");
print(first);

let len: number = numbers.length;
print("Array length: ");
print(len);

const THRESHOLD: number = 25;

if first >= THRESHOLD {
    print("First number is above threshold");
} else {
    print("First number is below threshold");
}

print("Numbers greater than 15:");
let items: number[] = [15, 20, 25, 30];

for item in items {
    if item > 15 {
        print(item);
    }
}

print("Loop with break and continue:");
for n in [1, 2, 3, 4, 5] {
    if n == 2 {
        continue;
    }
    if n == 4 {
        break;
    }
    print(n);
}

let message: any = "jRust supports flexible types!";
print(message);
`

const gitignoreTemplate = `/target/
/generated/
*.exe
*.dll
*.so
*.dylib
.DS_Store
*.swp
*.swo
*~
`

func initCmd(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgInitUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgInitDescription))
	}
	fs.Parse(args)

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInitNameNeeded))
		fmt.Println(i18n.T(i18n.MsgInitUsage))
		os.Exit(1)
	}
	name := fs.Arg(0)

	// 目录已存在则拒绝创建
	if _, err := os.Stat(name); err == nil {
		printError(i18n.T(i18n.ErrProjectExists, name))
		os.Exit(1)
	}

	if err := scaffoldProject(name); err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	printInfo(i18n.T(i18n.MsgInitCreated, name))
}

// scaffoldProject 创建项目目录结构
func scaffoldProject(name string) error {
	srcDir := filepath.Join(name, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return errors.New(i18n.T(i18n.ErrCannotCreateDir, srcDir, err))
	}
	generatedDir := filepath.Join(name, "generated")
	if err := os.MkdirAll(generatedDir, 0755); err != nil {
		return errors.New(i18n.T(i18n.ErrCannotCreateDir, generatedDir, err))
	}

	cfg := config.DefaultConfig(filepath.Base(name))
	if err := cfg.Save(name); err != nil {
		return errors.New(i18n.T(i18n.ErrCannotWriteFile, config.FileName, err))
	}

	indexPath := filepath.Join(srcDir, "index.jr")
	if err := os.WriteFile(indexPath, []byte(indexTemplate), 0644); err != nil {
		return errors.New(i18n.T(i18n.ErrCannotWriteFile, indexPath, err))
	}

	gitignorePath := filepath.Join(name, ".gitignore")
	if err := os.WriteFile(gitignorePath, []byte(gitignoreTemplate), 0644); err != nil {
		return errors.New(i18n.T(i18n.ErrCannotWriteFile, gitignorePath, err))
	}

	return nil
}
