package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Lexer errors
	ErrUnexpectedChar:     "第 %[2]d 行第 %[3]d 列: 意外的字符 '%[1]c'",
	ErrUnterminatedString: "第 %d 行第 %d 列: 字符串未闭合",
	ErrInvalidNumber:      "第 %[2]d 行第 %[3]d 列: 无效的数字 '%[1]s'",

	// Parser errors
	ErrExpectedToken:      "第 %[3]d 行第 %[4]d 列: %[1]s (实际是 %[2]s)",
	ErrExpectedIdentifier: "期望标识符, 实际是 %s",
	ErrExpectedType:       "期望类型, 实际是 %s",
	ErrUnexpectedToken:    "表达式中意外的 token: %s",
	ErrExportUnsupported:  "export 后只能是 function, struct, enum, const 或 let",
	ErrGeneric:            "%s",

	// Usage and help
	MsgUsage:          "用法: jrust <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdInit:        "  init <name>    创建新项目",
	MsgCmdBuild:       "  build          转译项目并用 cargo 编译",
	MsgCmdRun:         "  run            构建并运行项目",
	MsgCmdCheck:       "  check          只做词法和语法检查, 不生成代码",
	MsgCmdVersion:     "  version        显示版本",
	MsgCmdHelp:        "  help           显示帮助",
	MsgUseHelp:        "使用 'jrust help' 查看用法。",
	MsgUnknownCommand: "未知命令: %s",

	// Init command
	MsgInitUsage:       "用法: jrust init <name>",
	MsgInitDescription: "创建带默认目录结构的新项目。",
	MsgInitCreated:     "已创建项目 '%s'",
	ErrProjectExists:   "目录 '%s' 已存在",
	ErrInitNameNeeded:  "需要项目名称",

	// Build command
	MsgBuildUsage:       "用法: jrust build [选项] [文件]",
	MsgBuildDescription: "将 src/ 转译为 Rust 并用 cargo 编译。",
	MsgBuildOptRelease:  "使用 cargo --release 编译",
	MsgBuildOptVerbose:  "打印每个被转译的文件",
	MsgBuildCompleted:   "构建完成, 输出在 %s",

	// Run command
	MsgRunUsage:       "用法: jrust run [选项] [文件]",
	MsgRunDescription: "构建项目并运行生成的二进制文件。",
	MsgRunning:        "正在运行 %s...",

	// Check command
	MsgCheckUsage:       "用法: jrust check [选项] [文件...]",
	MsgCheckDescription: "对所有源文件做词法和语法检查, 报告第一个错误。",
	MsgCheckOptAst:      "打印解析出的语法树",
	MsgCheckOk:          "已检查 %d 个文件, 无错误",

	// Common errors
	ErrNotAProject:      "当前目录及其父目录中没有找到 jrust.toml",
	ErrCannotGetCwd:     "无法获取当前目录: %v",
	ErrCannotLoadConfig: "无法加载配置: %v",
	ErrCannotReadFile:   "无法读取文件 %s: %v",
	ErrCannotCreateDir:  "无法创建目录 %s: %v",
	ErrCannotWriteFile:  "无法写入文件 %s: %v",
	ErrTranspileError:   "%s: %v",
	ErrNoSourceFiles:    "%s 中没有找到 .jr 文件",
	ErrNoEntryFile:      "入口文件 %s 不存在",
	ErrCargoNotFound:    "PATH 中没有找到 cargo, 请从 https://rustup.rs 安装 Rust",
	ErrCargoBuildFailed: "cargo 编译失败: %v",
	ErrRunError:         "运行失败: %v",

	// Info messages
	MsgTranspiling:      "正在转译 %s -> %s",
	MsgTranspileSuccess: "已转译 %d 个文件",
	MsgGeneratedCargo:   "已生成 %s",
	MsgCompiling:        "正在用 cargo 编译 %s...",
}
