package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Lexer errors
	ErrUnexpectedChar:     "Unexpected character '%c' at line %d, column %d",
	ErrUnterminatedString: "Unterminated string at line %d, column %d",
	ErrInvalidNumber:      "Invalid number '%s' at line %d, column %d",

	// Parser errors
	ErrExpectedToken:      "%s (found: %s at line:column %d:%d)",
	ErrExpectedIdentifier: "Expected identifier, found: %s",
	ErrExpectedType:       "Expected type, found: %s",
	ErrUnexpectedToken:    "Unexpected token in expression: %s",
	ErrExportUnsupported:  "Expected function, struct, enum, const, or let after export",
	ErrGeneric:            "%s",

	// Usage and help
	MsgUsage:          "Usage: jrust <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdInit:        "  init <name>    Create a new project",
	MsgCmdBuild:       "  build          Transpile the project and compile with cargo",
	MsgCmdRun:         "  run            Build and run the project",
	MsgCmdCheck:       "  check          Lex and parse without generating code",
	MsgCmdVersion:     "  version        Show version",
	MsgCmdHelp:        "  help           Show this help",
	MsgUseHelp:        "Use 'jrust help' for usage.",
	MsgUnknownCommand: "Unknown command: %s",

	// Init command
	MsgInitUsage:       "Usage: jrust init <name>",
	MsgInitDescription: "Create a new project directory with a default layout.",
	MsgInitCreated:     "Created project '%s'",
	ErrProjectExists:   "Directory '%s' already exists",
	ErrInitNameNeeded:  "Project name is required",

	// Build command
	MsgBuildUsage:       "Usage: jrust build [options] [file]",
	MsgBuildDescription: "Transpile src/ to Rust and compile the result with cargo.",
	MsgBuildOptRelease:  "Build with cargo --release",
	MsgBuildOptVerbose:  "Print each file as it is transpiled",
	MsgBuildCompleted:   "Build completed, output in %s",

	// Run command
	MsgRunUsage:       "Usage: jrust run [options] [file]",
	MsgRunDescription: "Build the project and run the produced binary.",
	MsgRunning:        "Running %s...",

	// Check command
	MsgCheckUsage:       "Usage: jrust check [options] [files...]",
	MsgCheckDescription: "Lex and parse all source files, reporting the first error.",
	MsgCheckOptAst:      "Dump the parsed syntax tree",
	MsgCheckOk:          "Checked %d file(s), no errors",

	// Common errors
	ErrNotAProject:      "No jrust.toml found in this directory or any parent",
	ErrCannotGetCwd:     "Cannot get current directory: %v",
	ErrCannotLoadConfig: "Cannot load config: %v",
	ErrCannotReadFile:   "Cannot read file %s: %v",
	ErrCannotCreateDir:  "Cannot create directory %s: %v",
	ErrCannotWriteFile:  "Cannot write file %s: %v",
	ErrTranspileError:   "%s: %v",
	ErrNoSourceFiles:    "No .jr files found in %s",
	ErrNoEntryFile:      "Entry file %s not found",
	ErrCargoNotFound:    "cargo not found in PATH, install Rust from https://rustup.rs",
	ErrCargoBuildFailed: "cargo build failed: %v",
	ErrRunError:         "Run failed: %v",

	// Info messages
	MsgTranspiling:      "Transpiling %s -> %s",
	MsgTranspileSuccess: "Transpiled %d file(s)",
	MsgGeneratedCargo:   "Generated %s",
	MsgCompiling:        "Compiling %s with cargo...",
}
