package i18n

// Message keys for lexer errors
const (
	ErrUnexpectedChar     = "lexer.unexpected_char"     // args: char, line, column
	ErrUnterminatedString = "lexer.unterminated_string" // args: line, column
	ErrInvalidNumber      = "lexer.invalid_number"      // args: literal, line, column
)

// Message keys for parser errors
const (
	ErrExpectedToken      = "parser.expected_token"      // args: message, found, line, column
	ErrExpectedIdentifier = "parser.expected_identifier" // args: found
	ErrExpectedType       = "parser.expected_type"       // args: found
	ErrUnexpectedToken    = "parser.unexpected_token"    // args: found
	ErrExportUnsupported  = "parser.export_unsupported"
	ErrGeneric            = "parser.generic" // args: message
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdInit        = "cli.cmd_init"
	MsgCmdBuild       = "cli.cmd_build"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdCheck       = "cli.cmd_check"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Init command
	MsgInitUsage       = "cli.init_usage"
	MsgInitDescription = "cli.init_description"
	MsgInitCreated     = "cli.init_created"   // args: name
	ErrProjectExists   = "cli.project_exists" // args: path
	ErrInitNameNeeded  = "cli.init_name_needed"

	// Build command
	MsgBuildUsage       = "cli.build_usage"
	MsgBuildDescription = "cli.build_description"
	MsgBuildOptRelease  = "cli.build_opt_release"
	MsgBuildOptVerbose  = "cli.build_opt_verbose"
	MsgBuildCompleted   = "cli.build_completed" // args: outputDir

	// Run command
	MsgRunUsage       = "cli.run_usage"
	MsgRunDescription = "cli.run_description"
	MsgRunning        = "cli.running" // args: name

	// Check command
	MsgCheckUsage       = "cli.check_usage"
	MsgCheckDescription = "cli.check_description"
	MsgCheckOptAst      = "cli.check_opt_ast"
	MsgCheckOk          = "cli.check_ok" // args: count

	// Common errors
	ErrNotAProject      = "cli.not_a_project"
	ErrCannotGetCwd     = "cli.cannot_get_cwd"     // args: error
	ErrCannotLoadConfig = "cli.cannot_load_config" // args: error
	ErrCannotReadFile   = "cli.cannot_read_file"   // args: path, error
	ErrCannotCreateDir  = "cli.cannot_create_dir"  // args: path, error
	ErrCannotWriteFile  = "cli.cannot_write_file"  // args: path, error
	ErrTranspileError   = "cli.transpile_error"    // args: path, error
	ErrNoSourceFiles    = "cli.no_source_files"    // args: dir
	ErrNoEntryFile      = "cli.no_entry_file"      // args: path
	ErrCargoNotFound    = "cli.cargo_not_found"
	ErrCargoBuildFailed = "cli.cargo_build_failed" // args: error
	ErrRunError         = "cli.run_error"          // args: error

	// Info messages
	MsgTranspiling      = "cli.transpiling"       // args: input, output
	MsgTranspileSuccess = "cli.transpile_success" // args: count
	MsgGeneratedCargo   = "cli.generated_cargo"   // args: path
	MsgCompiling        = "cli.compiling"         // args: name
)
