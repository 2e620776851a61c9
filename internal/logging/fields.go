package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldConfig  = "config"
	FieldSource  = "source"
	FieldPreset  = "preset"
	FieldRules   = "rules"
	FieldFix     = "fix"
	FieldDryRun  = "dry_run"
	FieldJobs    = "jobs"
	FieldReport  = "reporter"
	FieldEnvKeys = "env_keys"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChecked    = "files_checked"
	FieldFilesWithErrors = "files_with_errors"
	FieldErrors          = "errors"
	FieldErrorsFixed     = "errors_fixed"
	FieldFilesModified   = "files_modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
