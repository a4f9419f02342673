package config

// Path Constants
const (
	// LocalConfigDir is the base directory for fafscan configuration
	LocalConfigDir = ".fafscan"

	// LocalConfigFile is the filename for the main config
	LocalConfigFile = "config.json"

	// LocalRulesFile is the filename for user-defined detection rules
	LocalRulesFile = "rules.ini"
)

// File Permissions
const (
	// PermDirectory is the file permission for directories
	PermDirectory = 0755

	// PermConfigFile is the file permission for config files
	PermConfigFile = 0644

	// PermDocumentFile is the file permission for emitted .faf documents
	PermDocumentFile = 0644
)
