package config

import "flag"

// parseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-log log file path
//	-c/-config json file path with configs
func parseFlags() *StructuredConfig {
	var databasePath string
	var logPath string
	var jsonConfigPath string

	flag.StringVar(&databasePath, "d", "", "Database file path")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	cfg := &StructuredConfig{jsonFilePath: jsonConfigPath}
	cfg.Storage.Path = databasePath
	cfg.Logging.Path = logPath

	return cfg
}
