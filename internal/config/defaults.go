package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Extract.MaxFileSize == 0 {
		cfg.Extract.MaxFileSize = 50 << 20 // 50 MiB
	}
	if cfg.Caesar.DefaultShift == 0 {
		cfg.Caesar.DefaultShift = 3
	}
	// Analyze.TopWords zero means "all words" and needs no default.
}
