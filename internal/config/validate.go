package config

func ValidateForRun(cfg *Config) error {
	if cfg.Port == "" {
		return ErrPortMissing
	}
	return nil
}
