package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Scalar defaults (token duration, bcrypt cost) are applied at the service
// layer; only structurally required settings are checked here.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
