package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetClassifyConfig returns the AI configuration for domain classification with fallback to global config
func (c *Config) GetClassifyConfig() OperationAIConfig {
	config := c.AI.Classify
	c.applyOperationDefaults(&config)
	return config
}

// GetMatchConfig returns the AI configuration for match evaluation with fallback to global config
func (c *Config) GetMatchConfig() OperationAIConfig {
	config := c.AI.Match
	c.applyOperationDefaults(&config)
	return config
}

// GetAugmentConfig returns the AI configuration for skill augmentation with fallback to global config
func (c *Config) GetAugmentConfig() OperationAIConfig {
	config := c.AI.Augment
	c.applyOperationDefaults(&config)
	return config
}
