package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Engine Configuration
	v.SetDefault("engine.qualifyingThreshold", 50)
	v.SetDefault("engine.scoreFloor", 5)
	v.SetDefault("engine.maxSkills", 30)
	v.SetDefault("engine.maxExperienceYears", 50)
	v.SetDefault("engine.workers", 8)
	v.SetDefault("engine.semanticConfidenceThreshold", 0.75)
	v.SetDefault("engine.taxonomyFile", "")
	v.SetDefault("engine.watchTaxonomy", false)

	// AI Configuration - Global defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.useSystemPrompts", true)

	// AI Configuration - Classify operation defaults
	v.SetDefault("ai.classify.provider", "gemini")
	v.SetDefault("ai.classify.model", "")
	v.SetDefault("ai.classify.timeout", 30*time.Second) // Short timeout, classification is a small prompt
	v.SetDefault("ai.classify.apiKey", "")
	v.SetDefault("ai.classify.maxRetries", 2)
	v.SetDefault("ai.classify.temperature", 0.1) // Very low temperature for stable category labels
	v.SetDefault("ai.classify.useSystemPrompts", true)

	// AI Configuration - Match operation defaults
	v.SetDefault("ai.match.provider", "gemini")
	v.SetDefault("ai.match.model", "")
	v.SetDefault("ai.match.timeout", 60*time.Second) // Standard timeout, match evaluation reads the full resume
	v.SetDefault("ai.match.apiKey", "")
	v.SetDefault("ai.match.maxRetries", 3)
	v.SetDefault("ai.match.temperature", 0.2) // Low temperature for consistent assessments
	v.SetDefault("ai.match.useSystemPrompts", true)

	// AI Configuration - Augment operation defaults
	v.SetDefault("ai.augment.provider", "gemini")
	v.SetDefault("ai.augment.model", "")
	v.SetDefault("ai.augment.timeout", 45*time.Second)
	v.SetDefault("ai.augment.apiKey", "")
	v.SetDefault("ai.augment.maxRetries", 2)
	v.SetDefault("ai.augment.temperature", 0.3)
	v.SetDefault("ai.augment.useSystemPrompts", true)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.classify.circuitBreaker.enabled", true)
	v.SetDefault("ai.classify.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.classify.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.classify.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.classify.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.classify.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.match.circuitBreaker.enabled", true)
	v.SetDefault("ai.match.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.match.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.match.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.match.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.match.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.augment.circuitBreaker.enabled", true)
	v.SetDefault("ai.augment.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.augment.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.augment.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.augment.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.augment.circuitBreaker.failureThreshold", 0.6)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server, mutual
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.caFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")           // TLS 1.2 minimum
	v.SetDefault("server.tls.cipherSuites", []string{})    // Use Go defaults
	v.SetDefault("server.tls.clientAuthPolicy", "require") // require, request, verify
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.geminiKey", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "hirescreen")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackModelInfo", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackScoreSpread", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackContentSizes", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackTaxonomyReloads", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
	v.SetDefault("observability.healthCheck.aiModelCheckTimeout", 10*time.Second)
}
