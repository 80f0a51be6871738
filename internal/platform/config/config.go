package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string

	// RejectionThreshold is the risk score cutoff: a score strictly above it
	// rejects the registration.
	RejectionThreshold float64

	RiskEndpoint string
	RiskTimeout  time.Duration

	DatabaseURL  string
	Redis        RedisConfig
	KafkaBrokers []string
	AuditTopic   string
}

// RedisConfig holds connection settings for the basket store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultRejectionThreshold matches the deployment this service replaces.
const DefaultRejectionThreshold = 20

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("GATEKEEP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	threshold := float64(DefaultRejectionThreshold)
	if raw := os.Getenv("RISK_REJECTION_THRESHOLD"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			threshold = parsed
		}
	}

	riskTimeout := 5 * time.Second
	if raw := os.Getenv("RISK_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			riskTimeout = parsed
		}
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}
	auditTopic := os.Getenv("AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "gatekeep.audit"
	}

	return Server{
		Addr:               addr,
		JWTSigningKey:      jwtSigningKey,
		RejectionThreshold: threshold,
		RiskEndpoint:       os.Getenv("RISK_ENDPOINT"),
		RiskTimeout:        riskTimeout,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaBrokers: brokers,
		AuditTopic:   auditTopic,
	}
}
