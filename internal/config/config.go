package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Google
	CalendarID      string `envconfig:"CALENDAR_ID" default:"lucky.bvrber5@gmail.com"`
	SheetID         string `envconfig:"SHEET_ID" default:"1z4E18eS62VUacbIHb2whKzLYTsS5zyYnRNZTqFFiQgc"`
	CredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE" default:"credentials.json"`
	TokenFile       string `envconfig:"GOOGLE_TOKEN_FILE" default:"token.json"`

	// Reglas de agenda
	Timezone      string `envconfig:"BOOKING_TIMEZONE" default:"America/Santiago"`
	WorkStartHour int    `envconfig:"WORK_START_HOUR" default:"9"`
	WorkEndHour   int    `envconfig:"WORK_END_HOUR" default:"18"`
	SlotMinutes   int    `envconfig:"SLOT_MINUTES" default:"45"`
	CooldownHours int    `envconfig:"COOLDOWN_HOURS" default:"72"`

	// Infra opcional
	RedisAddr       string `envconfig:"REDIS_ADDR"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	SessionTTLHours int    `envconfig:"SESSION_TTL_HOURS" default:"24"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) SlotDuration() time.Duration {
	return time.Duration(c.SlotMinutes) * time.Minute
}

func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownHours) * time.Hour
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
