package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
	"github.com/m04kA/GymSpace-BookingService/pkg/types"
)

// Бэкенды хранилища бронирований
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownLimit возвращается при неизвестном ключе ограничения команды.
	// Неизвестные ключи считаются ошибкой конфигурации, а не игнорируются.
	ErrUnknownLimit = errors.New("config: unknown team limit key")
)

// Config конфигурация сервиса, загружается один раз при старте
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`

	Teams    []TeamConfig     `toml:"teams"`
	Schedule []ScheduleConfig `toml:"schedule"`
	Space    SpaceConfig      `toml:"space"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор бэкенда хранилища бронирований
type StorageConfig struct {
	Backend string `toml:"backend"` // "memory" | "postgres"
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AuthConfig границы аутентификации: хэш токена создания аккаунта.
// Сама аутентификация выполняется внешним коллаборатором.
type AuthConfig struct {
	AccountCreationTokenHash string `toml:"account_creation_token_hash"`
}

// TeamConfig определение команды в каталоге
type TeamConfig struct {
	ID              string         `toml:"id"`
	Name            string         `toml:"name"`
	DurationMinutes int            `toml:"duration_minutes"`
	Limits          map[string]int `toml:"limits"`
}

// ToDomain конвертирует определение команды в domain-модель.
// Ключи ограничений провалидированы в Load.
func (t *TeamConfig) ToDomain() domain.Team {
	limits := make(map[domain.LimitKind]int, len(t.Limits))
	for key, value := range t.Limits {
		limits[domain.LimitKind(key)] = value
	}
	return domain.Team{
		ID:       t.ID,
		Name:     t.Name,
		Duration: time.Duration(t.DurationMinutes) * time.Minute,
		Limits:   limits,
	}
}

// ScheduleConfig точка еженедельного расписания
type ScheduleConfig struct {
	TeamID string          `toml:"team_id"`
	Day    types.Weekday   `toml:"day"`
	Time   types.TimeOfDay `toml:"time"`
}

// ToDomain конвертирует точку расписания в domain-модель
func (s *ScheduleConfig) ToDomain() domain.WeeklyScheduledTeam {
	return domain.WeeklyScheduledTeam{
		TeamID:    s.TeamID,
		Day:       s.Day.Weekday(),
		TimeOfDay: s.Time.Duration(),
	}
}

// SpaceConfig вместимость общего пула зала
type SpaceConfig struct {
	Size int `toml:"size"`
}

// WeeklySchedule собирает активное расписание из конфигурации
func (c *Config) WeeklySchedule() domain.WeeklySchedule {
	scheduled := make([]domain.WeeklyScheduledTeam, 0, len(c.Schedule))
	for _, entry := range c.Schedule {
		scheduled = append(scheduled, entry.ToDomain())
	}
	return domain.WeeklySchedule{ScheduledTeams: scheduled}
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "gymspace-booking-service"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = StorageMemory
	}
}

// validLimitKeys явная таблица допустимых ключей ограничений
var validLimitKeys = map[string]struct{}{
	string(domain.LimitSize):           {},
	string(domain.LimitActiveBookings): {},
}

func validate(cfg *Config) error {
	if cfg.Storage.Backend != StorageMemory && cfg.Storage.Backend != StoragePostgres {
		return fmt.Errorf("%w: storage.backend must be %q or %q, got %q",
			ErrInvalidConfig, StorageMemory, StoragePostgres, cfg.Storage.Backend)
	}

	if cfg.Space.Size <= 0 {
		return fmt.Errorf("%w: space.size must be positive", ErrInvalidConfig)
	}

	if len(cfg.Teams) == 0 {
		return fmt.Errorf("%w: at least one team must be configured", ErrInvalidConfig)
	}

	teamIDs := make(map[string]struct{}, len(cfg.Teams))
	for _, team := range cfg.Teams {
		if team.ID == "" {
			return fmt.Errorf("%w: team id must not be empty", ErrInvalidConfig)
		}
		if _, exists := teamIDs[team.ID]; exists {
			return fmt.Errorf("%w: duplicate team id %q", ErrInvalidConfig, team.ID)
		}
		teamIDs[team.ID] = struct{}{}

		if team.DurationMinutes <= 0 {
			return fmt.Errorf("%w: team %q duration_minutes must be positive", ErrInvalidConfig, team.ID)
		}
		if time.Duration(team.DurationMinutes)*time.Minute > domain.MaxTeamSessionDuration {
			return fmt.Errorf("%w: team %q duration exceeds the 7 day maximum", ErrInvalidConfig, team.ID)
		}

		for key, value := range team.Limits {
			if _, ok := validLimitKeys[key]; !ok {
				return fmt.Errorf("%w: team %q limit %q", ErrUnknownLimit, team.ID, key)
			}
			if value <= 0 {
				return fmt.Errorf("%w: team %q limit %q must be positive", ErrInvalidConfig, team.ID, key)
			}
		}
	}

	for _, entry := range cfg.Schedule {
		if _, ok := teamIDs[entry.TeamID]; !ok {
			return fmt.Errorf("%w: schedule references unknown team %q", ErrInvalidConfig, entry.TeamID)
		}
	}

	return nil
}
