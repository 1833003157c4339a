package conf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Bootstrap is the root of the configuration tree.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Log    *Log    `json:"log"`
}

// Server configures the HTTP transport.
type Server struct {
	Http *Server_HTTP `json:"http"`
	// HideErrorDetails drops raw store messages from 5xx bodies.
	HideErrorDetails bool       `json:"hide_error_details"`
	Cors             *Cors      `json:"cors"`
	RateLimit        *RateLimit `json:"rate_limit"`
}

type Server_HTTP struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

type Cors struct {
	AllowedOrigins []string `json:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers"`
}

// RateLimit is disabled when RequestsPerMinute is zero.
type RateLimit struct {
	RequestsPerMinute int `json:"requests_per_minute"`
}

// Data holds the settings for every backing store.
type Data struct {
	Database  *Data_Database  `json:"database"`
	Analytics *Data_Database  `json:"analytics"`
	Redis     *Data_Redis     `json:"redis"`
	Mongo     *Data_Mongo     `json:"mongo"`
	Cache     *Data_Cache     `json:"cache"`
	Bootstrap *Data_Bootstrap `json:"bootstrap"`
}

type Data_Database struct {
	Driver       string   `json:"driver"`
	Source       string   `json:"source"`
	MaxIdleConns int      `json:"max_idle_conns"`
	MaxOpenConns int      `json:"max_open_conns"`
	MaxLifetime  Duration `json:"max_lifetime"`
}

type Data_Redis struct {
	Addr         string   `json:"addr"`
	Password     string   `json:"password"`
	Db           int      `json:"db"`
	ReadTimeout  Duration `json:"read_timeout"`
	WriteTimeout Duration `json:"write_timeout"`
}

type Data_Mongo struct {
	Uri      string `json:"uri"`
	Database string `json:"database"`
}

type Data_Cache struct {
	MetadataTtl Duration `json:"metadata_ttl"`
}

type Data_Bootstrap struct {
	MaxAttempts int      `json:"max_attempts"`
	RetryDelay  Duration `json:"retry_delay"`
}

type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Duration decodes either a Go duration string ("3s") or a number of seconds.
type Duration struct {
	time.Duration
}

// AsDuration returns the wrapped value; nil receivers yield zero.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		d.Duration = time.Duration(x * float64(time.Second))
	case string:
		if n, err := strconv.ParseFloat(x, 64); err == nil {
			d.Duration = time.Duration(n * float64(time.Second))
			return nil
		}
		parsed, err := time.ParseDuration(x)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", x, err)
		}
		d.Duration = parsed
	case nil:
		d.Duration = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Defaults fills unset values with the production defaults.
func (b *Bootstrap) Defaults() {
	if b.Server == nil {
		b.Server = &Server{}
	}
	if b.Server.Http == nil {
		b.Server.Http = &Server_HTTP{}
	}
	if b.Server.Http.Addr == "" {
		b.Server.Http.Addr = "0.0.0.0:3000"
	}
	if b.Data == nil {
		b.Data = &Data{}
	}
	if b.Data.Database == nil {
		b.Data.Database = &Data_Database{}
	}
	if b.Data.Analytics == nil {
		b.Data.Analytics = &Data_Database{}
	}
	if b.Data.Redis == nil {
		b.Data.Redis = &Data_Redis{Addr: "127.0.0.1:6379"}
	}
	if b.Data.Mongo == nil {
		b.Data.Mongo = &Data_Mongo{}
	}
	if b.Data.Mongo.Database == "" {
		b.Data.Mongo.Database = "streaming"
	}
	if b.Data.Cache == nil {
		b.Data.Cache = &Data_Cache{}
	}
	if b.Data.Cache.MetadataTtl.Duration <= 0 {
		b.Data.Cache.MetadataTtl.Duration = time.Hour
	}
	if b.Data.Bootstrap == nil {
		b.Data.Bootstrap = &Data_Bootstrap{}
	}
	if b.Data.Bootstrap.MaxAttempts <= 0 {
		b.Data.Bootstrap.MaxAttempts = 10
	}
	if b.Data.Bootstrap.RetryDelay.Duration <= 0 {
		b.Data.Bootstrap.RetryDelay.Duration = 3 * time.Second
	}
	if b.Log == nil {
		b.Log = &Log{Level: "info", Format: "json"}
	}
}
