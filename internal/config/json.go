package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Name      string `json:"name"`
		Version   string `json:"version"`
		LogLevel  string `json:"log_level"`
		LogPretty bool   `json:"log_pretty"`
	} `json:"app,omitempty"`

	Auth struct {
		SupabaseURL    string   `json:"supabase_url"`
		SupabaseKey    string   `json:"supabase_key"`
		JWTSecret      string   `json:"jwt_secret"`
		JWTAudience    string   `json:"jwt_audience"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver          string   `json:"driver"`
			DSN             string   `json:"dsn"`
			SimpleProtocol  bool     `json:"simple_protocol"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		APIPrefix       string   `json:"api_prefix"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
		MaxAge         Duration `json:"max_age"`
	} `json:"cors,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:      jsonCfg.App.Name,
			Version:   jsonCfg.App.Version,
			LogLevel:  jsonCfg.App.LogLevel,
			LogPretty: jsonCfg.App.LogPretty,
		},
		Auth: Auth{
			SupabaseURL:    jsonCfg.Auth.SupabaseURL,
			SupabaseKey:    jsonCfg.Auth.SupabaseKey,
			JWTSecret:      jsonCfg.Auth.JWTSecret,
			JWTAudience:    jsonCfg.Auth.JWTAudience,
			RequestTimeout: time.Duration(jsonCfg.Auth.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver:          jsonCfg.Storage.DB.Driver,
				DSN:             jsonCfg.Storage.DB.DSN,
				SimpleProtocol:  jsonCfg.Storage.DB.SimpleProtocol,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			APIPrefix:       jsonCfg.Server.APIPrefix,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		CORS: CORS{
			AllowedOrigins: jsonCfg.CORS.AllowedOrigins,
			MaxAge:         time.Duration(jsonCfg.CORS.MaxAge),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
