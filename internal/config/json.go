package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		AdminEmails     []string `json:"admin_emails"`
		PasswordHashing string   `json:"password_hashing"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Diary struct {
			Backend       string `json:"backend"`
			DSN           string `json:"dsn"`
			RedisAddress  string `json:"redis_address"`
			RedisPassword string `json:"redis_password"`
			RedisDB       int    `json:"redis_db"`
			Namespace     string `json:"namespace"`
		} `json:"diary,omitempty"`

		Session struct {
			MarkerPath string `json:"marker_path"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	AI struct {
		APIKey        string `json:"api_key"`
		ChatModel     string `json:"chat_model"`
		AnalysisModel string `json:"analysis_model"`
		ImageModel    string `json:"image_model"`
		SpeechModel   string `json:"speech_model"`
		Voice         string `json:"voice"`
	} `json:"ai,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CheckInterval Duration `json:"check_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			AdminEmails:     jsonCfg.App.AdminEmails,
			PasswordHashing: jsonCfg.App.PasswordHashing,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Diary: Diary{
				Backend:       jsonCfg.Storage.Diary.Backend,
				DSN:           jsonCfg.Storage.Diary.DSN,
				RedisAddress:  jsonCfg.Storage.Diary.RedisAddress,
				RedisPassword: jsonCfg.Storage.Diary.RedisPassword,
				RedisDB:       jsonCfg.Storage.Diary.RedisDB,
				Namespace:     jsonCfg.Storage.Diary.Namespace,
			},
			Session: Session{
				MarkerPath: jsonCfg.Storage.Session.MarkerPath,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		AI: AI{
			APIKey:        jsonCfg.AI.APIKey,
			ChatModel:     jsonCfg.AI.ChatModel,
			AnalysisModel: jsonCfg.AI.AnalysisModel,
			ImageModel:    jsonCfg.AI.ImageModel,
			SpeechModel:   jsonCfg.AI.SpeechModel,
			Voice:         jsonCfg.AI.Voice,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CheckInterval: time.Duration(jsonCfg.Workers.CheckInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
