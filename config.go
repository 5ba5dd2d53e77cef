package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Column names of the source sheet, which has no header row of its own.
var defaultColumns = []string{
	"Indice", "ANO_CENSO", "REGIAO", "UF", "DEPENDENCIA", "CATEGORIA",
	"NUMERO_DOCENTES", "PERCENTUAL_DOC_TEMPO_INTEGRAL", "REMUNERACAO_MINIMA",
	"REMUNERACAO_MEDIANA", "REMUNERACAO_MEDIA", "REMUNERACAO_75_PERCENTIL",
	"DESVIO_PADRAO_REMUNERACAO", "COEF_VARIACAO_PERC", "REMUNERACAO_MEDIA_40H",
}

// Config holds everything a run needs. Defaults reproduce the fixed layout of
// the INEP teacher pay spreadsheet, so the binary runs without any setting.
type Config struct {
	ConfigFile   string `envconfig:"CONFIG_FILE"`
	InputFile    string `envconfig:"INPUT_FILE" default:"datasets/Remuneracao_docentes_Nordeste_2020_Att.xlsx" validate:"required"`
	OutputFolder string `envconfig:"OUTPUT_FOLDER" default:"datasets" validate:"required"`
	OutputFile   string `envconfig:"OUTPUT_FILE" default:"dados_remuneracao_tratados_v2.xlsx" validate:"required"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	CSVPackage   bool   `envconfig:"CSV_PACKAGE" default:"false"`

	LoaderConfig
}

// LoaderConfig describes the shape of the source sheet.
type LoaderConfig struct {
	SkipRows int      `envconfig:"SKIP_ROWS" default:"8" validate:"min=0"`
	Sheet    string   `envconfig:"SHEET"`
	Columns  []string `ignored:"true" validate:"len=15,dive,required"`
}

// fileConfig is the optional YAML overlay pointed to by CONFIG_FILE.
type fileConfig struct {
	SkipRows *int     `yaml:"skip_rows"`
	Sheet    string   `yaml:"sheet"`
	Columns  []string `yaml:"columns"`
}

// OutputPath is where the workbook is written.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputFolder, c.OutputFile)
}

// loadConfig reads the environment, applies the YAML overlay, if any, and
// validates the result.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error reading environment: %w", err)
	}
	cfg.LoaderConfig.Columns = append([]string(nil), defaultColumns...)

	if cfg.ConfigFile != "" {
		if err := applyConfigFile(&cfg, cfg.ConfigFile); err != nil {
			return Config{}, err
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyConfigFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file (%s): %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("error parsing config file (%s): %w", path, err)
	}
	if fc.SkipRows != nil {
		cfg.LoaderConfig.SkipRows = *fc.SkipRows
	}
	if fc.Sheet != "" {
		cfg.LoaderConfig.Sheet = fc.Sheet
	}
	if len(fc.Columns) > 0 {
		cfg.LoaderConfig.Columns = fc.Columns
	}
	return nil
}
