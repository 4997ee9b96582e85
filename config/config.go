// seehuhn.de/go/certificate - render certificates from a template image
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the certificate renderer from a
// YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/certificate"
)

// EnvPath is the environment variable which may name the configuration
// file.
const EnvPath = "CONFIG_PATH"

// Config holds all settings.
type Config struct {
	TemplatePath string  `yaml:"template_path"`
	FontPath     string  `yaml:"font_path"`
	Fonts        Fonts   `yaml:"fonts"`
	DPI          float64 `yaml:"dpi"`

	// ReferenceHeight is the template height the layout offsets refer
	// to. Zero uses the height of the loaded template, so that lines sit
	// at fixed pixel rows.
	ReferenceHeight float64 `yaml:"reference_height"`

	Document  Document `yaml:"document"`
	OutputDir string   `yaml:"output_dir"`
	Logger    Logger   `yaml:"logger"`
}

// Fonts gives the pixel size for each font role.
type Fonts struct {
	Name          float64 `yaml:"name"`
	Body          float64 `yaml:"body"`
	Qualification float64 `yaml:"qualification"`
	Subtitle      float64 `yaml:"subtitle"`
}

// Document configures PDF output. Sizes are in PDF points.
type Document struct {
	PageWidth   float64 `yaml:"page_width"`
	PageHeight  float64 `yaml:"page_height"`
	Author      string  `yaml:"author"`
	TitlePrefix string  `yaml:"title_prefix"`
}

// Logger configures log output. If File is empty, logs go to stdout.
type Logger struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the built-in settings.
func Default() *Config {
	sizes := certificate.DefaultFontSizes()
	doc := certificate.DefaultDocumentOptions()
	return &Config{
		TemplatePath: "images/before.png",
		FontPath:     "fonts/BOD_B.TTF",
		Fonts: Fonts{
			Name:          sizes[certificate.RoleName],
			Body:          sizes[certificate.RoleBody],
			Qualification: sizes[certificate.RoleQualification],
			Subtitle:      sizes[certificate.RoleSubtitle],
		},
		DPI: certificate.DefaultDPI,
		Document: Document{
			PageWidth:   doc.PageWidth,
			PageHeight:  doc.PageHeight,
			Author:      doc.Author,
			TitlePrefix: doc.TitlePrefix,
		},
		OutputDir: ".",
		Logger: Logger{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the configuration file at path. Settings missing from the
// file keep their default values. If path is empty, the file named by
// the CONFIG_PATH environment variable is used; if that is unset too,
// the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all sizes are positive and that the template is
// set.
func (c *Config) Validate() error {
	var errs []error
	if c.TemplatePath == "" {
		errs = append(errs, errors.New("template_path is empty"))
	}
	for role, size := range c.FontSizes() {
		if size <= 0 {
			errs = append(errs, fmt.Errorf("fonts.%s must be positive", role))
		}
	}
	if c.ReferenceHeight < 0 {
		errs = append(errs, errors.New("reference_height must not be negative"))
	}
	if c.DPI <= 0 {
		errs = append(errs, errors.New("dpi must be positive"))
	}
	if c.Document.PageWidth <= 0 || c.Document.PageHeight <= 0 {
		errs = append(errs, errors.New("document page size must be positive"))
	}
	if c.Logger.MaxSizeMB < 0 || c.Logger.MaxBackups < 0 || c.Logger.MaxAgeDays < 0 {
		errs = append(errs, errors.New("logger limits must not be negative"))
	}
	return errors.Join(errs...)
}

// FontSizes returns the font sizes in the form used by
// [certificate.ResolveFonts].
func (c *Config) FontSizes() certificate.FontSizes {
	return certificate.FontSizes{
		certificate.RoleName:          c.Fonts.Name,
		certificate.RoleBody:          c.Fonts.Body,
		certificate.RoleQualification: c.Fonts.Qualification,
		certificate.RoleSubtitle:      c.Fonts.Subtitle,
	}
}

// DocumentOptions returns the PDF settings.
func (c *Config) DocumentOptions() *certificate.DocumentOptions {
	return &certificate.DocumentOptions{
		PageWidth:   c.Document.PageWidth,
		PageHeight:  c.Document.PageHeight,
		Author:      c.Document.Author,
		TitlePrefix: c.Document.TitlePrefix,
	}
}

// Layout returns the reference layout for a template of the given height.
func (c *Config) Layout(templateHeight int) (*certificate.Layout, error) {
	ref := c.ReferenceHeight
	if ref == 0 {
		ref = float64(templateHeight)
	}
	return certificate.NewLayout(certificate.DefaultLinesAt(ref))
}
