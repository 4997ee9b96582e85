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

// Command genref renders the reference records to PNG and PDF files in
// testdata/reference, for visual inspection.
//
// The template and font are taken from the configuration file named by
// the CONFIG_PATH environment variable, or from the defaults.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/certificate"
	"seehuhn.de/go/certificate/config"
	"seehuhn.de/go/certificate/internal/logging"
	"seehuhn.de/go/certificate/testcases"
)

const refDir = "testdata/reference"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}
	logger := logging.New(cfg.Logger)

	tmpl, err := certificate.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		panic(err)
	}
	fonts := certificate.ResolveFonts(cfg.FontPath, cfg.FontSizes(), logger)
	layout, err := cfg.Layout(tmpl.Bounds().Dy())
	if err != nil {
		panic(err)
	}
	r, err := certificate.NewRenderer(tmpl, fonts,
		certificate.WithLayout(layout),
		certificate.WithDPI(cfg.DPI),
		certificate.WithDocumentOptions(cfg.DocumentOptions()),
		certificate.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(refDir, 0o755); err != nil {
		panic(err)
	}

	for _, group := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[group] {
			name := group + "_" + tc.Name
			if err := generate(r, tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(r *certificate.Renderer, tc testcases.TestCase, name string) error {
	cert, err := r.Render(tc.Request)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(refDir, name+".png"), cert.PNG, 0o644); err != nil {
		return err
	}

	doc, err := r.Document(cert, tc.Request)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(refDir, name+".pdf"), doc, 0o644)
}
