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

// Command certgen renders a certificate to PNG and, optionally, PDF.
//
// Usage:
//
//	certgen -name "Emma Wilson" -qualification "..." -result "Achieved with Excellence" \
//	    -date 2025-10-15 -level 4 -credits 120 -provider "Auckland Institute of Technology" -pdf
//
// With -samples, certificates for all reference records are written.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"seehuhn.de/go/certificate"
	"seehuhn.de/go/certificate/config"
	"seehuhn.de/go/certificate/internal/logging"
	"seehuhn.de/go/certificate/testcases"
)

type options struct {
	configPath  string
	outDir      string
	withPDF     bool
	samples     bool
	metricsFile string

	name          string
	qualification string
	result        string
	date          string
	level         int
	credits       int
	provider      string
}

func main() {
	var opt options
	flag.StringVar(&opt.configPath, "config", "", "configuration file (default $"+config.EnvPath+")")
	flag.StringVar(&opt.outDir, "out", "", "output directory (overrides output_dir)")
	flag.BoolVar(&opt.withPDF, "pdf", false, "also write a PDF document")
	flag.BoolVar(&opt.samples, "samples", false, "render all reference records")
	flag.StringVar(&opt.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	flag.StringVar(&opt.name, "name", "", "recipient name")
	flag.StringVar(&opt.qualification, "qualification", "", "qualification name")
	flag.StringVar(&opt.result, "result", certificate.Achieved.String(), "result")
	flag.StringVar(&opt.date, "date", "", "completion date, YYYY-MM-DD")
	flag.IntVar(&opt.level, "level", 0, "qualification level")
	flag.IntVar(&opt.credits, "credits", 0, "number of credits")
	flag.StringVar(&opt.provider, "provider", "", "provider name")
	flag.Parse()

	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, "certgen:", err)
		os.Exit(1)
	}
}

func run(opt options) error {
	cfg, err := config.Load(opt.configPath)
	if err != nil {
		return err
	}
	if opt.outDir != "" {
		cfg.OutputDir = opt.outDir
	}
	logger := logging.New(cfg.Logger).With().Str("run_id", xid.New().String()).Logger()

	var requests []certificate.Request
	if opt.samples {
		for _, group := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[group] {
				requests = append(requests, tc.Request)
			}
		}
	} else {
		req, err := requestFromFlags(opt)
		if err != nil {
			return err
		}
		requests = append(requests, req)
	}

	tmpl, err := certificate.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return err
	}
	fonts := certificate.ResolveFonts(cfg.FontPath, cfg.FontSizes(), logger)

	reg := prometheus.NewRegistry()
	layout, err := cfg.Layout(tmpl.Bounds().Dy())
	if err != nil {
		return err
	}
	r, err := certificate.NewRenderer(tmpl, fonts,
		certificate.WithLayout(layout),
		certificate.WithDPI(cfg.DPI),
		certificate.WithDocumentOptions(cfg.DocumentOptions()),
		certificate.WithLogger(logger),
		certificate.WithMetrics(certificate.NewMetrics(reg)))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}
	failed := 0
	for _, req := range requests {
		if err := write(r, req, cfg.OutputDir, opt.withPDF, logger); err != nil {
			// Every render is independent; report and carry on.
			logger.Error().Err(err).Str("recipient", req.RecipientName).Msg("certificate not written")
			failed++
		}
	}

	if opt.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opt.metricsFile, reg); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d certificates failed", failed, len(requests))
	}
	return nil
}

func requestFromFlags(opt options) (certificate.Request, error) {
	res, err := certificate.ParseResult(opt.result)
	if err != nil {
		return certificate.Request{}, err
	}
	return certificate.NewRequest(opt.name, opt.qualification, res, opt.date,
		certificate.Level(opt.level), opt.credits, opt.provider)
}

func write(r *certificate.Renderer, req certificate.Request, dir string, withPDF bool, logger zerolog.Logger) error {
	cert, err := r.Render(req)
	if err != nil {
		return err
	}
	pngPath := filepath.Join(dir, certificate.FileName(req.RecipientName, "png"))
	if err := os.WriteFile(pngPath, cert.PNG, 0o644); err != nil {
		return err
	}
	logger.Info().Str("file", pngPath).Msg("image written")

	if !withPDF {
		return nil
	}
	doc, err := r.Document(cert, req)
	if err != nil {
		return err
	}
	pdfPath := filepath.Join(dir, certificate.FileName(req.RecipientName, "pdf"))
	if err := os.WriteFile(pdfPath, doc, 0o644); err != nil {
		return err
	}
	logger.Info().Str("file", pdfPath).Msg("document written")
	return nil
}
