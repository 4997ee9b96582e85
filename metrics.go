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

package certificate

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the work done by a [Renderer].
type Metrics struct {
	Renders       *prometheus.CounterVec
	FontFallbacks prometheus.Counter
	Documents     *prometheus.CounterVec
}

// NewMetrics creates the certificate counters and registers them with reg.
// If reg is nil, the counters are created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "certificate_renders_total",
			Help: "Number of certificate images rendered, by outcome.",
		}, []string{"outcome"}),
		FontFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "certificate_font_fallbacks_total",
			Help: "Number of certificates drawn with the fallback font.",
		}),
		Documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "certificate_documents_total",
			Help: "Number of PDF conversions, by outcome.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.Renders, m.FontFallbacks, m.Documents)
	}
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
