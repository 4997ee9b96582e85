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

package testcases

import "seehuhn.de/go/certificate"

// All contains all records, grouped by result.
// The group name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"achieved":   achievedCases,
	"merit":      meritCases,
	"excellence": excellenceCases,
}

// EmmaWilson is the record used in the end-to-end examples.
var EmmaWilson = excellenceCases[0]

var excellenceCases = []TestCase{
	{
		Name:      "emma_wilson",
		StudentID: "S001",
		Request: req("Emma Wilson",
			"New Zealand Certificate in Business (Administration and Technology) Level 4",
			certificate.AchievedWithExcellence, "2025-10-15", 4, 120,
			"Auckland Institute of Technology"),
	},
	{
		Name:      "liam_chen",
		StudentID: "S004",
		Request: req("Liam Chen",
			"New Zealand Certificate in Information Technology (Technical Support) Level 5",
			certificate.AchievedWithExcellence, "2025-10-08", 5, 180,
			"Digital Skills New Zealand"),
	},
}

var meritCases = []TestCase{
	{
		Name:      "james_patterson",
		StudentID: "S002",
		Request: req("James Patterson",
			"New Zealand Diploma in Engineering (Civil) Level 6",
			certificate.AchievedWithMerit, "2025-10-12", 6, 240,
			"Wellington Polytechnic"),
	},
	{
		Name:      "sophie_anderson",
		StudentID: "S005",
		Request: req("Sophie Anderson",
			"New Zealand Certificate in Hospitality (Food and Beverage Service) Level 4",
			certificate.AchievedWithMerit, "2025-10-05", 4, 120,
			"Culinary Arts College NZ"),
	},
}

var achievedCases = []TestCase{
	{
		Name:      "aroha_te_kanawa",
		StudentID: "S003",
		Request: req("Aroha Te Kanawa",
			"New Zealand Certificate in Health and Wellbeing (Support Work) Level 3",
			certificate.Achieved, "2025-10-10", 3, 60,
			"Christchurch Health Academy"),
	},
}
