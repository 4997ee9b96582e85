// Command export writes the reference certificate records to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/certificate"
	"seehuhn.de/go/certificate/testcases"
)

func main() {
	var out struct {
		Records []jsonRecord `json:"records"`
	}

	for _, group := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[group] {
			out.Records = append(out.Records, toJSON(group, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/records.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonRecord struct {
	Name      string              `json:"name"`
	StudentID string              `json:"student_id"`
	FileName  string              `json:"file_name"`
	Request   certificate.Request `json:"request"`
}

func toJSON(group string, tc testcases.TestCase) jsonRecord {
	return jsonRecord{
		Name:      group + "_" + tc.Name,
		StudentID: tc.StudentID,
		FileName:  certificate.FileName(tc.Request.RecipientName, "png"),
		Request:   tc.Request,
	}
}
