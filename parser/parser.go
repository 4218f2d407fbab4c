// Package parser loads Pester result files in the NUnit 2.x XML schema
// and exposes them as a navigable report tree.
package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotResultFile reports that the input is not a result file in the
// expected schema. Callers can match it with errors.Is.
var ErrNotResultFile = errors.New("not a valid result file")

// Report is the <test-results> document root. Date and Time record when
// the original run happened, as written by the test framework.
type Report struct {
	XMLName xml.Name `xml:"test-results"`
	Date    string   `xml:"date,attr"`
	Time    string   `xml:"time,attr"`
	Suites  []Suite  `xml:"test-suite"`
}

// Suite is one <test-suite> node. Its <results> child holds either
// nested suites or leaf cases; well-formed Pester output never mixes
// the two in one suite.
type Suite struct {
	Name   string  `xml:"name,attr"`
	Time   float64 `xml:"time,attr"`
	Suites []Suite `xml:"results>test-suite"`
	Cases  []Case  `xml:"results>test-case"`
}

// Case is one executed <test-case>. Failure is nil unless the framework
// recorded a failure element for it.
type Case struct {
	Description string   `xml:"description,attr"`
	Time        float64  `xml:"time,attr"`
	Result      string   `xml:"result,attr"`
	Failure     *Failure `xml:"failure"`
}

// Failure carries the message recorded for a failed case.
type Failure struct {
	Message string `xml:"message"`
}

// TopSuite returns the suite representing the overall run, nested two
// levels below the document root. It is valid on any report returned by
// Parse or Load.
func (r *Report) TopSuite() *Suite {
	return &r.Suites[0].Suites[0]
}

// Parse decodes a result document from r and validates that it carries
// the expected schema: a <test-results> root, exactly one top-level
// <test-suite>, and an inner <test-suite> under its results. Any
// violation is reported as ErrNotResultFile.
func Parse(r io.Reader) (*Report, error) {
	var report Report
	if err := xml.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotResultFile, err)
	}
	if len(report.Suites) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one top-level <test-suite>, found %d", ErrNotResultFile, len(report.Suites))
	}
	if len(report.Suites[0].Suites) == 0 {
		return nil, fmt.Errorf("%w: top-level <test-suite> has no inner <test-suite>", ErrNotResultFile)
	}
	return &report, nil
}

// Load reads and parses the result file at path. I/O errors are
// returned as-is; schema violations wrap ErrNotResultFile.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
