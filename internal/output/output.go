/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package output renders CLI results as colored text or as structured
// JSON, YAML or MessagePack documents.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/hresult"
	"dirpx.dev/resultcode/internal/config"
	"dirpx.dev/resultcode/taxonomy"
)

// Printer writes documents in one format. It is not safe for concurrent use.
type Printer struct {
	w      io.Writer
	format string

	name    func(a ...any) string
	hex     func(a ...any) string
	success func(a ...any) string
	failure func(a ...any) string
	unknown func(a ...any) string
	dim     func(a ...any) string
	label   func(a ...any) string
}

// New returns a Printer for format (config.Output* values). Colors are used
// in text output only, and only when useColor is set.
func New(w io.Writer, format string, useColor bool) (*Printer, error) {
	switch format {
	case config.OutputText, config.OutputJSON, config.OutputYAML, config.OutputMsgpack:
	default:
		return nil, fmt.Errorf("output: unsupported format %q", format)
	}

	paint := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}

	return &Printer{
		w:       w,
		format:  format,
		name:    paint(color.FgWhite, color.Bold),
		hex:     paint(color.FgCyan),
		success: paint(color.FgGreen),
		failure: paint(color.FgRed),
		unknown: paint(color.FgYellow),
		dim:     paint(color.Faint),
		label:   paint(color.FgMagenta),
	}, nil
}

// Format returns the configured format.
func (p *Printer) Format() string { return p.format }

// Results renders translated results.
func (p *Printer) Results(rs []apis.Result) error {
	if p.format != config.OutputText {
		return p.encode(rs)
	}
	for i, r := range rs {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.result(r)
	}
	return nil
}

func (p *Printer) result(r apis.Result) {
	if !r.Parsed() {
		fmt.Fprintf(p.w, "%s  %s\n", p.hex(r.Input), p.unknown("unparseable"))
		fmt.Fprintf(p.w, "  %s\n", r.Message)
		return
	}

	head := p.hex(r.HexCode)
	if r.ConstantName != "" {
		head += "  " + p.name(r.ConstantName)
	}
	fmt.Fprintf(p.w, "%s  %s %s\n", head, p.dim("["+r.Source.String()+"]"), p.status(r))
	fmt.Fprintf(p.w, "  %s\n", r.Message)
	if r.Facility != "" {
		fmt.Fprintf(p.w, "  %s %s\n", p.dim("facility:"), r.Facility)
	}
	for _, m := range r.Meanings[min(1, len(r.Meanings)):] {
		alt := m.Message
		if m.ConstantName != "" {
			alt = m.ConstantName + ": " + alt
		}
		fmt.Fprintf(p.w, "  %s %s %s\n", p.dim("also:"), alt, p.dim("("+m.Source.String()+")"))
	}
}

func (p *Printer) status(r apis.Result) string {
	switch {
	case !r.Known() || r.IsSuccess == nil:
		return p.unknown("unknown")
	case *r.IsSuccess:
		return p.success("success")
	default:
		return p.failure("failure")
	}
}

// Views renders compact operator views, one line each in text mode.
func (p *Printer) Views(vs []apis.View) error {
	if p.format != config.OutputText {
		return p.encode(vs)
	}
	for _, v := range vs {
		status := p.unknown(v.Status)
		switch v.Status {
		case "success":
			status = p.success(v.Status)
		case "failure":
			status = p.failure(v.Status)
		}
		line := p.hex(v.Code) + " " + status
		if v.Name != "" {
			line += " " + p.name(v.Name)
		}
		fmt.Fprintf(p.w, "%s %s\n", line, v.Message)
	}
	return nil
}

// Entry is the rendered form of a taxonomy entry.
type Entry struct {
	Code    int64  `json:"code" yaml:"code"`
	HexCode string `json:"hex_code" yaml:"hex_code"`
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
	Success bool   `json:"success" yaml:"success"`
}

// Entries renders taxonomy entries.
func (p *Printer) Entries(es []taxonomy.Entry) error {
	rows := make([]Entry, 0, len(es))
	for _, e := range es {
		rows = append(rows, Entry{
			Code:    e.Code.Int64(),
			HexCode: e.Code.Hex(),
			Name:    e.Name.String(),
			Message: e.Message,
			Success: e.Success,
		})
	}
	if p.format != config.OutputText {
		return p.encode(rows)
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r.Name))
	}
	for _, r := range rows {
		status := p.failure("E")
		if r.Success {
			status = p.success("S")
		}
		pad := strings.Repeat(" ", width-len(r.Name))
		fmt.Fprintf(p.w, "%s %s %s%s  %s\n", p.hex(r.HexCode), status, p.name(r.Name), pad, r.Message)
	}
	return nil
}

// Facilities renders the facility table.
func (p *Printer) Facilities(fs []hresult.FacilityEntry) error {
	if p.format != config.OutputText {
		return p.encode(fs)
	}
	for _, f := range fs {
		fmt.Fprintf(p.w, "%5d  %s\n", f.Code, p.name(f.Name))
	}
	return nil
}

// Trace is the structured form of an explain trace.
type Trace struct {
	Input string   `json:"input" yaml:"input"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Explain renders a resolution trace produced for input.
func (p *Printer) Explain(input, trace string) error {
	lines := strings.Split(strings.TrimRight(trace, "\n"), "\n")
	if p.format != config.OutputText {
		return p.encode(Trace{Input: input, Lines: lines})
	}
	for _, line := range lines {
		if tier, rest, ok := strings.Cut(line, ":"); ok && !strings.Contains(tier, " ") {
			line = p.label(tier+":") + rest
		}
		fmt.Fprintln(p.w, line)
	}
	return nil
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case config.OutputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputMsgpack:
		enc := msgpack.NewEncoder(p.w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	}
	return fmt.Errorf("output: unsupported format %q", p.format)
}
