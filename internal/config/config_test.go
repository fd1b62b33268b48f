package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write job file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeJob(t, `
output_dir = "/tmp/out"
output_name = "episode01.srt"
output_encoding = "utf-16le"

[[source]]
path = "en.srt"

[[source]]
path = "fa.srt"
encoding = "cp1256"
color = "yellow"
size = "14"
top = true
`)

	job, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if job.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q", job.OutputDir)
	}
	if job.OutputName != "episode01.srt" {
		t.Errorf("OutputName = %q", job.OutputName)
	}
	if job.OutputEncoding != "utf-16le" {
		t.Errorf("OutputEncoding = %q", job.OutputEncoding)
	}
	if len(job.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(job.Sources))
	}

	// defaults fill unset source fields
	if job.Sources[0].Encoding != "utf-8" {
		t.Errorf("source 1 encoding = %q, want utf-8", job.Sources[0].Encoding)
	}
	if job.Sources[0].Color != "" || job.Sources[0].Top {
		t.Errorf("source 1 picked up styling it was not given")
	}

	second := job.Sources[1]
	if second.Encoding != "cp1256" || second.Color != "yellow" ||
		second.Size != "14" || !second.Top {
		t.Errorf("source 2 = %+v", second)
	}
}

func TestLoadSizeForms(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"unquoted integer", `size = 14`, "14"},
		{"quoted string", `size = "14"`, "14"},
		{"unquoted float", `size = 14.5`, "14.5"},
		{"absent", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJob(t, "[[source]]\npath = \"en.srt\"\n"+tt.toml+"\n")
			job, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got := job.Sources[0].Size; got != tt.want {
				t.Errorf("Size = %q, want %q", got, tt.want)
			}
		})
	}

	path := writeJob(t, "[[source]]\npath = \"en.srt\"\nsize = true\n")
	if _, err := Load(path); err == nil {
		t.Errorf("expected error for boolean size")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeJob(t, `
[[source]]
path = "only.srt"
`)

	job, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if job.OutputDir != "." || job.OutputName != "merged.srt" ||
		job.OutputEncoding != "utf-8" {
		t.Errorf("defaults not applied: %+v", job)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no sources", `output_name = "x.srt"`},
		{"source without path", "[[source]]\ncolor = \"red\"\n"},
		{"bad toml", "output_name = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeJob(t, tt.content)); err == nil {
				t.Errorf("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
