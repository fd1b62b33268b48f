package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Job describes one merge run loaded from a TOML file.
type Job struct {
	OutputDir      string
	OutputName     string
	OutputEncoding string
	Sources        []Source
}

// Source is one input caption file within a job.
type Source struct {
	Path     string
	Encoding string
	Color    string
	Size     string
	Top      bool
}

// rawSource is the wire form of a source entry. Size is decoded
// loosely so both `size = 14` and `size = "14"` load; the token is
// carried verbatim either way.
type rawSource struct {
	Path     string `toml:"path"`
	Encoding string `toml:"encoding"`
	Color    string `toml:"color"`
	Size     any    `toml:"size"`
	Top      bool   `toml:"top"`
}

type rawJob struct {
	OutputDir      string      `toml:"output_dir"`
	OutputName     string      `toml:"output_name"`
	OutputEncoding string      `toml:"output_encoding"`
	Sources        []rawSource `toml:"source"`
}

// Load reads and validates a job file, filling in defaults for
// anything left unset.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var raw rawJob
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	job, err := raw.job()
	if err != nil {
		return nil, fmt.Errorf("invalid job file %s: %w", path, err)
	}
	job.applyDefaults()
	return job, nil
}

func (r *rawJob) job() (*Job, error) {
	if len(r.Sources) == 0 {
		return nil, fmt.Errorf("no [[source]] entries")
	}
	job := &Job{
		OutputDir:      r.OutputDir,
		OutputName:     r.OutputName,
		OutputEncoding: r.OutputEncoding,
	}
	for i, src := range r.Sources {
		if src.Path == "" {
			return nil, fmt.Errorf("source %d has no path", i+1)
		}
		size, err := sizeToken(src.Size)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i+1, err)
		}
		job.Sources = append(job.Sources, Source{
			Path:     src.Path,
			Encoding: src.Encoding,
			Color:    src.Color,
			Size:     size,
			Top:      src.Top,
		})
	}
	return job, nil
}

// sizeToken stringifies a TOML size value. go-toml decodes unquoted
// numbers as int64 or float64.
func sizeToken(v any) (string, error) {
	switch size := v.(type) {
	case nil:
		return "", nil
	case string:
		return size, nil
	case int64:
		return strconv.FormatInt(size, 10), nil
	case float64:
		return strconv.FormatFloat(size, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("size must be a number or string, got %T", v)
	}
}

func (j *Job) applyDefaults() {
	if j.OutputDir == "" {
		j.OutputDir = "."
	}
	if j.OutputName == "" {
		j.OutputName = "merged.srt"
	}
	if j.OutputEncoding == "" {
		j.OutputEncoding = "utf-8"
	}
	for i := range j.Sources {
		if j.Sources[i].Encoding == "" {
			j.Sources[i].Encoding = "utf-8"
		}
	}
}
