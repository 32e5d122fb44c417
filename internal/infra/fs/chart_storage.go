package fs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"standings-chart/internal/features/credit_chart"
	logging "standings-chart/internal/infra/log"

	"go.uber.org/zap"
)

type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatBoth Format = "both"
)

var ErrUnknownFormat = errors.New("unknown chart format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG, FormatBoth:
		return f, nil
	case "":
		return FormatBoth, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatSVG:
		return []string{"svg"}
	case FormatPNG:
		return []string{"png"}
	default:
		return []string{"svg", "png"}
	}
}

// SaveChart writes c to dir/name.svg and/or dir/name.png and returns the written paths.
func SaveChart(dir, name string, c *credit_chart.Chart, format Format) ([]string, error) {
	if name == "" {
		return nil, errors.New("chart name is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var paths []string
	for _, ext := range format.extensions() {
		var buf bytes.Buffer
		var err error
		if ext == "svg" {
			err = c.WriteSVG(&buf)
		} else {
			err = c.WritePNG(&buf)
		}
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, name+"."+ext)
		if err := WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
			return paths, fmt.Errorf("failed to save chart %s: %w", ext, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			return paths, fmt.Errorf("failed to stat saved chart: %w", err)
		}
		if info.Size() == 0 {
			return paths, fmt.Errorf("chart file is empty: %s", path)
		}

		logging.LogDebug("Chart saved",
			zap.String("path", path),
			zap.Int64("size", info.Size()))
		paths = append(paths, path)
	}
	return paths, nil
}
