package trace

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"github.com/viant/afs"
	"io"
)

// Load downloads a trace from an afs location (local path or URL) and feeds
// it to the builder.
func Load(ctx context.Context, fs afs.Service, location string, builder *Builder) error {
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to load trace %v: %w", location, err)
	}
	return LoadReader(bytes.NewReader(data), builder)
}

// LoadAll feeds traces from each location in order into the same builder,
// concatenating them into one graph.
func LoadAll(ctx context.Context, fs afs.Service, locations []string, builder *Builder) error {
	for _, location := range locations {
		if err := Load(ctx, fs, location, builder); err != nil {
			return err
		}
	}
	return nil
}

// LoadReader feeds newline-separated trace text to the builder. A final line
// without a trailing newline still counts as a line.
func LoadReader(reader io.Reader, builder *Builder) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		builder.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read trace: %w", err)
	}
	return nil
}
