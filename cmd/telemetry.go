package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/spectra/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry [file]",
	Short: "View JSONL telemetry events from dashboard sessions",
	Long: `Reads and formats a JSONL telemetry file written with --telemetry.

Without a file argument, reads the file named by the telemetry setting.
With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, args []string) error {
	follow, _ := cmd.Flags().GetBool("follow")

	path := viper.GetString("telemetry")
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("telemetry: no file given and no telemetry path configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	// Print all existing events.
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(f)
	var lines lineBuffer
	if err := lines.drain(out, reader); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", path, err)
	}

	if !follow {
		lines.flush(out)
		return nil
	}

	return tailFollow(out, reader, &lines, path)
}

// tailFollow watches the file for new data using fsnotify and prints new
// events as their lines complete.
func tailFollow(w io.Writer, reader *bufio.Reader, lines *lineBuffer, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	for event := range watcher.Events {
		if !event.Has(fsnotify.Write) {
			continue
		}
		if err := lines.drain(w, reader); err != nil {
			return fmt.Errorf("telemetry: read %s: %w", path, err)
		}
	}
	return nil
}

// lineBuffer assembles JSONL lines across reads. A trailing fragment without
// its newline is held until the rest of the line arrives.
type lineBuffer struct {
	partial strings.Builder
}

// drain prints every complete line available from r and keeps the remainder.
func (b *lineBuffer) drain(w io.Writer, r *bufio.Reader) error {
	for {
		chunk, err := r.ReadString('\n')
		b.partial.WriteString(chunk)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		b.emit(w)
	}
}

// flush prints a held fragment as a final line.
func (b *lineBuffer) flush(w io.Writer) {
	b.emit(w)
}

func (b *lineBuffer) emit(w io.Writer) {
	line := strings.TrimSpace(b.partial.String())
	b.partial.Reset()
	if line != "" {
		printEvent(w, line)
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
func printEvent(w io.Writer, line string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}

	ts := evt.Timestamp.Format(time.TimeOnly)
	parts := []string{fmt.Sprintf("[%s]", ts), evt.Kind}

	if evt.Section != "" {
		parts = append(parts, fmt.Sprintf("section=%s", evt.Section))
	}
	if evt.Symbol != "" {
		parts = append(parts, fmt.Sprintf("element=%s", evt.Symbol))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
