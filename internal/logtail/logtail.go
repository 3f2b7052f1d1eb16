package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, scanBufferSize), maxLineSize)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one structured log record.
type Entry struct {
	Time    time.Time
	Level   string
	Caller  string
	Message string
	Fields  map[string]string
}

// Parse decodes a JSON log line as written by the application logger.
// Lines that are not JSON objects are returned as a plain message with ok
// false.
func Parse(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{Message: line}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Entry{Message: line}, false
	}

	entry := Entry{Fields: map[string]string{}}
	for key, value := range raw {
		switch key {
		case "time", "ts":
			if s, ok := value.(string); ok {
				if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
					entry.Time = parsed
					continue
				}
				if parsed, err := time.Parse("2006-01-02T15:04:05.000Z0700", s); err == nil {
					entry.Time = parsed
					continue
				}
			}
			entry.Fields[key] = stringify(value)
		case "level":
			entry.Level = strings.ToUpper(stringify(value))
		case "caller":
			entry.Caller = stringify(value)
		case "msg":
			entry.Message = stringify(value)
		default:
			entry.Fields[key] = stringify(value)
		}
	}
	return entry, true
}

// Format renders an entry as a single line: time, level, message, then
// fields sorted by key.
func Format(entry Entry) string {
	var parts []string
	if !entry.Time.IsZero() {
		parts = append(parts, entry.Time.In(time.Local).Format("15:04:05"))
	}
	level := entry.Level
	if level == "" {
		level = "INFO"
	}
	parts = append(parts, level)
	if msg := strings.TrimSpace(entry.Message); msg != "" {
		parts = append(parts, msg)
	}
	keys := make([]string, 0, len(entry.Fields))
	for key := range entry.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, key+"="+entry.Fields[key])
	}
	return strings.Join(parts, " ")
}

// FormatLines parses and formats each line, passing non-JSON lines through
// unchanged.
func FormatLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		entry, ok := Parse(line)
		if !ok {
			out = append(out, line)
			continue
		}
		out = append(out, Format(entry))
	}
	return out
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
