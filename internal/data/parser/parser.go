package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// maxLineSize bounds a single scanned line.
const maxLineSize = 10 * 1024 * 1024

// Parser reads event logs from files and readers. Parsed files are cached by
// path while their stamp is unchanged, or until invalidated.
type Parser struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	stamp  util.FileStamp
	events []model.Event
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{
		cache: make(map[string]cacheEntry),
	}
}

// ParseFile parses the log file at path. Only I/O failures are returned;
// malformed lines are skipped.
func (p *Parser) ParseFile(path string) ([]model.Event, error) {
	stamp, err := util.StatFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	p.mu.Lock()
	if cached, ok := p.cache[path]; ok && cached.stamp == stamp {
		p.mu.Unlock()
		return cached.events, nil
	}
	p.mu.Unlock()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	events, lines, err := scan(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	util.LogDebug("parsed event log",
		util.F("path", path),
		util.F("lines", lines),
		util.F("events", len(events)))

	p.mu.Lock()
	p.cache[path] = cacheEntry{stamp: stamp, events: events}
	p.mu.Unlock()

	return events, nil
}

// ParseReader parses everything readable from r.
func (p *Parser) ParseReader(r io.Reader) ([]model.Event, error) {
	events, _, err := scan(r)
	return events, err
}

// Invalidate drops the cached events for path.
func (p *Parser) Invalidate(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, path)
}

// scan reads r line by line and returns the events and the number of lines read.
func scan(r io.Reader) ([]model.Event, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	events := make([]model.Event, 0)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if event, ok := ParseLine(strings.TrimSuffix(scanner.Text(), "\r"), lineNum); ok {
			events = append(events, event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, lineNum, err
	}
	return events, lineNum, nil
}
