package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(h, m, s, ns int) time.Time {
	return time.Date(1900, 1, 1, h, m, s, ns, time.UTC)
}

func TestParseDefaultTimeline(t *testing.T) {
	raw := "[19:58:12.174] <<Hello>> Hello, World!\n[20:58:12.174] <<World>> World, Hello!"

	events := Parse(raw)

	require.Len(t, events, 2)
	assert.Equal(t, "Hello", events[0].Object)
	assert.Equal(t, "Hello, World!", events[0].Message)
	assert.True(t, events[0].Timestamp.Equal(clock(19, 58, 12, 174000000)))
	assert.True(t, events[0].HasFraction)
	assert.Equal(t, 1, events[0].Line)
	assert.Equal(t, "World", events[1].Object)
	assert.Equal(t, 2, events[1].Line)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	events := Parse("garbage\n[01:00:00] <<A>> hi")

	require.Len(t, events, 1)
	assert.Equal(t, "A", events[0].Object)
	assert.Equal(t, "hi", events[0].Message)
	assert.True(t, events[0].Timestamp.Equal(clock(1, 0, 0, 0)))
	assert.False(t, events[0].HasFraction)
	assert.Equal(t, 2, events[0].Line)
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "   \n\t"} {
		events := Parse(raw)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		ok      bool
		object  string
		message string
		time    time.Time
	}{
		{
			name: "whole seconds", line: "[10:00:00] <<A>> x",
			ok: true, object: "A", message: "x", time: clock(10, 0, 0, 0),
		},
		{
			name: "long fraction truncated to nanoseconds", line: "[10:00:00.123456789012] <<A>> x",
			ok: true, object: "A", message: "x", time: clock(10, 0, 0, 123456789),
		},
		{
			name: "single digit fraction", line: "[10:00:00.5] <<A>> x",
			ok: true, object: "A", message: "x", time: clock(10, 0, 0, 500000000),
		},
		{
			name: "surrounding whitespace ignored", line: "   [10:00:00] <<A>> x   ",
			ok: true, object: "A", message: "x", time: clock(10, 0, 0, 0),
		},
		{
			name: "empty message", line: "[10:00:00] <<A>>",
			ok: true, object: "A", message: "", time: clock(10, 0, 0, 0),
		},
		{
			name: "object trimmed only at the edges", line: "[10:00:00] << Load Balancer >> up",
			ok: true, object: "Load Balancer", message: "up", time: clock(10, 0, 0, 0),
		},
		{
			name: "message keeps inner brackets", line: "[10:00:00] <<A>> got <<B>> [x]",
			ok: true, object: "A", message: "got <<B>> [x]", time: clock(10, 0, 0, 0),
		},
		{name: "blank object", line: "[10:00:00] <<   >> x"},
		{name: "out of range hour", line: "[25:00:00] <<A>> x"},
		{name: "single digit hour", line: "[1:00:00] <<A>> x"},
		{name: "missing brackets", line: "10:00:00 <<A>> x"},
		{name: "single angle brackets", line: "[10:00:00] <A> x"},
		{name: "no separator before object", line: "[10:00:00]<<A>> x"},
		{name: "object containing >", line: "[10:00:00] <<A>B>> x"},
		{name: "blank", line: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := ParseLine(tt.line, 7)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.object, event.Object)
			assert.Equal(t, tt.message, event.Message)
			assert.True(t, tt.time.Equal(event.Timestamp), "got %v", event.Timestamp)
			assert.Equal(t, 7, event.Line)
		})
	}
}

func TestParseKeepsInputOrderAndDuplicates(t *testing.T) {
	raw := strings.Join([]string{
		"[12:00:00] <<B>> late",
		"not a line",
		"[09:00:00] <<a>> early",
		"[09:00:00] <<A>> same time",
		"[09:00:00] <<A>> same time",
	}, "\n")

	events := Parse(raw)

	require.Len(t, events, 4)
	assert.Equal(t, []string{"B", "a", "A", "A"}, []string{
		events[0].Object, events[1].Object, events[2].Object, events[3].Object,
	})
	assert.Equal(t, []int{1, 3, 4, 5}, []int{
		events[0].Line, events[1].Line, events[2].Line, events[3].Line,
	})
}

func TestParseHandlesCRLF(t *testing.T) {
	events := Parse("[10:00:00] <<A>> x\r\n[10:00:01] <<B>> y\r\n")

	require.Len(t, events, 2)
	assert.Equal(t, "x", events[0].Message)
	assert.Equal(t, "y", events[1].Message)
}

func TestParserParseFile(t *testing.T) {
	p := NewParser()
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, os.WriteFile(path, []byte("[10:00:00] <<A>> x\r\njunk\n[10:00:01] <<B>> y\n"), 0644))

	events, err := p.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "x", events[0].Message)
	assert.Equal(t, 3, events[1].Line)
}

func TestParserCache(t *testing.T) {
	p := NewParser()
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, os.WriteFile(path, []byte("[10:00:00] <<A>> x\n"), 0644))

	first, err := p.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, first, 1)

	cached, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Same(t, &first[0], &cached[0], "unchanged file is served from the cache")

	require.NoError(t, os.WriteFile(path, []byte("[10:00:00] <<A>> x\n[11:00:00] <<B>> y\n"), 0644))
	changed, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, changed, 2, "edited file is parsed again")
}

func TestParserInvalidate(t *testing.T) {
	p := NewParser()
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, os.WriteFile(path, []byte("[10:00:00] <<A>> x\n"), 0644))

	first, err := p.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, p.cache, 1)

	p.Invalidate(path)
	assert.Empty(t, p.cache)

	fresh, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, fresh)
	assert.NotSame(t, &first[0], &fresh[0])
}

func TestParserParseFileNonExistent(t *testing.T) {
	events, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "missing.log"))

	assert.Error(t, err)
	assert.Nil(t, events)
}

func TestParserParseReader(t *testing.T) {
	events, err := NewParser().ParseReader(strings.NewReader("[10:00:00] <<A>> x\n\n[bad] <<B>> y"))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "A", events[0].Object)
}
