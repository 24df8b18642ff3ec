package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Sample is the timeline shown when no source is given.
const Sample = "[19:58:12.174] <<Hello>> Hello, World!\n[20:58:12.174] <<World>> World, Hello!"

const dockerScheme = "docker://"

// Source supplies the raw event log text.
type Source interface {
	Name() string
	Load(ctx context.Context) (string, error)
}

// Watchable is a source backed by a file that can be watched for changes.
type Watchable interface {
	Path() string
}

// Resolve maps a command line argument to a source: "" is the sample
// timeline, "-" is stdin, "docker://<container>" reads container logs and
// anything else is a file path.
func Resolve(arg string, stdin io.Reader, docker DockerConfig) (Source, error) {
	switch {
	case arg == "":
		return NewTextSource("sample", Sample), nil
	case arg == "-":
		return NewReaderSource("stdin", stdin), nil
	case strings.HasPrefix(arg, dockerScheme):
		name := strings.TrimPrefix(arg, dockerScheme)
		if name == "" {
			return nil, fmt.Errorf("missing container name in %q", arg)
		}
		return NewDockerSource(docker, name), nil
	default:
		return NewFileSource(arg), nil
	}
}

// FileSource reads a log file from disk on every load.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return s.path }

func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return string(data), nil
}

// TextSource serves a fixed text.
type TextSource struct {
	name string
	text string
}

func NewTextSource(name, text string) *TextSource {
	return &TextSource{name: name, text: text}
}

func (s *TextSource) Name() string { return s.name }

func (s *TextSource) Load(context.Context) (string, error) {
	return s.text, nil
}

// ReaderSource drains a reader on first load and serves the same text
// afterwards, since streams such as stdin cannot be read twice.
type ReaderSource struct {
	name string
	r    io.Reader

	once sync.Once
	text string
	err  error
}

func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

func (s *ReaderSource) Name() string { return s.name }

func (s *ReaderSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.once.Do(func() {
		data, err := io.ReadAll(s.r)
		if err != nil {
			s.err = fmt.Errorf("failed to read %s: %w", s.name, err)
			return
		}
		s.text = string(data)
	})
	return s.text, s.err
}
