package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// DockerConfig holds the Docker daemon connection settings
type DockerConfig struct {
	Host    string        `yaml:"host"`
	Tail    string        `yaml:"tail"`
	Timeout time.Duration `yaml:"timeout"`
}

func DefaultDockerConfig() DockerConfig {
	return DockerConfig{
		Host:    "",
		Tail:    "all",
		Timeout: 10 * time.Second,
	}
}

// containerAPI is the part of the Docker client used to read logs.
type containerAPI interface {
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	Close() error
}

// DockerSource reads the log output of a container.
type DockerSource struct {
	cfg       DockerConfig
	container string
	connect   func(DockerConfig) (containerAPI, error)
}

func NewDockerSource(cfg DockerConfig, containerName string) *DockerSource {
	return &DockerSource{cfg: cfg, container: containerName, connect: dial}
}

func dial(cfg DockerConfig) (containerAPI, error) {
	opts := []client.Opt{
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return cli, nil
}

func (s *DockerSource) Name() string { return dockerScheme + s.container }

// Load fetches the container logs. Output of containers without a TTY is
// multiplexed and gets demultiplexed; stdout and stderr are merged.
func (s *DockerSource) Load(ctx context.Context) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	cli, err := s.connect(s.cfg)
	if err != nil {
		return "", err
	}
	defer cli.Close()

	info, err := cli.ContainerInspect(ctx, s.container)
	if err != nil {
		return "", fmt.Errorf("failed to inspect container %s: %w", s.container, err)
	}
	tty := info.Config != nil && info.Config.Tty

	tail := s.cfg.Tail
	if tail == "" {
		tail = "all"
	}
	reader, err := cli.ContainerLogs(ctx, s.container, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       tail,
	})
	if err != nil {
		return "", fmt.Errorf("failed to read logs of %s: %w", s.container, err)
	}
	defer reader.Close()

	var out bytes.Buffer
	if tty {
		_, err = io.Copy(&out, reader)
	} else {
		_, err = stdcopy.StdCopy(&out, &out, reader)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read logs of %s: %w", s.container, err)
	}

	util.LogDebug("loaded container logs",
		util.F("container", s.container),
		util.F("tty", tty),
		util.F("bytes", out.Len()))
	return out.String(), nil
}
