package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// execTransport runs the bridge command once per request, writing the
// request to stdin and reading the reply from stdout.
type execTransport struct {
	argv    []string
	timeout time.Duration
}

// NewExecClient creates a client that runs argv (e.g. "python3",
// "privateer_bridge.py") for every request. A zero timeout means none.
func NewExecClient(argv []string, timeout time.Duration) (*Client, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, errors.New("engine command is empty")
	}
	return &Client{t: &execTransport{argv: argv, timeout: timeout}}, nil
}

func (t *execTransport) roundTrip(ctx context.Context, op string, body []byte) ([]byte, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, t.argv[0], t.argv[1:]...)
	cmd.Stdin = bytes.NewReader(body)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("run %s: %w", t.argv[0], err)
		}
		return nil, fmt.Errorf("run %s: %w: %s", t.argv[0], err, msg)
	}
	return stdout.Bytes(), nil
}
