// Package notify sends best-effort desktop notifications when a video has
// been processed. Failures are logged at debug level and never affect the
// pipeline outcome.
package notify

import (
	"context"
	"fmt"
	"runtime"

	"github.com/nguyentantai21042004/subpoint/internal/logger"
	"github.com/nguyentantai21042004/subpoint/pkg/executor"
)

// Notifier sends a desktop notification.
type Notifier interface {
	Send(ctx context.Context, title, message string)
}

type implNotifier struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Notifier for the current platform.
func New(exec executor.Executor, log logger.Logger) Notifier {
	return &implNotifier{
		executor: exec,
		logger:   log,
	}
}

func (n *implNotifier) Send(ctx context.Context, title, message string) {
	var err error

	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title %q sound name "default"`, message, title)
		_, err = n.executor.Execute(ctx, "osascript", "-e", script)
	case "linux":
		_, err = n.executor.Execute(ctx, "notify-send", title, message)
	case "windows":
		script := fmt.Sprintf(`New-BurntToastNotification -Text %q, %q`, title, message)
		_, err = n.executor.Execute(ctx, "powershell", "-Command", script)
	default:
		n.logger.Debug(ctx, "Desktop notifications not supported on %s", runtime.GOOS)
		return
	}

	if err != nil {
		n.logger.Debug(ctx, "Desktop notification failed: %v", err)
	}
}
