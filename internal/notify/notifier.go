package notify

import (
	"fmt"
	"io"
	"os/exec"

	"worklog/internal/logging"
)

// Notifier delivers a message to the user. It is a pure sink: delivery
// never influences control flow, so implementations swallow their own
// failures.
type Notifier interface {
	Notify(message string)
}

// Terminal writes messages to the given writer, one per line.
type Terminal struct {
	Out io.Writer
}

// NewTerminal creates a Notifier printing to the given writer.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{Out: out}
}

// Notify writes the message followed by a newline.
func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.Out, message)
}

// Desktop delivers messages as desktop pop-ups by shelling out to a
// notification command (notify-send by default).
type Desktop struct {
	Command string
	Title   string
}

// NewDesktop creates a Notifier using the given notification command
// and pop-up title.
func NewDesktop(command, title string) *Desktop {
	return &Desktop{Command: command, Title: title}
}

// Notify runs the notification command. Failures are logged in debug
// mode and otherwise ignored.
func (d *Desktop) Notify(message string) {
	cmd := exec.Command(d.Command, d.Title, message)
	if err := cmd.Run(); err != nil {
		logging.Debugf("desktop notification failed: %v\n", err)
	}
}
