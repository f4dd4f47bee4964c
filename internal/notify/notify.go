// Package notify sends desktop notifications for recognized reminders in
// chat mode.
package notify

import "github.com/gen2brain/beeep"

func Send(title, message string) error {
	return beeep.Notify(title, message, "")
}
