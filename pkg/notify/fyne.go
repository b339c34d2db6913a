// Package notify delivers reminder alerts as desktop notifications.
package notify

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/dainik-app/dainik/pkg/audio"
)

// FyneNotifier shows alerts through the desktop notification center and
// plays the chime for loud alerts. Desktop notifications cannot be
// updated in place, so silent repeats of a tag already on screen are
// dropped instead of re-sent. requireInteraction has no desktop
// equivalent and is ignored.
type FyneNotifier struct {
	app   fyne.App
	chime *audio.Chime

	mu    sync.Mutex
	shown map[string]struct{}
}

// NewFyneNotifier wraps the app's notification support. chime may be
// nil to disable sound.
func NewFyneNotifier(app fyne.App, chime *audio.Chime) *FyneNotifier {
	return &FyneNotifier{
		app:   app,
		chime: chime,
		shown: make(map[string]struct{}),
	}
}

// RequestPermission always succeeds; the desktop notification center
// has no permission prompt to clear.
func (n *FyneNotifier) RequestPermission() bool { return true }

// Show delivers one notification. A silent call whose tag was already
// shown is a no-op; a loud call always notifies and chimes.
func (n *FyneNotifier) Show(title, body, tag string, silent, _ bool) {
	n.mu.Lock()
	if _, seen := n.shown[tag]; seen && silent {
		n.mu.Unlock()
		return
	}
	n.shown[tag] = struct{}{}
	n.mu.Unlock()

	n.app.SendNotification(fyne.NewNotification(title, body))
	if !silent && n.chime != nil {
		n.chime.Play()
	}
}
