//go:build linux

package notify

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier sends notifications via D-Bus. Each notification replaces
// the previous one it sent, so a session never stacks stale results.
type dbusNotifier struct {
	conn *dbus.Conn
	obj  dbus.BusObject

	mu   sync.Mutex
	last uint32
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}

	obj := conn.Object(dbusNotifyDest, dbusNotifyPath)
	return &dbusNotifier{conn: conn, obj: obj}, nil
}

// Notify shows notif, replacing the last notification from this notifier
// unless notif names one to replace.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if notif.ReplacesID == 0 {
		notif.ReplacesID = n.last
	}

	call := n.obj.Call(dbusNotifyInterface+".Notify", 0, notifyArgs(notif)...)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	n.last = id
	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	n.mu.Lock()
	if n.last == id {
		n.last = 0
	}
	n.mu.Unlock()
	return n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}

// notifyArgs lists the arguments of the Notify method: app name, replaced
// id, icon, summary, body, actions, hints and timeout.
func notifyArgs(notif Notification) []any {
	return []any{
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints(notif),
		notif.Timeout,
	}
}

func hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopID),
	}
	if notif.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	return h
}
