package platform

import (
	"sync"

	"github.com/go-drift/uienv/pkg/env"
	"github.com/go-drift/uienv/pkg/hierarchy"
	"github.com/go-drift/uienv/pkg/keys"
)

var (
	listenersMu sync.Mutex
	installOnce = &sync.Once{}
)

// InstallEnvironmentListeners starts delivering system setting changes to
// app's windows. Only the first call in a process has an effect; call it once
// at startup, before the application's windows are shown.
func InstallEnvironmentListeners(app *hierarchy.Application) {
	listenersMu.Lock()
	once := installOnce
	listenersMu.Unlock()
	once.Do(func() {
		Settings.install(app)
	})
}

func resetListeners() {
	listenersMu.Lock()
	installOnce = &sync.Once{}
	listenersMu.Unlock()
}

// OverrideUserInterfaceStyle sets the appearance of w and everything it
// presents. Unspecified follows the system appearance again.
func OverrideUserInterfaceStyle(w *hierarchy.Window, style keys.UserInterfaceStyle) {
	if style == keys.Unspecified {
		style = Settings.Current().InterfaceStyle
	}
	env.Set(w, keys.UserInterfaceStyleKey{}, style)
}
