// Package plugin connects Composer script events to the bridge.
package plugin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sungur/bowerbridge/internal/bridge"
	"github.com/sungur/bowerbridge/internal/composer"
	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/log"
)

// Composer script events handled by the plugin.
const (
	PostInstallCmd = "post-install-cmd"
	PostUpdateCmd  = "post-update-cmd"
)

// Event is a Composer script event.
type Event struct {
	Name     string
	IO       log.Output
	Composer *composer.Project
	// DevMode is false when Composer ran with --no-dev.
	DevMode bool
}

// Handler handles one event.
type Handler func(ctx context.Context, e Event) error

// UnsupportedEventError is returned by Dispatch for events with no handler.
type UnsupportedEventError struct {
	Name string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("unsupported event %q (supported: %s)", e.Name, strings.Join(EventNames(), ", "))
}

// BridgeFactory creates a Bridge for an event's output.
type BridgeFactory interface {
	CreateBridge(io log.Output) *bridge.Bridge
}

// Plugin dispatches Composer events to bridge operations.
type Plugin struct {
	factory BridgeFactory
}

// New creates a Plugin. With a nil factory every event gets a fresh
// bridge.DefaultFactory configured from its own project's config files;
// callers holding flag overrides pass their own factory.
func New(factory BridgeFactory) *Plugin {
	return &Plugin{factory: factory}
}

// SubscribedEvents maps event names to their handlers.
func (p *Plugin) SubscribedEvents() map[string]Handler {
	return map[string]Handler{
		PostInstallCmd: p.OnPostInstallCmd,
		PostUpdateCmd:  p.OnPostUpdateCmd,
	}
}

// EventNames returns the supported event names, sorted.
func EventNames() []string {
	names := make([]string, 0, 2)
	for name := range (&Plugin{}).SubscribedEvents() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OnPostInstallCmd installs Bower dependencies after "composer install".
func (p *Plugin) OnPostInstallCmd(ctx context.Context, e Event) error {
	return p.bridgeFor(e).Install(ctx, e.Composer, e.DevMode)
}

// OnPostUpdateCmd updates Bower dependencies after "composer update".
func (p *Plugin) OnPostUpdateCmd(ctx context.Context, e Event) error {
	return p.bridgeFor(e).Update(ctx, e.Composer)
}

// Dispatch routes e to its handler.
func (p *Plugin) Dispatch(ctx context.Context, e Event) error {
	handler, ok := p.SubscribedEvents()[e.Name]
	if !ok {
		return &UnsupportedEventError{Name: e.Name}
	}
	if e.Composer == nil {
		return fmt.Errorf("event %s carries no Composer project", e.Name)
	}
	log.Debugf("Dispatching %s for %s", e.Name, e.Composer.Root.PrettyName)
	return handler(ctx, e)
}

func (p *Plugin) bridgeFor(e Event) *bridge.Bridge {
	if p.factory != nil {
		return p.factory.CreateBridge(e.IO)
	}
	return bridge.DefaultFactory(config.LoadConfig(e.Composer.Dir), e.Composer.Dir).CreateBridge(e.IO)
}
