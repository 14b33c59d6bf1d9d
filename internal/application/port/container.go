// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (GTK, WebKit, etc.).
package port

import "context"

// ContainerID uniquely identifies a scrollable container for the lifetime of
// its registration. GTK adapters derive it from the widget pointer; webview
// adapters use the region id assigned by the injected script.
type ContainerID string

// Subscription represents a connected scroll-event listener.
// Disconnect must be idempotent.
type Subscription interface {
	Disconnect()
}

// Container is an opaque reference to a scrollable region that can deliver
// scroll events and have CSS classes toggled. Containers are discovered by
// the host UI tree and handed to the controller; the controller never
// creates or destroys them.
type Container interface {
	// ID returns the stable identifier for this container.
	ID() ContainerID

	// AddCssClass adds a style class to the container.
	AddCssClass(class string)

	// RemoveCssClass removes a style class from the container.
	RemoveCssClass(class string)

	// HasCssClass reports whether the container currently carries a class.
	HasCssClass(class string) bool

	// ConnectScroll subscribes to scroll events on the container. The
	// callback is invoked once per qualifying scroll event on the host
	// main loop. The returned subscription detaches the listener.
	ConnectScroll(fn func()) (Subscription, error)
}

// ContainerProvider discovers the current set of scrollable containers.
// The host may create and destroy panels at runtime, so discovery is
// re-invokable: providers are called again whenever the host signals that
// the panel set changed.
type ContainerProvider interface {
	Containers(ctx context.Context) ([]Container, error)
}

// ContainerProviderFunc adapts a function to the ContainerProvider interface.
type ContainerProviderFunc func(ctx context.Context) ([]Container, error)

// Containers calls f(ctx).
func (f ContainerProviderFunc) Containers(ctx context.Context) ([]Container, error) {
	return f(ctx)
}

// StaticContainers returns a provider that always yields the given set.
func StaticContainers(containers ...Container) ContainerProvider {
	return ContainerProviderFunc(func(context.Context) ([]Container, error) {
		out := make([]Container, len(containers))
		copy(out, containers)
		return out, nil
	})
}
