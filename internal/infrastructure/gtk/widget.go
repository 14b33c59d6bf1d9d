package gtk

import (
	"fmt"
	"sync"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

// WidgetContainer adapts a GTK widget to port.Container. Scroll events are
// observed through a capture-phase EventControllerScroll so the scrolled
// window underneath still receives them.
type WidgetContainer struct {
	widget *gtk.Widget
	id     port.ContainerID
}

var _ port.Container = (*WidgetContainer)(nil)

// NewWidgetContainer wraps widget under the given id. An empty id derives
// a stable one from the widget pointer.
func NewWidgetContainer(widget *gtk.Widget, id port.ContainerID) *WidgetContainer {
	if id == "" {
		id = port.ContainerID(fmt.Sprintf("widget-%#x", widget.GoPointer()))
	}
	return &WidgetContainer{widget: widget, id: id}
}

// ID returns the container identity.
func (c *WidgetContainer) ID() port.ContainerID {
	return c.id
}

// AddCssClass adds a style class to the widget.
func (c *WidgetContainer) AddCssClass(name string) {
	c.widget.AddCssClass(name)
}

// RemoveCssClass removes a style class from the widget.
func (c *WidgetContainer) RemoveCssClass(name string) {
	c.widget.RemoveCssClass(name)
}

// HasCssClass reports whether the widget carries a style class.
func (c *WidgetContainer) HasCssClass(name string) bool {
	return c.widget.HasCssClass(name)
}

// ConnectScroll attaches a scroll controller that invokes fn on every
// scroll event. Disconnecting removes the controller from the widget.
func (c *WidgetContainer) ConnectScroll(fn func()) (port.Subscription, error) {
	controller := gtk.NewEventControllerScroll(gtk.EventControllerScrollBothAxesValue)
	if controller == nil {
		return nil, fmt.Errorf("failed to create scroll controller for %s", c.id)
	}
	controller.SetPropagationPhase(gtk.PhaseCaptureValue)

	scrollCb := func(_ gtk.EventControllerScroll, _ float64, _ float64) bool {
		fn()
		return false // Let the scrolled window consume the event
	}
	controller.ConnectScroll(&scrollCb)
	c.widget.AddController(&controller.EventController)

	return &controllerSubscription{
		widget:     c.widget,
		controller: controller,
		cb:         &scrollCb,
	}, nil
}

// controllerSubscription keeps the connected callback reachable for the
// lifetime of the controller and detaches it on Disconnect.
type controllerSubscription struct {
	widget     *gtk.Widget
	controller *gtk.EventControllerScroll
	cb         *func(gtk.EventControllerScroll, float64, float64) bool
	once       sync.Once
}

func (s *controllerSubscription) Disconnect() {
	s.once.Do(func() {
		s.widget.RemoveController(&s.controller.EventController)
		s.cb = nil
	})
}
