// Package webkit connects page scroll regions inside a WebKit web view to
// the scroll-activity controller. A document-start user script reports
// scroll events through a script message handler; style class changes flow
// back into the page as JavaScript.
package webkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/puregotk-webkit/javascriptcore"
	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/logging"
)

// RegionSink receives containers for newly discovered scroll regions. The
// scroll-activity controller satisfies it.
type RegionSink interface {
	AddContainer(c port.Container) error
}

// pageMessage is the JS -> Go envelope sent via postMessage.
type pageMessage struct {
	Type   string `json:"type"`
	Region string `json:"region"`
}

// Bridge wires one web view's user content manager to a RegionSink. Regions
// appear lazily: the first scroll message for an unknown region id creates
// a container and hands it to the sink before the event is delivered.
type Bridge struct {
	baseCtx context.Context
	ucm     *webkit.UserContentManager
	runner  ScriptRunner
	sink    RegionSink

	mu        sync.Mutex
	regions   map[string]*regionContainer
	callbacks []interface{}
	signals   []uint
	script    *webkit.UserScript
	attached  bool
}

// NewBridge creates a bridge for the given content manager. Attach must be
// called before the page can report scroll events.
func NewBridge(ctx context.Context, ucm *webkit.UserContentManager, runner ScriptRunner, sink RegionSink) *Bridge {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bridge{
		baseCtx: ctx,
		ucm:     ucm,
		runner:  runner,
		sink:    sink,
		regions: make(map[string]*regionContainer),
	}
}

// Attach registers the script message handler and injects the scroll
// detection script. Attaching twice is a no-op.
func (b *Bridge) Attach(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "scroll-bridge").Logger()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return nil
	}
	if b.ucm == nil {
		return errors.New("user content manager is nil")
	}

	// Connect the signal before registering the handler, as WebKit
	// documentation recommends.
	cb := func(_ webkit.UserContentManager, valuePtr uintptr) {
		b.handleScriptMessage(valuePtr)
	}
	b.callbacks = append(b.callbacks, cb) // keep callback alive
	signalID := b.ucm.ConnectScriptMessageReceivedWithDetail(MessageHandlerName, &cb)
	b.signals = append(b.signals, signalID)

	// nil world = main world; webkit.messageHandlers only exists there.
	if ok := b.ucm.RegisterScriptMessageHandler(MessageHandlerName, nil); !ok {
		return fmt.Errorf("failed to register script message handler %q", MessageHandlerName)
	}

	script := webkit.NewUserScript(
		ScrollEventScript,
		webkit.UserContentInjectTopFrameValue,
		webkit.UserScriptInjectAtDocumentStartValue,
		nil,
		nil,
	)
	if script == nil {
		return errors.New("failed to create scroll detection script")
	}
	b.ucm.AddScript(script)
	b.script = script
	b.attached = true

	log.Info().
		Str("handler", MessageHandlerName).
		Uint("signal_id", signalID).
		Msg("Scroll bridge attached")
	return nil
}

// Detach unregisters the message handler, removes the injected script, and
// forgets all regions. Detaching twice is a no-op.
func (b *Bridge) Detach(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("component", "scroll-bridge").Logger()

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return
	}

	if b.ucm != nil {
		b.ucm.UnregisterScriptMessageHandler(MessageHandlerName, nil)
		if b.script != nil {
			b.ucm.RemoveScript(b.script)
		}
	}
	b.script = nil
	b.regions = make(map[string]*regionContainer)
	b.attached = false

	log.Debug().Msg("Scroll bridge detached")
}

// RegionCount returns the number of regions seen so far.
func (b *Bridge) RegionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.regions)
}

// handleScriptMessage decodes the JSC value and dispatches it.
func (b *Bridge) handleScriptMessage(valuePtr uintptr) {
	log := logging.FromContext(b.baseCtx).With().Str("component", "scroll-bridge").Logger()

	if valuePtr == 0 {
		log.Warn().Msg("Received script message with nil value pointer")
		return
	}

	jscValue := javascriptcore.ValueNewFromInternalPtr(valuePtr)
	if jscValue == nil {
		log.Warn().Msg("Failed to wrap script message JSC value")
		return
	}

	rawJSON := jscValue.ToJson(0)
	if rawJSON == "" {
		log.Warn().Msg("Script message JSON is empty")
		return
	}

	b.dispatchRaw(rawJSON)
}

// dispatchRaw routes a decoded page message. Malformed or unknown messages
// are logged and dropped; the page can never break the controller.
func (b *Bridge) dispatchRaw(rawJSON string) {
	log := logging.FromContext(b.baseCtx).With().Str("component", "scroll-bridge").Logger()

	var msg pageMessage
	if err := json.Unmarshal([]byte(rawJSON), &msg); err != nil {
		log.Warn().Err(err).Str("json", rawJSON).Msg("Failed to unmarshal page message")
		return
	}

	switch msg.Type {
	case "scroll":
		if msg.Region == "" {
			log.Warn().Msg("Scroll message missing region id")
			return
		}
		b.deliverScroll(msg.Region)
	default:
		log.Warn().Str("type", msg.Type).Msg("Unhandled page message type")
	}
}

func (b *Bridge) deliverScroll(region string) {
	log := logging.FromContext(b.baseCtx).With().Str("component", "scroll-bridge").Logger()

	b.mu.Lock()
	rc, known := b.regions[region]
	if !known {
		rc = &regionContainer{
			bridge:  b,
			region:  region,
			classes: make(map[string]bool),
		}
		b.regions[region] = rc
	}
	sink := b.sink
	b.mu.Unlock()

	if !known {
		log.Debug().Str("region", region).Msg("Discovered scroll region")
		if sink != nil {
			if err := sink.AddContainer(rc); err != nil {
				log.Warn().Err(err).Str("region", region).Msg("Failed to register scroll region")
			}
		}
	}

	rc.deliver()
}

// runScript pushes fire-and-forget JavaScript into the page.
func (b *Bridge) runScript(script string) {
	if b.runner == nil {
		return
	}
	b.runner.RunJavaScript(b.baseCtx, script)
}

// regionContainer adapts one page scroll region to port.Container. Class
// state is mirrored locally so HasCssClass answers synchronously; changes
// are pushed into the page as setClass calls.
type regionContainer struct {
	bridge *Bridge
	region string

	mu       sync.Mutex
	classes  map[string]bool
	scrollFn func()
}

var _ port.Container = (*regionContainer)(nil)

func (c *regionContainer) ID() port.ContainerID {
	return port.ContainerID(c.region)
}

func (c *regionContainer) AddCssClass(name string) {
	c.mu.Lock()
	if c.classes[name] {
		c.mu.Unlock()
		return
	}
	c.classes[name] = true
	c.mu.Unlock()

	c.bridge.runScript(setClassScript(c.region, name, true))
}

func (c *regionContainer) RemoveCssClass(name string) {
	c.mu.Lock()
	if !c.classes[name] {
		c.mu.Unlock()
		return
	}
	delete(c.classes, name)
	c.mu.Unlock()

	c.bridge.runScript(setClassScript(c.region, name, false))
}

func (c *regionContainer) HasCssClass(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.classes[name]
}

func (c *regionContainer) ConnectScroll(fn func()) (port.Subscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scrollFn != nil {
		return nil, fmt.Errorf("scroll region %q already has a listener", c.region)
	}
	c.scrollFn = fn
	return &regionSubscription{container: c}, nil
}

func (c *regionContainer) deliver() {
	c.mu.Lock()
	fn := c.scrollFn
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

type regionSubscription struct {
	container *regionContainer
	once      sync.Once
}

func (s *regionSubscription) Disconnect() {
	s.once.Do(func() {
		s.container.mu.Lock()
		s.container.scrollFn = nil
		s.container.mu.Unlock()
	})
}
