package webkit

import "fmt"

const (
	// MessageHandlerName is the script message handler registered with WebKit.
	MessageHandlerName = "scrollkit"

	// RegionAttribute marks page elements that participate in scroll
	// activity tracking. The attribute value is the region id; the script
	// assigns one when the author left it empty.
	RegionAttribute = "data-scroll-region"
)

// ScrollEventScript is injected at document start into the top frame. It
// watches capture-phase scroll events, resolves them to the nearest marked
// region, and forwards at most one message per region per animation frame.
// It also exposes window.__scrollkit_setClass so the Go side can toggle
// style classes on region elements by id.
const ScrollEventScript = `(function() {
  'use strict';
  if (window.__scrollkit_installed) { return; }
  window.__scrollkit_installed = true;

  var regions = new Map();
  var queued = Object.create(null);
  var counter = 0;

  function ensureId(el) {
    var id = el.getAttribute('data-scroll-region');
    if (!id) {
      id = 'region-' + (++counter);
      el.setAttribute('data-scroll-region', id);
    }
    return id;
  }

  function resolve(id) {
    var ref = regions.get(id);
    var el = ref && ref.deref();
    if (!el || !el.isConnected) {
      el = document.querySelector('[data-scroll-region="' + CSS.escape(id) + '"]');
      if (el) { regions.set(id, new WeakRef(el)); }
    }
    return el || null;
  }

  function post(id) {
    if (queued[id]) { return; }
    queued[id] = true;
    window.requestAnimationFrame(function() {
      queued[id] = false;
      try {
        window.webkit.messageHandlers.scrollkit.postMessage({ type: 'scroll', region: id });
      } catch (e) {
        // Handler detached; nothing to notify.
      }
    });
  }

  window.__scrollkit_setClass = function(id, cls, on) {
    var el = resolve(id);
    if (!el) { return false; }
    el.classList.toggle(cls, !!on);
    return true;
  };

  document.addEventListener('scroll', function(ev) {
    var el = null;
    var target = ev.target;
    if (target && target.nodeType === 1) {
      el = target.closest('[data-scroll-region]');
    } else if (document.documentElement.hasAttribute('data-scroll-region')) {
      el = document.documentElement;
    } else if (document.body && document.body.hasAttribute('data-scroll-region')) {
      el = document.body;
    }
    if (!el) { return; }

    var id = ensureId(el);
    regions.set(id, new WeakRef(el));
    post(id);
  }, { capture: true, passive: true });
})();`

// setClassScript builds the statement that toggles cls on a region element.
func setClassScript(region, cls string, on bool) string {
	return fmt.Sprintf("window.__scrollkit_setClass(%q, %q, %t);", region, cls, on)
}
