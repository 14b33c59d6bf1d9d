package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollEventScript_Hooks(t *testing.T) {
	// The Go side depends on these page-script hooks; renaming one breaks
	// the bridge silently at runtime.
	assert.Contains(t, ScrollEventScript, "window.__scrollkit_installed")
	assert.Contains(t, ScrollEventScript, "window.__scrollkit_setClass")
	assert.Contains(t, ScrollEventScript, "window.webkit.messageHandlers.scrollkit.postMessage")
	assert.Contains(t, ScrollEventScript, `{ type: 'scroll', region: id }`)
}

func TestScrollEventScript_RegionDiscovery(t *testing.T) {
	assert.Contains(t, ScrollEventScript, "data-scroll-region")
	assert.Contains(t, ScrollEventScript, "closest('[data-scroll-region]')")
	assert.Contains(t, ScrollEventScript, "CSS.escape(id)")
	assert.Contains(t, ScrollEventScript, "new WeakRef(el)")
}

func TestScrollEventScript_EventDelivery(t *testing.T) {
	// One message per region per frame, observed without blocking the page.
	assert.Contains(t, ScrollEventScript, "requestAnimationFrame")
	assert.Contains(t, ScrollEventScript, "{ capture: true, passive: true }")
}

func TestSetClassScript(t *testing.T) {
	assert.Equal(t,
		`window.__scrollkit_setClass("editor", "scroll-active", true);`,
		setClassScript("editor", "scroll-active", true))
	assert.Equal(t,
		`window.__scrollkit_setClass("region-3", "scroll-active", false);`,
		setClassScript("region-3", "scroll-active", false))
}
