package webkit

import (
	"context"
	"sync"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/jwijenbergh/puregotk/v4/gio"
)

// ScriptRunner executes fire-and-forget JavaScript in the page's main
// world. Errors surface asynchronously through logging only.
type ScriptRunner interface {
	RunJavaScript(ctx context.Context, script string)
}

// WebViewRunner runs scripts on a webkit.WebView. Completion callbacks are
// retained until they fire so purego never loses the trampoline; class
// toggles run on every activity transition, so fired callbacks are dropped
// rather than accumulated.
type WebViewRunner struct {
	view *webkit.WebView

	mu        sync.Mutex
	callbacks map[uint64]*gio.AsyncReadyCallback
	nextID    uint64
}

var _ ScriptRunner = (*WebViewRunner)(nil)

// NewWebViewRunner creates a runner for the given web view.
func NewWebViewRunner(view *webkit.WebView) *WebViewRunner {
	return &WebViewRunner{
		view:      view,
		callbacks: make(map[uint64]*gio.AsyncReadyCallback),
	}
}

// RunJavaScript evaluates script in the main world without blocking.
func (r *WebViewRunner) RunJavaScript(ctx context.Context, script string) {
	if r.view == nil {
		return
	}

	log := logging.FromContext(ctx)

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.mu.Unlock()

	cb := gio.AsyncReadyCallback(func(_ uintptr, resPtr uintptr, _ uintptr) {
		defer r.release(id)

		if resPtr == 0 {
			log.Warn().Msg("Script evaluation returned nil async result")
			return
		}

		res := &gio.AsyncResultBase{Ptr: resPtr}
		value, err := r.view.EvaluateJavascriptFinish(res)
		if err != nil {
			log.Warn().Err(err).Msg("Script evaluation failed")
			return
		}

		if value != nil {
			if jscCtx := value.GetContext(); jscCtx != nil {
				if exc := jscCtx.GetException(); exc != nil {
					log.Warn().Str("exception", exc.GetMessage()).Msg("Script raised exception")
				}
			}
		}
	})

	r.mu.Lock()
	r.callbacks[id] = &cb
	r.mu.Unlock()

	// nil world = main world, nil source URI.
	r.view.EvaluateJavascript(script, -1, nil, nil, nil, &cb, 0)
}

func (r *WebViewRunner) release(id uint64) {
	r.mu.Lock()
	delete(r.callbacks, id)
	r.mu.Unlock()
}
