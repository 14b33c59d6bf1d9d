package preview

// demoHTML is the built-in page for the preview window. Its panes are
// marked as scroll regions, its scrollbar thumbs stay hidden until the
// plugin toggles the scroll-active class, and the thumb and tab rules read
// the CSS variables injected through the user stylesheet.
const demoHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Scrollkit Preview</title>
<style>
  :root {
    color-scheme: dark;
  }
  * { box-sizing: border-box; }
  body {
    margin: 0;
    height: 100vh;
    display: flex;
    flex-direction: column;
    font-family: sans-serif;
    background: #16161e;
    color: #c0caf5;
  }
  header {
    display: flex;
    gap: 4px;
    padding: 8px 12px;
    background: #1a1b26;
    border-bottom: 1px solid #2f334d;
  }
  .tab {
    width: var(--scrollkit-tab-width, auto);
    min-width: 60px;
    padding: 6px 12px;
    overflow: hidden;
    white-space: nowrap;
    text-overflow: ellipsis;
    border-radius: 6px 6px 0 0;
    background: #24283b;
    font-size: 13px;
  }
  .tab.current { background: #2f334d; }
  main {
    flex: 1;
    display: flex;
    gap: 12px;
    padding: 12px;
    min-height: 0;
  }
  .pane {
    flex: 1;
    overflow-y: auto;
    padding: 0 16px;
    border: 1px solid #2f334d;
    border-radius: 8px;
    background: #1a1b26;
  }
  .pane::-webkit-scrollbar {
    width: var(--scrollkit-thumb-width, 8px);
  }
  .pane::-webkit-scrollbar-thumb {
    background: transparent;
    border-radius: 9999px;
  }
  .pane.scroll-active::-webkit-scrollbar-thumb {
    background: var(--scrollkit-thumb-color, #565f89);
  }
  .pane h2 { font-size: 15px; }
  .pane p { font-size: 13px; line-height: 1.6; color: #9aa5ce; }
</style>
</head>
<body>
<header>
  <div class="tab current">Meeting notes</div>
  <div class="tab">A draft with a very long title that gets clipped</div>
  <div class="tab">Reading list</div>
</header>
<main>
  <section class="pane" data-scroll-region="pane-left">
    <h2>Left pane</h2>
  </section>
  <section class="pane" data-scroll-region="pane-right">
    <h2>Right pane</h2>
  </section>
</main>
<script>
  for (const pane of document.querySelectorAll('.pane')) {
    for (let i = 1; i <= 60; i++) {
      const p = document.createElement('p');
      p.textContent = 'Paragraph ' + i + '. Scroll this pane and watch the thumb ' +
        'appear, then hide again once scrolling stops.';
      pane.appendChild(p);
    }
  }
</script>
</body>
</html>`
