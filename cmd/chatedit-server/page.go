package main

import "net/http"

// The demo page: chat column on the left, live document and form panes on the
// right, refreshed from the JSON endpoints after each message.
const chatPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>chatedit</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; display: flex; height: 100vh;
         background: var(--surface, #fafafa); color: var(--ink, #1f2430); }
  .chat { width: 38%; display: flex; flex-direction: column; border-right: 1px solid #ddd; }
  .chat__log { flex: 1; overflow-y: auto; padding: 1rem; }
  .chat__entry { margin: 0 0 .75rem; padding: .5rem .75rem; border-radius: var(--pane-radius, 12px); }
  .chat__entry--user { background: var(--accent, #007acc); color: white; }
  .chat__entry--assistant { background: #eee; }
  .chat__input { display: flex; border-top: 1px solid #ddd; }
  .chat__input input { flex: 1; border: 0; padding: .75rem; font-size: 1rem; }
  .chat__input button { border: 0; padding: .75rem 1.25rem; background: var(--accent, #007acc); color: white; cursor: pointer; }
  .panes { flex: 1; overflow-y: auto; padding: 1rem; }
  .chatedit-field { margin: 0 0 1rem; }
  .chatedit-field input, .chatedit-field textarea, .chatedit-field select { width: 100%; }
</style>
</head>
<body>
  <div class="chat">
    <div class="chat__log" id="log"></div>
    <form class="chat__input" id="composer">
      <input id="message" placeholder="Try: title: My Project" autocomplete="off">
      <button type="submit">Send</button>
    </form>
  </div>
  <div class="panes" id="panes"></div>
<script>
const log = document.getElementById('log');
const panes = document.getElementById('panes');

function addEntry(kind, text) {
  const entry = document.createElement('div');
  entry.className = 'chat__entry chat__entry--' + kind;
  entry.textContent = text;
  log.appendChild(entry);
  log.scrollTop = log.scrollHeight;
}

async function refreshPanes() {
  const resp = await fetch('/panes');
  if (resp.ok) {
    panes.innerHTML = await resp.text();
  }
}

document.getElementById('composer').addEventListener('submit', async (event) => {
  event.preventDefault();
  const input = document.getElementById('message');
  const message = input.value.trim();
  if (!message) { return; }
  input.value = '';
  addEntry('user', message);

  const resp = await fetch('/message', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ message })
  });
  if (!resp.ok) {
    addEntry('assistant', 'Something went wrong, try again.');
    return;
  }
  const payload = await resp.json();
  addEntry('assistant', payload.reply);
  panes.innerHTML = payload.panes;
});

refreshPanes();
addEntry('assistant', "Try 'title: My Project', 'note: remember this', 'autofill example', or 'show form'.");
</script>
</body>
</html>`

func (s *chatServer) pageHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	// Touch the session so the cookie exists before the first fetch.
	s.sessionFor(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(chatPage))
}
