package web

import (
	"html/template"
	"net/http"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Dev Assistant</title>
  <style>
    body { font-family: sans-serif; max-width: 760px; margin: 2em auto; }
    #log { border: 1px solid #ccc; padding: 1em; min-height: 300px; white-space: pre-wrap; }
    .user { color: #333; font-weight: bold; }
    .assistant { color: #06c; }
    form { margin-top: 1em; display: flex; gap: 0.5em; }
    input[type=text] { flex: 1; padding: 0.5em; }
  </style>
</head>
<body>
  <h1>Dev Assistant</h1>
  <div id="log"></div>
  <form id="chat">
    <input type="text" id="message" autocomplete="off" placeholder="Ask about the project..." />
    <button type="submit">Send</button>
  </form>
  <script>
    const log = document.getElementById('log');
    document.getElementById('chat').addEventListener('submit', async (e) => {
      e.preventDefault();
      const input = document.getElementById('message');
      const message = input.value.trim();
      if (!message) return;
      input.value = '';
      log.innerHTML += '<div class="user">You: ' + message + '</div>';
      const resp = await fetch('/api/chat', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({message})
      });
      const data = await resp.json();
      log.innerHTML += '<div class="assistant">Assistant: ' + (data.response || data.message) + '</div>';
      log.scrollTop = log.scrollHeight;
    });
  </script>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.log.Error().Err(err).Msg("failed to render index page")
	}
}
