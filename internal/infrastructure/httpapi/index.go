package httpapi

// indexHTML is the single-page browser front end. It only talks to the
// JSON endpoints; all logic lives server-side.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Calculator Agent</title>
  <style>
    body { font-family: sans-serif; max-width: 600px; margin: 40px auto; padding: 0 20px; }
    h1 { color: #667eea; }
    input[type="text"] { width: 100%; padding: 12px; font-size: 16px; box-sizing: border-box; }
    button { margin-top: 10px; padding: 10px 20px; font-size: 16px; cursor: pointer; }
    #result { margin-top: 20px; padding: 15px; background: #f8f9fa; border-left: 4px solid #667eea; display: none; }
    #history li { margin: 4px 0; }
  </style>
</head>
<body>
  <h1>Calculator Agent</h1>
  <p>Ask me a math question, like "What's 25 + 17?" or "square root of 144".</p>
  <input type="text" id="query" placeholder="Your question"
         onkeydown="if (event.key === 'Enter') calculate()">
  <button onclick="calculate()">Calculate</button>
  <button onclick="clearHistory()">Clear History</button>
  <div id="result"></div>
  <h2>History</h2>
  <ul id="history"></ul>
  <script>
    async function calculate() {
      const query = document.getElementById('query').value.trim();
      if (!query) return;
      const resp = await fetch('/calculate', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ query: query })
      });
      const data = await resp.json();
      const result = document.getElementById('result');
      result.textContent = data.result || data.error;
      result.style.display = 'block';
      document.getElementById('query').value = '';
      loadHistory();
    }
    async function loadHistory() {
      const resp = await fetch('/history');
      const data = await resp.json();
      const list = document.getElementById('history');
      list.innerHTML = '';
      data.history.forEach(item => {
        const li = document.createElement('li');
        li.textContent = item.query + ' = ' + item.result;
        list.appendChild(li);
      });
    }
    loadHistory();
  </script>
</body>
</html>
`
