package site

// pageTemplate is the html/template for the single-page shell. The module
// grid is rendered on the server; module pages arrive over the websocket.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">{{.Title}}</h2>
    </div>
    <ul class="nav-list" id="nav-list">
      <li class="nav-item"><a href="#" class="nav-link" data-module="home">&#127968; Home</a></li>
      {{range .Categories}}
      <li class="nav-item"><div class="nav-section-title">{{.Name}}</div></li>
      {{range .Modules}}
      <li class="nav-item"><a href="#" class="nav-link" data-module="{{.ID}}">{{.Order}}. {{.Name}}</a></li>
      {{end}}
      {{end}}
    </ul>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <div class="breadcrumb" id="breadcrumb"><a href="#" data-module="home">Home</a></div>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <div class="file-tabs" id="file-tabs"></div>
    <div class="loading" id="loading"><div class="spinner"></div></div>
    <section class="home-content" id="home-content">
      <h1>{{.Title}}</h1>
      {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
      {{range .Categories}}
      <h3 class="grid-category">{{.Name}}</h3>
      <div class="modules-grid">
        {{range .Modules}}
        <div class="module-card" data-module="{{.ID}}">
          <h3>{{.Order}}. {{.Name}}</h3>
          <p>Click to view module content</p>
        </div>
        {{end}}
      </div>
      {{end}}
    </section>
    <article class="page-content" id="module-content"></article>
  </main>
  <script src="app.js"></script>
</body>
</html>`

// cssContent is the stylesheet of the shell.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --highlight: #fff3bf;
  --code-bg: #f1f3f5;
  --sidebar-width: 280px;
  --header-height: 56px;
  --content-max-width: 900px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1a1b2e;
  --highlight: #3b3a2a;
  --code-bg: #1f2030;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

a { color: var(--accent); text-decoration: none; }

.sidebar {
  position: fixed;
  top: 0; left: 0; bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  overflow-y: auto;
  z-index: 20;
  transition: transform 0.2s ease;
}
.sidebar-header { padding: 1rem 1.25rem; border-bottom: 1px solid var(--border); }
.project-title { font-size: 1.1rem; }
.nav-list { list-style: none; padding: 0.5rem 0; }
.nav-section-title {
  margin-top: 1rem;
  padding: 0.25rem 1.25rem;
  font-size: 0.75rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
}
.nav-link { display: block; padding: 0.35rem 1.25rem; color: var(--text-secondary); font-size: 0.9rem; }
.nav-link:hover, .nav-link.active { background: var(--accent-light); color: var(--accent); }

.sidebar-overlay { display: none; position: fixed; inset: 0; background: rgba(0,0,0,0.4); z-index: 15; }
.sidebar-overlay.active { display: block; }

.content { margin-left: var(--sidebar-width); min-height: 100vh; }
.top-bar {
  position: sticky; top: 0;
  height: var(--header-height);
  display: flex; align-items: center; gap: 1rem;
  padding: 0 1.5rem;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
  z-index: 10;
}
.breadcrumb { flex: 1; font-size: 0.9rem; color: var(--text-secondary); }
.menu-toggle, .theme-toggle { background: none; border: none; color: var(--text); cursor: pointer; }
.menu-toggle { display: none; }
[data-theme="light"] .sun-icon, [data-theme="dark"] .moon-icon { display: none; }

.file-tabs { display: none; gap: 0.5rem; padding: 1rem 1.5rem 0; flex-wrap: wrap; }
.file-tab {
  padding: 0.4rem 0.9rem;
  border: 1px solid var(--border);
  border-radius: 0.5rem;
  background: var(--bg-secondary);
  color: var(--text);
  cursor: pointer;
}
.file-tab.active { background: var(--accent); border-color: var(--accent); color: #fff; }

.loading { display: none; padding: 3rem; text-align: center; }
.spinner {
  display: inline-block; width: 2rem; height: 2rem;
  border: 3px solid var(--border); border-top-color: var(--accent);
  border-radius: 50%;
  animation: spin 0.8s linear infinite;
}
@keyframes spin { to { transform: rotate(360deg); } }

.home-content, .page-content { max-width: var(--content-max-width); padding: 2rem 1.5rem; }
.page-content { display: none; }
.subtitle { color: var(--text-secondary); }
.grid-category { margin: 2rem 0 1rem; }
.modules-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.module-card {
  padding: 1.25rem;
  border: 1px solid var(--border);
  border-radius: 0.75rem;
  background: var(--bg-secondary);
  box-shadow: var(--shadow);
  cursor: pointer;
}
.module-card:hover { box-shadow: var(--shadow-lg); border-color: var(--accent); }
.module-card p { color: var(--text-muted); font-size: 0.85rem; }

.page-content h1, .page-content h2, .page-content h3,
.page-content h4, .page-content h5, .page-content h6 { margin: 1.5rem 0 0.75rem; transition: background 0.3s ease; }
.page-content p, .page-content ul, .page-content ol, .page-content table { margin-bottom: 1rem; }
.page-content ul, .page-content ol { padding-left: 1.5rem; }
.page-content pre { margin-bottom: 1rem; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
.page-content code { font-family: "SFMono-Regular", Consolas, monospace; font-size: 0.875em; }
.page-content :not(pre) > code { background: var(--code-bg); padding: 0.1rem 0.3rem; border-radius: 0.25rem; }
.page-content img { max-width: 100%; }
.page-content table { border-collapse: collapse; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 0.4rem 0.75rem; }
.page-content .highlight-target { background: var(--highlight); }

.error-panel { text-align: center; padding: 3rem; }
.error-panel .detail { color: var(--text-secondary); font-size: 0.875rem; }
.error-panel button {
  margin-top: 1rem; padding: 0.75rem 1.5rem;
  background: var(--accent); color: #fff;
  border: none; border-radius: 0.5rem; cursor: pointer;
}

@media (max-width: 768px) {
  .sidebar { transform: translateX(-100%); }
  .sidebar.open { transform: translateX(0); }
  .content { margin-left: 0; }
  .menu-toggle { display: block; }
  body.no-scroll { overflow: hidden; }
}
`

// jsContent drives the shell over the /ws session.
const jsContent = `(function() {
  'use strict';

  var HEADER_OFFSET = 80;
  var HIGHLIGHT_MS = 1000;

  var sidebar = document.getElementById('sidebar');
  var overlay = document.getElementById('sidebar-overlay');
  var homeContent = document.getElementById('home-content');
  var moduleContent = document.getElementById('module-content');
  var fileTabs = document.getElementById('file-tabs');
  var loading = document.getElementById('loading');
  var breadcrumb = document.getElementById('breadcrumb');

  var socket = null;
  var pending = [];
  var resizeTimer = null;

  function connect() {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var base = location.pathname.replace(/[^/]*$/, '');
    socket = new WebSocket(scheme + location.host + base + 'ws');
    socket.onopen = function() {
      send({ type: 'resize', width: window.innerWidth });
      while (pending.length) socket.send(pending.shift());
    };
    socket.onmessage = function(ev) { handle(JSON.parse(ev.data)); };
    socket.onclose = function() { setTimeout(connect, 2000); };
  }

  function send(msg) {
    var data = JSON.stringify(msg);
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(data);
    } else {
      pending.push(data);
    }
  }

  function navigate(id, file) {
    if (id !== 'home') {
      loading.style.display = 'block';
      homeContent.style.display = 'none';
      moduleContent.style.display = 'none';
    }
    send({ type: 'navigate', module_id: id, file_index: file || 0 });
  }

  function handle(msg) {
    switch (msg.type) {
      case 'content': showPage(msg.page); break;
      case 'home': showHome(); break;
      case 'error': showError(msg.error, msg.state); break;
      case 'anchor': scrollToAnchor(msg.anchor); break;
      case 'theme': document.documentElement.setAttribute('data-theme', msg.theme); break;
    }
    if (msg.state) applyState(msg.state);
  }

  function applyState(state) {
    sidebar.classList.toggle('open', state.sidebar_open);
    overlay.classList.toggle('active', state.sidebar_open);
    document.body.classList.toggle('no-scroll', state.sidebar_open);
    document.querySelectorAll('.nav-link').forEach(function(link) {
      var id = link.getAttribute('data-module');
      link.classList.toggle('active', state.view === 'module' ? id === state.module_id : id === 'home');
    });
  }

  function showHome() {
    loading.style.display = 'none';
    moduleContent.style.display = 'none';
    fileTabs.style.display = 'none';
    homeContent.style.display = 'block';
    breadcrumb.innerHTML = '<a href="#" data-module="home">Home</a>';
  }

  function showPage(page) {
    loading.style.display = 'none';
    renderTabs(page);
    breadcrumb.innerHTML = '<a href="#" data-module="home">Home</a> / <span></span>';
    breadcrumb.querySelector('span').textContent = page.module.name;
    moduleContent.innerHTML = page.html;
    moduleContent.style.display = 'block';
    setTimeout(function() {
      if (location.hash && location.hash !== '#') {
        send({ type: 'hash', hash: location.hash });
      } else {
        window.scrollTo({ top: 0, behavior: 'smooth' });
      }
    }, 100);
  }

  function renderTabs(page) {
    fileTabs.innerHTML = '';
    if (!page.files || page.files.length === 0) {
      fileTabs.style.display = 'none';
      return;
    }
    page.files.forEach(function(f, i) {
      var tab = document.createElement('button');
      tab.className = 'file-tab' + (i === page.file_index ? ' active' : '');
      tab.textContent = (f.icon ? f.icon + ' ' : '') + f.name;
      tab.onclick = function() { navigate(page.module.id, i); };
      fileTabs.appendChild(tab);
    });
    fileTabs.style.display = 'flex';
  }

  function showError(err, state) {
    loading.style.display = 'none';
    if (!err || err.kind === 'request' || err.kind === 'storage') {
      console.warn('docbrowser:', err && err.error);
      return;
    }
    homeContent.style.display = 'none';
    fileTabs.style.display = 'none';
    moduleContent.innerHTML =
      '<div class="error-panel">' +
      '<h2>&#10060; Error Loading Module</h2>' +
      '<p>Failed to load module content. Please try again later.</p>' +
      '<p class="detail"></p>' +
      '<button data-module="home">Return to Home</button>' +
      '</div>';
    moduleContent.querySelector('.detail').textContent = err.error;
    moduleContent.style.display = 'block';
  }

  function scrollToAnchor(a) {
    if (!a || !a.matched) return;
    var el = document.getElementById(a.heading.id);
    if (!el) return;
    var top = el.getBoundingClientRect().top + window.pageYOffset - HEADER_OFFSET;
    window.scrollTo({ top: top, behavior: 'smooth' });
    if (a.changed) history.replaceState(null, '', a.hash);
    el.classList.add('highlight-target');
    setTimeout(function() { el.classList.remove('highlight-target'); }, HIGHLIGHT_MS);
  }

  document.addEventListener('click', function(e) {
    var target = e.target.closest('[data-module]');
    if (target) {
      e.preventDefault();
      navigate(target.getAttribute('data-module'), 0);
      return;
    }
    var link = e.target.closest('#module-content a[href^="#"]');
    if (link) {
      e.preventDefault();
      var hash = link.getAttribute('href');
      history.pushState(null, '', hash);
      send({ type: 'hash', hash: hash });
    }
  });

  window.addEventListener('hashchange', function() {
    if (location.hash && location.hash !== '#') send({ type: 'hash', hash: location.hash });
  });

  document.getElementById('menu-toggle').addEventListener('click', function() { send({ type: 'sidebar' }); });
  overlay.addEventListener('click', function() { send({ type: 'sidebar' }); });
  document.getElementById('theme-toggle').addEventListener('click', function() { send({ type: 'theme' }); });

  document.addEventListener('keydown', function(e) {
    if (e.key === 'Escape' && sidebar.classList.contains('open')) send({ type: 'escape' });
  });

  window.addEventListener('resize', function() {
    clearTimeout(resizeTimer);
    resizeTimer = setTimeout(function() { send({ type: 'resize', width: window.innerWidth }); }, 150);
  });

  connect();
})();
`
