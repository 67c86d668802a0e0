package render

// StyleCSS is the page stylesheet served at /assets/style.css.
const StyleCSS = `:root {
  --bg: #0f1220;
  --panel: #181c30;
  --panel-2: #1f2440;
  --text: #e8eaf6;
  --muted: #9aa3c7;
  --accent: #6c8cff;
  --radius: 12px;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; }
body {
  font-family: "Segoe UI", system-ui, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}
a { color: var(--accent); text-decoration: none; }

.navbar {
  position: fixed;
  top: 0; left: 0; right: 0;
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 16px 32px;
  background: transparent;
  transition: background 0.3s, padding 0.3s;
  z-index: 100;
}
.navbar.scrolled { background: var(--panel); padding: 10px 32px; box-shadow: 0 2px 12px rgba(0,0,0,0.4); }
.nav-brand { font-weight: 700; color: var(--text); }
.nav-menu { display: flex; gap: 24px; list-style: none; }
.nav-link { color: var(--muted); transition: color 0.2s; }
.nav-link:hover, .nav-link.active { color: var(--accent); }
.nav-toggle { display: none; background: none; border: none; cursor: pointer; }
.nav-toggle span { display: block; width: 22px; height: 2px; margin: 5px 0; background: var(--text); }

.hero {
  min-height: 70vh;
  display: flex;
  flex-direction: column;
  justify-content: center;
  align-items: center;
  text-align: center;
  padding: 120px 24px 60px;
}
.hero h1 { font-size: 2.4rem; margin-bottom: 8px; }
.hero-owner { color: var(--accent); font-size: 1.2rem; }
.hero-description { color: var(--muted); max-width: 560px; margin-top: 12px; }
.hero-stats { display: flex; gap: 40px; margin-top: 40px; flex-wrap: wrap; justify-content: center; }
.stat { display: flex; flex-direction: column; align-items: center; }
.stat-number { font-size: 2rem; font-weight: 700; color: var(--accent); }
.stat-label { color: var(--muted); font-size: 0.9rem; }

.section { max-width: 960px; margin: 0 auto; padding: 64px 24px; }
.section-title { font-size: 1.6rem; margin-bottom: 24px; }

.modules-grid, .works-grid { display: grid; gap: 16px; }
.works-grid { grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); }

.module-card, .work-card, .thesis-card {
  background: var(--panel);
  border-radius: var(--radius);
  padding: 20px;
}
.module-header {
  display: flex;
  width: 100%;
  align-items: center;
  justify-content: space-between;
  background: none;
  border: none;
  color: var(--text);
  font: inherit;
  cursor: pointer;
  text-align: left;
}
.module-indicator { transition: transform 0.3s; color: var(--accent); }
.module-content { padding-top: 16px; }
.semester { background: var(--panel-2); border-radius: var(--radius); padding: 14px; margin-bottom: 12px; }
.semester h4 { margin-bottom: 8px; }
.lab-list, .thesis-features, .tech-list, .practical-items { list-style: none; padding-left: 0; }
.lab-list li { padding: 4px 0; }
.thesis-topic { color: var(--accent); margin-bottom: 10px; }
.thesis-preview { max-width: 100%; border-radius: var(--radius); margin-bottom: 14px; }
.thesis-features li { padding: 3px 0; color: var(--muted); }
.work-semester { color: var(--muted); font-size: 0.85rem; }
.tech-list { display: flex; flex-wrap: wrap; gap: 8px; margin-top: 10px; }
.tech-list li { background: var(--panel-2); border-radius: 16px; padding: 2px 12px; font-size: 0.85rem; }
.practical-items li { color: var(--muted); padding: 3px 0; }
.work-link, .thesis-link { display: inline-block; margin-top: 12px; }

.animate-on-scroll { opacity: 0; transform: translateY(16px); transition: opacity 0.5s, transform 0.5s; }
.animate-on-scroll.visible { opacity: 1; transform: none; }

.back-to-top {
  position: fixed;
  right: 24px; bottom: 24px;
  width: 44px; height: 44px;
  border: none;
  border-radius: 50%;
  background: var(--accent);
  color: #fff;
  font-size: 1.2rem;
  cursor: pointer;
  opacity: 0;
  pointer-events: none;
  transition: opacity 0.3s;
}
.back-to-top.visible { opacity: 1; pointer-events: auto; }

.footer { text-align: center; color: var(--muted); padding: 32px 24px; }

@media (max-width: 720px) {
  .nav-toggle { display: block; }
  .nav-menu {
    position: absolute;
    top: 100%; left: 0; right: 0;
    flex-direction: column;
    gap: 0;
    background: var(--panel);
    display: none;
    padding: 12px 0;
  }
  .nav-menu.open { display: flex; }
  .nav-menu li { padding: 10px 32px; }
}
`

// AppJS is the interaction script served at /assets/app.js. It follows
// the binding table: listeners are delegated so fragment swaps from the
// event stream never need rebinding.
const AppJS = `(function () {
  'use strict';

  var body = document.body;
  var navbarThreshold = parseInt(body.dataset.navbarThreshold, 10) || 50;
  var backToTopThreshold = parseInt(body.dataset.backtotopThreshold, 10) || 500;
  var scrollProbe = parseInt(body.dataset.scrollProbe, 10) || 100;

  var navbar = document.getElementById('navbar');
  var navToggle = document.getElementById('navToggle');
  var navMenu = document.getElementById('navMenu');
  var backToTop = document.getElementById('backToTop');

  function closeMenu() {
    if (!navMenu) return;
    navMenu.classList.remove('open');
    if (navToggle) navToggle.setAttribute('aria-expanded', 'false');
  }

  if (navToggle) {
    navToggle.addEventListener('click', function () {
      var open = navMenu.classList.toggle('open');
      navToggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
  }

  // Delegated click handling: module headers, nav links, anchors.
  document.addEventListener('click', function (ev) {
    var header = ev.target.closest('.module-header');
    if (header) {
      var content = document.getElementById(header.getAttribute('aria-controls'));
      if (!content) return;
      var expand = content.hidden;
      content.hidden = !expand;
      header.setAttribute('aria-expanded', expand ? 'true' : 'false');
      var indicator = header.querySelector('.module-indicator');
      if (indicator) indicator.style.transform = 'rotate(' + (expand ? 180 : 0) + 'deg)';
      return;
    }

    var link = ev.target.closest('a[href^="#"]');
    if (!link) return;
    if (link.classList.contains('nav-link')) closeMenu();
    var href = link.getAttribute('href');
    if (href === '#') return;
    var target = document.getElementById(href.slice(1));
    if (!target) return;
    ev.preventDefault();
    target.scrollIntoView({ behavior: 'smooth' });
  });

  if (backToTop) {
    backToTop.addEventListener('click', function () {
      window.scrollTo({ top: 0, behavior: 'smooth' });
    });
  }

  // Scroll tracking: navbar state, active section, back-to-top.
  var sections = [];
  function measureSections() {
    sections = [];
    var nodes = document.querySelectorAll('header[id], section[id]');
    for (var i = 0; i < nodes.length; i++) {
      sections.push(nodes[i]);
    }
  }
  measureSections();

  function onScroll() {
    var y = window.scrollY;
    if (navbar) navbar.classList.toggle('scrolled', y > navbarThreshold);
    if (backToTop) backToTop.classList.toggle('visible', y > backToTopThreshold);

    var probe = y + scrollProbe;
    var current = '';
    for (var i = 0; i < sections.length; i++) {
      var top = sections[i].offsetTop;
      if (probe >= top && probe < top + sections[i].offsetHeight) {
        current = sections[i].id;
      }
    }
    var links = document.querySelectorAll('.nav-link');
    for (var j = 0; j < links.length; j++) {
      links[j].classList.toggle('active', links[j].getAttribute('href') === '#' + current);
    }
  }
  window.addEventListener('scroll', onScroll);
  onScroll();

  // Reveal animations.
  var revealObserver = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        entry.target.classList.add('visible');
        revealObserver.unobserve(entry.target);
      }
    });
  }, { threshold: 0.15 });

  function observeReveals(root) {
    var nodes = (root || document).querySelectorAll('.animate-on-scroll');
    for (var i = 0; i < nodes.length; i++) {
      revealObserver.observe(nodes[i]);
    }
  }
  observeReveals();

  // Hero counters: one-shot per element, step of target/200 rounded up,
  // landing exactly on the target.
  function animateCounter(el) {
    var target = parseInt(el.dataset.target, 10) || 0;
    var value = 0;
    var timer = setInterval(function () {
      value = Math.ceil(value + target / 200);
      if (value >= target) {
        value = target;
        clearInterval(timer);
      }
      el.textContent = value;
    }, 10);
  }

  var counterObserver = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        counterObserver.unobserve(entry.target);
        animateCounter(entry.target);
      }
    });
  }, { threshold: 0.4 });

  var stats = document.querySelectorAll('.stat-number');
  for (var i = 0; i < stats.length; i++) {
    counterObserver.observe(stats[i]);
  }

  // Live content updates from the server event stream.
  var containers = {
    modules: 'educationModules',
    thesis: 'thesisContent',
    courseworks: 'courseworksList',
    practicals: 'practicalsList'
  };

  function refreshSection(section) {
    var container = document.getElementById(containers[section]);
    if (!container) return;
    fetch('/fragments/' + section)
      .then(function (res) { return res.status === 200 ? res.text() : ''; })
      .then(function (html) {
        container.innerHTML = html;
        observeReveals(container);
        measureSections();
      });
  }

  if (window.EventSource) {
    var source = new EventSource('/api/events');
    ['section.created', 'section.updated', 'section.deleted'].forEach(function (kind) {
      source.addEventListener(kind, function (ev) {
        try {
          var payload = JSON.parse(ev.data);
          if (payload.section) refreshSection(payload.section);
        } catch (e) { /* malformed event, ignore */ }
      });
    });
  }
})();
`
