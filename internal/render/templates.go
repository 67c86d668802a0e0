package render

// sectionTemplates holds the named templates for each content section.
// Ids are derived from array indexes so the interaction layer can
// address every card, content region and semester block.
const sectionTemplates = `
{{define "moduleCard"}}<div class="module-card animate-on-scroll" id="{{.ID}}">
<button class="module-header" type="button" data-module-index="{{.Index}}" aria-controls="{{.ContentID}}" aria-expanded="{{if .Expanded}}true{{else}}false{{end}}">
<h3>{{.Title}}</h3>
<span class="module-indicator" style="transform: rotate({{.Angle}}deg)">&#9662;</span>
</button>
<div class="module-content" id="{{.ContentID}}"{{if not .Expanded}} hidden{{end}}>
{{range .Semesters}}<div class="semester" id="{{.ID}}">
<h4>{{.Title}}</h4>
{{if .Labs}}<ul class="lab-list">
{{range .Labs}}<li><a href="{{.Link}}" class="lab-link">{{.Title}}</a></li>
{{end}}</ul>{{end}}
</div>
{{end}}</div>
</div>{{end}}

{{define "modules"}}{{range .}}{{template "moduleCard" .}}
{{end}}{{end}}

{{define "thesis"}}<div class="thesis-card animate-on-scroll">
{{if .PreviewImage}}<img class="thesis-preview" src="{{.PreviewImage}}" alt="{{.Title}}">
{{end}}<h3>{{.Title}}</h3>
<p class="thesis-topic">{{.Topic}}</p>
{{if .Description}}<p class="thesis-description">{{.Description}}</p>
{{end}}{{if .KeyFeatures}}<ul class="thesis-features">
{{range .KeyFeatures}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .Link}}<a class="thesis-link" href="{{.Link}}">Подробнее</a>
{{end}}</div>{{end}}

{{define "courseworks"}}{{range .}}<div class="work-card animate-on-scroll" id="{{.ID}}">
<h3>{{.Title}}</h3>
{{if .Semester}}<span class="work-semester">{{.Semester}}</span>
{{end}}{{if .Description}}<p>{{.Description}}</p>
{{end}}{{if .Technologies}}<ul class="tech-list">
{{range .Technologies}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .Link}}<a class="work-link" href="{{.Link}}">Открыть</a>
{{end}}</div>
{{end}}{{end}}

{{define "practicals"}}{{range .}}<div class="work-card animate-on-scroll" id="{{.ID}}">
<h3>{{.Title}}</h3>
{{if .Semester}}<span class="work-semester">{{.Semester}}</span>
{{end}}{{if .Description}}<p>{{.Description}}</p>
{{end}}{{if .Items}}<ul class="practical-items">
{{range .Items}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .Link}}<a class="work-link" href="{{.Link}}">Открыть</a>
{{end}}</div>
{{end}}{{end}}
`

// pageTemplate is the full portfolio page. Container and control ids
// are the contract with the interaction script and the fragment
// endpoints; thresholds ride along as data attributes so the script
// stays in step with the ui package.
const pageTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Site.Title}}</title>
{{if .Site.Description}}<meta name="description" content="{{.Site.Description}}">
{{end}}<link rel="stylesheet" href="/assets/style.css">
</head>
<body data-navbar-threshold="{{.NavbarThreshold}}" data-backtotop-threshold="{{.BackToTopThreshold}}" data-scroll-probe="{{.ScrollProbe}}">
<nav class="navbar" id="navbar">
<a class="nav-brand" href="#home">{{.Site.Owner}}</a>
<button class="nav-toggle" id="navToggle" type="button" aria-label="Меню" aria-expanded="false">
<span></span><span></span><span></span>
</button>
<ul class="nav-menu" id="navMenu">
<li><a class="nav-link" href="#home">Главная</a></li>
<li><a class="nav-link" href="#education">Обучение</a></li>
<li><a class="nav-link" href="#thesis">Диплом</a></li>
<li><a class="nav-link" href="#courseworks">Курсовые</a></li>
<li><a class="nav-link" href="#practicals">Практические</a></li>
</ul>
</nav>
<header class="hero" id="home">
<h1>{{.Site.Title}}</h1>
<p class="hero-owner">{{.Site.Owner}}</p>
{{if .Site.Description}}<p class="hero-description">{{.Site.Description}}</p>
{{end}}<div class="hero-stats">
{{range .Stats}}<div class="stat">
<span class="stat-number" data-target="{{.Target}}">0</span>
<span class="stat-label">{{.Label}}</span>
</div>
{{end}}</div>
</header>
<main>
<section class="section" id="education">
<h2 class="section-title animate-on-scroll">Учебные модули</h2>
<div id="educationModules" class="modules-grid">{{.Education}}</div>
</section>
<section class="section" id="thesis">
<h2 class="section-title animate-on-scroll">Дипломная работа</h2>
<div id="thesisContent" class="thesis-wrap">{{.Thesis}}</div>
</section>
<section class="section" id="courseworks">
<h2 class="section-title animate-on-scroll">Курсовые работы</h2>
<div id="courseworksList" class="works-grid">{{.Courseworks}}</div>
</section>
<section class="section" id="practicals">
<h2 class="section-title animate-on-scroll">Практические работы</h2>
<div id="practicalsList" class="works-grid">{{.Practicals}}</div>
</section>
</main>
<footer class="footer">
<p>&copy; {{.Year}} {{.Site.Owner}}</p>
</footer>
<button class="back-to-top" id="backToTop" type="button" aria-label="Наверх">&#8593;</button>
<script src="/assets/app.js"></script>
</body>
</html>`
