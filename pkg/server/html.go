package server

import (
	"html/template"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/docgen"
)

type dashboardData struct {
	Title     string
	Spec      *design.Spec
	Documents []docgen.Document
	STEPSize  int
}

type pageData struct {
	Title string
	Body  template.HTML
}

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"kb": func(n int) float64 { return float64(n) / 1024 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f4f6f8; color: #1c2733; }
  header { background: #14395c; color: #fff; padding: 28px 40px; }
  header h1 { margin: 0 0 6px; font-size: 1.5rem; }
  header .badges span { display: inline-block; background: rgba(255,255,255,.15); border-radius: 4px; padding: 3px 10px; margin-right: 8px; font-size: .8rem; }
  main { max-width: 980px; margin: 0 auto; padding: 32px 24px; }
  .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 14px; margin-bottom: 32px; }
  .stat { background: #fff; border: 1px solid #dde3e9; border-radius: 6px; padding: 14px 16px; }
  .stat .value { font-size: 1.25rem; font-weight: 600; }
  .stat .label { font-size: .75rem; color: #5c6c7c; text-transform: uppercase; letter-spacing: .05em; }
  .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 18px; }
  .card { background: #fff; border: 1px solid #dde3e9; border-radius: 6px; padding: 20px; }
  .card .category { font-size: .7rem; color: #8895a3; text-transform: uppercase; letter-spacing: .08em; }
  .card h2 { margin: 6px 0 8px; font-size: 1.05rem; }
  .card p { margin: 0 0 14px; font-size: .85rem; color: #46586a; }
  .card a { color: #14538c; font-size: .85rem; margin-right: 14px; text-decoration: none; }
  .card a:hover { text-decoration: underline; }
  footer { text-align: center; color: #8895a3; font-size: .75rem; padding: 24px; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <div class="badges">
    <span>SANS 10131:2004</span>
    <span>API 650</span>
    <span>Grade {{.Spec.Material.Grade}}</span>
  </div>
</header>
<main>
  <div class="stats">
    <div class="stat"><div class="value">{{printf "%.0f" .Spec.ActualLiters}} L</div><div class="label">Nominal capacity</div></div>
    <div class="stat"><div class="value">{{printf "%.0f" .Spec.DiameterMM}} mm</div><div class="label">Diameter</div></div>
    <div class="stat"><div class="value">{{printf "%.0f" .Spec.LengthMM}} mm</div><div class="label">Shell length</div></div>
    <div class="stat"><div class="value">{{printf "%.1f" .Spec.ShellThicknessMM}} mm</div><div class="label">Shell thickness</div></div>
    <div class="stat"><div class="value">{{printf "%.0f" .Spec.EmptyWeightKG}} kg</div><div class="label">Empty weight</div></div>
  </div>
  <div class="cards">
  {{range .Documents}}
    <div class="card">
      <div class="category">{{.Category}}</div>
      <h2>{{.Title}}</h2>
      <p>{{.Summary}}</p>
      <a href="/documents/{{.Name}}">View</a>
      <a href="/documents/{{.Name}}" onclick="window.open(this.href).print(); return false;">Print</a>
    </div>
  {{end}}
    <div class="card">
      <div class="category">CAD Model</div>
      <h2>STEP Model</h2>
      <p>Parametric solid model of the complete assembly ({{printf "%.1f" (kb .STEPSize)}} KB, AP214).</p>
      <a href="/model/tank.stp" download>Download tank.stp</a>
    </div>
  </div>
</main>
<footer>Generated documentation package. For fabrication use only with stamped approval.</footer>
</body>
</html>
`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #e9edf1; color: #1c2733; }
  nav { padding: 14px 24px; }
  nav a { color: #14538c; font-size: .85rem; text-decoration: none; }
  article { background: #fff; max-width: 210mm; margin: 0 auto 40px; padding: 20mm; box-shadow: 0 1px 4px rgba(0,0,0,.12); line-height: 1.55; }
  article h1 { font-size: 1.6rem; border-bottom: 2px solid #14395c; padding-bottom: 8px; }
  article h2 { font-size: 1.2rem; margin-top: 2em; border-bottom: 1px solid #dde3e9; padding-bottom: 4px; }
  article table { border-collapse: collapse; width: 100%; margin: 1em 0; font-size: .85rem; }
  article th, article td { border: 1px solid #c6cfd8; padding: 6px 10px; text-align: left; }
  article th { background: #f0f3f6; }
  article code { background: #f0f3f6; padding: 1px 4px; border-radius: 3px; font-size: .85em; }
  article li { margin: 2px 0; }
  @media print {
    body { background: #fff; }
    nav { display: none; }
    article { box-shadow: none; margin: 0; padding: 0; max-width: none; }
    @page { size: A4; margin: 15mm; }
  }
</style>
</head>
<body>
<nav><a href="/">&larr; Back to dashboard</a></nav>
<article>
{{.Body}}
</article>
</body>
</html>
`))
