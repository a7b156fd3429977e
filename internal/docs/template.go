package docs

// docTemplate is the single-page documentation template. The embedded
// catalog JSON drives the filter box; everything else is rendered
// server-side so the page works with scripting disabled.
const docTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} &mdash; typeforge</title>
<style>
  body { font-family: -apple-system, 'Segoe UI', sans-serif; margin: 0; background: #f6f8fa; color: #24292f; }
  .container { max-width: 960px; margin: 0 auto; padding: 24px; }
  header { background: #fff; border: 1px solid #d0d7de; border-radius: 8px; padding: 20px 24px; margin-bottom: 20px; }
  header h1 { margin: 0 0 6px; font-size: 22px; }
  header .meta { color: #57606a; font-size: 13px; }
  #filter { width: 100%; box-sizing: border-box; padding: 8px 12px; font-size: 14px; border: 1px solid #d0d7de; border-radius: 6px; margin-bottom: 20px; }
  .type-card { background: #fff; border: 1px solid #d0d7de; border-radius: 8px; padding: 16px 20px; margin-bottom: 14px; }
  .type-card h2 { margin: 0 0 4px; font-size: 17px; font-family: ui-monospace, monospace; }
  .kind { display: inline-block; font-size: 11px; padding: 1px 8px; border-radius: 10px; background: #ddf4ff; color: #0969da; vertical-align: middle; }
  .root-badge { background: #dafbe1; color: #1a7f37; }
  table { width: 100%; border-collapse: collapse; margin-top: 10px; font-size: 13px; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #eaeef2; }
  th { color: #57606a; font-weight: 600; }
  td.field, td.ref { font-family: ui-monospace, monospace; }
  .optional { color: #9a6700; }
  .alts { font-family: ui-monospace, monospace; font-size: 13px; margin-top: 8px; }
  .hidden { display: none; }
</style>
</head>
<body>
<div class="container">
  <header>
    <h1>{{.Title}}</h1>
    <div class="meta">source: {{.Source}} &middot; generated: {{.Timestamp}} &middot; root type: <code>{{.RootType}}</code></div>
  </header>

  <input id="filter" type="search" placeholder="Filter types and fields&hellip;" autocomplete="off">

  {{range .Types}}
  <section class="type-card" data-name="{{.Name}}">
    <h2>{{.Name}}
      <span class="kind{{if eq .Name $.RootType}} root-badge{{end}}">{{kindOf .}}{{if eq .Name $.RootType}} &middot; root{{end}}</span>
    </h2>
    {{if .Fields}}
    <table>
      <thead><tr><th>field</th><th>type</th><th></th></tr></thead>
      <tbody>
        {{range .Fields}}
        <tr>
          <td class="field">{{.Name}}</td>
          <td class="ref">{{.TypeRef}}</td>
          <td>{{if not .Required}}<span class="optional">optional</span>{{end}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{end}}
    {{if .Alternatives}}<div class="alts">= {{join .Alternatives " | "}}</div>{{end}}
  </section>
  {{end}}
</div>

<script>
const catalog = {{.CatalogJSON}};
const haystacks = new Map();
for (const t of catalog.types) {
  const parts = [t.name];
  for (const f of (t.fields || [])) { parts.push(f.name, f.type_ref); }
  for (const a of (t.alternatives || [])) { parts.push(a); }
  haystacks.set(t.name, parts.join(' ').toLowerCase());
}
document.getElementById('filter').addEventListener('input', (e) => {
  const q = e.target.value.trim().toLowerCase();
  for (const card of document.querySelectorAll('.type-card')) {
    const hay = haystacks.get(card.dataset.name) || '';
    card.classList.toggle('hidden', q !== '' && !hay.includes(q));
  }
});
</script>
</body>
</html>
`
