package render

const landingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Shopfront - Launch your store in minutes</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, 'Segoe UI', Arial, sans-serif; background: #f7f9fc; color: #2c3e50; }
    .hero { padding: 80px 20px; text-align: center; background: linear-gradient(135deg, #3498db, #2ecc71); color: #fff; }
    .hero h1 { font-size: 2.6em; margin-bottom: 12px; }
    .hero p { font-size: 1.2em; opacity: 0.9; }
    .examples { max-width: 720px; margin: 48px auto; padding: 0 20px; }
    .examples h2 { margin-bottom: 16px; }
    .examples ul { list-style: none; }
    .examples li { margin: 10px 0; }
    .examples a { color: #3498db; text-decoration: none; font-size: 1.1em; }
    .examples a:hover { text-decoration: underline; }
    footer { text-align: center; padding: 32px; color: #95a5a6; }
  </style>
</head>
<body>
  <section class="hero">
    <h1>Shopfront</h1>
    <p>Every shop gets its own subdomain. Create one with the API, visit it right away.</p>
  </section>
  <section class="examples">
    <h2>Example storefronts</h2>
    <ul>
    {{- range .Examples }}
      <li><a href="{{ .URL }}">{{ .Label }}</a></li>
    {{- end }}
    </ul>
  </section>
  <footer>POST /api/shops to open your own store</footer>
</body>
</html>
`

const notFoundTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Shop not found</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, 'Segoe UI', Arial, sans-serif; background: #f7f9fc; color: #2c3e50;
           display: flex; align-items: center; justify-content: center; min-height: 100vh; }
    .box { text-align: center; padding: 40px; }
    .box h1 { font-size: 2em; margin-bottom: 12px; }
    .box p { color: #7f8c8d; margin-bottom: 24px; }
    .box code { background: #ecf0f1; padding: 2px 8px; border-radius: 4px; }
    .box a { display: inline-block; padding: 12px 24px; background: #3498db; color: #fff;
             text-decoration: none; border-radius: 6px; }
  </style>
</head>
<body>
  <div class="box">
    <h1>Shop not found</h1>
    <p>There is no store at <code>{{ .Tenant }}</code>. It may not have been created yet.</p>
    <a href="{{ .MainSiteURL }}">Back to Shopfront</a>
  </div>
</body>
</html>
`

const storefrontTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{ .Shop.Config.SEO.Title }}</title>
  <meta name="description" content="{{ .Shop.Config.SEO.Description }}">
  <meta name="keywords" content="{{ .Shop.Config.SEO.Keywords }}">
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: {{ .FontFamily }}; background: #fafafa; color: #2c3e50; }
    nav { display: flex; justify-content: space-between; align-items: center;
          padding: 16px 32px; background: #fff; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
    nav .brand { font-size: 1.3em; font-weight: bold; color: {{ .PrimaryColor }}; }
    nav .cart { color: #7f8c8d; }
    .hero { padding: 72px 20px; text-align: center; color: #fff;
            background: linear-gradient(135deg, {{ .PrimaryColor }}, {{ .SecondaryColor }}); }
    .hero h1 { font-size: 2.4em; margin-bottom: 10px; }
    .products { max-width: 1080px; margin: 48px auto; padding: 0 20px;
                display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 24px; }
    .card { background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
    .card img, .card .placeholder { width: 100%; height: 180px; object-fit: cover; }
    .card .placeholder { display: flex; align-items: center; justify-content: center;
                         font-size: 3em; background: #ecf0f1; }
    .card .body { padding: 16px; }
    .card h3 { margin-bottom: 6px; }
    .card p { color: #7f8c8d; font-size: 0.95em; margin-bottom: 12px; }
    .card .row { display: flex; justify-content: space-between; align-items: center; }
    .card .price { font-weight: bold; color: {{ .PrimaryColor }}; }
    .card button { padding: 8px 14px; border: none; border-radius: 6px; cursor: pointer;
                   background: {{ .SecondaryColor }}; color: #fff; }
    .empty { text-align: center; padding: 64px 20px; color: #95a5a6; }
  </style>
</head>
<body>
  <nav>
    <span class="brand">{{ .Shop.Name }}</span>
    <span class="cart">Cart (0)</span>
  </nav>
  <section class="hero">
    <h1>{{ .Shop.Name }}</h1>
    <p>{{ .Shop.Config.SEO.Description }}</p>
  </section>
  {{- if .Shop.Products }}
  <section class="products">
  {{- range .Shop.Products }}
    <div class="card">
      {{- if .ImageURL }}
      <img src="{{ .ImageURL }}" alt="{{ .Name }}">
      {{- else }}
      <div class="placeholder">&#128717;</div>
      {{- end }}
      <div class="body">
        <h3>{{ .Name }}</h3>
        {{- if .Description }}
        <p>{{ .Description }}</p>
        {{- else }}
        <p>Quality product from our store</p>
        {{- end }}
        <div class="row">
          <span class="price">{{ formatPrice .Price }}$</span>
          <button>Add to cart</button>
        </div>
      </div>
    </div>
  {{- end }}
  </section>
  {{- else }}
  <div class="empty">
    <h2>No products yet</h2>
    <p>This store has not added any products. Check back soon.</p>
  </div>
  {{- end }}
</body>
</html>
`
