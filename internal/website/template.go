package website

// DefaultPageTemplate is the built-in catalog page. Users can export it
// with the CLI, edit it, and point the website.template config key at
// their copy; any replacement must keep the "page" define.
const DefaultPageTemplate = `{{ define "page" }}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{ .Title }}</title>
    <style>
        body { font-family: sans-serif; background: #f4f4f4; margin: 0; }
        h1 { text-align: center; padding: 1rem 0; }
        .movie-grid { display: flex; flex-wrap: wrap; gap: 1.5rem; justify-content: center; padding: 1rem; }
        .movie { background: #fff; border-radius: 6px; box-shadow: 0 1px 4px rgba(0,0,0,.2); padding: 1rem; width: 180px; position: relative; }
        .movie-poster { width: 100%; border-radius: 4px; }
        .movie-title { font-size: 1rem; margin: .5rem 0 .25rem; }
        .movie-year { color: #666; margin: 0; }
        .movie-note { display: none; position: absolute; left: 0; right: 0; bottom: 100%; background: #333; color: #fff; padding: .5rem; border-radius: 4px; }
        .movie:hover .movie-note { display: block; }
    </style>
</head>
<body>
    <h1>{{ .Title }}</h1>
    <div class="movie-grid">
{{- range .Movies }}
        <div class="movie">
            <img class="movie-poster" src="{{ .Poster }}" alt="{{ .Title }}">
            <h2 class="movie-title">{{ .Title }}</h2>
            <div class="movie-info">
                <p class="movie-year">Year: {{ .Year }}</p>
{{- if .Note }}
                <p class="movie-note">{{ .Note }}</p>
{{- end }}
            </div>
        </div>
{{- end }}
    </div>
</body>
</html>
{{ end }}`
