package render

import (
	"fmt"
	"html"

	"github.com/edulab/atividades/activity"
)

// RenderSectionPage builds one standalone section page. The content
// region is exactly the raw editable fragment wrapped in the shared page
// chrome; the edit store relies on the content div being followed by the
// container close and the actions region when resynchronizing.
func (r *Renderer) RenderSectionPage(key, title, icon, content, color string, meta activity.Metadata, info activity.ActivityInfo) string {
	curso := activity.Resolve(meta.Curso, info.Curso)
	modulo := activity.Resolve(meta.Modulo, info.Modulo)

	if content == "" {
		content = "<p><em>Não foi possível extrair o conteúdo desta seção.</em></p>"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: Calibri, 'Open Sans', Arial, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f5f5f5; padding: 20px; }
        .container { max-width: 900px; margin: 0 auto; background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .section-header { border-left: 6px solid %s; padding: 15px 20px; margin-bottom: 25px; background: #f9fafb; border-radius: 0 8px 8px 0; }
        .section-header h1 { color: %s; font-size: 1.6em; }
        .section-header .breadcrumb { color: #6b7280; font-size: 0.9em; margin-top: 5px; }
        .content { font-size: 12pt; line-height: 1.6; }
        .content p { margin-bottom: 18px; text-align: justify; }
        .content img { max-width: 100%%; }
        .content::after { content: ""; display: block; clear: both; }
        .actions { margin-top: 30px; text-align: center; padding: 20px; border-top: 2px solid #eee; }
        .btn { display: inline-block; padding: 12px 30px; margin: 0 10px; background: %s; color: white; text-decoration: none; border-radius: 5px; border: none; cursor: pointer; font-size: 1em; }
        @media print { .actions { display: none; } }
    </style>
</head>
<body>
    <div class="container">
        <div class="section-header">
            <h1>%s %s</h1>
            <div class="breadcrumb">%s • %s</div>
        </div>
        <div class="content">
%s
        </div>
    </div>
    <div class="actions">
        <button onclick="window.print()" class="btn">🖨️ Imprimir</button>
        <button onclick="window.history.back()" class="btn">← Voltar</button>
    </div>
</body>
</html>`,
		html.EscapeString(title),
		color, color, color,
		icon, html.EscapeString(title),
		html.EscapeString(curso), html.EscapeString(modulo),
		content)
}

// RawCSS is the initial editable stylesheet persisted next to each raw
// section fragment.
func RawCSS(key string) string {
	return fmt.Sprintf(`/* CSS para a seção %s */

.content {
  font-family: Calibri, 'Open Sans', Arial, sans-serif;
  font-size: 12pt;
  line-height: 1.5;
  color: #2d3748;
}

.content p {
  margin-bottom: 18px;
  text-align: justify;
}

.content strong,
.content b {
  color: #1e3a8a;
  font-weight: 700 !important;
}

.content h1, .content h2, .content h3,
.content h4, .content h5, .content h6 {
  color: #1e3a8a;
  font-weight: 700 !important;
  margin-bottom: 15px;
  font-family: Calibri, 'Open Sans', Arial, sans-serif;
}

.content h1 { font-size: 16pt; }
.content h2 { font-size: 14pt; }
.content h3 { font-size: 12pt; }

.content img {
  display: block;
  margin: 20px auto;
  /* Dimensões originais preservadas via atributos width/height */
}
`, key)
}
