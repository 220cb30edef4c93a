package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/edulab/atividades/activity"
)

// RenderNavigation builds the top-level navigation page: activity header
// with the resolved metadata fields, the deadlines banner, and one card
// per section linking to its standalone page. An empty section map
// produces an explicit "no sections identified" page, not a failure.
func (r *Renderer) RenderNavigation(meta activity.Metadata, info activity.ActivityInfo, runID string) string {
	titulo := activity.Resolve(meta.Titulo, activity.Resolve(info.Titulo, "Atividade"))
	curso := activity.Resolve(meta.Curso, info.Curso)
	modulo := activity.Resolve(meta.Modulo, info.Modulo)
	agenda := activity.Resolve(meta.Agenda, info.Agenda)
	professor := activity.Resolve(meta.Professor, info.ProfessorNome)

	var cards strings.Builder
	if meta.Sections == nil || meta.Sections.Len() == 0 {
		cards.WriteString(`<p class="empty"><em>Nenhuma seção identificada no documento. Por favor, verifique o arquivo enviado.</em></p>`)
	} else {
		cards.WriteString(`<div class="cards">`)
		for i, s := range meta.Sections.Sections() {
			title, icon := displayTitle(s)
			cards.WriteString(fmt.Sprintf(`
            <a class="card" href="section_%s_%s.html" style="border-top: 4px solid %s;">
                <span class="card-icon">%s</span>
                <span class="card-title">%s</span>
            </a>`, s.Key, runID, colorFor(i), icon, html.EscapeString(title)))
		}
		cards.WriteString("\n            </div>")
	}

	deadline := ""
	if line := deadlineLine(meta, info); line != "" {
		deadline = fmt.Sprintf(`<div class="deadline"><p>%s</p></div>`, html.EscapeString(line))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; background-color: #f5f5f5; padding: 20px; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; border-radius: 8px; margin-bottom: 30px; }
        .header h1 { font-size: 2em; margin-bottom: 15px; }
        .header-info { display: grid; grid-template-columns: 1fr 1fr; gap: 15px; font-size: 0.95em; }
        .info-item { background: rgba(255,255,255,0.1); padding: 10px 15px; border-radius: 5px; }
        .deadline { background: #ff6b6b; padding: 15px; border-radius: 8px; margin-bottom: 30px; color: white; text-align: center; font-weight: bold; }
        .cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 20px; }
        .card { display: flex; flex-direction: column; align-items: center; gap: 10px; padding: 25px; background: #f9fafb; border-radius: 8px; text-decoration: none; color: #1f2937; transition: transform 0.2s; }
        .card:hover { transform: translateY(-3px); box-shadow: 0 4px 12px rgba(0,0,0,0.12); }
        .card-icon { font-size: 2em; }
        .card-title { font-weight: 600; text-align: center; }
        .empty { padding: 30px; text-align: center; color: #6b7280; }
        @media (max-width: 768px) { .header-info { grid-template-columns: 1fr; } .container { padding: 20px; } }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>%s</h1>
            <div class="header-info">
                <div class="info-item"><strong>Curso:</strong> %s</div>
                <div class="info-item"><strong>Módulo:</strong> %s</div>
                <div class="info-item"><strong>Agenda:</strong> %s</div>
                <div class="info-item"><strong>Professor:</strong> %s</div>
            </div>
        </div>
        %s
        %s
    </div>
</body>
</html>`,
		html.EscapeString(titulo),
		html.EscapeString(titulo),
		html.EscapeString(curso),
		html.EscapeString(modulo),
		html.EscapeString(agenda),
		html.EscapeString(professor),
		deadline,
		cards.String())
}
