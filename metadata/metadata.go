// Package metadata recovers the scalar activity fields and deadlines
// from extracted document text via line-pattern matching.
package metadata

import (
	"regexp"
	"strings"

	"github.com/edulab/atividades/activity"
)

// Field label patterns. Case-insensitive "Label: value" pairs, value
// terminated at end of line, first match per label wins. Absence of a
// label is not an error.
var (
	cursoRe     = regexp.MustCompile(`(?i)Curso:\s*([^\n]+)`)
	moduloRe    = regexp.MustCompile(`(?i)M[óo]dulo:\s*([^\n]+)`)
	agendaRe    = regexp.MustCompile(`(?i)(?:N[úu]mero da )?Agenda:\s*([^\n]+)`)
	professorRe = regexp.MustCompile(`(?i)Professor[^:\n]*:\s*([^\n]+)`)
	tituloRe    = regexp.MustCompile(`(?i)T[íi]tulo[^:\n]*:\s*([^\n]+)`)
)

// Deadline patterns: a DD/MM/YYYY HH:MM timestamp anchored after the
// literal deadline labels.
var (
	prazoInicialRe = regexp.MustCompile(`(?i)Prazo\s+Inicial[^0-9]*(\d{2}/\d{2}/\d{4}\s+\d{2}:\d{2})`)
	prazoFinalRe   = regexp.MustCompile(`(?i)Prazo\s+Final[^0-9]*(\d{2}/\d{2}/\d{4}\s+\d{2}:\d{2})`)
)

// Extract runs pattern-based field recognition over the plain text.
func Extract(rawText string) activity.Metadata {
	var meta activity.Metadata
	if m := cursoRe.FindStringSubmatch(rawText); m != nil {
		meta.Curso = strings.TrimSpace(m[1])
	}
	if m := moduloRe.FindStringSubmatch(rawText); m != nil {
		meta.Modulo = strings.TrimSpace(m[1])
	}
	if m := agendaRe.FindStringSubmatch(rawText); m != nil {
		meta.Agenda = strings.TrimSpace(m[1])
	}
	if m := professorRe.FindStringSubmatch(rawText); m != nil {
		meta.Professor = strings.TrimSpace(m[1])
	}
	if m := tituloRe.FindStringSubmatch(rawText); m != nil {
		meta.Titulo = strings.TrimSpace(m[1])
	}
	return meta
}

// ExtractPrazos recovers the activity deadlines. Returns nil when
// neither deadline label matches.
func ExtractPrazos(rawText string) *activity.Prazos {
	var prazos activity.Prazos
	if m := prazoInicialRe.FindStringSubmatch(rawText); m != nil {
		prazos.Inicio = strings.Join(strings.Fields(m[1]), " ")
	}
	if m := prazoFinalRe.FindStringSubmatch(rawText); m != nil {
		prazos.Fim = strings.Join(strings.Fields(m[1]), " ")
	}
	if prazos.Inicio == "" && prazos.Fim == "" {
		return nil
	}
	return &prazos
}
