package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/jamesmills/cardforge/internal/format"
)

var (
	headerRe     = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	definitionRe = regexp.MustCompile(`^([^:]+):\s*(.+)$`)
	qaStartRe    = regexp.MustCompile(`(?m)^Q:`)
	qaPairRe     = regexp.MustCompile(`(?s)^Q:\s*(.+?)\s*A:\s*(.+)$`)
	codeBlockRe  = regexp.MustCompile("(?s)```(\\w+)\n(.*?)\n```")
	bulletItemRe = regexp.MustCompile(`^[-*+]\s+(.+)$`)
	tableRuleRe  = regexp.MustCompile(`^[\s|:-]+$`)
)

// maxCodeCardLines caps how long a code block may be before it is
// considered too large to memorize as a single card.
const maxCodeCardLines = 15

// Convert extracts cards from markdown content. Extractors run in a
// fixed order and exact duplicates are removed, so output order is
// deterministic for a given input.
func Convert(content string) []domain.Card {
	var cards []domain.Card
	cards = append(cards, headerCards(content)...)
	cards = append(cards, definitionCards(content)...)
	cards = append(cards, qaCards(content)...)
	cards = append(cards, codeCards(content)...)
	cards = append(cards, bulletListCards(content)...)
	cards = append(cards, tableCards(content)...)
	return domain.Dedupe(domain.FilterValid(cards))
}

// headerCards turns h2/h3 sections with enough body text into
// "Explain: <title>" cards. Top-level headers usually title whole
// documents and h4+ rarely carry self-contained content, so both are
// skipped.
func headerCards(content string) []domain.Card {
	var cards []domain.Card

	locs := headerRe.FindAllStringSubmatchIndex(content, -1)
	for i, loc := range locs {
		level := loc[3] - loc[2]
		if level != 2 && level != 3 {
			continue
		}
		title := content[loc[4]:loc[5]]

		bodyStart := loc[1]
		bodyEnd := len(content)
		if i+1 < len(locs) {
			bodyEnd = locs[i+1][0]
		}
		body := strings.TrimSpace(content[bodyStart:bodyEnd])
		if len(body) <= 20 {
			continue
		}

		cards = append(cards, domain.Card{
			Front: "Explain: <b>" + title + "</b>",
			Back:  format.Process(body, format.DefaultOptions()),
		})
	}
	return cards
}

// definitionCards parses "term: definition" lines into a forward and a
// reverse card. Indented continuation lines extend the definition.
func definitionCards(content string) []domain.Card {
	var cards []domain.Card
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") || !strings.Contains(trimmed, ":") {
			continue
		}
		m := definitionRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		term := strings.TrimSpace(m[1])
		definition := strings.TrimSpace(m[2])

		for j := i + 1; j < len(lines) && strings.HasPrefix(lines[j], "  "); j++ {
			definition += " " + strings.TrimSpace(lines[j])
		}
		if term == "" || definition == "" {
			continue
		}

		formatted := format.Process(definition, format.DefaultOptions())
		cards = append(cards,
			domain.Card{Front: "Define: <b>" + term + "</b>", Back: formatted},
			domain.Card{Front: "What term is defined as:<br><br>" + formatted, Back: term},
		)
	}
	return cards
}

// qaCards extracts explicit "Q: ... A: ..." blocks, plus lines ending
// in a question mark answered by the next non-blank, non-header line.
func qaCards(content string) []domain.Card {
	var cards []domain.Card

	// Each block runs from one Q: marker to the next, so one pair
	// cannot swallow the following pair's marker.
	starts := qaStartRe.FindAllStringIndex(content, -1)
	for i, start := range starts {
		end := len(content)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		m := qaPairRe.FindStringSubmatch(strings.TrimSpace(content[start[0]:end]))
		if m == nil {
			continue
		}
		cards = append(cards, domain.Card{
			Front: format.Process(strings.TrimSpace(m[1]), format.DefaultOptions()),
			Back:  format.Process(strings.TrimSpace(m[2]), format.DefaultOptions()),
		})
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		question := strings.TrimSpace(line)
		if !strings.HasSuffix(question, "?") || strings.HasPrefix(question, "Q:") {
			continue
		}
		limit := i + 5
		if limit > len(lines) {
			limit = len(lines)
		}
		for j := i + 1; j < limit; j++ {
			answer := strings.TrimSpace(lines[j])
			if answer == "" || strings.HasPrefix(answer, "#") {
				continue
			}
			cards = append(cards, domain.Card{
				Front: format.Process(question, format.DefaultOptions()),
				Back:  format.Process(answer, format.DefaultOptions()),
			})
			break
		}
	}
	return cards
}

// codeCards pairs fenced code blocks with the description line directly
// above them, producing a write-the-code card and a what-does-it-do
// card for blocks short enough to memorize.
func codeCards(content string) []domain.Card {
	var cards []domain.Card

	for _, loc := range codeBlockRe.FindAllStringSubmatchIndex(content, -1) {
		language := content[loc[2]:loc[3]]
		code := strings.TrimRight(content[loc[4]:loc[5]], "\n")
		if strings.Count(code, "\n")+1 > maxCodeCardLines {
			continue
		}

		before := strings.TrimSpace(content[:loc[0]])
		beforeLines := strings.Split(before, "\n")
		description := strings.TrimSpace(beforeLines[len(beforeLines)-1])
		if description == "" || strings.HasPrefix(description, "#") {
			continue
		}

		escaped := format.EscapeHTML(code)
		cards = append(cards,
			domain.Card{
				Front: fmt.Sprintf("Write %s code for:<br><br><b>%s</b>", language, description),
				Back:  "<pre><code>" + escaped + "</code></pre>",
			},
			domain.Card{
				Front: fmt.Sprintf("What does this %s code do?<br><br><pre><code>%s</code></pre>", language, escaped),
				Back:  description,
			},
		)
	}
	return cards
}

// bulletListCards turns a bullet list of three or more items, preceded
// by a non-header title line, into a single list-recall card.
func bulletListCards(content string) []domain.Card {
	var cards []domain.Card
	lines := strings.Split(content, "\n")

	var items []string
	var title string

	flush := func() {
		if len(items) >= 3 && title != "" {
			for i, item := range items {
				items[i] = "• " + item
			}
			cards = append(cards, domain.Card{
				Front: "List the items for:<br><br><b>" + title + "</b>",
				Back:  format.Process(strings.Join(items, "<br>"), format.Options{EscapeHTML: false, ConvertLaTeX: true, NewlinesToBreaks: true}),
			})
		}
		items = nil
		title = ""
	}

	for i, line := range lines {
		m := bulletItemRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			flush()
			continue
		}
		items = append(items, strings.TrimSpace(m[1]))
		if len(items) == 1 && i > 0 {
			prev := strings.TrimSpace(lines[i-1])
			if prev != "" && !strings.HasPrefix(prev, "#") {
				title = strings.TrimSuffix(prev, ":")
			}
		}
	}
	flush()

	return cards
}

// tableCards turns each row of a markdown table into a card keyed on
// the first column, with remaining columns on the back.
func tableCards(content string) []domain.Card {
	var cards []domain.Card

	var headers []string
	var rows [][]string
	inTable := false

	flush := func() {
		if len(headers) >= 2 {
			for _, row := range rows {
				if len(row) < 2 {
					continue
				}
				back := format.Process(row[1], format.DefaultOptions())
				for i := 2; i < len(headers) && i < len(row); i++ {
					back += fmt.Sprintf("<br><br><b>%s:</b> %s", headers[i], row[i])
				}
				cards = append(cards, domain.Card{
					Front: fmt.Sprintf("%s: <b>%s</b>", headers[0], row[0]),
					Back:  back,
				})
			}
		}
		headers = nil
		rows = nil
		inTable = false
	}

	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, "|") {
			flush()
			continue
		}
		cells := splitTableRow(line)
		switch {
		case !inTable:
			headers = cells
			inTable = true
		case tableRuleRe.MatchString(line):
			// separator row between header and body
		default:
			rows = append(rows, cells)
		}
	}
	flush()

	return cards
}

func splitTableRow(line string) []string {
	parts := strings.Split(line, "|")
	// Leading and trailing pipes produce empty edge cells.
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
