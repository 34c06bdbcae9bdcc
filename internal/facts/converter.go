package facts

import (
	"fmt"
	"strings"

	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/jamesmills/cardforge/internal/format"
	"github.com/jamesmills/cardforge/internal/textparse"
)

// CardType selects which card shapes Convert generates.
type CardType string

const (
	Basic      CardType = "basic"
	List       CardType = "list"
	Example    CardType = "example"
	Formula    CardType = "formula"
	Comparison CardType = "comparison"
)

// CardTypes lists every supported card type, for CLI validation.
var CardTypes = []CardType{Basic, List, Example, Formula, Comparison}

// subjectKeys are tried in order to find a fact's display name.
var subjectKeys = []string{"title", "name", "term", "concept", "topic"}

// metadataKeys never become cards of their own.
var metadataKeys = map[string]bool{
	"title": true, "name": true, "term": true, "concept": true,
	"tags": true, "source": true,
}

// ParseRecords splits text into fact records on blank lines and parses
// each record's fields in input order.
func ParseRecords(text string) []textparse.Fact {
	var parsed []textparse.Fact
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		fact := textparse.StructuredFact(block)
		if len(fact.Fields) > 0 {
			parsed = append(parsed, fact)
		}
	}
	return parsed
}

// Convert generates cards of the requested types for every fact in
// text. Comparison cards span facts and are appended after the
// per-fact cards.
func Convert(text string, types []CardType) []domain.Card {
	records := ParseRecords(text)

	want := make(map[CardType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	var cards []domain.Card
	for _, fact := range records {
		if want[Basic] {
			cards = append(cards, basicCards(fact)...)
		}
		if want[List] {
			cards = append(cards, listCards(fact)...)
		}
		if want[Example] {
			cards = append(cards, exampleCards(fact)...)
		}
		if want[Formula] {
			cards = append(cards, formulaCards(fact)...)
		}
	}
	if want[Comparison] && len(records) > 1 {
		cards = append(cards, comparisonCards(records)...)
	}
	return domain.FilterValid(cards)
}

func subject(fact textparse.Fact) string {
	for _, key := range subjectKeys {
		if v := fact.Get(key); v != "" {
			return v
		}
	}
	return "Subject"
}

// basicCards asks for each field's value given the subject, plus a
// reverse card for definition-like fields.
func basicCards(fact textparse.Fact) []domain.Card {
	var cards []domain.Card
	subj := format.EscapeHTML(subject(fact))

	for _, field := range fact.Fields {
		if metadataKeys[field.Key] || field.Value == "" {
			continue
		}
		value := format.Process(field.Value, format.DefaultOptions())

		cards = append(cards, domain.Card{
			Front: fmt.Sprintf("<b>%s</b><br><br>%s?", subj, titleCase(field.Key)),
			Back:  value,
		})

		switch field.Key {
		case "definition", "meaning", "description":
			cards = append(cards, domain.Card{
				Front: "What term is defined as:<br><br>" + value,
				Back:  subj,
			})
		}
	}
	return cards
}

// listCards handles fields whose value is itself a list: one card for
// the whole list and one per item.
func listCards(fact textparse.Fact) []domain.Card {
	var cards []domain.Card
	subj := format.EscapeHTML(subject(fact))

	for _, field := range fact.Fields {
		if !strings.ContainsAny(field.Value, "\n•-") {
			continue
		}
		items := textparse.ListItems(field.Value)
		if len(items) < 2 {
			continue
		}

		bullets := make([]string, len(items))
		for i, item := range items {
			bullets[i] = "• " + format.EscapeHTML(item)
		}
		cards = append(cards, domain.Card{
			Front: fmt.Sprintf("<b>%s</b><br><br>List all %s:", subj, field.Key),
			Back:  strings.Join(bullets, "<br>"),
		})

		for i, item := range items {
			cards = append(cards, domain.Card{
				Front: fmt.Sprintf("<b>%s</b><br><br>%s #%d?", subj, titleCase(field.Key), i+1),
				Back:  format.EscapeHTML(item),
			})
		}
	}
	return cards
}

// exampleCards builds recognition cards from example-ish fields. Only
// the first example gets a produce-an-example card, to keep deck size
// proportional to content.
func exampleCards(fact textparse.Fact) []domain.Card {
	var cards []domain.Card
	subj := format.EscapeHTML(subject(fact))

	for _, key := range []string{"example", "examples", "usage", "application"} {
		value := fact.Get(key)
		if value == "" {
			continue
		}
		for i, example := range textparse.ListItems(value) {
			escaped := format.EscapeHTML(example)
			cards = append(cards, domain.Card{
				Front: "What concept does this example illustrate?<br><br>" + escaped,
				Back:  subj,
			})
			if i == 0 {
				cards = append(cards, domain.Card{
					Front: "Give an example of:<br><br><b>" + subj + "</b>",
					Back:  escaped,
				})
			}
		}
	}
	return cards
}

// formulaCards builds name-to-formula and formula-to-name cards, plus a
// variables card when the fact explains its symbols.
func formulaCards(fact textparse.Fact) []domain.Card {
	var cards []domain.Card
	subj := format.EscapeHTML(subject(fact))

	for _, key := range []string{"formula", "equation", "expression"} {
		raw := fact.Get(key)
		if raw == "" {
			continue
		}
		formula := format.ConvertLaTeX(raw)

		cards = append(cards,
			domain.Card{
				Front: "Write the formula for:<br><br><b>" + subj + "</b>",
				Back:  formula,
			},
			domain.Card{
				Front: "What is this formula?<br><br>" + formula,
				Back:  subj,
			},
		)

		vars := fact.Get("variables")
		if vars == "" {
			vars = fact.Get("where")
		}
		if vars != "" {
			cards = append(cards, domain.Card{
				Front: fmt.Sprintf("In the %s formula:<br><br>%s<br><br>What do the variables represent?", subj, formula),
				Back:  format.Process(vars, format.DefaultOptions()),
			})
		}
	}
	return cards
}

// comparisonCards builds one table card per field shared by every fact.
func comparisonCards(records []textparse.Fact) []domain.Card {
	var cards []domain.Card

	// Shared fields in first-fact order keeps output deterministic.
	var shared []string
	for _, field := range records[0].Fields {
		key := field.Key
		if metadataKeys[key] || key == "notes" {
			continue
		}
		common := true
		for _, fact := range records[1:] {
			if !fact.Has(key) {
				common = false
				break
			}
		}
		if common {
			shared = append(shared, key)
		}
	}

	for _, key := range shared {
		var table strings.Builder
		table.WriteString(fmt.Sprintf("<b>Compare %s</b><br><br>", titleCase(key)))
		table.WriteString("<table border='1'>")

		var names []string
		for _, fact := range records {
			name := format.EscapeHTML(subject(fact))
			names = append(names, name)
			table.WriteString(fmt.Sprintf("<tr><td><b>%s</b></td><td>%s</td></tr>",
				name, format.EscapeHTML(fact.Get(key))))
		}
		table.WriteString("</table>")

		cards = append(cards, domain.Card{
			Front: fmt.Sprintf("Compare %s between: %s", key, strings.Join(names, ", ")),
			Back:  table.String(),
		})
	}
	return cards
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
