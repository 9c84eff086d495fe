package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/engine"
	"github.com/rummy-online/client/model"
)

var (
	redSuit    = color.New(color.FgHiRed).SprintFunc()
	blackSuit  = color.New(color.FgHiWhite).SprintFunc()
	jokerSuit  = color.New(color.FgHiMagenta).SprintFunc()
	ownCard    = color.New(color.FgHiGreen).SprintFunc()
	activeName = color.New(color.FgHiCyan).SprintFunc()
	statusText = color.New(color.FgHiYellow).SprintFunc()
)

var suitSymbols = map[string]string{
	consts.SuitSpades:   "♠",
	consts.SuitClubs:    "♣",
	consts.SuitHearts:   "♥",
	consts.SuitDiamonds: "♦",
	consts.SuitJoker:    "★",
}

// Card renders one card with its suit color.
func Card(card model.Card) string {
	text := fmt.Sprintf("[%s%s]", card.FaceVal, suitSymbols[card.Suit])
	switch card.Suit {
	case consts.SuitHearts, consts.SuitDiamonds:
		return redSuit(text)
	case consts.SuitJoker:
		return jokerSuit(text)
	}
	return blackSuit(text)
}

// Game prints the full table: roster, board, discard pile and hand. Cards
// the local player placed on the board get the ownership color.
func Game(table *engine.Table) {
	doc := table.Doc()
	buf := bytes.Buffer{}
	for _, stat := range doc.Roster() {
		name := stat.Name
		if stat.Active {
			name = activeName(name + " *")
		}
		buf.WriteString(fmt.Sprintf("%-20s+%d\n", name, stat.CardCount))
	}
	if doc.DealerText != "" {
		buf.WriteString(doc.DealerText + "\n")
	}
	if table.WildCard() != "" {
		buf.WriteString(fmt.Sprintf("Wild Card %s\n", table.WildCard()))
	}
	buf.WriteString("\nGame board:\n")
	for i, group := range table.Board() {
		buf.WriteString(fmt.Sprintf("%d.%-5s", i, group.Type))
		for _, meldCard := range group.MeldCards {
			text := Card(meldCard.Card())
			if meldCard.Player == doc.UserName {
				text = ownCard(fmt.Sprintf("[%s%s]", meldCard.FaceVal, suitSymbols[meldCard.Suit]))
			}
			buf.WriteString(text)
		}
		buf.WriteString("\n")
	}
	discards := table.Discards()
	buf.WriteString("\nDiscard pile:")
	for _, card := range discards {
		buf.WriteString(Card(card))
	}
	buf.WriteString(fmt.Sprintf("\nYour hand (%d):", len(table.Hand())))
	for i, card := range table.Hand() {
		buf.WriteString(fmt.Sprintf(" %d.%s", i, Card(card)))
	}
	buf.WriteString("\n")
	if doc.StatusMsg != "" {
		buf.WriteString(statusText(doc.StatusMsg) + "\n")
	}
	fmt.Fprint(color.Output, buf.String())
}

func Waiting(table *engine.Table) {
	fmt.Fprintf(color.Output, "Waiting for your turn, %s. Type v to view the table.\n", table.Doc().UserName)
}

func Help() {
	buf := bytes.Buffer{}
	buf.WriteString("mode <panel>        reset selections for a new action\n")
	buf.WriteString("draw | take         draw from stock | discard pile\n")
	buf.WriteString("pick <n>, discard   choose and discard a hand card\n")
	buf.WriteString("sel <n>             toggle a hand card for play\n")
	buf.WriteString("run | book          play selected cards as a new meld\n")
	buf.WriteString("anchor <n>          choose a board meld for adding\n")
	buf.WriteString("before | after      add selected cards to the anchor\n")
	buf.WriteString("move <n> <x>        drop a hand card at position x\n")
	buf.WriteString("undo | done         reload server state | submit turn\n")
	fmt.Fprint(color.Output, buf.String())
}

func Error(err error) {
	fmt.Fprintln(color.Output, statusText(err.Error()))
}
