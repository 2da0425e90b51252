package explore

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/ellips/ellipsis"
	"github.com/revelaction/ellips/render"
)

const (
	// classPrefix is the Character in the prompt that prefixes a class
	classPrefix = "/"

	quit = "quit"

	maxSuggestions = 12
)

// Handler runs a REPL over the classified sentences of a corpus.
type Handler struct {
	Results  []ellipsis.Result
	Renderer *render.Renderer

	bySentId map[string]int
}

func NewHandler(results []ellipsis.Result, r *render.Renderer) *Handler {
	h := &Handler{
		Results:  results,
		Renderer: r,
		bySentId: make(map[string]int, len(results)),
	}

	for i, res := range results {
		if res.Sentence == nil || res.Sentence.Id == "" {
			continue
		}
		h.bySentId[res.Sentence.Id] = i
	}

	return h
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      🔎 ", h.completer,
			prompt.OptionTitle("ellips explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(maxSuggestions),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.W, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintf(h.Renderer.W, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		in = strings.TrimSpace(in)
		if in == quit {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)
		idxs, err := h.Lookup(in)
		if err != nil {
			fmt.Fprintf(h.Renderer.W, "%v\n", err)
			continue
		}

		for _, i := range idxs {
			h.Renderer.Result(h.Results[i], fmt.Sprintf("✍  %d ", i+1))
		}
	}
}

// Lookup returns the indexes of the results selected by in: a class prefixed
// by "/", a sent_id, or a 1-based position in the corpus.
func (h *Handler) Lookup(in string) ([]int, error) {
	if strings.HasPrefix(in, classPrefix) {
		class := ellipsis.Class(strings.TrimPrefix(in, classPrefix))
		idxs := []int{}
		for i, res := range h.Results {
			if res.Class == class {
				idxs = append(idxs, i)
			}
		}
		if len(idxs) == 0 {
			return nil, fmt.Errorf("no %s sentences", class)
		}
		return idxs, nil
	}

	if i, ok := h.bySentId[in]; ok {
		return []int{i}, nil
	}

	pos, err := strconv.Atoi(in)
	if err != nil {
		return nil, fmt.Errorf("sentence %q not found", in)
	}

	if pos < 1 || pos > len(h.Results) {
		return nil, errors.New("position out of range")
	}

	return []int{pos - 1}, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	word := in.GetWordBeforeCursor()
	if word == "" {
		return s
	}

	if strings.HasPrefix(word, classPrefix) {
		for _, c := range ellipsis.Classes() {
			s = append(s, prompt.Suggest{Text: classPrefix + string(c), Description: "class"})
		}
		return prompt.FilterHasPrefix(s, word, true)
	}

	for id, i := range h.bySentId {
		if strings.HasPrefix(id, word) {
			s = append(s, prompt.Suggest{Text: id, Description: string(h.Results[i].Class)})
		}
	}

	sort.Slice(s, func(i, j int) bool { return s[i].Text < s[j].Text })
	return s
}
