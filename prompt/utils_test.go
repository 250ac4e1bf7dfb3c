package prompt

import (
	"unicode/utf8"
)

type summarizeCase struct {
	text     string
	maxLen   int
	expected string
}

var _ = Describe("Summarize", func() {
	cases := []summarizeCase{
		// short enough
		{"Is the repo clean?", 72, "Is the repo clean?"},
		// exactly maxLen
		{"abcde", 5, "abcde"},
		// the last word is dropped when cut in half
		{"Have you tagged the release?", 20, "Have you tagged ..."},
		// cut right before a space
		{"Have you tagged the release?", 19, "Have you tagged ..."},
		// only the first line is used
		{"First line?\n      More details.", 72, "First line? ..."},
		// the first line is shortened as well
		{"Have you tagged the release?\n      More.", 20, "Have you tagged ..."},
		// multi-byte runes are never split
		{"Přidali jste změny do changelogu?", 12, "Přidali ..."},
		{"ěščřžýáíéěščřž", 8, "ěščř ..."},
		// a tiny maxLen still leaves room for the ellipsis
		{"Is the repo clean?", 0, "I ..."},
	}

	for _, c := range cases {
		func(c summarizeCase) {
			It("should summarize "+c.text, func() {
				summary := Summarize(c.text, c.maxLen)
				Expect(summary).To(Equal(c.expected))
				Expect(utf8.ValidString(summary)).To(BeTrue())
			})
		}(c)
	}
})
