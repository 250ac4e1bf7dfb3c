package checklist_test

import (
	// Stdlib
	"bytes"
	"errors"
	"fmt"
	"strings"

	// Internal
	. "github.com/salsaflow/make-release/checklist"
	"github.com/salsaflow/make-release/prompt"
)

const confirmation = "  Press Y OR y to continue; Anything else to Quit: "

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

var _ = Describe("ConfirmationStep", func() {
	var out *bytes.Buffer

	confirm := func(input string) bool {
		console := prompt.NewConsole(strings.NewReader(input), out)
		return NewConfirmationStep(console, "Is the repo clean?").Do()
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	It("should print the check header and the confirmation message", func() {
		confirm("y\n")
		Expect(out.String()).To(Equal("\nCHECK:  Is the repo clean?\n" + confirmation))
	})

	for _, answer := range []string{"Y\n", "y\n", "y\r\n", "y"} {
		func(answer string) {
			It(fmt.Sprintf("should accept %q", answer), func() {
				Expect(confirm(answer)).To(BeTrue())
			})
		}(answer)
	}

	for _, answer := range []string{"yes\n", "YES\n", "n\n", "\n", " Y\n", "Y \n", "\tY\n", "N\n", ""} {
		func(answer string) {
			It(fmt.Sprintf("should decline %q", answer), func() {
				Expect(confirm(answer)).To(BeFalse())
			})
		}(answer)
	}

	It("should decline when the input cannot be read", func() {
		console := prompt.NewConsole(brokenReader{}, out)
		Expect(NewConfirmationStep(console, "A").Do()).To(BeFalse())
	})

	It("should print the undo notice", func() {
		console := prompt.NewConsole(strings.NewReader(""), out)
		NewConfirmationStep(console, "Have you tagged the release?").Undo()
		Expect(out.String()).To(Equal("UNDOING: Have you tagged the release?\n"))
	})

	It("should keep the prompt", func() {
		console := prompt.NewConsole(strings.NewReader(""), out)
		Expect(NewConfirmationStep(console, "A").Prompt()).To(Equal("A"))
	})
})
