package log

import (
	// Stdlib
	"bytes"
	"os"

	// Vendor
	"github.com/shiena/ansicolor"
)

var _ = Describe("Logger", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
		SetOutput(out)
		DisableColor()
	})

	AfterEach(func() {
		SetV(Info)
		SetOutput(ansicolor.NewAnsiColorWriter(os.Stderr))
	})

	It("should print the task tags", func() {
		logger := V(Info)
		logger.Ok("ok")
		logger.Skip("skip")
		logger.Fail("fail")
		logger.Rollback("rollback")
		logger.NewLine("details")

		Expect(out.String()).To(Equal("" +
			"[OK]       ok\n" +
			"[SKIP]     skip\n" +
			"[FAIL]     fail\n" +
			"[ROLLBACK] rollback\n" +
			"           details\n"))
	})

	It("should drop the messages below the current level", func() {
		SetV(Verbose)
		V(Debug).Println("debug")
		V(Verbose).Println("verbose")
		V(Info).Println("info")

		Expect(out.String()).To(Equal("verbose\ninfo\n"))
	})

	It("should print nothing when turned off", func() {
		SetV(Off)
		V(Info).Println("info")
		V(Info).Printf("%v\n", "info")
		Expect(out.String()).To(Equal(""))
	})

	It("should enable the levels at or above the current level only", func() {
		SetV(Debug)
		Expect(bool(V(Trace))).To(BeFalse())
		Expect(bool(V(Debug))).To(BeTrue())
		Expect(bool(V(Info))).To(BeTrue())
	})
})

var _ = Describe("level strings", func() {
	It("should list the levels from the most verbose one", func() {
		Expect(LevelStrings()).To(Equal([]string{"trace", "debug", "verbose", "info", "off"}))
	})

	It("should convert the levels back and forth", func() {
		for _, s := range LevelStrings() {
			Expect(MustLevelToString(MustStringToLevel(s))).To(Equal(s))
		}
	})

	It("should reject unknown levels", func() {
		_, ok := StringToLevel("loud")
		Expect(ok).To(BeFalse())
		Expect(func() { MustStringToLevel("loud") }).To(Panic())
		Expect(func() { MustLevelToString(Off + 1) }).To(Panic())
	})
})
