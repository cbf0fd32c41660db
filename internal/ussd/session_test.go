package ussd_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sauti.app/api/internal/ussd"
)

var _ = Describe("Walk", func() {
	It("prompts for a category on the first selection", func() {
		outcome := ussd.Walk("1")

		Expect(outcome.Text).To(HavePrefix(ussd.ContinuePrefix))
		Expect(outcome.Text).To(ContainSubstring("What are you reporting?"))
		Expect(outcome.Text).To(ContainSubstring("1. Gender-based violence"))
		Expect(outcome.Text).To(ContainSubstring("7. Education"))
		Expect(outcome.Submission).To(BeNil())
	})

	It("prompts for urgency after the category selection", func() {
		outcome := ussd.Walk("1*2")

		Expect(outcome.Text).To(HavePrefix(ussd.ContinuePrefix))
		Expect(outcome.Text).To(ContainSubstring("How urgent is it?"))
		Expect(outcome.Text).To(ContainSubstring("4. Critical"))
		Expect(outcome.Submission).To(BeNil())
	})

	It("prompts for a location after the urgency selection", func() {
		outcome := ussd.Walk("1*2*3")

		Expect(outcome.Text).To(HavePrefix(ussd.ContinuePrefix))
		Expect(outcome.Text).To(ContainSubstring("location"))
		Expect(outcome.Submission).To(BeNil())
	})

	It("prompts for a description after the location", func() {
		outcome := ussd.Walk("1*2*3*Maiduguri")

		Expect(outcome.Text).To(HavePrefix(ussd.ContinuePrefix))
		Expect(outcome.Text).To(ContainSubstring("Describe what happened"))
		Expect(outcome.Submission).To(BeNil())
	})

	It("completes with a submission on the terminal step", func() {
		outcome := ussd.Walk("1*2*3*Maiduguri*Water point destroyed")

		Expect(outcome.Text).To(HavePrefix(ussd.EndPrefix))
		Expect(outcome.Submission).NotTo(BeNil())
		Expect(outcome.Submission.Category).To(Equal("child-protection"))
		Expect(outcome.Submission.Urgency).To(Equal("high"))
		Expect(outcome.Submission.Location).To(Equal("Maiduguri"))
		Expect(outcome.Submission.Description).To(Equal("Water point destroyed"))
	})

	It("maps menu numbers onto the canonical vocabulary", func() {
		outcome := ussd.Walk("0*1*4*Bama*Details")

		Expect(outcome.Submission).NotTo(BeNil())
		Expect(outcome.Submission.Category).To(Equal("gender-based-violence"))
		Expect(outcome.Submission.Urgency).To(Equal("critical"))
	})

	It("passes out-of-range selections through verbatim", func() {
		outcome := ussd.Walk("1*9*7*Bama*Details")

		Expect(outcome.Submission).NotTo(BeNil())
		Expect(outcome.Submission.Category).To(Equal("9"))
		Expect(outcome.Submission.Urgency).To(Equal("7"))
	})

	It("rejects empty input", func() {
		outcome := ussd.Walk("")

		Expect(outcome.Text).To(HavePrefix(ussd.EndPrefix))
		Expect(outcome.Text).To(ContainSubstring("Invalid input"))
		Expect(outcome.Submission).To(BeNil())
	})

	It("rejects paths beyond the terminal step", func() {
		outcome := ussd.Walk("1*2*3*Maiduguri*Details*extra")

		Expect(outcome.Text).To(HavePrefix(ussd.EndPrefix))
		Expect(outcome.Text).To(ContainSubstring("Invalid input"))
		Expect(outcome.Submission).To(BeNil())
	})

	It("is deterministic for a resent path", func() {
		path := "2*3*2*Monguno*Classroom collapsed"

		first := ussd.Walk(path)
		second := ussd.Walk(path)

		Expect(second.Text).To(Equal(first.Text))
		Expect(*second.Submission).To(Equal(*first.Submission))
	})

	It("trims whitespace around free-text steps", func() {
		outcome := ussd.Walk("1*1*1*  Dikwa  *  Borehole broken  ")

		Expect(outcome.Submission.Location).To(Equal("Dikwa"))
		Expect(outcome.Submission.Description).To(Equal("Borehole broken"))
	})

	It("numbers every category menu entry", func() {
		outcome := ussd.Walk("1")

		lines := strings.Split(outcome.Text, "\n")
		Expect(lines).To(HaveLen(8)) // header + 7 categories
	})
})
