package series_test

import (
	"math"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vk/recurrence/internal/instruction"
	"github.com/vk/recurrence/internal/series"
)

var _ = Describe("Generator", func() {
	var (
		doublePlusOne []instruction.Instruction
	)

	BeforeEach(func() {
		doublePlusOne = []instruction.Instruction{
			instruction.New(instruction.Multiply, 2),
			instruction.New(instruction.Add, 1),
		}
	})

	It("should generate x -> 2x+1 from zero", func() {
		g, err := series.New(0, 10, doublePlusOne)
		Expect(err).NotTo(HaveOccurred())

		terms := slices.Collect(g.Terms())

		Expect(terms).To(Equal([]float64{0, 1, 3, 7, 15, 31, 63, 127, 255, 511}))
	})

	It("should apply instructions left to right", func() {
		addThenDouble := []instruction.Instruction{
			instruction.New(instruction.Add, 1),
			instruction.New(instruction.Multiply, 2),
		}
		g, err := series.New(0, 4, addThenDouble)
		Expect(err).NotTo(HaveOccurred())

		Expect(slices.Collect(g.Terms())).To(Equal([]float64{0, 2, 6, 14}))
	})

	It("should yield nothing when count is zero", func() {
		g, err := series.New(42, 0, doublePlusOne)
		Expect(err).NotTo(HaveOccurred())

		Expect(slices.Collect(g.Terms())).To(BeEmpty())
	})

	It("should repeat the seed when there are no instructions", func() {
		g, err := series.New(3.25, 5, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(slices.Collect(g.Terms())).To(Equal([]float64{3.25, 3.25, 3.25, 3.25, 3.25}))
	})

	It("should restart from the seed on every range", func() {
		g, err := series.New(1, 4, doublePlusOne)
		Expect(err).NotTo(HaveOccurred())

		seq := g.Terms()
		first := slices.Collect(seq)
		second := slices.Collect(seq)

		Expect(first).To(Equal([]float64{1, 3, 7, 15}))
		Expect(second).To(Equal(first))
	})

	It("should stop when the consumer breaks early", func() {
		g, err := series.New(0, 1000, doublePlusOne)
		Expect(err).NotTo(HaveOccurred())

		var got []float64
		for term := range g.Terms() {
			got = append(got, term)
			if len(got) == 3 {
				break
			}
		}

		Expect(got).To(Equal([]float64{0, 1, 3}))
	})

	It("should not be affected by changes to the caller's slice", func() {
		g, err := series.New(0, 3, doublePlusOne)
		Expect(err).NotTo(HaveOccurred())

		doublePlusOne[0] = instruction.New(instruction.Subtract, 100)

		Expect(slices.Collect(g.Terms())).To(Equal([]float64{0, 1, 3}))
		Expect(g.Instructions()[0]).To(Equal(instruction.New(instruction.Multiply, 2)))
	})

	It("should carry division by zero through as infinity", func() {
		g, err := series.New(1, 3, []instruction.Instruction{instruction.New(instruction.Divide, 0)})
		Expect(err).NotTo(HaveOccurred())

		terms := slices.Collect(g.Terms())

		Expect(terms[0]).To(Equal(1.0))
		Expect(math.IsInf(terms[1], 1)).To(BeTrue())
		Expect(math.IsInf(terms[2], 1)).To(BeTrue())
	})

	It("should reject a negative count", func() {
		_, err := series.New(0, -1, nil)
		Expect(err).To(MatchError(series.ErrNegativeCount))
	})

	It("should expose its settings", func() {
		g, err := series.New(2, 7, doublePlusOne)
		Expect(err).NotTo(HaveOccurred())

		Expect(g.Seed()).To(Equal(2.0))
		Expect(g.Count()).To(Equal(7))
		Expect(g.Step(2)).To(Equal(5.0))
	})
})

var _ = DescribeTable("Format",
	func(v float64, expected string) {
		Expect(series.Format(v)).To(Equal(expected))
	},
	Entry("zero", 0.0, "0"),
	Entry("integer", 511.0, "511"),
	Entry("fraction", 1.5, "1.5"),
	Entry("negative", -0.25, "-0.25"),
	Entry("large value without exponent", 1e21, "1000000000000000000000"),
	Entry("positive infinity", math.Inf(1), "inf"),
	Entry("negative infinity", math.Inf(-1), "-inf"),
	Entry("not a number", math.NaN(), "NaN"),
)
